package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mktest/internal/domain"
)

// Scanner lists class source files in a project directory.
type Scanner struct {
	ext string
}

// NewScanner creates a new Scanner for the given source extension
func NewScanner(ext string) *Scanner {
	return &Scanner{ext: ext}
}

// Scan returns the class sources directly inside dir, sorted by class
// name. Subdirectories are not descended into (the supported layout is a
// flat source directory with a test subdirectory) and files carrying the
// generated-test prefix are skipped so a scan never offers a skeleton as
// a class.
func (s *Scanner) Scan(dir string) ([]domain.Class, error) {
	dir = filepath.Clean(dir)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("source path does not exist: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source dir: %w", err)
	}

	var classes []domain.Class
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, s.ext) {
			continue
		}
		if strings.HasPrefix(name, "test_") {
			continue
		}
		classes = append(classes, domain.Class{
			Name:       strings.TrimSuffix(name, s.ext),
			SourcePath: filepath.Join(dir, name),
		})
	}

	sort.Slice(classes, func(i, j int) bool { return classes[i].Name < classes[j].Name })

	return classes, nil
}
