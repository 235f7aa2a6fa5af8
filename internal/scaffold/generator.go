package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// GenerateResult tells the caller whether a new test file was written.
type GenerateResult int

const (
	Created GenerateResult = iota
	AlreadyExists
)

// Generator writes skeleton test files.
type Generator struct {
	ext string
}

// NewGenerator creates a Generator producing files with the given
// source extension
func NewGenerator(ext string) *Generator {
	return &Generator{ext: ext}
}

// FileName returns the test file name for a class. The class name is
// used verbatim, there is no identifier validation.
func (g *Generator) FileName(class string) string {
	return "test_" + class + g.ext
}

// Generate writes the skeleton test file for class into testDir unless
// it already exists. The test directory is created if missing; a
// pre-existing directory is not an error. Idempotence is by existence
// check only, the content of an existing file is never inspected or
// overwritten.
func (g *Generator) Generate(class, testDir string) (GenerateResult, string, error) {
	if err := os.MkdirAll(testDir, 0755); err != nil {
		return AlreadyExists, "", fmt.Errorf("create test dir: %w", err)
	}

	path := filepath.Join(testDir, g.FileName(class))
	if _, err := os.Stat(path); err == nil {
		return AlreadyExists, path, nil
	}

	var buf bytes.Buffer
	if err := skeletonTmpl.Execute(&buf, skeletonData{Name: class}); err != nil {
		return AlreadyExists, "", fmt.Errorf("render test skeleton: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return AlreadyExists, "", fmt.Errorf("write test file: %w", err)
	}

	return Created, path, nil
}
