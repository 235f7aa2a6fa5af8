package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"
)

// InjectResult tells the caller whether the class source was found.
type InjectResult int

const (
	Injected InjectResult = iota
	SourceNotFound
)

// Injector appends the conditional test include block to class sources.
type Injector struct {
	ext         string
	testDirName string
}

// NewInjector creates an Injector for the given source extension and
// test directory name
func NewInjector(ext, testDirName string) *Injector {
	return &Injector{ext: ext, testDirName: testDirName}
}

// FindSource looks for the class source in dir, trying an upper-case
// first letter before falling back to a lower-case one ("FooClass" is
// assumed to live in either FooClass.cpp or fooClass.cpp).
func (in *Injector) FindSource(class, dir string) (string, bool) {
	for _, name := range []string{upperFirst(class) + in.ext, lowerFirst(class) + in.ext} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Inject locates the class source in sourceDir and appends the include
// block. The source is never scanned for an already-present block:
// deleting the test file and regenerating it appends a second block.
func (in *Injector) Inject(class, sourceDir string) (InjectResult, string, error) {
	path, ok := in.FindSource(class, sourceDir)
	if !ok {
		return SourceNotFound, "", nil
	}

	var buf bytes.Buffer
	data := includeData{Name: class, Dir: in.testDirName, Ext: in.ext}
	if err := includeTmpl.Execute(&buf, data); err != nil {
		return SourceNotFound, "", fmt.Errorf("render include block: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return SourceNotFound, "", fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return SourceNotFound, "", fmt.Errorf("append include block: %w", err)
	}

	return Injected, path, nil
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
