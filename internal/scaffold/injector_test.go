package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const fooSource = "#include \"foo.h\"\n\nFoo::Foo() {}\n"

const fooInclude = "\n#if RUN_UNIT_TESTS\n#include \"test/test_Foo.cpp\"\n#endif\n"

func writeSource(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(fooSource), 0644); err != nil {
		t.Fatalf("failed to write source %s: %v", name, err)
	}
	return path
}

func TestInjector_FindSource(t *testing.T) {
	inj := NewInjector(".cpp", "test")

	t.Run("prefers the upper-case candidate", func(t *testing.T) {
		dir := t.TempDir()
		upper := writeSource(t, dir, "Foo.cpp")
		writeSource(t, dir, "foo.cpp")

		path, ok := inj.FindSource("Foo", dir)
		if !ok {
			t.Fatal("expected source to be found")
		}
		if path != upper {
			t.Errorf("expected %s, got %s", upper, path)
		}
	})

	t.Run("falls back to the lower-case candidate", func(t *testing.T) {
		dir := t.TempDir()
		lower := writeSource(t, dir, "foo.cpp")

		path, ok := inj.FindSource("Foo", dir)
		if !ok {
			t.Fatal("expected source to be found")
		}
		if path != lower {
			t.Errorf("expected %s, got %s", lower, path)
		}
	})

	t.Run("reports a missing source", func(t *testing.T) {
		if _, ok := inj.FindSource("Foo", t.TempDir()); ok {
			t.Error("expected no source to be found")
		}
	})
}

func TestInjector_Inject(t *testing.T) {
	inj := NewInjector(".cpp", "test")

	t.Run("appends exactly one include block", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSource(t, dir, "Foo.cpp")

		result, injectedPath, err := inj.Inject("Foo", dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != Injected {
			t.Errorf("expected Injected, got %v", result)
		}
		if injectedPath != path {
			t.Errorf("expected %s, got %s", path, injectedPath)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read source: %v", err)
		}
		if diff := cmp.Diff(fooSource+fooInclude, string(content)); diff != "" {
			t.Errorf("unexpected source content (-want +got):\n%s", diff)
		}
	})

	t.Run("lower-case file gets the upper-case class substituted", func(t *testing.T) {
		dir := t.TempDir()
		path := writeSource(t, dir, "foo.cpp")

		if _, _, err := inj.Inject("Foo", dir); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read source: %v", err)
		}
		if !strings.Contains(string(content), `#include "test/test_Foo.cpp"`) {
			t.Error("include block does not reference the class's test file")
		}
	})

	t.Run("missing source is reported, not an error", func(t *testing.T) {
		result, path, err := inj.Inject("Foo", t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != SourceNotFound {
			t.Errorf("expected SourceNotFound, got %v", result)
		}
		if path != "" {
			t.Errorf("expected empty path, got %s", path)
		}
	})

	t.Run("repeated injection appends a second block", func(t *testing.T) {
		// There is no duplicate check on purpose, this mirrors what
		// happens when a test file is deleted and regenerated.
		dir := t.TempDir()
		path := writeSource(t, dir, "Foo.cpp")

		for i := 0; i < 2; i++ {
			if _, _, err := inj.Inject("Foo", dir); err != nil {
				t.Fatalf("unexpected error on run %d: %v", i+1, err)
			}
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read source: %v", err)
		}
		if got := strings.Count(string(content), "#if RUN_UNIT_TESTS"); got != 2 {
			t.Errorf("expected 2 include blocks, got %d", got)
		}
	})
}

func TestCasingHelpers(t *testing.T) {
	tests := []struct {
		in, upper, lower string
	}{
		{"foo", "Foo", "foo"},
		{"Foo", "Foo", "foo"},
		{"fooWidget", "FooWidget", "fooWidget"},
		{"", "", ""},
		{"x", "X", "x"},
	}

	for _, tt := range tests {
		if got := upperFirst(tt.in); got != tt.upper {
			t.Errorf("upperFirst(%q) = %q, expected %q", tt.in, got, tt.upper)
		}
		if got := lowerFirst(tt.in); got != tt.lower {
			t.Errorf("lowerFirst(%q) = %q, expected %q", tt.in, got, tt.lower)
		}
	}
}
