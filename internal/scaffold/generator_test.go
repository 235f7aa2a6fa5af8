package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerator_FileName(t *testing.T) {
	gen := NewGenerator(".cpp")
	if got := gen.FileName("Foo"); got != "test_Foo.cpp" {
		t.Errorf("expected test_Foo.cpp, got %s", got)
	}
	if got := NewGenerator(".cc").FileName("barWidget"); got != "test_barWidget.cc" {
		t.Errorf("expected test_barWidget.cc, got %s", got)
	}
}

func TestGenerator_Generate(t *testing.T) {
	tmpDir := t.TempDir()
	testDir := filepath.Join(tmpDir, "test")
	gen := NewGenerator(".cpp")

	result, path, err := gen.Generate("Foo", testDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("creates the test directory and file", func(t *testing.T) {
		if result != Created {
			t.Errorf("expected Created, got %v", result)
		}
		if path != filepath.Join(testDir, "test_Foo.cpp") {
			t.Errorf("unexpected path %s", path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected test file to exist: %v", err)
		}
	})

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read generated file: %v", err)
	}
	text := string(content)

	t.Run("substitutes the class name", func(t *testing.T) {
		wantLines := []string{
			"#include <juce_core/juce_core.h>",
			"class Test_Foo : public TestSuite",
			`    : TestSuite("Foo", "!!! category !!!")`,
			`        beginTest("!!! WRITE SOME TESTS FOR THE Foo Class !!!");`,
			"static Test_Foo testFoo;",
		}
		for _, line := range wantLines {
			if !strings.Contains(text, line) {
				t.Errorf("generated file missing line %q", line)
			}
		}
	})

	t.Run("starts and ends like the historical skeletons", func(t *testing.T) {
		if !strings.HasPrefix(text, "\n\n#include <juce_core/juce_core.h>\n") {
			t.Errorf("unexpected file prefix %q", text[:40])
		}
		if !strings.HasSuffix(text, "static Test_Foo testFoo;\n") {
			t.Errorf("unexpected file suffix %q", text[len(text)-40:])
		}
	})

	t.Run("second run leaves the file untouched", func(t *testing.T) {
		result, samePath, err := gen.Generate("Foo", testDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != AlreadyExists {
			t.Errorf("expected AlreadyExists, got %v", result)
		}
		if samePath != path {
			t.Errorf("expected path %s, got %s", path, samePath)
		}

		after, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to re-read generated file: %v", err)
		}
		if diff := cmp.Diff(string(content), string(after)); diff != "" {
			t.Errorf("file content changed on second run (-first +second):\n%s", diff)
		}
	})
}

func TestGenerator_Generate_ExistingDir(t *testing.T) {
	testDir := t.TempDir()

	result, _, err := NewGenerator(".cpp").Generate("Widget", testDir)
	if err != nil {
		t.Fatalf("pre-existing test dir must not be an error: %v", err)
	}
	if result != Created {
		t.Errorf("expected Created, got %v", result)
	}
}

func TestGenerator_Generate_VerbatimClassName(t *testing.T) {
	// Class names are not validated, whatever was typed lands in the
	// file name and identifiers.
	testDir := t.TempDir()

	_, path, err := NewGenerator(".cpp").Generate("lowercaseName", testDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "test_lowercaseName.cpp" {
		t.Errorf("unexpected file name %s", filepath.Base(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read generated file: %v", err)
	}
	if !strings.Contains(string(content), "static Test_lowercaseName testlowercaseName;") {
		t.Error("class name was not used verbatim in the declaration")
	}
}
