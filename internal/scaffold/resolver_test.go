package scaffold

import (
	"path/filepath"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		testDirName string
		workDir     string
		expected    Layout
	}{
		{
			name:        "project directory",
			testDirName: "test",
			workDir:     filepath.Join("/project"),
			expected: Layout{
				TestDir:   filepath.Join("/project", "test"),
				SourceDir: "/project",
			},
		},
		{
			name:        "inside test directory",
			testDirName: "test",
			workDir:     filepath.Join("/project", "test"),
			expected: Layout{
				TestDir:    filepath.Join("/project", "test"),
				SourceDir:  "/project",
				InsideTest: true,
			},
		},
		{
			name:        "directory merely containing test in its name",
			testDirName: "test",
			workDir:     filepath.Join("/project", "testdata"),
			expected: Layout{
				TestDir:   filepath.Join("/project", "testdata", "test"),
				SourceDir: filepath.Join("/project", "testdata"),
			},
		},
		{
			name:        "custom test dir name",
			testDirName: "spec",
			workDir:     filepath.Join("/project", "spec"),
			expected: Layout{
				TestDir:    filepath.Join("/project", "spec"),
				SourceDir:  "/project",
				InsideTest: true,
			},
		},
		{
			name:        "trailing separator is cleaned",
			testDirName: "test",
			workDir:     "/project/test/",
			expected: Layout{
				TestDir:    filepath.Join("/project", "test"),
				SourceDir:  "/project",
				InsideTest: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewResolver(tt.testDirName).Resolve(tt.workDir)
			if result != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}
		})
	}
}
