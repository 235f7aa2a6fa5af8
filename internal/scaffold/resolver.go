package scaffold

import "path/filepath"

// Layout is the resolved directory layout for one scaffold run.
type Layout struct {
	TestDir    string // directory the generated test file goes into
	SourceDir  string // directory class sources are searched in
	InsideTest bool   // the working directory itself is the test directory
}

// Resolver decides target directories from an explicit working
// directory. Only two layouts are supported: running from the project
// directory (tests go into a subdirectory) or from inside the test
// directory itself (sources live one level up).
type Resolver struct {
	testDirName string
}

// NewResolver creates a Resolver for the given test directory name
func NewResolver(testDirName string) *Resolver {
	return &Resolver{testDirName: testDirName}
}

// Resolve maps a working directory onto a Layout.
func (r *Resolver) Resolve(workDir string) Layout {
	workDir = filepath.Clean(workDir)
	if filepath.Base(workDir) == r.testDirName {
		return Layout{
			TestDir:    workDir,
			SourceDir:  filepath.Dir(workDir),
			InsideTest: true,
		}
	}
	return Layout{
		TestDir:   filepath.Join(workDir, r.testDirName),
		SourceDir: workDir,
	}
}
