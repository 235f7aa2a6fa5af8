package domain

// Class represents a C++ class source file discovered in a project
// directory. The class name is derived from the file name with the
// extension stripped.
type Class struct {
	Name       string // class name, used verbatim in generated code
	SourcePath string // full path to the class's source file
	TestPath   string // full path a scaffolded test would have
	HasTest    bool   // whether the test file already exists
}
