package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestDirName is the directory generated tests are placed in
	DefaultTestDirName = "test"
	// DefaultSourceExt is the extension of the class sources being scaffolded
	DefaultSourceExt = ".cpp"
	// DefaultHistoryFile is the scaffold log file name
	DefaultHistoryFile = "scaffold-log.json"
	// DefaultHistoryDir is the directory the scaffold log is stored in
	DefaultHistoryDir = "storage"
)

// Environment variables read from the process environment or a .env file
// in the project directory.
const (
	EnvSourceExt = "MKTEST_SOURCE_EXT"
	EnvTestDir   = "MKTEST_TEST_DIR"
)
