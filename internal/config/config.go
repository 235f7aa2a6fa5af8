package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestDirName string
	SourceExt   string

	// Scaffold history settings
	HistoryFile string
	HistoryDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Dir        string
	NameFilter string
	SourceExt  string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath: DefaultProjectPath,
		TestDirName: DefaultTestDirName,
		SourceExt:   DefaultSourceExt,
		HistoryFile: DefaultHistoryFile,
		HistoryDir:  DefaultHistoryDir,
	}
}

// Load creates a config, applies .env/environment overrides and flags.
func Load(flags Flags) *Config {
	cfg := New()
	cfg.ApplyEnv()
	cfg.Flags = flags

	if flags.SourceExt != "" {
		cfg.SourceExt = NormalizeExt(flags.SourceExt)
	}

	return cfg
}

// ApplyEnv loads a .env file from the project directory (missing file is
// fine, regular environment variables still apply) and picks up the
// MKTEST_* overrides.
func (c *Config) ApplyEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		_ = err
	}

	if ext := os.Getenv(EnvSourceExt); ext != "" {
		c.SourceExt = NormalizeExt(ext)
	}
	if dir := os.Getenv(EnvTestDir); dir != "" {
		c.TestDirName = dir
	}
}

// GetWorkDir returns the directory the tool operates in, using the --dir
// flag if provided. Relative flag values are resolved against the
// project path.
func (c *Config) GetWorkDir() string {
	if c.Flags.Dir != "" {
		if filepath.IsAbs(c.Flags.Dir) {
			return c.Flags.Dir
		}
		return filepath.Join(c.ProjectPath, c.Flags.Dir)
	}
	return c.ProjectPath
}

// GetHistoryPath returns the full path of the scaffold log. The log lives
// next to the class sources, so a run from inside the test directory
// writes to the parent project's log.
func (c *Config) GetHistoryPath() string {
	base := c.GetWorkDir()
	if filepath.Base(base) == c.TestDirName {
		base = filepath.Dir(base)
	}
	return filepath.Join(base, c.HistoryDir, c.HistoryFile)
}

// NormalizeExt ensures an extension carries its leading dot.
func NormalizeExt(ext string) string {
	if !strings.HasPrefix(ext, ".") {
		return "." + ext
	}
	return ext
}
