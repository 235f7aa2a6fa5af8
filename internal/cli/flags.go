package cli

import "mktest/internal/config"

// Flags holds command-line flags
type Flags struct {
	Dir        string
	NameFilter string
	SourceExt  string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Dir:        f.Dir,
		NameFilter: f.NameFilter,
		SourceExt:  f.SourceExt,
	}
}
