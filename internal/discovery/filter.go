package discovery

import (
	"path/filepath"
	"strings"

	"mktest/internal/domain"
)

// Filter filters discovered classes by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters classes by name pattern using wildcard matching.
// Supports patterns like "Audio*" or "*Processor"; a pattern without
// wildcards is a substring match.
func (f *Filter) FilterByName(classes []domain.Class, pattern string) []domain.Class {
	if pattern == "" {
		return classes
	}

	var filtered []domain.Class
	for _, class := range classes {
		if matchesPattern(class.Name, pattern) {
			filtered = append(filtered, class)
		}
	}
	return filtered
}

func matchesPattern(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.Contains(pattern, "*") && !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}

	// Fall back to substring matching of the non-wildcard parts so a
	// pattern like "*Engine*Filter*" matches anywhere in the name.
	parts := strings.Split(pattern, "*")
	hasNonEmpty := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		hasNonEmpty = true
		if !strings.Contains(name, part) {
			return false
		}
	}
	return hasNonEmpty
}
