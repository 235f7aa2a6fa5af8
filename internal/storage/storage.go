package storage

import (
	"mktest/internal/domain"
)

// Storage persists and loads the scaffold history (e.g. for the history
// command).
type Storage interface {
	// Append adds one record to the log, creating it if missing.
	Append(record domain.ScaffoldRecord) error
	Load() (*domain.History, error)
}
