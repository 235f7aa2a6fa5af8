package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"mktest/internal/config"
	"mktest/internal/domain"
)

// JSONStorage stores the scaffold history in a JSON file under the
// configured history path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's
// history path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// Append adds a record to the scaffold log. A missing log is created; a
// corrupt one is an error rather than silently overwritten.
func (s *JSONStorage) Append(record domain.ScaffoldRecord) error {
	history, err := s.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		history = &domain.History{}
	}

	history.Records = append(history.Records, record)
	history.Meta = buildMeta(history.Records)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	path := s.cfg.GetHistoryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Load reads the scaffold history from the configured path. A missing
// log surfaces as an os.IsNotExist error for the caller to handle.
func (s *JSONStorage) Load() (*domain.History, error) {
	data, err := os.ReadFile(s.cfg.GetHistoryPath())
	if err != nil {
		return nil, err
	}
	var history domain.History
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	return &history, nil
}

func buildMeta(records []domain.ScaffoldRecord) domain.HistoryMeta {
	injected := 0
	missing := 0
	for _, r := range records {
		if r.Injected {
			injected++
		} else {
			missing++
		}
	}
	return domain.HistoryMeta{
		TotalScaffolds: len(records),
		Injected:       injected,
		MissingSources: missing,
		UpdatedAt:      time.Now().Format(time.RFC3339),
	}
}
