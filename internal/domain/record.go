package domain

// ScaffoldRecord describes one generated test skeleton.
type ScaffoldRecord struct {
	Class      string `json:"class"`
	TestFile   string `json:"test_file"`
	SourceFile string `json:"source_file,omitempty"`
	Injected   bool   `json:"include_injected"`
	Timestamp  string `json:"timestamp"`
}

// HistoryMeta contains aggregate information about all scaffolds
// recorded so far.
type HistoryMeta struct {
	TotalScaffolds int    `json:"total_scaffolds"`
	Injected       int    `json:"injected"`
	MissingSources int    `json:"missing_sources"`
	UpdatedAt      string `json:"updated_at"`
}

// History is the complete structure persisted to the scaffold log.
type History struct {
	Meta    HistoryMeta      `json:"meta"`
	Records []ScaffoldRecord `json:"records"`
}
