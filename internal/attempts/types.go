package attempts

import (
	"time"

	"github.com/knightsbridge/faqsite/internal/extension"
)

// Entry is a single download attempt record.
type Entry struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Owner     string            `json:"owner,omitempty"`
	Strategy  string            `json:"strategy"`
	Outcome   extension.Outcome `json:"outcome"`
	Detail    string            `json:"detail,omitempty"`
	Bytes     int64             `json:"bytes"`
}

// Summary counts attempts per strategy and outcome.
type Summary struct {
	Total  int                                  `json:"total"`
	Counts map[string]map[extension.Outcome]int `json:"counts"`
}
