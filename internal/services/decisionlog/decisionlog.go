// Package decisionlog records analyst decisions to a document-logging sink.
//
// Writes are best effort: a failing sink is logged locally and never
// surfaces to the caller.
package decisionlog

import (
	"context"
	"time"
)

// Record is one analyst decision or generated document.
type Record struct {
	Collection string            `json:"collection"`
	Type       string            `json:"type"`
	SubjectID  string            `json:"subject_id,omitempty"`
	AnalystID  string            `json:"analyst_id,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// Sink persists records.
type Sink interface {
	Write(ctx context.Context, rec Record) error
	Name() string
	Close() error
}
