package decisionlog

import (
	"context"
	"log"
)

// StubSink prints records instead of persisting them.
type StubSink struct{}

func NewStubSink() *StubSink { return &StubSink{} }

func (s *StubSink) Write(ctx context.Context, rec Record) error {
	log.Printf("[MOCK DB] %s: %s subject=%s details=%v", rec.Collection, rec.Type, rec.SubjectID, rec.Details)
	return nil
}

func (s *StubSink) Name() string { return "stub" }

func (s *StubSink) Close() error { return nil }
