// Package ai fronts the generative-text backend used for analyst chat,
// entity analysis and document drafting.
//
// Callers go through Service.Complete, which never fails: a backend error is
// logged and replaced with FallbackReply.
package ai

import "context"

// FallbackReply is returned to the caller whenever the backend fails.
const FallbackReply = "AI analysis is temporarily unavailable. The risk indicators on record still apply; review the transaction logs manually."

// TextGenerator turns a prompt into free text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}
