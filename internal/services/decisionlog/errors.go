package decisionlog

import "errors"

var (
	ErrUnknownBackend = errors.New("unknown decision log backend")
	ErrSinkClosed     = errors.New("decision log sink closed")
)
