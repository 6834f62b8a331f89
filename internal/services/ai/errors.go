package ai

import "errors"

var (
	ErrUnknownBackend = errors.New("unknown text generator backend")
	ErrMissingAPIKey  = errors.New("gemini api key is not configured")
	ErrEmptyResponse  = errors.New("text generator returned no content")
)
