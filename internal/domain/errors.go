package domain

import "errors"

var (
	// ErrNoTextFound means no message part carried usable text.
	ErrNoTextFound = errors.New("no text parts found in the message")
	// ErrNoURLFound means the usable text had no http(s) URL in it.
	ErrNoURLFound = errors.New("no valid blog URL found in the message")
	// ErrFetch marks failures to download a blog page.
	ErrFetch = errors.New("fetch failed")
	// ErrGeneration marks a provider call that failed or returned no text.
	ErrGeneration = errors.New("generation failed")
	// ErrNoProviderAvailable means no text provider was configured.
	ErrNoProviderAvailable = errors.New("no AI client available for content generation")
	// ErrInvalidMessage marks an inbound message that does not match the schema.
	ErrInvalidMessage = errors.New("invalid message")
)
