package entity

import "errors"

// Domain errors for decks and review sessions.
var (
	ErrMalformedDeck    = errors.New("malformed deck")
	ErrEmptyDeck        = errors.New("deck has no cards")
	ErrDeckNotFound     = errors.New("deck not found")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrSessionExhausted = errors.New("review session exhausted")
)
