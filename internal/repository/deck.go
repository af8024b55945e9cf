package repository

import (
	"context"

	"github.com/eslsoft/flash/internal/entity"
)

// DeckInfo describes one available deck without loading its cards.
type DeckInfo struct {
	Name string
	Path string
}

// DeckRepository resolves and loads decks from wherever they live.
type DeckRepository interface {
	// List returns the decks available in the default location, sorted
	// by name.
	List(ctx context.Context) ([]DeckInfo, error)
	// Load resolves ref, a bare deck name or a path, and loads it. A
	// ref that resolves to nothing fails with entity.ErrDeckNotFound.
	Load(ctx context.Context, ref string) (*entity.Deck, error)
}
