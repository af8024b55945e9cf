package usecase

import (
	"math/rand"
	"sort"

	"github.com/samber/lo"

	"github.com/eslsoft/flash/internal/entity"
)

// FilterConfig selects which cards participate in a review session.
type FilterConfig struct {
	// OnlyPriority restricts the session to a single tier. It takes
	// precedence over ExcludeLowestPriority; selecting the lowest tier
	// explicitly yields that tier even when exclusion is also requested.
	OnlyPriority *int
	// ExcludeLowestPriority drops the deepest tier present in the deck,
	// so mastered cards stop appearing.
	ExcludeLowestPriority bool
}

// FilterCards applies cfg to the deck's cards, preserving source order.
// It is a pure function of its inputs.
func FilterCards(deck *entity.Deck, cfg FilterConfig) []entity.Card {
	cards := deck.Cards()
	if cfg.OnlyPriority != nil {
		only := *cfg.OnlyPriority
		return lo.Filter(cards, func(c entity.Card, _ int) bool { return c.Priority == only })
	}
	if cfg.ExcludeLowestPriority {
		max, err := deck.MaxPriority()
		if err != nil {
			return nil
		}
		return lo.Filter(cards, func(c entity.Card, _ int) bool { return c.Priority < max })
	}
	return append([]entity.Card(nil), cards...)
}

// OrderCards groups cards by priority and concatenates the groups in
// ascending priority order. Within a group the incoming order is kept.
func OrderCards(cards []entity.Card) []entity.Card {
	ordered := append([]entity.Card(nil), cards...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Priority < ordered[j].Priority })
	return ordered
}

// Option customises session construction.
type Option func(*Session)

// WithShuffle randomises the order inside each priority group using the
// given seed. Groups keep their ascending-priority order, so every
// tier-k card is still served before any tier-k+1 card.
func WithShuffle(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// Session serves the filtered, ordered cards of one review run. It
// starts Active and becomes Exhausted on the Next call that serves the
// last card; a new session must be built to replay.
type Session struct {
	deckName string
	deckSize int
	cards    []entity.Card
	cursor   int
	rng      *rand.Rand
}

// NewSession builds a session over deck restricted by cfg. A filter that
// matches nothing produces a session that is exhausted from the start.
func NewSession(deck *entity.Deck, cfg FilterConfig, opts ...Option) *Session {
	s := &Session{deckName: deck.Name(), deckSize: deck.Size()}
	for _, opt := range opts {
		opt(s)
	}
	s.cards = OrderCards(FilterCards(deck, cfg))
	if s.rng != nil {
		shuffleWithinTiers(s.cards, s.rng)
	}
	return s
}

func shuffleWithinTiers(cards []entity.Card, rng *rand.Rand) {
	start := 0
	for start < len(cards) {
		end := start + 1
		for end < len(cards) && cards[end].Priority == cards[start].Priority {
			end++
		}
		group := cards[start:end]
		rng.Shuffle(len(group), func(i, j int) { group[i], group[j] = group[j], group[i] })
		start = end
	}
}

// DeckName returns the name of the deck the session was built from.
func (s *Session) DeckName() string { return s.deckName }

// DeckSize returns the card count of the source deck, before filtering.
func (s *Session) DeckSize() int { return s.deckSize }

// HasNext reports whether an unserved card remains.
func (s *Session) HasNext() bool { return s.cursor < len(s.cards) }

// Next serves the next card and advances the cursor, the session's only
// state transition. Calling Next on an exhausted session is a caller bug
// and fails with ErrSessionExhausted.
func (s *Session) Next() (entity.Card, error) {
	if !s.HasNext() {
		return entity.Card{}, entity.ErrSessionExhausted
	}
	card := s.cards[s.cursor]
	s.cursor++
	return card, nil
}

// Remaining returns the number of unserved cards.
func (s *Session) Remaining() int { return len(s.cards) - s.cursor }

// Total returns the number of cards selected for this session.
func (s *Session) Total() int { return len(s.cards) }
