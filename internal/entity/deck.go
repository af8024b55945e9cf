package entity

import (
	"fmt"
	"sort"
	"strings"
)

// Deck is an ordered collection of cards loaded from a single source.
// Source order is preserved and a deck is never written back.
type Deck struct {
	name  string
	cards []Card
	tiers []int
}

// LoadDeck validates parsed deck entries and builds a Deck. An entry
// without a question or an answer fails with ErrMalformedDeck. An absent
// priority defaults to the lowest tier; values outside the declared
// range are coerced to the lowest tier rather than rejected.
func LoadDeck(name string, entries []CardInput) (*Deck, error) {
	cards := make([]Card, 0, len(entries))
	for i, in := range entries {
		if strings.TrimSpace(in.Question) == "" {
			return nil, fmt.Errorf("%w: entry %d has no question", ErrMalformedDeck, i)
		}
		if strings.TrimSpace(in.Answer) == "" {
			return nil, fmt.Errorf("%w: entry %d has no answer", ErrMalformedDeck, i)
		}
		pri := PriorityLowest
		if in.Priority != nil {
			pri = *in.Priority
			if pri < PriorityHighest || pri > PriorityLowest {
				pri = PriorityLowest
			}
		}
		cards = append(cards, Card{
			Subject:  in.Subject,
			Question: in.Question,
			Answer:   in.Answer,
			Priority: pri,
		})
	}
	return &Deck{name: name, cards: cards, tiers: distinctTiers(cards)}, nil
}

func distinctTiers(cards []Card) []int {
	seen := make(map[int]struct{}, PriorityLowest)
	var tiers []int
	for _, c := range cards {
		if _, ok := seen[c.Priority]; ok {
			continue
		}
		seen[c.Priority] = struct{}{}
		tiers = append(tiers, c.Priority)
	}
	sort.Ints(tiers)
	return tiers
}

// Name returns the deck's display name.
func (d *Deck) Name() string { return d.name }

// Size returns the number of cards loaded.
func (d *Deck) Size() int { return len(d.cards) }

// Cards returns the cards in source order. The slice is shared; callers
// must not modify it.
func (d *Deck) Cards() []Card { return d.cards }

// PriorityTiers returns the distinct priorities present, ascending.
func (d *Deck) PriorityTiers() []int { return d.tiers }

// MaxPriority returns the deepest (lowest-importance) tier present.
// An empty deck fails with ErrEmptyDeck.
func (d *Deck) MaxPriority() (int, error) {
	if len(d.tiers) == 0 {
		return 0, ErrEmptyDeck
	}
	return d.tiers[len(d.tiers)-1], nil
}
