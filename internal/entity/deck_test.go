package entity

import (
	"errors"
	"testing"
)

func intp(v int) *int { return &v }

func entry(question, answer string, pri *int) CardInput {
	return CardInput{Subject: "subj", Question: question, Answer: answer, Priority: pri}
}

func TestLoadDeck_validation(t *testing.T) {
	cases := []struct {
		name    string
		entries []CardInput
		wantErr error
	}{
		{"valid", []CardInput{entry("q", "a", intp(1))}, nil},
		{"missing question", []CardInput{entry("", "a", intp(1))}, ErrMalformedDeck},
		{"blank question", []CardInput{entry("   ", "a", intp(1))}, ErrMalformedDeck},
		{"missing answer", []CardInput{entry("q", "", intp(1))}, ErrMalformedDeck},
		{"second entry bad", []CardInput{entry("q", "a", nil), entry("q2", "", nil)}, ErrMalformedDeck},
		{"empty deck ok", nil, nil},
	}
	for _, c := range cases {
		_, err := LoadDeck("d", c.entries)
		if c.wantErr == nil {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", c.name, err)
			}
			continue
		}
		if !errors.Is(err, c.wantErr) {
			t.Fatalf("%s: got %v want %v", c.name, err, c.wantErr)
		}
	}
}

func TestLoadDeck_priorityDefaults(t *testing.T) {
	cases := []struct {
		name string
		in   *int
		want int
	}{
		{"absent defaults to lowest", nil, PriorityLowest},
		{"kept when in range", intp(2), 2},
		{"below range coerced", intp(0), PriorityLowest},
		{"above range coerced", intp(9), PriorityLowest},
	}
	for _, c := range cases {
		deck, err := LoadDeck("d", []CardInput{entry("q", "a", c.in)})
		if err != nil {
			t.Fatal(err)
		}
		if got := deck.Cards()[0].Priority; got != c.want {
			t.Fatalf("%s: got priority %d want %d", c.name, got, c.want)
		}
	}
}

func TestDeck_preservesSourceOrder(t *testing.T) {
	deck, err := LoadDeck("d", []CardInput{
		entry("q1", "a", intp(3)),
		entry("q2", "a", intp(1)),
		entry("q3", "a", intp(2)),
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"q1", "q2", "q3"}
	for i, card := range deck.Cards() {
		if card.Question != want[i] {
			t.Fatalf("card %d: got %q want %q", i, card.Question, want[i])
		}
	}
}

func TestDeck_priorityTiers(t *testing.T) {
	deck, err := LoadDeck("d", []CardInput{
		entry("q1", "a", intp(3)),
		entry("q2", "a", intp(1)),
		entry("q3", "a", intp(3)),
	})
	if err != nil {
		t.Fatal(err)
	}
	tiers := deck.PriorityTiers()
	if len(tiers) != 2 || tiers[0] != 1 || tiers[1] != 3 {
		t.Fatalf("got tiers %v want [1 3]", tiers)
	}
	max, err := deck.MaxPriority()
	if err != nil {
		t.Fatal(err)
	}
	if max != 3 {
		t.Fatalf("got max %d want 3", max)
	}
}

func TestDeck_empty(t *testing.T) {
	deck, err := LoadDeck("d", nil)
	if err != nil {
		t.Fatal(err)
	}
	if deck.Size() != 0 {
		t.Fatalf("got size %d want 0", deck.Size())
	}
	if tiers := deck.PriorityTiers(); len(tiers) != 0 {
		t.Fatalf("got tiers %v want none", tiers)
	}
	if _, err := deck.MaxPriority(); !errors.Is(err, ErrEmptyDeck) {
		t.Fatalf("got %v want ErrEmptyDeck", err)
	}
}
