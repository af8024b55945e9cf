package usecase

import (
	"errors"
	"io"
	"testing"

	"github.com/eslsoft/flash/internal/entity"
)

type fakePresenter struct {
	keys     []byte
	events   []string
	progress []Progress
	showErr  error
}

func (f *fakePresenter) ShowQuestion(p Progress, card entity.Card) error {
	if f.showErr != nil {
		return f.showErr
	}
	f.events = append(f.events, "Q:"+card.Question)
	f.progress = append(f.progress, p)
	return nil
}

func (f *fakePresenter) ShowAnswer(card entity.Card) error {
	f.events = append(f.events, "A:"+card.Question)
	return nil
}

func (f *fakePresenter) WaitKey() (byte, error) {
	if len(f.keys) == 0 {
		return 0, io.ErrUnexpectedEOF
	}
	key := f.keys[0]
	f.keys = f.keys[1:]
	return key, nil
}

func reviewDeck(t *testing.T) *entity.Deck {
	t.Helper()
	return mustDeck(t, input("Q1", 1), input("Q2", 2))
}

func TestReview_runToExhaustion(t *testing.T) {
	session := NewSession(reviewDeck(t), FilterConfig{})
	presenter := &fakePresenter{keys: []byte{' ', ' ', ' ', ' '}}

	if err := NewReviewUsecase(presenter).Run(session); err != nil {
		t.Fatal(err)
	}
	want := []string{"Q:Q1", "A:Q1", "Q:Q2", "A:Q2"}
	if !equalStrings(presenter.events, want) {
		t.Fatalf("got events %v want %v", presenter.events, want)
	}
	if session.HasNext() {
		t.Fatal("session should be exhausted after the run")
	}
}

func TestReview_progressHeader(t *testing.T) {
	session := NewSession(reviewDeck(t), FilterConfig{})
	presenter := &fakePresenter{keys: []byte{' ', ' ', ' ', ' '}}

	if err := NewReviewUsecase(presenter).Run(session); err != nil {
		t.Fatal(err)
	}
	if len(presenter.progress) != 2 {
		t.Fatalf("got %d progress headers want 2", len(presenter.progress))
	}
	first := presenter.progress[0]
	if first.Deck != "test" || first.DeckSize != 2 || first.Total != 2 || first.Remaining != 2 {
		t.Fatalf("bad first header: %+v", first)
	}
	if second := presenter.progress[1]; second.Remaining != 1 {
		t.Fatalf("bad second header: %+v", second)
	}
}

func TestReview_quitKeys(t *testing.T) {
	cases := []struct {
		name string
		keys []byte
		want []string
	}{
		{"quit at question", []byte{'q'}, []string{"Q:Q1"}},
		{"quit at answer", []byte{' ', 'Q'}, []string{"Q:Q1", "A:Q1"}},
		{"ctrl-c", []byte{0x03}, []string{"Q:Q1"}},
		{"ctrl-d at answer", []byte{' ', 0x04}, []string{"Q:Q1", "A:Q1"}},
		{"ctrl-z on second card", []byte{' ', ' ', 0x1a}, []string{"Q:Q1", "A:Q1", "Q:Q2"}},
	}
	for _, c := range cases {
		session := NewSession(reviewDeck(t), FilterConfig{})
		presenter := &fakePresenter{keys: c.keys}
		if err := NewReviewUsecase(presenter).Run(session); err != nil {
			t.Fatalf("%s: quit must not be an error, got %v", c.name, err)
		}
		if !equalStrings(presenter.events, c.want) {
			t.Fatalf("%s: got events %v want %v", c.name, presenter.events, c.want)
		}
	}
}

func TestReview_emptySessionIsNoop(t *testing.T) {
	session := NewSession(mustDeck(t), FilterConfig{})
	presenter := &fakePresenter{}
	if err := NewReviewUsecase(presenter).Run(session); err != nil {
		t.Fatal(err)
	}
	if len(presenter.events) != 0 {
		t.Fatalf("got events %v want none", presenter.events)
	}
}

func TestReview_presenterErrorsPropagate(t *testing.T) {
	boom := errors.New("render failed")
	session := NewSession(reviewDeck(t), FilterConfig{})
	if err := NewReviewUsecase(&fakePresenter{showErr: boom}).Run(session); !errors.Is(err, boom) {
		t.Fatalf("got %v want %v", err, boom)
	}

	// A failed keypress read also aborts the run.
	session = NewSession(reviewDeck(t), FilterConfig{})
	err := NewReviewUsecase(&fakePresenter{}).Run(session)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("got %v want ErrUnexpectedEOF", err)
	}
}
