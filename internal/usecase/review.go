package usecase

import (
	"bytes"

	"github.com/eslsoft/flash/internal/entity"
)

// Keys that end the run at any wait: q, Q, Ctrl-C, Ctrl-D, Ctrl-Z.
var quitKeys = []byte{'q', 'Q', 0x03, 0x04, 0x1a}

// Progress describes the state of a run for the presenter's header.
type Progress struct {
	Deck      string
	DeckSize  int
	Remaining int
	Total     int
}

// Presenter renders cards and collects single keypresses. The review
// loop never touches the terminal directly.
type Presenter interface {
	ShowQuestion(p Progress, card entity.Card) error
	ShowAnswer(card entity.Card) error
	WaitKey() (byte, error)
}

// ReviewUsecase drives a session against a presenter.
type ReviewUsecase interface {
	Run(session *Session) error
}

// NewReviewUsecase wires a presenter into the review loop.
func NewReviewUsecase(presenter Presenter) ReviewUsecase {
	return &reviewUsecase{presenter: presenter}
}

type reviewUsecase struct {
	presenter Presenter
}

// Run shows each card's question, waits for a keypress, reveals the
// answer and waits again before advancing. It returns nil both on
// exhaustion and on a user quit; quitting is not an error.
func (u *reviewUsecase) Run(session *Session) error {
	for session.HasNext() {
		card, err := session.Next()
		if err != nil {
			return err
		}
		progress := Progress{
			Deck:      session.DeckName(),
			DeckSize:  session.DeckSize(),
			Remaining: session.Remaining() + 1,
			Total:     session.Total(),
		}
		if err := u.presenter.ShowQuestion(progress, card); err != nil {
			return err
		}
		key, err := u.presenter.WaitKey()
		if err != nil {
			return err
		}
		if isQuitKey(key) {
			return nil
		}
		if err := u.presenter.ShowAnswer(card); err != nil {
			return err
		}
		key, err = u.presenter.WaitKey()
		if err != nil {
			return err
		}
		if isQuitKey(key) {
			return nil
		}
	}
	return nil
}

func isQuitKey(key byte) bool {
	return bytes.IndexByte(quitKeys, key) >= 0
}
