package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/eslsoft/flash/internal/entity"
	"github.com/eslsoft/flash/internal/usecase"
)

const (
	banner = "Flash Cards for the Terminal"
	width  = 80
)

// Presenter renders cards with ANSI colors and reads one raw keypress
// per prompt. It implements usecase.Presenter.
type Presenter struct {
	out io.Writer
	in  *os.File

	title    *color.Color
	label    *color.Color
	question *color.Color
	answer   *color.Color
	rule     *color.Color
}

// NewPresenter builds a presenter on stdout/stdin.
func NewPresenter() *Presenter {
	return &Presenter{
		out:      os.Stdout,
		in:       os.Stdin,
		title:    color.New(color.Bold, color.ReverseVideo),
		label:    color.New(color.Bold),
		question: color.New(color.Bold, color.FgYellow),
		answer:   color.New(color.Bold, color.FgGreen),
		rule:     color.New(color.ReverseVideo),
	}
}

// ShowQuestion clears the screen and renders the run header followed by
// the card's question.
func (p *Presenter) ShowQuestion(progress usecase.Progress, card entity.Card) error {
	p.clear()
	pad := (width - len(banner)) / 2
	fmt.Fprintln(p.out, p.title.Sprintf("%*s%s%*s", pad, "", banner, width-pad-len(banner), ""))
	fmt.Fprintln(p.out, p.label.Sprint("Deck name: ")+progress.Deck)
	fmt.Fprintf(p.out, "%s%d\n", p.label.Sprint("Cards in deck: "), progress.DeckSize)
	fmt.Fprintf(p.out, "%s%d\n", p.label.Sprint("Cards remaining in run: "), progress.Remaining)
	fmt.Fprintln(p.out, p.label.Sprint("Question category: ")+card.Subject)
	fmt.Fprintf(p.out, "%s%d\n", p.label.Sprint("Question priority: "), card.Priority)
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.question.Sprint("Question:"))
	fmt.Fprintln(p.out, card.Question)
	return nil
}

// ShowAnswer renders the card's answer below the question.
func (p *Presenter) ShowAnswer(card entity.Card) error {
	fmt.Fprintln(p.out, p.answer.Sprint("Answer:"))
	fmt.Fprintln(p.out, card.Answer)
	fmt.Fprintln(p.out, p.rule.Sprint(strings.Repeat("=", width)))
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.label.Sprint("Any key for the next card, q to quit."))
	return nil
}

// WaitKey reads a single keypress in raw mode, restoring the terminal
// state before returning.
func (p *Presenter) WaitKey() (byte, error) {
	fd := int(p.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("enter raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, state) }()

	buf := make([]byte, 1)
	if _, err := p.in.Read(buf); err != nil {
		return 0, fmt.Errorf("read keypress: %w", err)
	}
	return buf[0], nil
}

func (p *Presenter) clear() {
	fmt.Fprint(p.out, "\x1b[2J\x1b[H")
}
