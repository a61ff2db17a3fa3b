// Package prompt asks the user one question at a time.
//
// On a terminal the questions are huh forms. When input is piped (scripts,
// tests) a plain line reader is used, one answer per line.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrNoInput is returned when input ends before a question is answered.
var ErrNoInput = errors.New("no input: expected an answer")

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks a question and returns the trimmed answer.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}

// New returns a FormPrompter when in is a terminal, a LinePrompter otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return &FormPrompter{in: in, out: out}
	}
	return NewLinePrompter(in, out)
}

// LinePrompter writes "question: " and reads one line per answer.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter creates a LinePrompter.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

// Ask implements Prompter.
func (p *LinePrompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprintf(p.out, "%s: ", question); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	return strings.TrimSpace(line), nil
}

// FormPrompter asks through a single-field huh form.
type FormPrompter struct {
	in  io.Reader
	out io.Writer
}

// Ask implements Prompter.
func (p *FormPrompter) Ask(ctx context.Context, question string) (string, error) {
	var answer string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(question).
				Value(&answer),
		),
	).
		WithShowHelp(false).
		WithInput(p.in).
		WithOutput(p.out)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
