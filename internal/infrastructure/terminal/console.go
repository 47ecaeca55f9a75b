// Package terminal implements the player's console: a line-based prompter
// and narrator over an input reader and an output writer.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/ersonp/survive-core/internal/domain/entities"
)

// ErrInputClosed is returned when the input ends before an answer is given.
var ErrInputClosed = errors.New("input closed")

// Console reads answers line by line and writes game text.
type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	echo bool
}

// Option configures a Console.
type Option func(*Console)

// WithEcho writes each answer back to the output. Used when the input is
// piped so transcripts show what was chosen.
func WithEcho(echo bool) Option {
	return func(c *Console) {
		c.echo = echo
	}
}

// New creates a console over in and out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsInteractive reports whether f is a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Say writes one formatted line.
func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// ChooseIndex asks for a 1-based number until one in [1, count] is entered
// and returns it 0-based.
func (c *Console) ChooseIndex(prompt string, count int) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: nothing to choose from", entities.ErrInvalidSelection)
	}

	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err != nil {
			c.Say("Please enter a valid number.")
			continue
		}
		if n < 1 || n > count {
			c.Say("Invalid choice. Please select a valid number.")
			continue
		}
		return n - 1, nil
	}
}

// ChooseStatistic lists the character's statistics and asks for one.
func (c *Console) ChooseStatistic(ch *entities.Character) (*entities.Statistic, error) {
	stats := ch.Statistics()

	c.Say("Choose a stat for %s:", ch.Name)
	for i, s := range stats {
		c.Say("%d. %s (%d)", i+1, s.Name, s.Value)
	}

	idx, err := c.ChooseIndex("Enter the number of the stat to use: ", len(stats))
	if err != nil {
		return nil, err
	}
	return stats[idx], nil
}

func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}

	line := strings.TrimSpace(c.in.Text())
	if c.echo {
		fmt.Fprintln(c.out, line)
	}
	return line, nil
}
