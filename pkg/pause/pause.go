// Package pause keeps the console window open until the user acknowledges.
package pause

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Mode controls whether Pause waits for input.
type Mode string

const (
	ModeAlways Mode = "always" // wait regardless of the terminal
	ModeNever  Mode = "never"  // never wait
	ModeAuto   Mode = "auto"   // wait only when stdin is a terminal
)

// DefaultMessage is printed before waiting.
const DefaultMessage = "Press Enter to close this window..."

// ParseMode parses a mode name. An empty string selects ModeAlways.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "":
		return ModeAlways, nil
	case ModeAlways, ModeNever, ModeAuto:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid pause mode %q (want always, never or auto)", s)
}

// Pauser blocks until the user acknowledges.
type Pauser interface {
	Pause() error
}

// Prompt waits for a newline on In.
type Prompt struct {
	Mode       Mode
	In         io.Reader   // defaults to os.Stdin
	Out        io.Writer   // defaults to os.Stdout
	Message    string      // defaults to DefaultMessage
	IsTerminal func() bool // used by ModeAuto; defaults to checking In
}

// Enabled reports whether Pause will wait.
func (p *Prompt) Enabled() bool {
	switch p.Mode {
	case ModeNever:
		return false
	case ModeAuto:
		if p.IsTerminal != nil {
			return p.IsTerminal()
		}
		return readerIsTerminal(p.In)
	}
	return true
}

// readerIsTerminal reports whether r is a terminal. A nil reader stands for
// os.Stdin; readers that are not files are never terminals.
func readerIsTerminal(r io.Reader) bool {
	if r == nil {
		r = os.Stdin
	}
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// Pause prints the message and reads up to the first newline. EOF counts as
// an acknowledgment.
func (p *Prompt) Pause() error {
	if !p.Enabled() {
		return nil
	}

	in, out, msg := p.In, p.Out, p.Message
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if msg == "" {
		msg = DefaultMessage
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	if _, err := fmt.Fprint(out, msg); err != nil {
		return err
	}
	_, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read acknowledgment: %w", err)
	}
	return nil
}
