package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// UI is how commands talk to the person at the keyboard. PromptInput and
// PromptSecret report ok=false when input was cancelled (end of input).
type UI interface {
	Notify(msg string)
	PromptInput(label string) (string, bool)
	PromptSecret(label string) (string, bool)
}

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type terminalUI struct {
	reader *bufio.Reader
	out    io.Writer
}

func newTerminalUI(reader *bufio.Reader, out io.Writer) *terminalUI {
	return &terminalUI{reader: reader, out: out}
}

func (u *terminalUI) Notify(msg string) {
	fmt.Fprintln(u.out, msg)
}

func (u *terminalUI) PromptInput(label string) (string, bool) {
	s, err := getSimpleText(u.reader, label, u.out)
	if err != nil {
		return "", false
	}
	return s, true
}

// PromptSecret reads without echo on a terminal and falls back to a plain
// line read when input is piped.
func (u *terminalUI) PromptSecret(label string) (string, bool) {
	if !isTerminal(int(os.Stdin.Fd())) {
		return u.PromptInput(label)
	}
	pw, err := getPassword(u.out)
	if err != nil {
		return "", false
	}
	s := string(pw)
	wipe(pw)
	return s, true
}
