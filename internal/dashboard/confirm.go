package dashboard

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers a yes/no question before a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Always answers yes without asking.
var Always Confirmer = ConfirmFunc(func(string) bool { return true })

// Never answers no without asking.
var Never Confirmer = ConfirmFunc(func(string) bool { return false })

// PromptConfirmer asks on Out and reads a y/N answer from In.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm returns true only for an answer of "y" or "yes". End of input is a no.
func (p PromptConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(p.Out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
