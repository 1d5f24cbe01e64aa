package invoke

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mergepick/mergepick/internal/env"
	"github.com/mergepick/mergepick/internal/interactivity"
	"github.com/mergepick/mergepick/internal/utils"
)

// Prompter asks the operator a single yes/no question. A closed input stream
// is an error, and the caller treats it as a "no".
type Prompter interface {
	Confirm(message string) (bool, error)
}

// NewPrompter returns the styled confirm form on interactive terminals and a
// plain line reader otherwise. CI jobs get the line reader even when they
// fake a terminal, so an unanswerable form cannot hang the job.
func NewPrompter() Prompter {
	if utils.IsInteractive() && !env.IsCI() {
		return interactivity.ConfirmPrompt{}
	}
	return LinePrompter{In: os.Stdin, Out: os.Stderr}
}

// LinePrompter reads one y/n line per question.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

func (p LinePrompter) Confirm(message string) (bool, error) {
	fmt.Fprintf(p.Out, "%s [y/n]? ", message)

	scanner := bufio.NewScanner(p.In)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, err
		}
		return false, io.EOF
	}

	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return strings.HasPrefix(answer, "y"), nil
}
