package resolve

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/mergepick/mergepick/internal/env"
	"github.com/mergepick/mergepick/internal/log"
	"github.com/mergepick/mergepick/internal/tool"
)

// Signals are the environment-derived inputs to candidate ordering. They are
// read once so a guess is deterministic for the whole run.
type Signals struct {
	Display        bool
	DesktopSession bool
	Editor         string
}

func SignalsFromEnv() Signals {
	return Signals{
		Display:        env.DisplayPresent(),
		DesktopSession: env.HasDesktopSession(),
		Editor:         env.PreferredEditor(),
	}
}

// Candidates builds the ordered fallback list for a mode. The ordering is a
// behavioral contract: desktop sessions prefer meld first, plain displays
// push it last, and the editor preference decides whether vimdiff or emerge
// comes first in the terminal tail.
func Candidates(mode tool.Mode, sig Signals) []string {
	base := []string{"kompare"}
	if mode.IsMerge() {
		base = []string{"tortoisemerge"}
	}

	var tools []string
	if sig.Display {
		if sig.DesktopSession {
			tools = append(tools, "meld", "opendiff", "kdiff3", "tkdiff", "xxdiff")
		} else {
			tools = append(tools, "opendiff", "kdiff3", "tkdiff", "xxdiff", "meld")
		}
		tools = append(tools, base...)
		tools = append(tools, "gvimdiff", "diffuse", "ecmerge", "p4merge", "araxis", "bc3", "codecompare")
	} else {
		tools = base
	}

	if strings.Contains(sig.Editor, "vim") {
		tools = append(tools, "vimdiff", "emerge")
	} else {
		tools = append(tools, "emerge", "vimdiff")
	}

	return tools
}

// Guess returns the first available candidate. Exhaustion is fatal to the
// resolution.
func Guess(ctx context.Context, reg *tool.Registry, mode tool.Mode, sig Signals) (string, error) {
	candidates := Candidates(mode, sig)

	logger := log.From(ctx)
	logger.Infof("%s tool candidates: %s", mode, strings.Join(candidates, ", "))

	for _, name := range candidates {
		if reg.IsAvailable(name, mode) {
			return name, nil
		}
	}

	return "", errors.Errorf("no known %s tool is available", mode)
}
