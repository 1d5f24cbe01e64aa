package tool

import (
	"fmt"
	"iter"
	"os/exec"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/mergepick/mergepick/internal/env"
)

// ErrUnregistered is returned by Setup for names with no registry entry. It
// is a distinguished outcome, not a hard failure: callers must still attempt
// configured-command invocation for such names.
var ErrUnregistered = errors.New("unknown tool")

// ModeMismatchError reports a registered tool that cannot operate in the
// active mode. This is a configuration error, never a crash.
type ModeMismatchError struct {
	Tool string
	Mode Mode
}

func (e *ModeMismatchError) Error() string {
	return fmt.Sprintf("tool %s can only be used as a %s tool", e.Tool, otherMode(e.Mode))
}

func otherMode(m Mode) Mode {
	if m.IsMerge() {
		return ModeDiff
	}
	return ModeMerge
}

// Loader retrieves registry entries by name. It is an external collaborator:
// the built-in table is the default, but any source of per-tool definitions
// satisfies it.
type Loader interface {
	// Load returns the override applied on top of a default descriptor, and
	// whether an entry exists for the name.
	Load(name string) (func(*Descriptor), bool)

	// Names enumerates every entry in a stable order.
	Names() []string
}

// Registry binds a Loader to the host probes needed to answer availability
// questions. The zero probes are the real host: PATH lookup and the DISPLAY
// signal.
type Registry struct {
	Loader   Loader
	LookPath func(file string) (string, error)
	Display  func() bool
}

func NewRegistry() *Registry {
	return &Registry{
		Loader:   Builtin(),
		LookPath: exec.LookPath,
		Display:  env.DisplayPresent,
	}
}

// Setup loads the entry for name, applies its overrides over the defaults
// and validates mode compatibility. The three outcomes callers must branch
// on: a descriptor, ErrUnregistered, or a ModeMismatchError.
func (r *Registry) Setup(name string, mode Mode) (*Descriptor, error) {
	overlay, ok := r.Loader.Load(name)
	if !ok {
		return nil, errors.Wrap(ErrUnregistered, name)
	}

	d := newDescriptor(name, mode)
	overlay(d)

	if mode.IsMerge() && !d.CanMerge {
		return nil, &ModeMismatchError{Tool: name, Mode: mode}
	}
	if mode.IsDiff() && !d.CanDiff {
		return nil, &ModeMismatchError{Tool: name, Mode: mode}
	}

	return d, nil
}

// IsAvailable reports whether the tool's executable is reachable on this
// host. The name is first translated through the descriptor's path
// translation; unregistered names translate to themselves. Pure query.
func (r *Registry) IsAvailable(name string, mode Mode) bool {
	path := name
	guiOnly := false

	if overlay, ok := r.Loader.Load(name); ok {
		d := newDescriptor(name, mode)
		overlay(d)
		path = d.ExecutablePath()
		guiOnly = d.GUIOnly
	}

	if guiOnly && !r.Display() {
		return false
	}

	_, err := r.LookPath(path)
	return err == nil
}

// Filter lazily yields prefix+name lines for every registry entry whose
// usability matches the predicate sense: usable=true selects tools that are
// both mode-compatible and available, usable=false the mode-compatible ones
// that are not available. Entries that fail lookup are silently excluded.
func (r *Registry) Filter(mode Mode, usable bool, prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range r.Loader.Names() {
			if _, err := r.Setup(name, mode); err != nil {
				continue
			}
			if r.IsAvailable(name, mode) != usable {
				continue
			}
			if !yield(prefix + name) {
				return
			}
		}
	}
}

// AnyGUIOnly reports whether any of the given names is a GUI-only tool, for
// the trailing note on the tool listing.
func (r *Registry) AnyGUIOnly(names []string, mode Mode) bool {
	return lo.SomeBy(names, func(name string) bool {
		d, err := r.Setup(name, mode)
		return err == nil && d.GUIOnly
	})
}

// builtinLoader serves the static table in builtin.go.
type builtinLoader struct {
	entries map[string]func(*Descriptor)
}

func Builtin() Loader {
	return &builtinLoader{entries: builtins}
}

func (l *builtinLoader) Load(name string) (func(*Descriptor), bool) {
	overlay, ok := l.entries[name]
	return overlay, ok
}

func (l *builtinLoader) Names() []string {
	names := lo.Keys(l.entries)
	sort.Strings(names)
	return names
}
