package tool

import "context"

// FileSet names the files handed to the external tool. Base and Merged are
// empty in diff mode.
type FileSet struct {
	Local  string
	Remote string
	Base   string
	Merged string
}

// Runner spawns the external tool. The coordinator depends on this
// capability without knowing its implementation so tests can simulate exit
// codes and file effects.
type Runner interface {
	// Run executes a shell command string in dir with stdio attached and
	// returns its exit code. The error is non-nil only when the command
	// could not be started. extraEnv entries ("KEY=value") are appended to
	// the child's environment.
	Run(ctx context.Context, dir, command string, extraEnv ...string) (int, error)

	// RunTool executes an executable directly with the given arguments.
	RunTool(ctx context.Context, dir, path string, args ...string) (int, error)
}

// Invocation is the transient record of one tool run. It is created per run
// and discarded once a status has been returned.
type Invocation struct {
	Tool   string
	Path   string
	Dir    string
	Files  FileSet
	Runner Runner
}

// Procedure is a built-in diff or merge invocation for one tool, returning
// the exit status of the run.
type Procedure func(ctx context.Context, inv Invocation) int

// Descriptor is the capability record for one tool, loaded per run. Defaults
// are populated first, then the registry entry's overrides are applied on
// top.
type Descriptor struct {
	Name string
	Mode Mode

	CanDiff  bool
	CanMerge bool

	// GUIOnly tools need a graphical display to be usable at all.
	GUIOnly bool

	Diff  Procedure
	Merge Procedure

	// TranslatePath maps the tool name to the executable to look for.
	// Identity unless the registry entry overrides it.
	TranslatePath func(name string) string
}

// ExecutablePath applies the descriptor's path translation to its name.
func (d *Descriptor) ExecutablePath() string {
	return d.TranslatePath(d.Name)
}

func newDescriptor(name string, mode Mode) *Descriptor {
	fail := func(ctx context.Context, inv Invocation) int { return 1 }

	return &Descriptor{
		Name:          name,
		Mode:          mode,
		CanDiff:       true,
		CanMerge:      true,
		Diff:          fail,
		Merge:         fail,
		TranslatePath: func(name string) string { return name },
	}
}

// runTool is the common shape of the built-in procedures: spawn the resolved
// executable and surface its exit status.
func runTool(ctx context.Context, inv Invocation, args ...string) int {
	status, err := inv.Runner.RunTool(ctx, inv.Dir, inv.Path, args...)
	if err != nil && status == 0 {
		return 1
	}
	return status
}
