package tool

// Mode says whether the run is a two-way diff or a three-way merge. It is
// fixed once at startup from the invoked subcommand and threaded explicitly
// through every step of the run.
type Mode int

const (
	ModeDiff Mode = iota
	ModeMerge
)

func (m Mode) IsDiff() bool {
	return m == ModeDiff
}

func (m Mode) IsMerge() bool {
	return m == ModeMerge
}

func (m Mode) String() string {
	if m.IsMerge() {
		return "merge"
	}
	return "diff"
}

// Namespace is the config key namespace for the mode: "mergetool" keys
// configure merge runs, "difftool" keys configure diff runs.
func (m Mode) Namespace() string {
	if m.IsMerge() {
		return "mergetool"
	}
	return "difftool"
}
