package tool

import "context"

// builtins is the static registry: one override per supported tool, applied
// on top of the defaults from newDescriptor. Capability flags default to
// true, so entries only state what they cannot do.
var builtins = map[string]func(*Descriptor){
	"araxis": func(d *Descriptor) {
		d.GUIOnly = true
		d.TranslatePath = func(string) string { return "compare" }
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, "-wait", "-2", inv.Files.Local, inv.Files.Remote)
		}
		d.Merge = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, "-wait", "-merge", "-3", "-a1",
				inv.Files.Base, inv.Files.Local, inv.Files.Remote, inv.Files.Merged)
		}
	},
	"bc3": func(d *Descriptor) {
		d.GUIOnly = true
		d.TranslatePath = func(string) string { return "bcompare" }
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, inv.Files.Local, inv.Files.Remote)
		}
		d.Merge = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, inv.Files.Local, inv.Files.Remote, inv.Files.Base,
				"-mergeoutput="+inv.Files.Merged)
		}
	},
	"codecompare": func(d *Descriptor) {
		d.GUIOnly = true
		d.TranslatePath = func(string) string {
			if d.Mode.IsMerge() {
				return "CodeMerge"
			}
			return "CodeCompare"
		}
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, inv.Files.Local, inv.Files.Remote)
		}
		d.Merge = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, "-MF="+inv.Files.Local, "-TF="+inv.Files.Remote,
				"-BF="+inv.Files.Base, "-RF="+inv.Files.Merged)
		}
	},
	"diffuse": func(d *Descriptor) {
		d.GUIOnly = true
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, inv.Files.Local, inv.Files.Remote)
		}
		d.Merge = func(ctx context.Context, inv Invocation) int {
			args := []string{inv.Files.Local, inv.Files.Merged, inv.Files.Remote}
			if inv.Files.Base != "" {
				args = append(args, inv.Files.Base)
			}
			return runTool(ctx, inv, args...)
		}
	},
	"ecmerge": func(d *Descriptor) {
		d.GUIOnly = true
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, "--default", "--mode=diff2", inv.Files.Local, inv.Files.Remote)
		}
		d.Merge = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, "--default", "--mode=merge3",
				inv.Files.Base, inv.Files.Local, inv.Files.Remote, "--to="+inv.Files.Merged)
		}
	},
	"emerge": func(d *Descriptor) {
		d.TranslatePath = func(string) string { return "emacs" }
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, "-f", "emerge-files-command", inv.Files.Local, inv.Files.Remote)
		}
		d.Merge = func(ctx context.Context, inv Invocation) int {
			if inv.Files.Base != "" {
				return runTool(ctx, inv, "-f", "emerge-files-with-ancestor-command",
					inv.Files.Local, inv.Files.Remote, inv.Files.Base, inv.Files.Merged)
			}
			return runTool(ctx, inv, "-f", "emerge-files-command",
				inv.Files.Local, inv.Files.Remote, inv.Files.Merged)
		}
	},
	"gvimdiff": func(d *Descriptor) {
		d.GUIOnly = true
		d.TranslatePath = func(string) string { return "gvim" }
		d.Diff = vimDiff
		d.Merge = vimMerge
	},
	"kdiff3": func(d *Descriptor) {
		d.GUIOnly = true
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv,
				"--L1", inv.Files.Local+" (A)", "--L2", inv.Files.Remote+" (B)",
				inv.Files.Local, inv.Files.Remote)
		}
		d.Merge = func(ctx context.Context, inv Invocation) int {
			if inv.Files.Base != "" {
				return runTool(ctx, inv, "--auto",
					"--L1", inv.Files.Merged+" (Base)",
					"--L2", inv.Files.Merged+" (Local)",
					"--L3", inv.Files.Merged+" (Remote)",
					"-o", inv.Files.Merged,
					inv.Files.Base, inv.Files.Local, inv.Files.Remote)
			}
			return runTool(ctx, inv, "--auto",
				"--L1", inv.Files.Merged+" (Local)",
				"--L2", inv.Files.Merged+" (Remote)",
				"-o", inv.Files.Merged,
				inv.Files.Local, inv.Files.Remote)
		}
	},
	"kompare": func(d *Descriptor) {
		d.GUIOnly = true
		d.CanMerge = false
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, inv.Files.Local, inv.Files.Remote)
		}
	},
	"meld": func(d *Descriptor) {
		d.GUIOnly = true
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, inv.Files.Local, inv.Files.Remote)
		}
		d.Merge = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, "--output", inv.Files.Merged,
				inv.Files.Local, inv.Files.Base, inv.Files.Remote)
		}
	},
	"opendiff": func(d *Descriptor) {
		d.GUIOnly = true
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, inv.Files.Local, inv.Files.Remote)
		}
		d.Merge = func(ctx context.Context, inv Invocation) int {
			if inv.Files.Base != "" {
				return runTool(ctx, inv, inv.Files.Local, inv.Files.Remote,
					"-ancestor", inv.Files.Base, "-merge", inv.Files.Merged)
			}
			return runTool(ctx, inv, inv.Files.Local, inv.Files.Remote,
				"-merge", inv.Files.Merged)
		}
	},
	"p4merge": func(d *Descriptor) {
		d.GUIOnly = true
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, inv.Files.Local, inv.Files.Remote)
		}
		d.Merge = func(ctx context.Context, inv Invocation) int {
			base := inv.Files.Base
			if base == "" {
				base = inv.Files.Local
			}
			return runTool(ctx, inv, base, inv.Files.Local, inv.Files.Remote, inv.Files.Merged)
		}
	},
	"tkdiff": func(d *Descriptor) {
		d.GUIOnly = true
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, inv.Files.Local, inv.Files.Remote)
		}
		d.Merge = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, "-a", inv.Files.Base, "-o", inv.Files.Merged,
				inv.Files.Local, inv.Files.Remote)
		}
	},
	"tortoisemerge": func(d *Descriptor) {
		d.GUIOnly = true
		d.CanDiff = false
		d.Merge = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv,
				"-base:"+inv.Files.Base, "-mine:"+inv.Files.Local,
				"-theirs:"+inv.Files.Remote, "-merged:"+inv.Files.Merged)
		}
	},
	"vimdiff": func(d *Descriptor) {
		d.TranslatePath = func(string) string { return "vim" }
		d.Diff = vimDiff
		d.Merge = vimMerge
	},
	"xxdiff": func(d *Descriptor) {
		d.GUIOnly = true
		d.Diff = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, inv.Files.Local, inv.Files.Remote)
		}
		d.Merge = func(ctx context.Context, inv Invocation) int {
			return runTool(ctx, inv, "-X", "--show-merged-pane",
				"--merged-file", inv.Files.Merged,
				inv.Files.Local, inv.Files.Base, inv.Files.Remote)
		}
	},
}

// vim and gvim share invocation shapes, only the executable differs.
func vimDiff(ctx context.Context, inv Invocation) int {
	return runTool(ctx, inv, "-R", "-f", "-d", "-c", "wincmd l",
		inv.Files.Local, inv.Files.Remote)
}

func vimMerge(ctx context.Context, inv Invocation) int {
	if inv.Files.Base != "" {
		return runTool(ctx, inv, "-f", "-d", "-c", "wincmd J",
			inv.Files.Merged, inv.Files.Local, inv.Files.Base, inv.Files.Remote)
	}
	return runTool(ctx, inv, "-f", "-d", "-c", "wincmd J",
		inv.Files.Merged, inv.Files.Local, inv.Files.Remote)
}
