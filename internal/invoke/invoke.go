package invoke

import (
	"context"
	"os"

	"github.com/pkg/errors"

	"github.com/mergepick/mergepick/internal/resolve"
	"github.com/mergepick/mergepick/internal/tool"
	"github.com/mergepick/mergepick/internal/utils"
)

// Deps are the external collaborators an invocation needs. One invocation
// runs at a time; callers must not target the same merged file concurrently,
// since the backup/compare sequence below is not atomic.
type Deps struct {
	Runner   tool.Runner
	Prompter Prompter

	// Dir is the working-directory hint handed to the child process.
	Dir string

	// KeepBackup leaves the backup snapshot behind after a successful
	// merge. Default true; mergetool.keepBackup=false clears it.
	KeepBackup bool
}

// BackupPath is the well-known snapshot location for a merge target.
func BackupPath(merged string) string {
	return merged + ".backup"
}

// RunMerge invokes the resolved merge tool and returns the merge status.
// With a configured command and an untrusted exit code, success is decided
// by the modification-time heuristic against the backup snapshot, falling
// back to asking the operator once.
func RunMerge(ctx context.Context, res *resolve.Resolution, files tool.FileSet, deps Deps) (int, error) {
	if res.Cmd == "" {
		inv := tool.Invocation{
			Tool:   res.Tool,
			Path:   res.Path,
			Dir:    deps.Dir,
			Files:  files,
			Runner: deps.Runner,
		}
		return res.Descriptor.Merge(ctx, inv), nil
	}

	backup := BackupPath(files.Merged)

	if !res.TrustExitCode {
		// Snapshot the merge target so its mtime can be compared after the
		// tool exits.
		if err := utils.CopyFile(files.Merged, backup); err != nil {
			return 1, errors.Wrap(err, "creating backup of merge target")
		}
	}

	status, err := deps.Runner.Run(ctx, deps.Dir, res.Cmd, fileEnv(files)...)
	if err != nil {
		return status, errors.Wrapf(err, "running %s", res.Tool)
	}

	if res.TrustExitCode {
		return status, nil
	}

	merged, err := checkUnchanged(files.Merged, backup, deps.Prompter)
	if err != nil {
		return 1, err
	}

	status = 1
	if merged {
		status = 0
	}

	if status == 0 && !deps.KeepBackup {
		_ = os.Remove(backup)
	}

	return status, nil
}

// RunDiff invokes the resolved diff tool. The exit code passes through
// verbatim; there is no unchanged-check in diff mode.
func RunDiff(ctx context.Context, res *resolve.Resolution, files tool.FileSet, deps Deps) (int, error) {
	if res.Cmd != "" {
		status, err := deps.Runner.Run(ctx, deps.Dir, res.Cmd, fileEnv(files)...)
		if err != nil {
			return status, errors.Wrapf(err, "running %s", res.Tool)
		}
		return status, nil
	}

	inv := tool.Invocation{
		Tool:   res.Tool,
		Path:   res.Path,
		Dir:    deps.Dir,
		Files:  files,
		Runner: deps.Runner,
	}
	return res.Descriptor.Diff(ctx, inv), nil
}

// checkUnchanged decides whether an untrusted merge succeeded: a merge
// target newer than its snapshot counts as merged, anything else defers to
// the operator. A closed prompt counts as "no".
func checkUnchanged(merged, backup string, prompter Prompter) (bool, error) {
	mergedInfo, err := os.Stat(merged)
	if err != nil {
		return false, errors.Wrap(err, "stating merge target")
	}
	backupInfo, err := os.Stat(backup)
	if err != nil {
		return false, errors.Wrap(err, "stating backup")
	}

	if mergedInfo.ModTime().After(backupInfo.ModTime()) {
		return true, nil
	}

	ok, err := prompter.Confirm(merged + " seems unchanged. Was the merge successful")
	if err != nil {
		return false, nil
	}
	return ok, nil
}

// fileEnv exposes the file set to configured command strings, which
// reference the files as $LOCAL, $REMOTE, $BASE and $MERGED.
func fileEnv(files tool.FileSet) []string {
	return []string{
		"LOCAL=" + files.Local,
		"REMOTE=" + files.Remote,
		"BASE=" + files.Base,
		"MERGED=" + files.Merged,
	}
}
