package invoke

import (
	"context"
	"os"
	"os/exec"
)

// ShellRunner executes tool commands on the real host, one at a time, with
// stdio attached so interactive tools own the terminal for the duration of
// the run.
type ShellRunner struct{}

func (ShellRunner) Run(ctx context.Context, dir, command string, extraEnv ...string) (int, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), extraEnv...)
	return attachAndRun(cmd)
}

func (ShellRunner) RunTool(ctx context.Context, dir, path string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir
	return attachAndRun(cmd)
}

func attachAndRun(cmd *exec.Cmd) (int, error) {
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 127, err
	}

	return 0, nil
}
