package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mergepick/mergepick/internal/git"
	"github.com/mergepick/mergepick/internal/invoke"
	"github.com/mergepick/mergepick/internal/resolve"
	"github.com/mergepick/mergepick/internal/tool"
)

var diffCmd = &cobra.Command{
	Use:   "diff <local> <remote>",
	Short: "Run a two-way diff tool on the given files",
	Long: `Run a two-way diff tool on the given files. The tool is taken from --tool,
then diff.tool (diff.guitool with --gui), then the merge-mode equivalents,
then guessed from what is installed. The tool's exit code becomes the exit
code of this command.`,
	Args: cobra.ExactArgs(2),
	RunE: diffExec,
}

func diffInit() {
	diffCmd.Flags().StringP("tool", "t", "", "use the named tool instead of the configured one")
	diffCmd.Flags().BoolP("gui", "g", false, "prefer the configured guitool")
	rootCmd.AddCommand(diffCmd)
}

func diffExec(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	toolName, err := cmd.Flags().GetString("tool")
	if err != nil {
		return err
	}
	gui, err := cmd.Flags().GetBool("gui")
	if err != nil {
		return err
	}

	reg := tool.NewRegistry()

	res, err := resolve.Resolve(ctx, reg, cfg, tool.ModeDiff, resolve.Options{Tool: toolName, GUI: gui})
	if err != nil {
		return err
	}

	files := tool.FileSet{Local: args[0], Remote: args[1]}

	deps := invoke.Deps{
		Runner: invoke.ShellRunner{},
		Dir:    git.Prefix(),
	}

	status, err := invoke.RunDiff(ctx, res, files, deps)
	if err != nil {
		return err
	}
	if status != 0 {
		os.Exit(status)
	}

	return nil
}
