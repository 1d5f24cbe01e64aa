package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mergepick/mergepick/internal/config"
	"github.com/mergepick/mergepick/internal/git"
	"github.com/mergepick/mergepick/internal/invoke"
	"github.com/mergepick/mergepick/internal/log"
	"github.com/mergepick/mergepick/internal/resolve"
	"github.com/mergepick/mergepick/internal/tool"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <local> <remote> <base> <merged>",
	Short: "Run a three-way merge tool on the given files",
	Long: `Run a three-way merge tool on the given files, writing the result to the
merged file. The tool is taken from --tool, then merge.tool (merge.guitool
with --gui), then guessed from what is installed.`,
	Args: cobra.ExactArgs(4),
	RunE: mergeExec,
}

func mergeInit() {
	mergeCmd.Flags().StringP("tool", "t", "", "use the named tool instead of the configured one")
	mergeCmd.Flags().BoolP("gui", "g", false, "prefer the configured guitool")
	mergeCmd.Flags().Bool("prompt", false, "ask before launching the tool, even if mergetool.prompt is unset")
	mergeCmd.Flags().Bool("no-prompt", false, "launch the tool without asking first")
	mergeCmd.MarkFlagsMutuallyExclusive("prompt", "no-prompt")
	rootCmd.AddCommand(mergeCmd)
}

func mergeExec(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	toolName, err := cmd.Flags().GetString("tool")
	if err != nil {
		return err
	}
	gui, err := cmd.Flags().GetBool("gui")
	if err != nil {
		return err
	}
	promptFlag, err := cmd.Flags().GetBool("prompt")
	if err != nil {
		return err
	}
	noPrompt, err := cmd.Flags().GetBool("no-prompt")
	if err != nil {
		return err
	}

	reg := tool.NewRegistry()

	res, err := resolve.Resolve(ctx, reg, cfg, tool.ModeMerge, resolve.Options{Tool: toolName, GUI: gui})
	if err != nil {
		return err
	}

	files := tool.FileSet{Local: args[0], Remote: args[1], Base: args[2], Merged: args[3]}

	prompter := invoke.NewPrompter()

	if shouldPrompt(cfg, promptFlag, noPrompt) {
		launch, err := prompter.Confirm("Launch " + res.Tool)
		if err != nil || !launch {
			return errors.New("merge aborted")
		}
	}

	keepBackup := true
	if _, set := cfg.GetString("mergetool.keepBackup"); set {
		keepBackup = cfg.GetBool("mergetool.keepBackup")
	}

	deps := invoke.Deps{
		Runner:     invoke.ShellRunner{},
		Prompter:   prompter,
		Dir:        git.Prefix(),
		KeepBackup: keepBackup,
	}

	status, err := invoke.RunMerge(ctx, res, files, deps)
	if err != nil {
		return err
	}
	if status != 0 {
		return errors.Errorf("merge of %s failed", files.Merged)
	}

	log.From(ctx).Successf("Successfully merged %s using %s", files.Merged, res.Tool)

	return nil
}

// shouldPrompt gates the pre-launch confirmation: --no-prompt always wins,
// --prompt forces it, otherwise mergetool.prompt decides.
func shouldPrompt(cfg *config.Store, promptFlag, noPrompt bool) bool {
	if noPrompt {
		return false
	}
	return promptFlag || cfg.GetBool("mergetool.prompt")
}
