package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mergepick/mergepick/internal/tool"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the supported diff/merge tools",
	Long: `List every tool mergepick knows how to drive, split into the ones usable
right now and the ones that are valid but not currently available (for
example because the binary is missing, or there is no graphical display).`,
	RunE: toolsExec,
}

func toolsInit() {
	toolsCmd.Flags().Bool("diff", false, "list tools for diff mode instead of merge mode")
	rootCmd.AddCommand(toolsCmd)
}

func toolsExec(cmd *cobra.Command, args []string) error {
	diffMode, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}

	mode := tool.ModeMerge
	flagName := "mergepick merge --tool=<tool>"
	if diffMode {
		mode = tool.ModeDiff
		flagName = "mergepick diff --tool=<tool>"
	}

	reg := tool.NewRegistry()
	out := cmd.OutOrStdout()

	var shown []string

	fmt.Fprintf(out, "'%s' may be set to one of the following:\n", flagName)
	for line := range reg.Filter(mode, true, "\t\t") {
		fmt.Fprintln(out, line)
		shown = append(shown, line[2:])
	}

	var unavailable []string
	for line := range reg.Filter(mode, false, "\t\t") {
		unavailable = append(unavailable, line)
		shown = append(shown, line[2:])
	}

	if len(unavailable) > 0 {
		fmt.Fprintln(out, "\nThe following tools are valid, but not currently available:")
		for _, line := range unavailable {
			fmt.Fprintln(out, line)
		}
	}

	if reg.AnyGUIOnly(shown, mode) {
		fmt.Fprintln(out, "\nSome of the tools listed above only work in a windowed")
		fmt.Fprintln(out, "environment. If run in a terminal-only session, they will fail.")
	}

	return nil
}
