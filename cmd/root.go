package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mergepick/mergepick/internal/config"
	"github.com/mergepick/mergepick/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "mergepick",
	Short: "mergepick runs an external diff or merge tool on behalf of your VCS",
	Long: `mergepick selects, configures and invokes an external two-way diff or
three-way merge tool, based on your configuration and which tools are
installed on this machine. The heavy lifting is delegated entirely to the
external tool; mergepick only decides which one to run and how, and reports
whether the run succeeded.`,
}

var l = log.New().WithLevel(log.LevelInfo)

var cfg *config.Store

func init() {
	// We want our commands to be sorted in defined order, not alphabetically
	cobra.EnableCommandSorting = false
}

func Init() {
	rootCmd.PersistentFlags().String("logLevel", string(log.LevelInfo), fmt.Sprintf("the log level (available options: [%s])", strings.Join(log.Levels, ", ")))

	mergeInit()
	diffInit()
	toolsInit()
}

func Execute(version string) {
	setupRootCmd(version)

	if err := rootCmd.Execute(); err != nil {
		l.Error("", zap.Error(err))
		os.Exit(1)
	}
}

func CmdForTest(version string) *cobra.Command {
	setupRootCmd(version)

	return rootCmd
}

func setupRootCmd(version string) {
	rootCmd.Version = version
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := setLogLevel(cmd); err != nil {
			return err
		}

		store, err := config.Load()
		if err != nil {
			return err
		}
		cfg = store

		return nil
	}

	Init()
}

func setLogLevel(cmd *cobra.Command) error {
	logLevel, err := cmd.Flags().GetString("logLevel")
	if err != nil {
		return err
	}
	if !slices.Contains(log.Levels, logLevel) {
		return fmt.Errorf("log level must be one of: %s", strings.Join(log.Levels, ", "))
	}

	l = l.WithLevel(log.Level(logLevel))
	ctx := log.With(cmd.Context(), l)
	cmd.SetContext(ctx)

	return nil
}
