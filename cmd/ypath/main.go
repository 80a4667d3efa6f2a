// Command ypath navigates and filters YAML documents with path expressions
// from the command line, and falls into an interactive TUI when pointed at
// a file with no further subcommand.
//
// # Usage
//
//	ypath select <file> <path> [--arg value]... [--require]
//	ypath ensure <file> <path> [--arg value]...
//	ypath validate <path>
//	ypath browse <file>
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.ypath.dev/ypath/log"
	"go.ypath.dev/ypath/profile"
	"go.ypath.dev/ypath/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	logCfg := log.NewConfig()
	profileCfg := profile.NewConfig()
	profiler := profileCfg.NewProfiler()

	rootCmd := &cobra.Command{
		Use:           "ypath [file]",
		Short:         "Navigate and filter YAML documents with path expressions",
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return fmt.Errorf("configuring logging: %w", err)
			}

			slog.SetDefault(slog.New(handler))

			return profiler.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return profiler.Stop()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return runBrowse(args[0])
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profileCfg.RegisterFlags(rootCmd.PersistentFlags())

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := profileCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(
		newSelectCmd(),
		newValidateCmd(),
		newEnsureCmd(),
		newBrowseCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)

		return 1
	}

	return 0
}
