package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.ypath.dev/ypath/internal/tui"
	"go.ypath.dev/ypath/node"
)

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Interactively explore a YAML document with path expressions",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runBrowse(args[0])
		},
	}

	return cmd
}

// runBrowse loads file and launches the interactive path explorer. It is
// also what the root command falls into when invoked with a bare file and
// no subcommand, matching cmd/ypath's documented TUI fallback.
func runBrowse(file string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse requires an interactive terminal")
	}

	data, err := readInput(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	doc, err := node.Load(data)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(doc, file))

	_, err = p.Run()

	return err
}
