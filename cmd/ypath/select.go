package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.ypath.dev/ypath"
	"go.ypath.dev/ypath/node"
)

func newSelectCmd() *cobra.Command {
	var (
		argValues []string
		require   bool
	)

	cmd := &cobra.Command{
		Use:   "select <file> <path>",
		Short: "Select the node matching a path expression",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			doc, err := node.Load(data)
			if err != nil {
				return err
			}

			boundArgs := parseArgs(argValues)

			var result *node.Node
			if require {
				result, err = ypath.Require(doc, args[1], boundArgs...)
			} else {
				result, err = ypath.Select(doc, args[1], boundArgs...)
			}

			if err != nil {
				var pe *ypath.Error
				if errors.As(err, &pe) {
					return errors.New(pe.Detail())
				}

				return err
			}

			if !result.IsDefined() {
				fmt.Fprintln(os.Stderr, "(no match)")

				return nil
			}

			fmt.Println(result.String())

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&argValues, "arg", nil,
		"bound argument substituted for each % token, in order (index or string)")
	cmd.Flags().BoolVar(&require, "require", false,
		"fail instead of printing nothing when the path doesn't match")

	return cmd
}
