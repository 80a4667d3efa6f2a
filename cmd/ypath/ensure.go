package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"go.ypath.dev/ypath"
	"go.ypath.dev/ypath/node"
)

func newEnsureCmd() *cobra.Command {
	var argValues []string

	cmd := &cobra.Command{
		Use:   "ensure <file> <path>",
		Short: "Create missing map entries and sequence slots along a path",
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

			_, err = ypath.Ensure(doc, args[1], parseArgs(argValues)...)
			if err != nil {
				var pe *ypath.Error
				if errors.As(err, &pe) {
					return errors.New(pe.Detail())
				}

				return err
			}

			fmt.Println(doc.String())

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&argValues, "arg", nil,
		"bound argument substituted for each % token, in order (index or string)")

	return cmd
}
