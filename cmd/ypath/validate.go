package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.ypath.dev/ypath"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Check a path expression's grammar without a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			prefix, offset, code := ypath.PathValidate(args[0])
			if code == ypath.OK {
				fmt.Println("path is valid")

				return nil
			}

			fmt.Printf("invalid path: %s\n  valid part: %q\n  error offset: %d\n", code, prefix, offset)

			return nil
		},
	}
}
