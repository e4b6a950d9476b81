package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/bytekit/pkg/bytebuf"
)

var eqIgnoreCase bool

func init() {
	cmd := newEqCmd()
	cmd.Flags().BoolVarP(&eqIgnoreCase, "ignore-case", "i", false, "Compare ignoring ASCII case")
	rootCmd.AddCommand(cmd)
}

func newEqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eq <a> <b>",
		Short: "Compare two inputs byte for byte",
		Long: `The eq command reports whether two inputs are equal, optionally ignoring
ASCII case. Bytes outside A-Z are always compared exactly.

Example:
  bytectl eq abc abc
  bytectl eq -i Content-Type CONTENT-TYPE`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEq(args)
		},
	}
	return cmd
}

func runEq(args []string) error {
	inputs, err := decodeArgs(args)
	if err != nil {
		return err
	}
	a := bytebuf.CursorFromArray(inputs[0])
	b := bytebuf.CursorFromArray(inputs[1])

	var equal bool
	if eqIgnoreCase {
		equal = a.EqIgnoreCase(b)
	} else {
		equal = a.Eq(b)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"equal":       equal,
			"ignore_case": eqIgnoreCase,
		})
	}
	if equal {
		printInfo("equal\n")
	} else {
		printInfo("not equal\n")
	}
	return nil
}
