package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytekit/pkg/bytebuf"
)

func init() {
	rootCmd.AddCommand(newHashCmd())
}

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash [text...]",
		Short: "Print the case-insensitive FNV-1a hash of each input",
		Long: `The hash command prints the 64-bit FNV-1a hash of each argument after
ASCII case folding, so inputs that compare equal ignoring case hash the same.
With --file, the whole file is hashed as one input.

Example:
  bytectl hash Content-Type content-type
  bytectl hash --file key.bin --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(args)
		},
	}
	return cmd
}

type hashResult struct {
	Input string `json:"input"`
	Hash  string `json:"hash"`
}

func runHash(args []string) error {
	var inputs [][]byte
	if inputFile != "" || len(args) == 0 {
		data, err := readInput(nil)
		if err != nil {
			return err
		}
		inputs = [][]byte{data}
	} else {
		var err error
		if inputs, err = decodeArgs(args); err != nil {
			return err
		}
	}

	results := make([]hashResult, 0, len(inputs))
	for _, in := range inputs {
		c := bytebuf.CursorFromArray(in)
		results = append(results, hashResult{
			Input: c.String(),
			Hash:  fmt.Sprintf("%016x", c.HashIgnoreCase()),
		})
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, r := range results {
		printInfo("%s  %s\n", r.Hash, r.Input)
	}
	return nil
}
