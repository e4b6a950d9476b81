package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytekit/cmd/bytectl/logger"
	"github.com/joshuapare/bytekit/pkg/bytebuf"
)

var (
	catCapacity int
	catSecure   bool
)

func init() {
	cmd := newCatCmd()
	cmd.Flags().
		IntVar(&catCapacity, "capacity", -1, "Destination capacity in bytes (-1 = exact fit)")
	cmd.Flags().
		BoolVar(&catSecure, "secure", false, "Lock the destination in memory and zero it when done")
	rootCmd.AddCommand(cmd)
}

func newCatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat <text>...",
		Short: "Concatenate inputs into one fixed-capacity buffer",
		Long: `The cat command appends every argument, in order, into a single buffer.
The buffer never grows: if --capacity is too small the command fails and
nothing past the last input that fit is written.

Example:
  bytectl cat foo bar baz
  bytectl cat --capacity 4 abc def
  bytectl cat --secure --max-bytes 4096 user: secret`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(args)
		},
	}
	return cmd
}

func runCat(args []string) error {
	inputs, err := decodeArgs(args)
	if err != nil {
		return err
	}

	srcs := make([]*bytebuf.Buffer, 0, len(inputs))
	total := 0
	for _, in := range inputs {
		b := bytebuf.BufferFromArray(in)
		srcs = append(srcs, &b)
		total += b.Len()
	}
	capacity := catCapacity
	if capacity < 0 {
		capacity = total
	}

	a := newAllocator()
	defer logUsage(a, "cat")

	dst, err := bytebuf.NewBuffer(a, capacity)
	if err != nil {
		return fmt.Errorf("failed to allocate destination: %w", err)
	}
	if catSecure {
		defer dst.CleanUpSecure()
		if err := dst.Lock(); err != nil {
			logger.Warn("memory lock unavailable", "err", err)
		}
	} else {
		defer dst.CleanUp()
	}

	if err := dst.Cat(srcs); err != nil {
		return fmt.Errorf("failed to concatenate: %w", err)
	}
	logger.Debug("cat", "inputs", len(srcs), "len", dst.Len(), "cap", dst.Cap(), "locked", dst.Locked())

	if jsonOut {
		return printJSON(map[string]any{
			"result":   string(dst.Bytes()),
			"len":      dst.Len(),
			"capacity": dst.Cap(),
		})
	}
	printInfo("%s\n", dst.Bytes())
	printVerbose("%d of %d bytes used\n", dst.Len(), dst.Cap())
	return nil
}
