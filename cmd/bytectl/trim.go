package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytekit/pkg/bytebuf"
)

var (
	trimClass string
	trimSide  string
)

func init() {
	cmd := newTrimCmd()
	cmd.Flags().StringVarP(&trimClass, "class", "c", "space", "Byte class to trim: space, digit, alpha")
	cmd.Flags().StringVar(&trimSide, "side", "both", "Which end to trim: left, right, both")
	rootCmd.AddCommand(cmd)
}

func newTrimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trim [text]",
		Short: "Strip a byte class from the ends of the input",
		Long: `The trim command removes leading and/or trailing bytes of one class.

Example:
  bytectl trim "  padded  "
  bytectl trim --class digit --side left "0042abc"
  bytectl trim --file notes.txt --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrim(args)
		},
	}
	return cmd
}

func predicateFor(class string) (bytebuf.BytePredicate, error) {
	switch class {
	case "space":
		return bytebuf.IsSpace, nil
	case "digit":
		return bytebuf.IsDigit, nil
	case "alpha":
		return bytebuf.IsAlpha, nil
	}
	return nil, fmt.Errorf("unknown byte class %q", class)
}

func runTrim(args []string) error {
	pred, err := predicateFor(trimClass)
	if err != nil {
		return err
	}

	a := newAllocator()
	defer logUsage(a, "trim")

	in, err := loadInput(a, args)
	if err != nil {
		return err
	}
	defer in.CleanUp()

	src := inputCursor(&in)
	var got bytebuf.Cursor
	switch trimSide {
	case "left":
		got = src.LeftTrimPred(pred)
	case "right":
		got = src.RightTrimPred(pred)
	case "both":
		got = src.TrimPred(pred)
	default:
		return fmt.Errorf("unknown side %q", trimSide)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"result":     got.String(),
			"input_len":  src.Len(),
			"output_len": got.Len(),
			"all_match":  src.SatisfiesPred(pred),
		})
	}

	printInfo("%s\n", got.String())
	printVerbose("Trimmed %d of %d bytes\n", src.Len()-got.Len(), src.Len())
	return nil
}
