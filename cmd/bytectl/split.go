package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytekit/cmd/bytectl/logger"
	"github.com/joshuapare/bytekit/pkg/arraylist"
	"github.com/joshuapare/bytekit/pkg/bytebuf"
)

var (
	splitSep       string
	splitLimit     int
	splitMaxPieces int
	splitTrim      bool
	splitSort      bool
	splitDedupe    bool
)

func init() {
	cmd := newSplitCmd()
	cmd.Flags().StringVarP(&splitSep, "sep", "s", ",", "Single-byte delimiter")
	cmd.Flags().IntVarP(&splitLimit, "limit", "n", 0, "Maximum number of splits (0 = unlimited)")
	cmd.Flags().
		IntVar(&splitMaxPieces, "max-pieces", 0, "Collect into a fixed list of this many pieces (0 = growable)")
	cmd.Flags().BoolVar(&splitTrim, "trim", false, "Trim whitespace around each piece")
	cmd.Flags().BoolVar(&splitSort, "sort", false, "Sort pieces bytewise")
	cmd.Flags().
		BoolVar(&splitDedupe, "dedupe", false, "Drop pieces equal to an earlier one, ignoring ASCII case")
	rootCmd.AddCommand(cmd)
}

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Split input on a delimiter byte",
		Long: `The split command breaks its input on every occurrence of a delimiter byte.
Adjacent delimiters give empty pieces and a trailing delimiter gives a final
empty piece. With --limit, the last piece is the unsplit remainder.

Example:
  bytectl split "a,b,,c"
  bytectl split --sep ';' --limit 1 "k;v;rest"
  bytectl split --file hosts.txt --sep $'\n' --trim --dedupe`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(args)
		},
	}
	return cmd
}

func runSplit(args []string) error {
	if len(splitSep) != 1 {
		return fmt.Errorf("--sep must be exactly one byte, got %q", splitSep)
	}

	a := newAllocator()
	defer logUsage(a, "split")

	in, err := loadInput(a, args)
	if err != nil {
		return err
	}
	defer in.CleanUp()

	var pieces *arraylist.List[bytebuf.Cursor]
	if splitMaxPieces > 0 {
		pieces, err = arraylist.NewStatic(make([]bytebuf.Cursor, splitMaxPieces))
	} else {
		pieces, err = arraylist.New[bytebuf.Cursor](a, 8)
	}
	if err != nil {
		return fmt.Errorf("failed to create piece list: %w", err)
	}
	defer pieces.CleanUp()

	if err := inputCursor(&in).SplitOnCharN(splitSep[0], splitLimit, pieces); err != nil {
		return fmt.Errorf("failed to split: %w", err)
	}
	logger.Debug("split", "pieces", pieces.Len(), "capacity", pieces.Capacity(), "static", pieces.IsStatic())

	if splitTrim {
		for i := range pieces.Len() {
			p, err := pieces.GetAtPtr(i)
			if err != nil {
				return err
			}
			*p = p.TrimPred(bytebuf.IsSpace)
		}
	}
	if splitDedupe {
		if err := dedupeIgnoreCase(pieces); err != nil {
			return err
		}
	}
	if splitSort {
		pieces.Sort(func(x, y bytebuf.Cursor) int { return bytes.Compare(x.Bytes(), y.Bytes()) })
	}

	out := make([]string, 0, pieces.Len())
	for _, p := range pieces.All() {
		out = append(out, p.String())
	}

	if jsonOut {
		return printJSON(map[string]any{
			"separator": splitSep,
			"pieces":    out,
			"count":     len(out),
		})
	}

	for _, p := range out {
		printInfo("%s\n", p)
	}
	printVerbose("\nTotal: %d pieces\n", len(out))
	return nil
}

// dedupeIgnoreCase erases every piece that equals an earlier one under
// EqIgnoreCase, keeping first occurrences in order.
func dedupeIgnoreCase(pieces *arraylist.List[bytebuf.Cursor]) error {
	seen := make(map[uint64][]bytebuf.Cursor)
	for i := 0; i < pieces.Len(); {
		p, err := pieces.GetAt(i)
		if err != nil {
			return err
		}
		h := p.HashIgnoreCase()
		dup := false
		for _, s := range seen[h] {
			if s.EqIgnoreCase(p) {
				dup = true
				break
			}
		}
		if dup {
			if err := pieces.Erase(i); err != nil {
				return err
			}
			continue
		}
		seen[h] = append(seen[h], p)
		i++
	}
	return nil
}
