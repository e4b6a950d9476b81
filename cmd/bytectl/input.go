package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/joshuapare/bytekit/cmd/bytectl/logger"
	"github.com/joshuapare/bytekit/pkg/alloc"
	"github.com/joshuapare/bytekit/pkg/bytebuf"
)

var errNoInput = errors.New("no input: pass text as an argument or use --file")

// decoderFor returns the transformer that turns name-encoded input into
// UTF-8, or nil when the input is already UTF-8.
func decoderFor(name string) (transform.Transformer, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", name)
}

// readInput returns the raw input for a command: --file, stdin for
// "--file -", or the first positional argument.
func readInput(args []string) ([]byte, error) {
	var r io.Reader
	switch {
	case inputFile == "-":
		r = os.Stdin
	case inputFile != "":
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	case len(args) > 0:
		r = strings.NewReader(args[0])
	default:
		return nil, errNoInput
	}

	return decode(r)
}

// decode reads r to the end, transcoding per --encoding.
func decode(r io.Reader) ([]byte, error) {
	dec, err := decoderFor(inputEncoding)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// decodeArgs transcodes each positional argument.
func decodeArgs(args []string) ([][]byte, error) {
	out := make([][]byte, 0, len(args))
	for _, arg := range args {
		data, err := decode(strings.NewReader(arg))
		if err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, nil
}

// loadInput copies the input into a buffer drawn from a. The caller cleans
// the buffer up.
func loadInput(a alloc.Allocator, args []string) (bytebuf.Buffer, error) {
	var b bytebuf.Buffer
	data, err := readInput(args)
	if err != nil {
		return b, err
	}
	if err := b.InitCopyFromCursor(a, bytebuf.CursorFromArray(data)); err != nil {
		return b, fmt.Errorf("failed to load input: %w", err)
	}
	logger.Debug("input loaded", "bytes", b.Len(), "encoding", inputEncoding)
	return b, nil
}

// inputCursor views b. Empty input is an empty cursor rather than a null
// one, so it still splits into a single empty piece.
func inputCursor(b *bytebuf.Buffer) bytebuf.Cursor {
	if b.Cap() == 0 {
		return bytebuf.CursorFromString("")
	}
	return b.Cursor()
}
