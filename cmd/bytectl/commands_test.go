package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bytekit/pkg/types"
)

func TestTrimCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		class    string
		side     string
		want     string
		allMatch bool
		wantErr  bool
	}{
		{name: "spaces both sides", input: " \t pad \n", class: "space", side: "both", want: "pad"},
		{name: "left only", input: "  pad  ", class: "space", side: "left", want: "pad  "},
		{name: "right only", input: "  pad  ", class: "space", side: "right", want: "  pad"},
		{name: "digits", input: "0042abc7", class: "digit", side: "both", want: "abc"},
		{name: "all match", input: "12345", class: "digit", side: "right", want: "", allMatch: true},
		{name: "alpha", input: "abc123XYZ", class: "alpha", side: "both", want: "123"},
		{name: "bad class", input: "x", class: "punct", side: "both", wantErr: true},
		{name: "bad side", input: "x", class: "space", side: "middle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			jsonOut = true
			trimClass = tt.class
			trimSide = tt.side

			output, err := captureOutput(t, func() error { return runTrim([]string{tt.input}) })
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			var got struct {
				Result    string `json:"result"`
				InputLen  int    `json:"input_len"`
				OutputLen int    `json:"output_len"`
				AllMatch  bool   `json:"all_match"`
			}
			decodeJSON(t, output, &got)
			assert.Equal(t, tt.want, got.Result)
			assert.Equal(t, len(tt.input), got.InputLen)
			assert.Equal(t, len(tt.want), got.OutputLen)
			assert.Equal(t, tt.allMatch, got.AllMatch)
		})
	}
}

func TestHashCommand(t *testing.T) {
	resetFlags(t)
	output, err := captureOutput(t, func() error {
		return runHash([]string{"a", "A", ""})
	})
	require.NoError(t, err)
	assert.Equal(t,
		"af63dc4c8601ec8c  a\naf63dc4c8601ec8c  A\ncbf29ce484222325  \n",
		output)
}

func TestHashCommandJSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	output, err := captureOutput(t, func() error {
		return runHash([]string{"Content-Type", "content-type"})
	})
	require.NoError(t, err)

	var got []hashResult
	decodeJSON(t, output, &got)
	require.Len(t, got, 2)
	assert.Equal(t, got[0].Hash, got[1].Hash)
}

func TestEqCommand(t *testing.T) {
	tests := []struct {
		name       string
		a, b       string
		ignoreCase bool
		want       string
	}{
		{"exact match", "abc", "abc", false, "equal\n"},
		{"case differs", "abc", "ABC", false, "not equal\n"},
		{"case ignored", "abc", "ABC", true, "equal\n"},
		{"length differs", "abc", "abcd", true, "not equal\n"},
		{"punctuation is exact", "[", "{", true, "not equal\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			eqIgnoreCase = tt.ignoreCase
			output, err := captureOutput(t, func() error { return runEq([]string{tt.a, tt.b}) })
			require.NoError(t, err)
			assert.Equal(t, tt.want, output)
		})
	}
}

func TestDecodeArgsTranscodes(t *testing.T) {
	resetFlags(t)
	inputEncoding = "windows-1252"
	// 0xe9 is é and 0x80 is € in Windows-1252.
	got, err := decodeArgs([]string{"caf\xe9", "\x80"})
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("café"), []byte("€")}, got)

	inputEncoding = "iso-8859-1"
	eqIgnoreCase = true
	output, err := captureOutput(t, func() error {
		return runEq([]string{"CAF\xc9", "caf\xe9"})
	})
	require.NoError(t, err)
	assert.Equal(t, "not equal\n", output, "folding only touches ASCII")
}

func TestCatCommand(t *testing.T) {
	t.Run("exact fit", func(t *testing.T) {
		resetFlags(t)
		output, err := captureOutput(t, func() error { return runCat([]string{"foo", "bar", "baz"}) })
		require.NoError(t, err)
		assert.Equal(t, "foobarbaz\n", output)
	})

	t.Run("capacity too small", func(t *testing.T) {
		resetFlags(t)
		catCapacity = 4
		_, err := captureOutput(t, func() error { return runCat([]string{"abc", "def"}) })
		require.ErrorIs(t, err, types.ErrDestTooSmall)
	})

	t.Run("budget exceeded", func(t *testing.T) {
		resetFlags(t)
		maxBytes = 2
		_, err := captureOutput(t, func() error { return runCat([]string{"abc"}) })
		require.ErrorIs(t, err, types.ErrOutOfMemory)
	})

	t.Run("secure", func(t *testing.T) {
		resetFlags(t)
		catSecure = true
		jsonOut = true
		output, err := captureOutput(t, func() error { return runCat([]string{"user:", "secret"}) })
		require.NoError(t, err)

		var got struct {
			Result   string `json:"result"`
			Len      int    `json:"len"`
			Capacity int    `json:"capacity"`
		}
		decodeJSON(t, output, &got)
		assert.Equal(t, "user:secret", got.Result)
		assert.Equal(t, 11, got.Len)
		assert.Equal(t, 11, got.Capacity)
	})
}

func TestDecoderFor(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8"} {
		dec, err := decoderFor(name)
		require.NoError(t, err)
		assert.Nil(t, dec)
	}
	for _, name := range []string{"windows-1252", "cp1252", "iso-8859-1", "latin1"} {
		dec, err := decoderFor(name)
		require.NoError(t, err)
		assert.NotNil(t, dec, name)
	}
	_, err := decoderFor("ebcdic")
	require.Error(t, err)
}

func TestReadInputRequiresSource(t *testing.T) {
	resetFlags(t)
	_, err := readInput(nil)
	require.ErrorIs(t, err, errNoInput)
}

func TestInitLogging(t *testing.T) {
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t); _ = initLogging() })

	logLevel = "warn"
	logFormat = "json"
	require.NoError(t, initLogging())

	logLevel = "loud"
	require.Error(t, initLogging())

	logLevel = ""
	logFormat = "xml"
	require.Error(t, initLogging())
}

func TestVersionCommand(t *testing.T) {
	resetFlags(t)
	output, err := captureOutput(t, runVersion)
	require.NoError(t, err)
	assert.Contains(t, output, "bytectl "+rootCmd.Version)
	assert.NotContains(t, output, "commit:")

	verbose = true
	output, err = captureOutput(t, runVersion)
	require.NoError(t, err)
	assert.Contains(t, output, "commit: none")

	resetFlags(t)
	jsonOut = true
	output, err = captureOutput(t, runVersion)
	require.NoError(t, err)
	var got versionInfo
	decodeJSON(t, output, &got)
	assert.Equal(t, rootCmd.Version, got.Version)
	assert.NotEmpty(t, got.Go)
}
