package main

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

// resetFlags restores every global flag to its default so tests can call the
// run functions directly.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose = false
	quiet = false
	jsonOut = false
	maxBytes = 0
	inputFile = ""
	inputEncoding = "utf-8"
	logLevel = ""
	logFormat = "text"

	splitSep = ","
	splitLimit = 0
	splitMaxPieces = 0
	splitTrim = false
	splitSort = false
	splitDedupe = false

	trimClass = "space"
	trimSide = "both"

	eqIgnoreCase = false

	catCapacity = -1
	catSecure = false
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// decodeJSON unmarshals command output into v, failing the test on bad JSON
func decodeJSON(t *testing.T, output string, v any) {
	t.Helper()
	if err := json.Unmarshal([]byte(output), v); err != nil {
		t.Fatalf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}
