package main

import (
	"runtime"

	"github.com/spf13/cobra"
)

// Set at link time with -ldflags "-X main.commit=... -X main.date=...".
var (
	commit = "none"
	date   = "unknown"
)

type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
	Go      string `json:"go"`
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	})
}

func currentVersion() versionInfo {
	return versionInfo{
		Version: rootCmd.Version,
		Commit:  commit,
		Built:   date,
		Go:      runtime.Version(),
	}
}

func runVersion() error {
	v := currentVersion()
	if jsonOut {
		return printJSON(v)
	}
	printInfo("bytectl %s (%s)\n", v.Version, v.Go)
	printVerbose("  commit: %s\n  built: %s\n", v.Commit, v.Built)
	return nil
}
