package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Both values can be overridden with -ldflags at build time.
var (
	version   = "unknown"
	buildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build date",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(versionString())
	},
}

func versionString() string {
	return fmt.Sprintf("%s version: %s (built %s)", app, version, buildDate)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
