package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the pyprune version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version of the pyprune binary.",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("pyprune %s\n", Version)
	},
}
