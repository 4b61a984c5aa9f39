package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	pyprunelog "pyprune/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for pyprune.
var rootCmd = &cobra.Command{
	Use:   "pyprune",
	Short: "Remove unused Python imports reported by pyflakes",
	Long: `Pyprune runs a pyflakes-compatible linter over a directory of Python
sources and mechanically rewrites the affected files to drop the imports the
linter reports as unused, preserving single-line, comma-separated,
parenthesized, and backslash-continued import conventions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		pyprunelog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)
}
