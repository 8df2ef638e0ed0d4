package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "drawerkit",
	Short: "drawerkit is a bottom drawer for the terminal",
	Long: `drawerkit presents a draggable bottom drawer over a terminal dashboard.
It can also answer where a release would settle, plot the corner radius
profile, and summarise the presentation journal.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
