package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Print where a release would settle",
	Long: `Runs the ending-position decision for one release. Velocity is in
container heights per second, positive toward hidden.`,
	Example: `  drawerkit decide --height 800 --partial 300 --y 480 --velocity 0.2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := modelFromFlags(cmd)
		if err != nil {
			return err
		}
		y, _ := cmd.Flags().GetFloat64("y")
		velocity, _ := cmd.Flags().GetFloat64("velocity")

		target := m.EndingPositionFor(y, velocity)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "target %g (%s)\n", target, m.RestAt(target))
		fmt.Fprintf(out, "marks %g / %g", m.UpperMarkY(), m.LowerMarkY())
		if m.HasPartialRest() {
			fmt.Fprintf(out, ", partial at %g", m.PartialY())
		}
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decideCmd)

	addModelFlags(decideCmd)
	decideCmd.Flags().Float64("y", 0, "Drawer position at release")
	decideCmd.Flags().Float64("velocity", 0, "Release velocity in container heights per second")
}
