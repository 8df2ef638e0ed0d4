package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/drawerkit/widgets"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the corner radius across the drawer's travel",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := modelFromFlags(cmd)
		if err != nil {
			return err
		}
		steps, _ := cmd.Flags().GetInt("steps")
		if steps < 1 {
			return fmt.Errorf("--steps must be at least 1")
		}
		h := m.ContainerHeight()
		maxRadius := m.Config.MaximumCornerRadius
		const barWidth = 30

		t := widgets.Table{Headers: []string{"y", "rest", "radius", ""}}
		for i := 0; i <= steps; i++ {
			y := h * float64(i) / float64(steps)
			r := m.CornerRadiusAt(y)
			bar := 0
			if maxRadius > 0 {
				bar = int(math.Round(r / maxRadius * barWidth))
			}
			t.Rows = append(t.Rows, []string{
				fmt.Sprintf("%.1f", y),
				m.RestAt(m.ClampedTargetFor(y)).String(),
				fmt.Sprintf("%.2f", r),
				strings.Repeat("█", bar),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render(80, steps+3))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)

	addModelFlags(profileCmd)
	profileCmd.Flags().Int("steps", 10, "Number of intervals between top and bottom")
}
