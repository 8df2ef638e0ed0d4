package main

import (
	"github.com/spf13/cobra"

	"github.com/jask/drawerkit/core/drawer"
	"github.com/jask/drawerkit/internal/config"
)

// addModelFlags registers the geometry flags shared by decide and profile.
// Drawer behaviour comes from the config file unless a flag overrides it.
func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("height", 40, "Container height")
	cmd.Flags().Float64("partial", -1, "Partially expanded height (default from config)")
	cmd.Flags().Bool("no-partial", false, "Disable partial expansion")
	cmd.Flags().Bool("stages", false, "Dismiss in stages")
}

func modelFromFlags(cmd *cobra.Command) (drawer.PositionModel, error) {
	cfg, err := config.Load()
	if err != nil {
		return drawer.PositionModel{}, err
	}
	height, _ := cmd.Flags().GetFloat64("height")
	partial, _ := cmd.Flags().GetFloat64("partial")
	noPartial, _ := cmd.Flags().GetBool("no-partial")
	stages, _ := cmd.Flags().GetBool("stages")

	if partial < 0 {
		partial = cfg.Drawer.PartialHeight
	}
	if noPartial {
		cfg.Drawer.SupportsPartialExpansion = false
	}
	if cmd.Flags().Changed("stages") {
		cfg.Drawer.DismissesInStages = stages
	}
	dc, err := cfg.DrawerConfiguration()
	if err != nil {
		return drawer.PositionModel{}, err
	}
	return drawer.PositionModel{
		Geometry:              drawer.Geometry{Height: height},
		Config:                dc,
		PartialExpandedHeight: partial,
	}, nil
}
