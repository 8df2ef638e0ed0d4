package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/drawerkit/internal/config"
	"github.com/jask/drawerkit/internal/database"
	"github.com/jask/drawerkit/internal/logging"
	"github.com/jask/drawerkit/internal/service"
	"github.com/jask/drawerkit/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive drawer demo",
	Long:  `Opens the dashboard in the alternate screen with mouse tracking. Edits to the config file apply to the next presentation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		noJournal, _ := cmd.Flags().GetBool("no-journal")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		closer, err := logging.Setup(cfg.Log.Path, cfg.Log.Level)
		if err != nil {
			return err
		}
		defer closer.Close()
		log := logging.For("run")

		if _, err := cfg.DrawerConfiguration(); err != nil {
			return fmt.Errorf("config %s: %w", config.Path(), err)
		}

		var rec *service.Recorder
		if !noJournal && cfg.Journal.Path != "" {
			db, err := database.OpenJournal(cfg.Journal.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			rec = service.NewRecorder(db, logging.For("journal"))
		}

		app := tui.New(cmd.Context(), tui.Options{
			Config:   cfg,
			Recorder: rec,
			Logger:   logging.For("tui"),
		})
		p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context()))
		if err := config.Watch(func(c config.Config, err error) {
			p.Send(tui.ConfigReloadedMsg{Config: c, Err: err})
		}); err != nil {
			log.Warn().Err(err).Msg("config changes will not be picked up")
		}

		log.Info().Bool("journal", rec != nil).Msg("starting")
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run tui: %w", err)
		}
		if rec != nil {
			if err := rec.Flush(cmd.Context()); err != nil {
				log.Error().Err(err).Msg("final journal flush")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("no-journal", false, "Do not record presentations to the journal")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
