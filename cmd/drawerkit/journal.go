package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/drawerkit/internal/config"
	"github.com/jask/drawerkit/internal/database"
	"github.com/jask/drawerkit/internal/database/repository"
	"github.com/jask/drawerkit/internal/service"
	"github.com/jask/drawerkit/widgets"
)

const journalTimeFormat = "2006-01-02 15:04:05"

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Summarise recorded presentations",
	Long:  `Lists recent presentations and how their releases settled. With --session, lists that presentation's events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		sessionID, _ := cmd.Flags().GetString("session")
		path, _ := cmd.Flags().GetString("path")
		if path == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			path = cfg.Journal.Path
		}
		if path == "" {
			return fmt.Errorf("journal disabled: no journal path configured")
		}

		db, err := database.OpenJournal(path)
		if err != nil {
			return err
		}
		defer db.Close()
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		sessions := repository.NewSessionRepo(db)
		events := repository.NewEventRepo(db)

		if sessionID != "" {
			s, err := sessions.ByID(ctx, sessionID)
			if err != nil {
				return err
			}
			if s == nil {
				return fmt.Errorf("no session %q", sessionID)
			}
			list, err := events.BySession(ctx, s.ID)
			if err != nil {
				return err
			}
			t := widgets.Table{Headers: []string{"#", "event", "y", "velocity", "target", "rest"}}
			for _, e := range list {
				t.Rows = append(t.Rows, []string{
					fmt.Sprint(e.Seq), e.Kind,
					fmt.Sprintf("%.1f", e.Position),
					fmt.Sprintf("%.2f", e.Velocity),
					fmt.Sprintf("%.1f", e.Target),
					e.Rest,
				})
			}
			fmt.Fprintf(out, "session %s started %s\n\n", s.ID, s.StartedAt.Local().Format(journalTimeFormat))
			fmt.Fprintln(out, t.Render(120, len(t.Rows)+1))
		} else {
			recent, err := sessions.Recent(ctx, limit)
			if err != nil {
				return err
			}
			if len(recent) == 0 {
				fmt.Fprintln(out, "No presentations recorded.")
				return nil
			}
			t := widgets.Table{Headers: []string{"session", "started", "height", "partial", "curve"}}
			for _, s := range recent {
				t.Rows = append(t.Rows, []string{
					s.ID,
					s.StartedAt.Local().Format(journalTimeFormat),
					fmt.Sprintf("%g", s.ContainerHeight),
					fmt.Sprintf("%g", s.PartialHeight),
					s.TimingCurve,
				})
			}
			fmt.Fprintln(out, t.Render(120, len(t.Rows)+1))
		}

		stats, err := service.ReleaseStats(ctx, events, sessionID)
		if err != nil {
			return err
		}
		chart := widgets.BarChart{Title: "\nReleases", Data: []widgets.ChartPoint{
			{Label: "expanded", Value: float64(stats.Expanded)},
			{Label: "partial", Value: float64(stats.Partial)},
			{Label: "hidden", Value: float64(stats.Hidden)},
		}}
		fmt.Fprintln(out, chart.Render(60, 5))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)

	journalCmd.Flags().Int("limit", 10, "Number of recent presentations to list")
	journalCmd.Flags().String("session", "", "Show the events of one presentation")
	journalCmd.Flags().String("path", "", "Journal database (default from config)")
}
