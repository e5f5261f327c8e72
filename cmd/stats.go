package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training statistics",
	Long:  "With --email, show one trainee's progress and recent sessions. Without it, show per-module session statistics.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd, nil)
		if err != nil {
			return err
		}
		defer d.Close()
		ctx := cmd.Context()

		email, _ := cmd.Flags().GetString("email")
		if email == "" {
			return printModuleStats(cmd, d)
		}

		u, err := userByEmail(ctx, d, email)
		if err != nil {
			return err
		}
		p, err := d.progress.Load(ctx, u.ID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Printf("%s <%s>\n", u.FullName(), u.Email)
		fmt.Println(strings.Repeat("─", 60))
		fmt.Printf("Points:      %d\n", p.Points)
		fmt.Printf("Level:       %d (%s)\n", p.Level, progress.LevelName(p.Level))
		if next, ok := progress.NextThreshold(p.Points, d.pack.Thresholds); ok {
			fmt.Printf("Next rank:   %d points\n", next)
		}
		var badges []string
		for _, id := range p.Badges {
			if b, ok := d.pack.Badge(id); ok {
				badges = append(badges, b.Icon+" "+b.Name)
			}
		}
		if len(badges) == 0 {
			badges = []string{"-"}
		}
		fmt.Printf("Badges:      %s\n", strings.Join(badges, ", "))
		fmt.Printf("Activities:  %d completed\n", len(p.CompletedActivities))
		fmt.Printf("Certificate: %v\n", progress.CertificateEligible(p, d.pack.Thresholds))

		fmt.Println()
		fmt.Println("Modules")
		fmt.Println(strings.Repeat("─", 60))
		done := p.Completed()
		for _, m := range content.AllModules() {
			state := "locked"
			switch {
			case done.Has(progress.CompleteMarker(m)):
				state = "complete"
			case progress.IsAvailable(m, done):
				state = "available"
			}
			fmt.Printf("%-22s  %s\n", m.DisplayName(), state)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		sessions, err := d.store.EventRepo().QuerySessionEvents(ctx, store.QueryOpts{Limit: limit, UserID: u.ID})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		fmt.Println()
		fmt.Println("Recent sessions")
		fmt.Println(strings.Repeat("─", 60))
		if len(sessions) == 0 {
			fmt.Println("No sessions yet.")
			return nil
		}
		for _, s := range sessions {
			timedOut := ""
			if s.TimedOut {
				timedOut = "  (time out)"
			}
			fmt.Printf("%s  %-22s  %d/%d  %4d pts  +%d  %s%s\n",
				s.Timestamp.Local().Format("2006-01-02 15:04"),
				content.Module(s.Module).DisplayName(),
				s.Correct, s.Total, s.Score, s.PointsAdded,
				(time.Duration(s.DurationMs) * time.Millisecond).Round(time.Second),
				timedOut,
			)
		}
		return nil
	},
}

func printModuleStats(cmd *cobra.Command, d *deps) error {
	stats, err := d.store.EventRepo().SessionStatsByModule(cmd.Context())
	if err != nil {
		return fmt.Errorf("query stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}
	fmt.Printf("%-22s  %8s  %9s  %8s  %9s\n", "Module", "Sessions", "Avg score", "Timeouts", "Accuracy")
	fmt.Println(strings.Repeat("─", 64))
	for _, st := range stats {
		var accuracy float64
		if st.TotalItems > 0 {
			accuracy = float64(st.TotalCorrect) / float64(st.TotalItems) * 100
		}
		fmt.Printf("%-22s  %8d  %9.1f  %8d  %8.0f%%\n",
			content.Module(st.Module).DisplayName(), st.Sessions, st.AvgScore, st.TimedOut, accuracy)
	}
	return nil
}

func init() {
	statsCmd.Flags().String("email", "", "Trainee email")
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent sessions to show")
}
