package ketomacro

import (
	"database/sql"
	"fmt"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/service"
	"github.com/spf13/cobra"
)

var trendsWindow int

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show net-carb trends, streaks, and ketosis analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.TrendReport(sqldb, trendsWindow)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "DATE\tNET CARBS\tKETO\tSTATUS")
			for _, d := range report.Trends {
				keto := "yes"
				if !d.KetoFriendly {
					keto = "no"
				}
				fmt.Fprintf(out, "%s\t%.1fg\t%s\t%s\n", d.Date, d.NetCarbsG, keto, d.Status)
			}
			fmt.Fprintf(out, "Streak: %d day(s) under your carb ceiling\n", report.CurrentStreak)
			fmt.Fprintf(out, "Average: %.1fg net carbs over the window\n", report.PeriodAverageNetCarbsG)
			fmt.Fprintf(out, "Ketosis: %s (%.0f%% likely)\n", report.KetosisStatus, report.KetosisProbability*100)
			if report.Direction != "steady" {
				fmt.Fprintf(out, "Week over week: %+.1fg/day (%s)\n", report.WeekOverWeekDeltaG, report.Direction)
			} else {
				fmt.Fprintln(out, "Week over week: steady")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(trendsCmd)
	trendsCmd.Flags().IntVar(&trendsWindow, "window", 7, "Window in days (0 for all history)")
}
