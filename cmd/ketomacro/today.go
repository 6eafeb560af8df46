package ketomacro

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/service"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, remaining budget, and advice",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := time.Now()
		if todayDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", todayDate, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", todayDate)
			}
			// Keep the current hour so advice stays time-of-day aware.
			now := time.Now()
			target = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), now.Hour(), now.Minute(), 0, 0, time.Local)
		}
		return withDB(func(sqldb *sql.DB) error {
			status, err := service.DayStatusAt(sqldb, target)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s (%d entries)\n", status.Date, status.EntryCount)
			fmt.Fprintf(out, "Targets:   %.0f kcal | P %.0fg | C %.0fg net | F %.0fg\n",
				status.Targets.Calories, status.Targets.ProteinG, status.Targets.CarbsG, status.Targets.FatG)
			fmt.Fprintf(out, "Consumed:  %.0f kcal | P %.1fg | C %.1fg net | F %.1fg\n",
				status.Consumed.Calories, status.Consumed.ProteinG, status.Consumed.NetCarbsG, status.Consumed.FatG)
			fmt.Fprintf(out, "Remaining: %.0f kcal | P %.1fg | C %.1fg net | F %.1fg\n",
				status.Remaining.Calories, status.Remaining.ProteinG, status.Remaining.CarbsG, status.Remaining.FatG)
			fmt.Fprintf(out, "Progress:  %d%% kcal | %d%% protein | %d%% carbs | %d%% fat\n",
				status.CaloriePct, status.ProteinPct, status.CarbPct, status.FatPct)

			for _, w := range status.Advice.Warnings {
				fmt.Fprintf(out, "[%s] %s\n", w.Severity, w.Message)
			}
			fmt.Fprintf(out, "Focus: %s. %s\n", status.Advice.Focus.Title, status.Advice.Focus.Rationale)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
