package ketomacro

import (
	"database/sql"
	"fmt"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/service"
	"github.com/spf13/cobra"
)

var archiveDate string

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive a day's net carbs for trend analytics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			obs, err := service.ArchiveDay(sqldb, archiveDate)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archived %s: %.1fg net carbs\n", obs.Date, obs.NetCarbsG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	archiveCmd.Flags().StringVar(&archiveDate, "date", "", "Date YYYY-MM-DD (default today)")
}
