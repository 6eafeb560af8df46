package ketomacro

import (
	"database/sql"
	"fmt"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
	"github.com/ozzzik/KetoMacroTracker-sub000/internal/service"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage logged foods",
}

var (
	logName            string
	logCalories        float64
	logProtein         float64
	logCarbs           float64
	logFiber           float64
	logSugarAlcohols   float64
	logFat             float64
	logServingQuantity float64
	logServingUnit     string
	logServings        float64
	logAmount          float64
	logUnit            string
	logDate            string
	logTime            string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a consumed food",
	RunE: func(cmd *cobra.Command, args []string) error {
		consumed, err := parseDateTimeOrNow(logDate, logTime)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.LogFood(sqldb, service.LogFoodInput{
				Name: logName,
				Nutrition: model.NutritionAmount{
					Calories:       logCalories,
					ProteinG:       logProtein,
					TotalCarbsG:    logCarbs,
					FiberG:         logFiber,
					SugarAlcoholsG: logSugarAlcohols,
					FatG:           logFat,
				},
				ServingQuantity: logServingQuantity,
				ServingUnit:     logServingUnit,
				Servings:        logServings,
				Amount:          logAmount,
				Unit:            logUnit,
				ConsumedAt:      consumed,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (entry %d)\n", logName, id)
			return nil
		})
	},
}

var logListDate string

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged foods for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListEntriesForDay(sqldb, logListDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tNAME\tSERVINGS\tKCAL\tP\tNET C\tF")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%.2f\t%.0f\t%.1f\t%.1f\t%.1f\n",
					e.ID,
					e.ConsumedAt.Local().Format("15:04"),
					e.Name,
					e.Servings,
					e.Food.Calories*e.Servings,
					e.Food.ProteinG*e.Servings,
					e.Food.NetCarbsG()*e.Servings,
					e.Food.FatG*e.Servings)
			}
			return nil
		})
	},
}

var logDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("entry id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteEntry(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logDeleteCmd)

	logAddCmd.Flags().StringVar(&logName, "name", "", "Food name")
	logAddCmd.Flags().Float64Var(&logCalories, "calories", 0, "Calories per serving basis")
	logAddCmd.Flags().Float64Var(&logProtein, "protein", 0, "Protein grams per serving basis")
	logAddCmd.Flags().Float64Var(&logCarbs, "carbs", 0, "Total carb grams per serving basis")
	logAddCmd.Flags().Float64Var(&logFiber, "fiber", 0, "Fiber grams per serving basis")
	logAddCmd.Flags().Float64Var(&logSugarAlcohols, "sugar-alcohols", 0, "Sugar alcohol grams per serving basis")
	logAddCmd.Flags().Float64Var(&logFat, "fat", 0, "Fat grams per serving basis")
	logAddCmd.Flags().Float64Var(&logServingQuantity, "serving-quantity", 1, "Label serving quantity (e.g. 100)")
	logAddCmd.Flags().StringVar(&logServingUnit, "serving-unit", "serving", "Label serving unit (g, oz, ml, cup, ...)")
	logAddCmd.Flags().Float64Var(&logServings, "servings", 0, "Servings eaten (alternative to --amount)")
	logAddCmd.Flags().Float64Var(&logAmount, "amount", 0, "Amount eaten, converted against the serving basis")
	logAddCmd.Flags().StringVar(&logUnit, "unit", "", "Unit for --amount")
	logAddCmd.Flags().StringVar(&logDate, "date", "", "Date in YYYY-MM-DD")
	logAddCmd.Flags().StringVar(&logTime, "time", "", "Time in HH:MM")

	logListCmd.Flags().StringVar(&logListDate, "date", "", "Date YYYY-MM-DD (default today)")
}
