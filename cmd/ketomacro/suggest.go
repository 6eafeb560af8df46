package ketomacro

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/service"
	"github.com/spf13/cobra"
)

var (
	suggestCategory   string
	suggestMaxPrep    int
	suggestDifficulty string
	suggestLimit      int
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest meals that fit what's left of today's macros",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			filter := service.MealFilter{
				Category:           suggestCategory,
				MaxPrepTimeMinutes: suggestMaxPrep,
				Difficulty:         suggestDifficulty,
			}
			suggestions, focus, err := service.SuggestMealsAt(sqldb, time.Now(), filter, suggestLimit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(suggestions) == 0 {
				fmt.Fprintln(out, "No meals fit the remaining budget and filters.")
				fmt.Fprintf(out, "Focus: %s. %s\n", focus.Title, focus.Rationale)
				return nil
			}
			fmt.Fprintln(out, "FIT\tNAME\tCATEGORY\tKCAL\tP\tNET C\tF\tPREP")
			for _, s := range suggestions {
				line := fmt.Sprintf("%s\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\t%dm",
					s.Fit, s.Meal.Name, s.Meal.Category,
					s.Meal.Nutrition.Calories, s.Meal.Nutrition.ProteinG,
					s.Meal.Nutrition.NetCarbsG(), s.Meal.Nutrition.FatG,
					s.Meal.PrepTimeMinutes)
				if s.RecommendedFocus != "" {
					line += "\t<- " + s.RecommendedFocus
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "Focus: %s. %s\n", focus.Title, focus.Rationale)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringVar(&suggestCategory, "category", "", "Filter by category: breakfast, lunch, dinner, or snack")
	suggestCmd.Flags().IntVar(&suggestMaxPrep, "max-prep", 0, "Maximum prep time in minutes")
	suggestCmd.Flags().StringVar(&suggestDifficulty, "difficulty", "", "Filter by difficulty: easy, medium, or hard")
	suggestCmd.Flags().IntVar(&suggestLimit, "limit", 0, "Maximum suggestions to show (default from config)")
}
