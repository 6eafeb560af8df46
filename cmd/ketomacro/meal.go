package ketomacro

import (
	"database/sql"
	"fmt"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
	"github.com/ozzzik/KetoMacroTracker-sub000/internal/service"
	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Manage the meal catalog",
}

var (
	mealName          string
	mealCategory      string
	mealCalories      float64
	mealProtein       float64
	mealCarbs         float64
	mealFiber         float64
	mealSugarAlcohols float64
	mealFat           float64
	mealPrep          int
	mealDifficulty    string
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom meal to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddMeal(sqldb, service.AddMealInput{
				Name:     mealName,
				Category: mealCategory,
				Nutrition: model.NutritionAmount{
					Calories:       mealCalories,
					ProteinG:       mealProtein,
					TotalCarbsG:    mealCarbs,
					FiberG:         mealFiber,
					SugarAlcoholsG: mealSugarAlcohols,
					FatG:           mealFat,
				},
				PrepTimeMinutes: mealPrep,
				Difficulty:      mealDifficulty,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added meal %s (id %d)\n", mealName, id)
			return nil
		})
	},
}

var (
	mealListCategory   string
	mealListMaxPrep    int
	mealListDifficulty string
)

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			meals, err := service.ListMeals(sqldb, service.MealFilter{
				Category:           mealListCategory,
				MaxPrepTimeMinutes: mealListMaxPrep,
				Difficulty:         mealListDifficulty,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tCATEGORY\tKCAL\tP\tNET C\tF\tPREP\tDIFFICULTY\tCUSTOM")
			for _, m := range meals {
				custom := ""
				if m.IsCustom {
					custom = "yes"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\t%dm\t%s\t%s\n",
					m.ID, m.Name, m.Category,
					m.Nutrition.Calories, m.Nutrition.ProteinG, m.Nutrition.NetCarbsG(), m.Nutrition.FatG,
					m.PrepTimeMinutes, m.Difficulty, custom)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Meal name")
	mealAddCmd.Flags().StringVar(&mealCategory, "category", "", "Category: breakfast, lunch, dinner, or snack")
	mealAddCmd.Flags().Float64Var(&mealCalories, "calories", 0, "Calories")
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "Protein grams")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "Total carb grams")
	mealAddCmd.Flags().Float64Var(&mealFiber, "fiber", 0, "Fiber grams")
	mealAddCmd.Flags().Float64Var(&mealSugarAlcohols, "sugar-alcohols", 0, "Sugar alcohol grams")
	mealAddCmd.Flags().Float64Var(&mealFat, "fat", 0, "Fat grams")
	mealAddCmd.Flags().IntVar(&mealPrep, "prep", 0, "Prep time in minutes")
	mealAddCmd.Flags().StringVar(&mealDifficulty, "difficulty", "easy", "Difficulty: easy, medium, or hard")

	mealListCmd.Flags().StringVar(&mealListCategory, "category", "", "Filter by category")
	mealListCmd.Flags().IntVar(&mealListMaxPrep, "max-prep", 0, "Maximum prep time in minutes")
	mealListCmd.Flags().StringVar(&mealListDifficulty, "difficulty", "", "Filter by difficulty")
}
