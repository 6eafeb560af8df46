package ketomacro

import (
	"database/sql"
	"fmt"

	"github.com/ozzzik/KetoMacroTracker-sub000/internal/engine"
	"github.com/ozzzik/KetoMacroTracker-sub000/internal/model"
	"github.com/ozzzik/KetoMacroTracker-sub000/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your body profile and macro targets",
}

var (
	profileWeight   float64
	profileHeight   float64
	profileAge      int
	profileSex      string
	profileActivity string
	profileGoal     string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set your body profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			err := service.SaveProfile(sqldb, service.SaveProfileInput{
				WeightLb:      profileWeight,
				HeightCm:      profileHeight,
				Age:           profileAge,
				Sex:           profileSex,
				ActivityLevel: profileActivity,
				Goal:          profileGoal,
			})
			if err != nil {
				return err
			}
			p, err := service.LoadProfile(sqldb)
			if err != nil {
				return err
			}
			targets, err := engine.ComputeTargets(*p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved.")
			printTargets(cmd, targets)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile and daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.LoadProfile(sqldb)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile set. Run 'ketomacro profile set' first.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f lb\n", p.WeightLb)
			fmt.Fprintf(cmd.OutOrStdout(), "Height: %.1f cm\n", p.HeightCm)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", p.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Sex: %s\n", p.Sex)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %s\n", p.Activity)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %s\n", p.Goal)

			targets, err := engine.ComputeTargets(*p)
			if err != nil {
				return err
			}
			printTargets(cmd, targets)
			return nil
		})
	},
}

func printTargets(cmd *cobra.Command, targets model.MacroTargets) {
	fmt.Fprintf(cmd.OutOrStdout(), "Daily targets: %.0f kcal | P %.0fg | C %.0fg net | F %.0fg\n",
		targets.Calories, targets.ProteinG, targets.CarbsG, targets.FatG)
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)

	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Body weight in pounds")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in centimeters")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "Sex: male or female")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "moderate", "Activity level: sedentary, light, moderate, active, or very_active")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "maintain", "Goal: lose, maintain, or gain")
}
