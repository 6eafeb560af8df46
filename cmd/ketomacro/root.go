package ketomacro

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "ketomacro",
	Short: "ketomacro plans keto macros and recommends meals from your terminal",
	Long:  "ketomacro is a local-first ketogenic macro tracker with personalized targets, time-of-day advice, meal-fit suggestions, and ketosis trend analytics.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
