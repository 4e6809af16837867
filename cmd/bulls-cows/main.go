package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"example.com/bulls-cows/internal/app"
	"example.com/bulls-cows/internal/config"
)

var rootCmd = &cobra.Command{
	Use:           "bulls-cows",
	Short:         "Guess the secret 4-digit number",
	Long:          `Bulls and Cows: guess a secret number of unique digits. A bull is a right digit in the right place, a cow is a right digit in the wrong place.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			return err
		}

		log, err := app.NewLogger(cfg, os.Stderr)
		if err != nil {
			return err
		}

		a, err := app.New(cfg, log, app.Options{
			In:  cmd.InOrStdin(),
			Out: cmd.OutOrStdout(),
		})
		if err != nil {
			return err
		}
		return a.Run(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
