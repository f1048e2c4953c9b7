package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	mongorepo "alcyxob/fitness-coach/internal/repository/mongo"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create the MongoDB indexes",
	Long: `Create or update the indexes of every collection.

The unique completion index on (client, workout, assignment, date) is what
makes recording a completion idempotent, so run this before serving traffic.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		if err := mongorepo.EnsureIndexes(ctx, appDB); err != nil {
			return fmt.Errorf("ensure indexes: %w", err)
		}
		color.Green("indexes ensured on %s", cfg.Database.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexesCmd)
}
