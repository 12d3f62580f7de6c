package main

import (
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the platform snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(cfg *config.Config, repo *repository.Repository) error {
			stats := services.NewPlatformService(repo, services.SystemClock(cfg.Location())).Snapshot()
			return printJSON(cmd.OutOrStdout(), stats)
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
