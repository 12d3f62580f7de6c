package main

import (
	"fmt"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/services"
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List or remove accounts",
}

func directoryService(cfg *config.Config, repo *repository.Repository) *services.DirectoryService {
	clock := services.SystemClock(cfg.Location())
	community := services.NewCommunityService(repo, services.NewContentFilter(cfg.BannedWords), clock)
	return services.NewDirectoryService(repo, community, cfg, clock)
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(cfg *config.Config, repo *repository.Repository) error {
			accounts := directoryService(cfg, repo).ListAccounts()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "ID\tEMAIL\tPROVIDER\tADMIN\tCREATED")
			for _, a := range accounts {
				fmt.Fprintf(out, "%s\t%s\t%s\t%t\t%s\n", a.ID, a.Email, a.AuthProvider, a.IsAdmin, a.CreatedAt.Format("2006-01-02"))
			}
			return nil
		})
	},
}

var accountsDeleteCmd = &cobra.Command{
	Use:   "delete <account-id>",
	Short: "Delete an account and everything it authored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(func(cfg *config.Config, repo *repository.Repository) error {
			if err := directoryService(cfg, repo).DeleteAccount(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted account %s\n", args[0])
			return nil
		})
	},
}

func init() {
	accountsCmd.AddCommand(accountsListCmd, accountsDeleteCmd)
	rootCmd.AddCommand(accountsCmd)
}
