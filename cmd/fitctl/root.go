package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/fitcore-backend/internal/repository"
	"github.com/spf13/cobra"
)

var (
	storeBackend string
	sqlitePath   string
)

var rootCmd = &cobra.Command{
	Use:   "fitctl",
	Short: "fitctl inspects and administers a fitcore backing store",
	Long:  "fitctl runs the nutrition target calculator and reads or edits the account directory and platform stats of a fitcore store.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeBackend, "backend", "", "Backing store (sqlite, postgres, redis, memory); defaults to STORE_BACKEND")
	rootCmd.PersistentFlags().StringVar(&sqlitePath, "sqlite-path", "", "Path to the SQLite store; defaults to SQLITE_PATH")
}

func loadConfig() *config.Config {
	cfg := config.Load()
	if storeBackend != "" {
		cfg.StoreBackend = storeBackend
	}
	if sqlitePath != "" {
		cfg.SQLitePath = sqlitePath
	}
	return cfg
}

func withRepo(fn func(cfg *config.Config, repo *repository.Repository) error) error {
	cfg := loadConfig()
	store, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(cfg, repository.New(store))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
