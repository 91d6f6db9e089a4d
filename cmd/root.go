package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/linguist/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "linguist",
	Short: "AI quiz tutor for learners",
	Long:  "Linguist: terminal quiz app that turns any topic into a short AI-generated lesson.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadDotEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGUIST_DB env var)")
	rootCmd.PersistentFlags().String("store", "", "Profile store URL, e.g. redis://localhost:6379/0 (overrides LINGUIST_STORE env var)")
	rootCmd.Flags().Bool("skip-splash", false, "Start on the profile picker")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadDotEnv reads .env from the working directory. Variables already set
// in the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "Warning: could not read .env:", err)
	}
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LINGUIST_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	return store.DBPath(p)
}

// resolveStoreURL returns the profile backend URL from --store or
// LINGUIST_STORE. Empty means the SQLite database.
func resolveStoreURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("store"); u != "" {
		return u
	}
	return os.Getenv("LINGUIST_STORE")
}

// openStore opens the SQLite database selected by the flags.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}
