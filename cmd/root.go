package cmd

import (
	"github.com/abhisek/peekaboo/internal/config"
	"github.com/abhisek/peekaboo/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "peekaboo",
	Short: "Find-the-picture games for little kids",
	Long:  "Peekaboo is a terminal matching game for toddlers and preschoolers: find the animal, number, letter, color or fruit, earn stars and collect stickers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PEEKABOO_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(stickersCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured PEEKABOO_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" {
		p = cfg.DBPath
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
