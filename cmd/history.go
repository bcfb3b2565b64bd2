package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/peekaboo/internal/session"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent games",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("--limit cannot be negative")
		}

		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		recs, err := e.history.Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("No games yet.")
			return nil
		}

		fmt.Printf("%-5s  %-16s  %-16s  %-10s  %-7s  %-6s  %s\n",
			"Seq", "Started", "Mode", "Category", "Level", "Score", "Done")
		fmt.Println(strings.Repeat("─", 80))
		for _, r := range recs {
			mode := r.Mode
			if m, ok := session.ParseMode(r.Mode); ok {
				mode = m.DisplayName()
			}
			done := "✓"
			if !r.Completed {
				done = "quit"
			}
			fmt.Printf("%-5d  %-16s  %-16s  %-10s  %-7s  %2d/%-3d  %s\n",
				r.Sequence,
				r.StartedAt.Local().Format("2006-01-02 15:04"),
				mode, r.Category, r.Difficulty,
				r.Score, r.Rounds, done)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Number of games to show (0 for all)")
}
