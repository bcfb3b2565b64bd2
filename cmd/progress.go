package cmd

import (
	"fmt"

	"github.com/abhisek/peekaboo/internal/progress"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show stars, unlocks and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		p := e.progress.Progress()
		fmt.Printf("Stars:          %d\n", p.TotalStars)
		fmt.Printf("Games played:   %d\n", p.TotalGamesPlayed)
		fmt.Printf("Perfect games:  %d\n", p.PerfectGames)
		if p.LastPlayedAt != nil {
			fmt.Printf("Last played:    %s\n", p.LastPlayedAt.Local().Format("2006-01-02 15:04"))
		}
		fmt.Printf("Unlocked items: %d of %d\n", len(p.UnlockedItemIDs), e.catalog.Size())

		fmt.Println("\nUnlocks:")
		for _, t := range e.progress.Policy().Thresholds() {
			mark := "🔒"
			if p.TotalStars >= t.Stars {
				mark = "✓ "
			}
			fmt.Printf("  %s %-16s %4d ★\n", mark, t.Label, t.Stars)
		}

		fmt.Println("\nStory chapters:")
		for _, ch := range progress.Chapters() {
			mark := "🔒"
			if ch.Available(p.TotalStars) {
				mark = "✓ "
			}
			fmt.Printf("  %s %s %-18s %4d ★\n", mark, ch.Emoji, ch.Name, ch.RequiredStars)
		}

		fmt.Println("\nAchievements:")
		for _, a := range progress.AllAchievements() {
			if p.HasAchievement(a.ID) {
				fmt.Printf("  %s %-16s %s\n", a.Icon, a.Name, a.Description)
			} else {
				fmt.Printf("  ·  %-16s %s\n", a.Name, a.Description)
			}
		}
		return nil
	},
}
