package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/stickers"
	"github.com/spf13/cobra"
)

var stickersCmd = &cobra.Command{
	Use:   "stickers",
	Short: "List collected stickers",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, false)
		if err != nil {
			return err
		}
		defer e.Close()

		coll := e.stickers.Collection()
		list := coll.Sorted()
		if catFlag, _ := cmd.Flags().GetString("category"); catFlag != "" {
			cat, ok := catalog.ParseCategory(catFlag)
			if !ok {
				return fmt.Errorf("unknown category %q (want one of %s)", catFlag, categoryNames())
			}
			list = coll.ByCategory(cat)
		}

		if len(list) == 0 {
			fmt.Println("No stickers yet. Play a game to find some!")
			return nil
		}

		fmt.Printf("%-3s  %-16s  %-10s  %-10s  %s\n", "", "Name", "Category", "Rarity", "Found")
		fmt.Println(strings.Repeat("─", 60))
		for _, st := range list {
			fmt.Printf("%-3s  %-16s  %-10s  %-10s  %s\n",
				st.Emoji, st.Name, st.Category.DisplayName(), st.Rarity.DisplayName(),
				st.CollectedAt.Local().Format("2006-01-02"))
		}

		fmt.Printf("\n%d stickers, %d%% of the book", coll.TotalCollected, coll.CompletionPercentage)
		for _, r := range stickers.AllRarities() {
			fmt.Printf(", %d %s", coll.RarityCount[r], strings.ToLower(r.DisplayName()))
		}
		fmt.Println()
		return nil
	},
}

func init() {
	stickersCmd.Flags().String("category", "", "Only show one category")
}
