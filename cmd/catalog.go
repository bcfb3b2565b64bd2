package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the items the games can ask for",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()

		items := cat.All()
		if catFlag, _ := cmd.Flags().GetString("category"); catFlag != "" {
			c, ok := catalog.ParseCategory(catFlag)
			if !ok {
				return fmt.Errorf("unknown category %q (want one of %s)", catFlag, categoryNames())
			}
			items = cat.ByCategory(c)
		}

		fmt.Printf("%-3s  %-14s  %-14s  %-10s  %-7s  %-8s  %s\n",
			"", "ID", "Name", "Category", "Level", "Group", "Start")
		fmt.Println(strings.Repeat("─", 75))
		for _, it := range items {
			start := "locked"
			if it.Unlocked {
				start = "open"
			}
			fmt.Printf("%-3s  %-14s  %-14s  %-10s  %-7s  %-8s  %s\n",
				it.Emoji, it.ID, it.Name, it.Category.DisplayName(),
				it.Difficulty.DisplayName(), it.Group, start)
		}

		fmt.Printf("\n%d items\n", len(items))
		return nil
	},
}

func init() {
	catalogCmd.Flags().String("category", "", "Only list one category")
}
