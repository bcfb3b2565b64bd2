package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/peekaboo/internal/app"
	"github.com/abhisek/peekaboo/internal/catalog"
	"github.com/abhisek/peekaboo/internal/progress"
	"github.com/abhisek/peekaboo/internal/session"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game straight away",
	Example: `  peekaboo play --mode timed --category colors
  peekaboo play --chapter forest`,
	RunE: func(cmd *cobra.Command, args []string) error {
		chapter, _ := cmd.Flags().GetString("chapter")
		if chapter != "" {
			if _, err := progress.GetChapter(chapter); err != nil {
				return err
			}
			return runApp(cmd, app.LaunchFor(session.Config{}, chapter))
		}

		cfg, err := playConfig(cmd)
		if err != nil {
			return err
		}
		return runApp(cmd, app.LaunchFor(cfg, ""))
	},
}

func playConfig(cmd *cobra.Command) (session.Config, error) {
	modeFlag, _ := cmd.Flags().GetString("mode")
	catFlag, _ := cmd.Flags().GetString("category")
	diffFlag, _ := cmd.Flags().GetString("difficulty")

	mode, ok := session.ParseMode(modeFlag)
	if !ok {
		return session.Config{}, fmt.Errorf("unknown mode %q (want one of %s)", modeFlag, modeNames())
	}
	if mode == session.ModeStory {
		return session.Config{}, fmt.Errorf("story mode is played by chapter: use --chapter")
	}
	cat, ok := catalog.ParseCategory(catFlag)
	if !ok {
		return session.Config{}, fmt.Errorf("unknown category %q (want one of %s)", catFlag, categoryNames())
	}
	diff, ok := catalog.ParseDifficulty(diffFlag)
	if !ok {
		return session.Config{}, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", diffFlag)
	}
	return session.Config{Mode: mode, Category: cat, Difficulty: diff}, nil
}

func modeNames() string {
	var names []string
	for _, m := range session.AllModes() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

func categoryNames() string {
	var names []string
	for _, c := range catalog.AllCategories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func init() {
	playCmd.Flags().String("mode", string(session.ModeFreePlay), "Game mode: free-play or timed")
	playCmd.Flags().String("category", string(catalog.CategoryAnimals), "What to find: "+categoryNames())
	playCmd.Flags().String("difficulty", string(catalog.DifficultyEasy), "easy (3 cards), medium (4) or hard (6)")
	playCmd.Flags().String("chapter", "", "Play a story chapter instead (farm, forest, ocean, jungle)")
}
