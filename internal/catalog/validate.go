package catalog

import (
	"fmt"
	"strings"
)

// validateItems checks catalog integrity: unique non-empty IDs, known
// categories and difficulties, and display data present.
func validateItems(items []Item) error {
	var errs []string

	if len(items) == 0 {
		return fmt.Errorf("catalog validation failed: no items")
	}

	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if it.ID == "" {
			errs = append(errs, fmt.Sprintf("item #%d has an empty id", i))
			continue
		}
		if seen[it.ID] {
			errs = append(errs, fmt.Sprintf("duplicate item id: %q", it.ID))
		}
		seen[it.ID] = true

		if it.Name == "" {
			errs = append(errs, fmt.Sprintf("item %q has no name", it.ID))
		}
		if it.Emoji == "" {
			errs = append(errs, fmt.Sprintf("item %q has no emoji", it.ID))
		}
		if _, ok := ParseCategory(string(it.Category)); !ok {
			errs = append(errs, fmt.Sprintf("item %q has unknown category %q", it.ID, it.Category))
		}
		if _, ok := ParseDifficulty(string(it.Difficulty)); !ok {
			errs = append(errs, fmt.Sprintf("item %q has unknown difficulty %q", it.ID, it.Difficulty))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
