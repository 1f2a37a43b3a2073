package client

import (
	"fmt"
	"io"
	"sort"
)

// Grocery lists are ephemeral: derived from a generated plan on demand and
// kept only in memory or exported as text.

// GroceryByCategory groups items by category, preserving each category's
// item order.
func GroceryByCategory(items []GroceryItem) map[string][]GroceryItem {
	grouped := make(map[string][]GroceryItem)
	for _, it := range items {
		grouped[it.Category] = append(grouped[it.Category], it)
	}
	return grouped
}

// WriteGroceryList renders items grouped by category as plain text, the
// shape used for shopping-list file exports. Categories are emitted in
// sorted order so the output is stable.
func WriteGroceryList(w io.Writer, items []GroceryItem) error {
	grouped := GroceryByCategory(items)
	cats := make([]string, 0, len(grouped))
	for c := range grouped {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	if _, err := fmt.Fprintln(w, "Grocery List"); err != nil {
		return err
	}
	for _, cat := range cats {
		if _, err := fmt.Fprintf(w, "\n%s:\n", cat); err != nil {
			return err
		}
		for _, it := range grouped[cat] {
			if _, err := fmt.Fprintf(w, "  - %s (%s)\n", it.Name, it.Quantity); err != nil {
				return err
			}
		}
	}
	return nil
}
