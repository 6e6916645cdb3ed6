// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/habit"
)

// CategoryOptions filters habits by category.
type CategoryOptions struct {
	Category string
}

// AddCategoryArgs wires the category filter flag on the provided command.
func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Only show habits in this category ("+categoryNames()+").")
	_ = cmd.RegisterFlagCompletionFunc("category", completeCategory)
}

// GetCategory parses the flag. Empty selects every category.
func (o *CategoryOptions) GetCategory() (habit.Category, error) {
	return habit.ParseCategory(o.Category)
}

// CategoryChoices lists the category names a prompt can offer.
func CategoryChoices() []string {
	names := make([]string, 0, len(habit.AllCategories()))
	for _, c := range habit.AllCategories() {
		names = append(names, string(c))
	}
	return names
}

func categoryNames() string {
	return strings.Join(CategoryChoices(), ", ")
}

func completeCategory(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, c := range habit.AllCategories() {
		if strings.HasPrefix(string(c), strings.ToLower(toComplete)) {
			out = append(out, string(c))
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
