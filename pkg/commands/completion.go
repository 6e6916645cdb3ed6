package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(habitus completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(habitus completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// habitCompletions offers the titles of stored habits starting with
// toComplete.
func habitCompletions(toComplete string) []string {
	p, err := store.Load(nil, nil)
	if err != nil {
		return nil
	}
	return matchTitles(p.Load(context.Background()), toComplete)
}

func matchTitles(all []*habit.Habit, toComplete string) []string {
	prefix := strings.ToLower(toComplete)
	titles := make([]string, 0, len(all))
	for _, h := range all {
		if strings.HasPrefix(strings.ToLower(h.Title), prefix) {
			titles = append(titles, h.Title)
		}
	}
	return titles
}

// completeHabit completes the first positional argument with a habit title.
func completeHabit(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return habitCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}
