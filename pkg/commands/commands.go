package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo      = &base.OutputOptions{}
	verbose bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "habitus",
		Short: base.Wrap80("Habit tracking on the command line: check-ins, streaks, freezes and reminders."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addNew(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addStats(topLevel)
	addCheck(topLevel)
	addUndo(topLevel)
	addToggle(topLevel)
	addFreeze(topLevel)
	addNote(topLevel)
	addMove(topLevel)
	addReport(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addArchive(topLevel)
	addRemind(topLevel)
	addInfo(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
}
