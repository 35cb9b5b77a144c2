package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: base.Wrap80("Browse and navigate a horizontal timeline of events from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addWindow(topLevel)
	addJump(topLevel)
	addStep(topLevel)
	addToday(topLevel)
	addZoom(topLevel)
	addPan(topLevel)
	addLevels(topLevel)
	addLabels(topLevel)
	addClusters(topLevel)
	addInfo(topLevel)
	addDemo(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
