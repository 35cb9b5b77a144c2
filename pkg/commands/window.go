package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/majdbaddour/timeline/pkg/commands/options"
	"github.com/majdbaddour/timeline/pkg/runner/window"
)

func addWindow(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	reset := false

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Show the committed window, or reset it to today.",
		Example: `
timeline window
timeline window --reset
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.cleanup()
			w := window.Window{
				Table:    s.table,
				Store:    s.disk,
				Reset:    reset,
				Resetter: s.disk,
				JSON:     oo.JSON,
			}
			return oo.HandleError(w.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Replace the window with the start of today.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
