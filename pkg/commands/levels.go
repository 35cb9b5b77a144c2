package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/majdbaddour/timeline/pkg/commands/options"
	"github.com/majdbaddour/timeline/pkg/runner/clusters"
	"github.com/majdbaddour/timeline/pkg/runner/labels"
	"github.com/majdbaddour/timeline/pkg/runner/levels"
)

func addLevels(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the calendar levels and mark the one in use.",
		Example: `
timeline levels
timeline levels --scale=3h
timeline levels --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.cleanup()
			w, err := wo.Apply(s.disk.Get(), s.table, s.now)
			if err != nil {
				return oo.HandleError(err)
			}
			l := levels.Levels{
				Table:  s.table,
				Window: w,
				JSON:   oo.JSON,
			}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addLabels(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Print the axis labels of the window.",
		Example: `
timeline labels
timeline labels --level month --at 2024-02-14
timeline labels --scale=1w --width=1200 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.cleanup()
			w, err := wo.Apply(s.disk.Get(), s.table, s.now)
			if err != nil {
				return oo.HandleError(err)
			}
			l := labels.Labels{
				Table:  s.table,
				Window: w,
				Width:  s.width(wo.Width),
				JSON:   oo.JSON,
			}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addClusters(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	ro := &options.RowsOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "Group the points of each row as they would be drawn.",
		Example: `
timeline clusters --rows events.yaml
timeline clusters --rows events.json --level day --at 2024-02-14 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.cleanup()
			w, err := wo.Apply(s.disk.Get(), s.table, s.now)
			if err != nil {
				return oo.HandleError(err)
			}
			rows, err := ro.Rows()
			if err != nil {
				return oo.HandleError(err)
			}
			c := clusters.Clusters{
				Table:  s.table,
				Window: w,
				Width:  s.width(wo.Width),
				Rows:   rows,
				JSON:   oo.JSON,
			}
			return oo.HandleError(c.Do(context.Background()))
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddRowsArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
