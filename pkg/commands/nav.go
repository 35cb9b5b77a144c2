package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/majdbaddour/timeline/pkg/calendar"
	"github.com/majdbaddour/timeline/pkg/commands/options"
	"github.com/majdbaddour/timeline/pkg/runner/nav"
	"github.com/majdbaddour/timeline/pkg/timeutil"
)

func addJump(topLevel *cobra.Command) {
	ao := &options.AtOptions{}
	i := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "jump [level]",
		Short: "Pin a calendar level and show its unit containing an instant.",
		Example: `
timeline jump month
timeline jump week --at 2024-02-14
timeline jump b-year
timeline jump -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		ValidArgsFunction: levelCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.cleanup()

			at, err := ao.Time(s.now, s.table.Location())
			if err != nil {
				return oo.HandleError(err)
			}
			j := nav.Jump{
				Controller:  s.ctrl,
				At:          at,
				Interactive: i.Interactive,
				Output:      nav.Output{JSON: oo.JSON},
			}
			if len(args) == 1 {
				if j.Level, err = options.ResolveLevel(s.table, args[0]); err != nil {
					return oo.HandleError(err)
				}
			}
			return oo.HandleError(j.Do(context.Background()))
		},
	}

	options.AddAtArgs(cmd, ao)
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addStep(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	back := false
	count := 1

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Move to the next unit of the current level.",
		Example: `
timeline step
timeline step --back --count 3
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.cleanup()
			st := nav.Step{
				Controller: s.ctrl,
				Back:       back,
				Count:      count,
				Output:     nav.Output{JSON: oo.JSON},
			}
			return oo.HandleError(st.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVarP(&back, "back", "b", false, "Move to the previous unit instead.")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of units to move.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addToday(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the day containing now.",
		Example: `
timeline today
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.cleanup()
			t := nav.Today{
				Controller: s.ctrl,
				Now:        time.Now(),
				Output:     nav.Output{JSON: oo.JSON},
			}
			return oo.HandleError(t.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addZoom(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	times := 1
	to := &options.Span{}

	cmd := &cobra.Command{
		Use:   "zoom [in|out]",
		Short: "Zoom around the middle of the window.",
		Example: `
timeline zoom in
timeline zoom out --times 4
timeline zoom --to 1w
`,
		ValidArgs: []string{"in", "out"},
		Args: func(cmd *cobra.Command, args []string) error {
			if to.IsSet() {
				return cobra.NoArgs(cmd, args)
			}
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return err
			}
			return cobra.OnlyValidArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if times < 1 {
				return oo.HandleError(errors.New("--times must be at least 1"))
			}
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.cleanup()

			z := nav.Zoom{
				Controller: s.ctrl,
				Output:     nav.Output{JSON: oo.JSON},
			}
			switch {
			case to.IsSet():
				z.To = to.MS
			case args[0] == "in":
				z.Steps = -times
			default:
				z.Steps = times
			}
			return oo.HandleError(z.Do(context.Background()))
		},
	}

	cmd.Flags().IntVar(&times, "times", 1, "Apply the zoom factor this many times.")
	cmd.Flags().Var(to, "to", "Set the window span directly, example: --to=3d.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addPan(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	back := false

	cmd := &cobra.Command{
		Use:   "pan <span>",
		Short: "Move the window later in time, or earlier with --back.",
		Example: `
timeline pan 1d
timeline pan 90m --back
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			by, _, err := timeutil.ParseSpan(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := loadSession()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.cleanup()
			p := nav.Pan{
				Controller: s.ctrl,
				By:         by,
				Back:       back,
				Output:     nav.Output{JSON: oo.JSON},
			}
			return oo.HandleError(p.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVarP(&back, "back", "b", false, "Move to earlier time.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func levelCompletions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	levels := calendar.New(time.Local).Levels()
	names := make([]string, 0, len(levels))
	for _, l := range levels {
		names = append(names, fmt.Sprintf("%s\t%s", l.Name, l.Label))
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
