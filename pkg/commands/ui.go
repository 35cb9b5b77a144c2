package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/majdbaddour/timeline/pkg/commands/options"
	"github.com/majdbaddour/timeline/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	ro := &options.RowsOptions{}
	selections := ""

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive timeline",
		Example: `
timeline ui --rows events.yaml
timeline ui --rows events.json --selections picked.jsonl
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := ro.Rows()
			if err != nil {
				return err
			}
			s, err := loadSession()
			if err != nil {
				return err
			}
			defer s.cleanup()

			var out io.Writer
			if selections != "" {
				f, err := os.OpenFile(selections, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			i := ui.UI{
				Controller:  s.ctrl,
				Watcher:     s.disk,
				Rows:        rows,
				ResizeDelay: s.cfg.ResizeDelay,
				Selections:  out,
			}
			return i.Do(context.Background())
		},
	}

	options.AddRowsArgs(cmd, ro)
	cmd.Flags().StringVar(&selections, "selections", "", "Append activated points to this file as JSON lines.")

	topLevel.AddCommand(cmd)
}
