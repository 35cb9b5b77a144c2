package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/majdbaddour/timeline/pkg/row"
)

func addDemo(topLevel *cobra.Command) {
	format := string(row.YAML)
	file := ""

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write sample rows around today to try the timeline with.",
		Example: `
timeline demo > events.yaml
timeline demo --file events.json && timeline ui --rows events.json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := row.Format(format)
			if f != row.YAML && f != row.JSON {
				return fmt.Errorf("unknown format %q, use yaml or json", format)
			}
			out := cmd.OutOrStdout()
			if file != "" {
				if format == string(row.YAML) && !cmd.Flags().Changed("format") {
					f = row.FormatOf(file)
				}
				fh, err := os.Create(file)
				if err != nil {
					return err
				}
				defer fh.Close()
				out = fh
			}
			return row.Encode(out, row.Sample(time.Now()), f)
		},
	}

	cmd.Flags().StringVar(&format, "format", format, "Output format. One of 'yaml' or 'json'.")
	cmd.Flags().StringVar(&file, "file", "", "Write to this file, the format follows its extension.")

	topLevel.AddCommand(cmd)
}
