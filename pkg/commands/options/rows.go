package options

import (
	"github.com/spf13/cobra"

	"github.com/majdbaddour/timeline/pkg/row"
)

// RowsOptions names the rows file to plot.
type RowsOptions struct {
	File string
}

func AddRowsArgs(cmd *cobra.Command, o *RowsOptions) {
	cmd.Flags().StringVarP(&o.File, "rows", "r", "",
		"JSON or YAML file of rows to plot.")
}

// Rows loads the rows file, or returns no rows when none was given.
func (o *RowsOptions) Rows() ([]row.Row, error) {
	if o.File == "" {
		return nil, nil
	}
	return row.Load(o.File)
}
