package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/majdbaddour/timeline/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the configuration and where the window is stored.",
		Example: `
timeline info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := loadSession()
			if err != nil {
				return err
			}
			defer s.cleanup()
			n := info.Info{
				Config: s.cfg,
				Path:   s.disk.Path(),
				Store:  s.disk,
				Table:  s.table,
			}
			return n.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
