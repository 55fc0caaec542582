package cli

import (
	"github.com/spf13/cobra"
)

func newNullsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nulls FILE",
		Short: "Count missing values per column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			t, err := e.loadTable(args[0])
			if err != nil {
				return err
			}
			defer t.Release()

			return e.renderer.Nulls(e.cleaner().IdentifyNulls(t))
		},
	}
}
