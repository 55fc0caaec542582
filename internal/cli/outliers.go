package cli

import (
	"github.com/paveg/tabclean/internal/clean"
	"github.com/paveg/tabclean/internal/render"
	"github.com/spf13/cobra"
)

func newOutliersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "outliers FILE",
		Short: "Show the IQR fences of each numeric column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			t, err := e.loadTable(args[0])
			if err != nil {
				return err
			}
			defer t.Release()

			var bounds []render.ColumnBounds
			for i := 0; i < t.Width(); i++ {
				col := t.ColumnAt(i)
				b, ok := clean.ComputeBounds(col)
				if !ok {
					continue
				}
				bounds = append(bounds, render.ColumnBounds{Column: col.Name(), Bounds: b})
			}
			return e.renderer.Bounds(bounds)
		},
	}
}
