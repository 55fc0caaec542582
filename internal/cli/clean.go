package cli

import (
	"github.com/paveg/tabclean/internal/render"
	"github.com/spf13/cobra"
)

func newCleanCommand() *cobra.Command {
	var skipFill, skipOutliers bool

	cmd := &cobra.Command{
		Use:   "clean FILE",
		Short: "Fill missing values and flag outliers",
		Long: `Fill missing values by column position, then flag numeric values outside
the IQR fences of their column. The cleaned table is printed; the input file
is not modified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := envFrom(cmd)
			t, err := e.loadTable(args[0])
			if err != nil {
				return err
			}
			defer t.Release()

			c := e.cleaner()
			report := render.CleanReport{Before: c.IdentifyNulls(t)}
			if !skipFill {
				c.FillNulls(t)
			}
			if !skipOutliers {
				c.FlagOutliers(t)
			}
			report.After = c.IdentifyNulls(t)

			return e.renderer.Clean(report, t)
		},
	}

	cmd.Flags().BoolVar(&skipFill, "skip-fill", false, "Do not fill missing values")
	cmd.Flags().BoolVar(&skipOutliers, "skip-outliers", false, "Do not flag outliers")
	return cmd
}
