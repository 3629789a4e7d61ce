package cli

import (
	"github.com/spf13/cobra"
)

// xyCommand creates the XY chart command.
func (c *CLI) xyCommand() *cobra.Command {
	var opts chartOpts
	var noLines, noPoints bool

	cmd := &cobra.Command{
		Use:   "xy [file]",
		Short: "Render an XY line/scatter chart from delimited data",
		Long: `Render an XY chart from a CSV file. The first column holds the x
values; every further column is one data series. Series draw as lines
with point glyphs; --no-lines or --no-points drops either layer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runXY(cmd, args[0], &opts, noLines, noPoints)
		},
	}

	addChartFlags(cmd, &opts)
	cmd.Flags().BoolVar(&noLines, "no-lines", false, "skip connecting lines")
	cmd.Flags().BoolVar(&noPoints, "no-points", false, "skip point glyphs")
	return cmd
}

func (c *CLI) runXY(cmd *cobra.Command, input string, opts *chartOpts, noLines, noPoints bool) error {
	// The toggles override the config file when given, since a flag on
	// the command line is the most specific intent.
	if noLines || noPoints {
		fc, err := loadConfig(opts.config)
		if err != nil {
			return err
		}
		f := false
		if noLines {
			fc.Chart.Lines = &f
		}
		if noPoints {
			fc.Chart.Points = &f
		}
		return c.runChartWithConfig(cmd, kindXY, input, opts, fc)
	}
	return c.runChart(cmd, kindXY, input, opts)
}
