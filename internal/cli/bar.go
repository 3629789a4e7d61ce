package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// chartOpts holds the flags shared by the bar and xy commands.
type chartOpts struct {
	output  string // output file path
	config  string // TOML configuration file
	header  bool   // first data row names the series
	heading string // chart heading override
	xTitle  string // x axis title override
	yTitle  string // y axis title override
	noCache bool   // bypass the artifact cache
}

func addChartFlags(cmd *cobra.Command, opts *chartOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with .ps extension)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML chart configuration file")
	cmd.Flags().BoolVar(&opts.header, "header", false, "treat the first data row as series names")
	cmd.Flags().StringVar(&opts.heading, "heading", "", "chart heading")
	cmd.Flags().StringVar(&opts.xTitle, "x-title", "", "x axis title")
	cmd.Flags().StringVar(&opts.yTitle, "y-title", "", "y axis title")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "re-render even if a cached artifact exists")
}

// barCommand creates the bar chart command.
func (c *CLI) barCommand() *cobra.Command {
	var opts chartOpts

	cmd := &cobra.Command{
		Use:   "bar [file]",
		Short: "Render a bar chart from delimited data",
		Long: `Render a vertical bar chart from a CSV file. The first column holds
the bar labels; every further column is one data series. Use --header
when the first row names the series.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runChart(cmd, kindBar, args[0], &opts)
		},
	}

	addChartFlags(cmd, &opts)
	return cmd
}

// runChart is the shared driver for the bar and xy commands.
func (c *CLI) runChart(cmd *cobra.Command, kind, input string, opts *chartOpts) error {
	fc, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	return c.runChartWithConfig(cmd, kind, input, opts, fc)
}

func (c *CLI) runChartWithConfig(cmd *cobra.Command, kind, input string, opts *chartOpts, fc fileConfig) error {
	ctx := withLogger(cmd.Context(), c.Logger)
	c.Logger.Infof("Rendering %s chart from %s", kind, input)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read data: %w", err)
	}

	params := renderParams{
		Kind:    kind,
		Header:  opts.header,
		Config:  fc,
		Heading: opts.heading,
		XTitle:  opts.xTitle,
		YTitle:  opts.yTitle,
	}

	prog := newProgress(c.Logger)
	artifact, cached, err := render(ctx, newCache(opts.noCache), params, data)
	if err != nil {
		printError("Rendering failed: %v", err)
		return err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".ps"
	}
	if err := os.WriteFile(output, artifact, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	prog.done("Chart written")
	printSuccess("Generated %s chart", kind)
	printFile(output)
	printStats(countSeries(data), countRows(data, opts.header), len(artifact), cached)
	return nil
}

// countRows estimates the data row count for status output.
func countRows(data []byte, header bool) int {
	rows := 0
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if strings.TrimSpace(line) != "" {
			rows++
		}
	}
	if header && rows > 0 {
		rows--
	}
	return rows
}

// countSeries estimates the series count for status output.
func countSeries(data []byte) int {
	lines := strings.SplitN(strings.TrimSpace(string(data)), "\n", 2)
	if len(lines) == 0 {
		return 0
	}
	cols := strings.Count(lines[0], ",")
	if cols < 1 {
		return 0
	}
	return cols
}
