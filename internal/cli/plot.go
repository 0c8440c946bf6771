package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/showviz/pkg/column"
	"github.com/matzehuels/showviz/pkg/plot"
	"github.com/matzehuels/showviz/pkg/viz"
)

// plotOpts holds the flags shared by the plotting commands.
type plotOpts struct {
	x      string // x column name
	y      string // y column name
	column string // column name for single-column plots
	xlabel string
	ylabel string
	title  string
	output string // export to this file instead of displaying
}

func addLabelFlags(cmd *cobra.Command, opts *plotOpts) {
	cmd.Flags().StringVar(&opts.xlabel, "xlabel", "", "x axis label")
	cmd.Flags().StringVar(&opts.ylabel, "ylabel", "", "y axis label")
	cmd.Flags().StringVar(&opts.title, "title", "", `plot title; "" hides it (default "<xlabel> vs. <ylabel>")`)
}

func addPairFlags(cmd *cobra.Command, opts *plotOpts) {
	cmd.Flags().StringVarP(&opts.x, "x", "x", "", "x column (picked interactively if omitted)")
	cmd.Flags().StringVarP(&opts.y, "y", "y", "", "y column (picked interactively if omitted)")
	addLabelFlags(cmd, opts)
}

func addOutputFlag(cmd *cobra.Command, opts *plotOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "save to file (.svg, .png, .pdf, .json) instead of displaying")
}

// vizOptions converts flags into plot options. Only flags given on the
// command line are passed, so an unset --title keeps the generated title
// while --title "" removes it.
func vizOptions(cmd *cobra.Command, opts *plotOpts) []viz.Option {
	var out []viz.Option
	if cmd.Flags().Changed("xlabel") {
		out = append(out, viz.WithXLabel(opts.xlabel))
	}
	if cmd.Flags().Changed("ylabel") {
		out = append(out, viz.WithYLabel(opts.ylabel))
	}
	if cmd.Flags().Changed("title") {
		out = append(out, viz.WithTitle(opts.title))
	}
	return out
}

// loadPair reads a CSV file and resolves the x and y columns.
// The caller releases the returned table and columns.
func loadPair(path string, opts *plotOpts) (*column.Table, *column.Column, *column.Column, error) {
	t, err := loadTable(path)
	if err != nil {
		return nil, nil, nil, err
	}
	cols, err := resolveColumns(t,
		columnRequest{flag: "x", name: opts.x, prompt: "Select x column"},
		columnRequest{flag: "y", name: opts.y, prompt: "Select y column"},
	)
	if err != nil {
		t.Release()
		return nil, nil, nil, err
	}
	return t, cols[0], cols[1], nil
}

// =============================================================================
// show
// =============================================================================

func (c *CLI) showCommand() *cobra.Command {
	var opts plotOpts

	cmd := &cobra.Command{
		Use:   "show <csv>",
		Short: "Plot two columns with an automatically chosen chart",
		Long: `Plot two columns of a CSV file. The chart is chosen from the column types:

  numeric x, numeric y   scatter plot (heat map above 5000 rows)
  numeric x, text y      box and whisker plot
  text x, text y         categorical heat map

Use "showviz explain" to see the decision for a pair of columns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd, args[0], &opts)
		},
	}
	addPairFlags(cmd, &opts)
	return cmd
}

func (c *CLI) runShow(cmd *cobra.Command, path string, opts *plotOpts) error {
	ctx := cmd.Context()
	t, x, y, err := loadPair(path, opts)
	if err != nil {
		return err
	}
	defer t.Release()
	defer x.Release()
	defer y.Release()

	d, err := c.newDispatcher()
	if err != nil {
		return err
	}

	c.Logger.Debug("plotting", "x", describeColumn(x), "y", describeColumn(y))
	err = withSpinner(ctx, "Opening plot...", func() error {
		return d.Show(ctx, x, y, vizOptions(cmd, opts)...)
	})
	if err != nil {
		return err
	}
	printSuccess("Plotted %s against %s", StyleHighlight.Render(x.Name()), StyleHighlight.Render(y.Name()))
	printDetail("target %s", plot.Target())
	return nil
}

// =============================================================================
// Forced two-column charts
// =============================================================================

type pairOp func(d *viz.Dispatcher, ctx context.Context, x, y *column.Column, opts ...viz.Option) (*plot.Plot, error)

func (c *CLI) pairCommands() []*cobra.Command {
	return []*cobra.Command{
		c.pairCommand("scatter", "Plot two numeric columns as points", (*viz.Dispatcher).Scatter),
		c.pairCommand("heatmap", "Plot the density of two numeric columns", (*viz.Dispatcher).Heatmap),
		c.pairCommand("categorical-heatmap", "Plot co-occurrence counts of two text columns", (*viz.Dispatcher).CategoricalHeatmap),
		c.pairCommand("box-plot", "Plot a numeric column per category of a text column", (*viz.Dispatcher).BoxPlot),
	}
}

func (c *CLI) pairCommand(name, short string, op pairOp) *cobra.Command {
	var opts plotOpts

	cmd := &cobra.Command{
		Use:   name + " <csv>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, x, y, err := loadPair(args[0], &opts)
			if err != nil {
				return err
			}
			defer t.Release()
			defer x.Release()
			defer y.Release()

			d, err := c.newDispatcher()
			if err != nil {
				return err
			}
			p, err := op(d, ctx, x, y, vizOptions(cmd, &opts)...)
			if err != nil {
				return err
			}
			return c.finish(ctx, p, opts.output)
		},
	}
	addPairFlags(cmd, &opts)
	addOutputFlag(cmd, &opts)
	return cmd
}

// =============================================================================
// Single-column charts
// =============================================================================

type singleOp func(d *viz.Dispatcher, ctx context.Context, values *column.Column, opts ...viz.Option) (*plot.Plot, error)

func (c *CLI) histogramCommand() *cobra.Command {
	return c.singleCommand("histogram", "Plot the distribution of a numeric column", (*viz.Dispatcher).Histogram)
}

func (c *CLI) itemFrequencyCommand() *cobra.Command {
	return c.singleCommand("item-frequency", "Plot how often each value of a text column occurs", (*viz.Dispatcher).ItemFrequency)
}

func (c *CLI) singleCommand(name, short string, op singleOp) *cobra.Command {
	var opts plotOpts

	cmd := &cobra.Command{
		Use:   name + " <csv>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := loadTable(args[0])
			if err != nil {
				return err
			}
			defer t.Release()

			cols, err := resolveColumns(t, columnRequest{flag: "column", name: opts.column, prompt: "Select column"})
			if err != nil {
				return err
			}
			defer cols[0].Release()

			d, err := c.newDispatcher()
			if err != nil {
				return err
			}
			p, err := op(d, ctx, cols[0], vizOptions(cmd, &opts)...)
			if err != nil {
				return err
			}
			return c.finish(ctx, p, opts.output)
		},
	}
	cmd.Flags().StringVarP(&opts.column, "column", "c", "", "column to plot (picked interactively if omitted)")
	addLabelFlags(cmd, &opts)
	addOutputFlag(cmd, &opts)
	return cmd
}

// =============================================================================
// summary
// =============================================================================

func (c *CLI) summaryCommand() *cobra.Command {
	var opts plotOpts

	cmd := &cobra.Command{
		Use:   "summary <csv>",
		Short: "Summarize every column of a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := loadTable(args[0])
			if err != nil {
				return err
			}
			defer t.Release()

			d, err := c.newDispatcher()
			if err != nil {
				return err
			}
			p, err := d.ColumnwiseSummary(ctx, t)
			if err != nil {
				return err
			}
			return c.finish(ctx, p, opts.output)
		},
	}
	addOutputFlag(cmd, &opts)
	return cmd
}

// finish saves p when output is set and displays it otherwise.
func (c *CLI) finish(ctx context.Context, p *plot.Plot, output string) error {
	if output != "" {
		prog := newProgress(c.Logger)
		err := withSpinner(ctx, "Exporting...", func() error {
			return p.Save(ctx, output)
		})
		if err != nil {
			return err
		}
		printPlot(p)
		printFile(output)
		prog.done("Exported " + output)
		return nil
	}

	if err := withSpinner(ctx, "Opening plot...", func() error { return p.Show(ctx) }); err != nil {
		return err
	}
	printPlot(p)
	if plot.Target() == plot.TargetNone {
		printWarning("display target is none; use -o to save the plot")
	}
	return nil
}
