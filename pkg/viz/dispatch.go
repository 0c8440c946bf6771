package viz

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/showviz/pkg/chart"
	"github.com/matzehuels/showviz/pkg/client"
	"github.com/matzehuels/showviz/pkg/column"
	"github.com/matzehuels/showviz/pkg/engine"
	"github.com/matzehuels/showviz/pkg/errors"
	"github.com/matzehuels/showviz/pkg/observability"
	"github.com/matzehuels/showviz/pkg/plot"
)

// Locator resolves the rendering client path.
type Locator interface {
	Locate() (string, error)
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func() (string, error)

// Locate calls f().
func (f LocatorFunc) Locate() (string, error) { return f() }

// Dispatcher routes plot requests to the engine.
//
// The zero value is not usable; set Engine and Locator or use NewDispatcher.
type Dispatcher struct {
	Engine  engine.Engine
	Locator Locator

	// Displayer receives plots from Show. Nil means the process-wide
	// display target (see plot.SetTarget).
	Displayer plot.Displayer

	// PlotOptions are applied to every returned plot.
	PlotOptions []plot.Option

	Logger *log.Logger
}

// NewDispatcher creates a dispatcher over the native engine that locates the
// client for the running process on every call.
func NewDispatcher(logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Dispatcher{
		Engine:  engine.NewNative(logger),
		Locator: LocatorFunc(client.Locate),
		Logger:  logger,
	}
}

func (d *Dispatcher) logger() *log.Logger {
	if d.Logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return d.Logger
}

// =============================================================================
// Automatic selection
// =============================================================================

// Show selects an encoding for x and y, builds the plot and displays it.
func (d *Dispatcher) Show(ctx context.Context, x, y *column.Column, opts ...Option) error {
	start := time.Now()
	observability.Dispatch().OnDispatchStart(ctx, "auto")
	kind := chart.Invalid
	err := d.show(ctx, x, y, opts, &kind)
	observability.Dispatch().OnDispatchComplete(ctx, kindLabel(kind), time.Since(start), err)
	return err
}

func (d *Dispatcher) show(ctx context.Context, x, y *column.Column, opts []Option, kind *chart.Kind) error {
	path, err := d.Locator.Locate()
	if err != nil {
		return err
	}
	l := resolve(opts, DefaultXLabel, DefaultYLabel)

	*kind, err = chart.SelectColumns(x, y)
	if err != nil {
		return err
	}
	d.logger().Debug("selected visualization",
		"kind", *kind, "x", x.Kind(), "y", y.Kind(), "rows", x.Len())

	op, err := d.pairOp(*kind)
	if err != nil {
		return err
	}
	ref, err := op(ctx, path, x, y, l.x, l.y, l.title)
	if err != nil {
		return err
	}
	return d.display(ctx, plot.New(ref, d.PlotOptions...))
}

func (d *Dispatcher) display(ctx context.Context, p *plot.Plot) error {
	if d.Displayer != nil {
		return d.Displayer.Display(ctx, p)
	}
	return p.Show(ctx)
}

type pairFunc func(ctx context.Context, clientPath string, x, y *column.Column, xlabel, ylabel, title string) (engine.Ref, error)

// pairOp returns the engine operation for a two-column kind.
func (d *Dispatcher) pairOp(kind chart.Kind) (pairFunc, error) {
	switch kind {
	case chart.Scatter:
		return d.Engine.PlotScatter, nil
	case chart.HeatMap:
		return d.Engine.PlotHeatmap, nil
	case chart.BoxAndWhisker:
		return d.Engine.PlotBoxesAndWhiskers, nil
	case chart.CategoricalHeatMap:
		return d.Engine.PlotCategoricalHeatmap, nil
	default:
		return nil, errors.New(errors.ErrCodeInternal, "%s is not a two-column chart", kind)
	}
}

// =============================================================================
// Forced encodings
// =============================================================================

// Scatter plots x against y as individual points.
func (d *Dispatcher) Scatter(ctx context.Context, x, y *column.Column, opts ...Option) (*plot.Plot, error) {
	return d.pair(ctx, chart.Scatter, x, y, opts)
}

// Heatmap plots the binned density of x against y.
func (d *Dispatcher) Heatmap(ctx context.Context, x, y *column.Column, opts ...Option) (*plot.Plot, error) {
	return d.pair(ctx, chart.HeatMap, x, y, opts)
}

// CategoricalHeatmap plots co-occurrence counts of two text columns.
func (d *Dispatcher) CategoricalHeatmap(ctx context.Context, x, y *column.Column, opts ...Option) (*plot.Plot, error) {
	return d.pair(ctx, chart.CategoricalHeatMap, x, y, opts)
}

// BoxPlot plots the distribution of numeric x for each category of text y.
func (d *Dispatcher) BoxPlot(ctx context.Context, x, y *column.Column, opts ...Option) (*plot.Plot, error) {
	return d.pair(ctx, chart.BoxAndWhisker, x, y, opts)
}

// Histogram plots the distribution of a numeric column.
func (d *Dispatcher) Histogram(ctx context.Context, values *column.Column, opts ...Option) (*plot.Plot, error) {
	return d.dispatch(ctx, chart.Histogram, func(path string) (engine.Ref, error) {
		l := resolve(opts, DefaultValuesLabel, DefaultCountLabel)
		return d.Engine.PlotHistogram(ctx, path, values, l.x, l.y, l.title)
	})
}

// ItemFrequency plots how often each value of a text column occurs.
func (d *Dispatcher) ItemFrequency(ctx context.Context, values *column.Column, opts ...Option) (*plot.Plot, error) {
	return d.dispatch(ctx, chart.ItemFrequency, func(path string) (engine.Ref, error) {
		l := resolve(opts, DefaultValuesLabel, DefaultCountLabel)
		return d.Engine.PlotItemFrequency(ctx, path, values, l.x, l.y, l.title)
	})
}

// ColumnwiseSummary plots a summary of every column of the table.
func (d *Dispatcher) ColumnwiseSummary(ctx context.Context, table *column.Table) (*plot.Plot, error) {
	return d.dispatch(ctx, chart.ColumnSummary, func(path string) (engine.Ref, error) {
		return d.Engine.PlotColumnwiseSummary(ctx, path, table)
	})
}

func (d *Dispatcher) pair(ctx context.Context, kind chart.Kind, x, y *column.Column, opts []Option) (*plot.Plot, error) {
	return d.dispatch(ctx, kind, func(path string) (engine.Ref, error) {
		op, err := d.pairOp(kind)
		if err != nil {
			return engine.Ref{}, err
		}
		l := resolve(opts, DefaultXLabel, DefaultYLabel)
		return op(ctx, path, x, y, l.x, l.y, l.title)
	})
}

// dispatch locates the client, lets build call the engine and wraps the result.
func (d *Dispatcher) dispatch(ctx context.Context, kind chart.Kind, build func(clientPath string) (engine.Ref, error)) (p *plot.Plot, err error) {
	start := time.Now()
	observability.Dispatch().OnDispatchStart(ctx, kind.String())
	defer func() {
		observability.Dispatch().OnDispatchComplete(ctx, kind.String(), time.Since(start), err)
	}()

	path, err := d.Locator.Locate()
	if err != nil {
		return nil, err
	}
	ref, err := build(path)
	if err != nil {
		return nil, err
	}
	d.logger().Debug("built plot", "kind", kind, "id", ref.ID)
	return plot.New(ref, d.PlotOptions...), nil
}

func kindLabel(k chart.Kind) string {
	if k == chart.Invalid {
		return "auto"
	}
	return k.String()
}
