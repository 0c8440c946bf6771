package viz

import (
	"context"

	"github.com/matzehuels/showviz/pkg/column"
	"github.com/matzehuels/showviz/pkg/plot"
)

// Show selects an encoding for x and y and displays the plot on the
// process-wide display target.
func Show(ctx context.Context, x, y *column.Column, opts ...Option) error {
	return NewDispatcher(nil).Show(ctx, x, y, opts...)
}

// Scatter plots x against y as individual points.
func Scatter(ctx context.Context, x, y *column.Column, opts ...Option) (*plot.Plot, error) {
	return NewDispatcher(nil).Scatter(ctx, x, y, opts...)
}

// Heatmap plots the binned density of x against y.
func Heatmap(ctx context.Context, x, y *column.Column, opts ...Option) (*plot.Plot, error) {
	return NewDispatcher(nil).Heatmap(ctx, x, y, opts...)
}

// CategoricalHeatmap plots co-occurrence counts of two text columns.
func CategoricalHeatmap(ctx context.Context, x, y *column.Column, opts ...Option) (*plot.Plot, error) {
	return NewDispatcher(nil).CategoricalHeatmap(ctx, x, y, opts...)
}

// BoxPlot plots the distribution of numeric x for each category of text y.
func BoxPlot(ctx context.Context, x, y *column.Column, opts ...Option) (*plot.Plot, error) {
	return NewDispatcher(nil).BoxPlot(ctx, x, y, opts...)
}

// Histogram plots the distribution of a numeric column.
func Histogram(ctx context.Context, values *column.Column, opts ...Option) (*plot.Plot, error) {
	return NewDispatcher(nil).Histogram(ctx, values, opts...)
}

// ItemFrequency plots how often each value of a text column occurs.
func ItemFrequency(ctx context.Context, values *column.Column, opts ...Option) (*plot.Plot, error) {
	return NewDispatcher(nil).ItemFrequency(ctx, values, opts...)
}

// ColumnwiseSummary plots a summary of every column of the table.
func ColumnwiseSummary(ctx context.Context, table *column.Table) (*plot.Plot, error) {
	return NewDispatcher(nil).ColumnwiseSummary(ctx, table)
}
