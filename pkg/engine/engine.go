// Package engine defines the contract of the native plotting engine and
// provides the default implementation.
//
// # Architecture
//
// The engine is the boundary between in-process columns and the external
// rendering client. It exposes one operation per chart kind. Each operation
// validates its inputs, serializes them into a versioned JSON [Spec] and
// returns an opaque [Ref]. A Ref is not displayed; the plot package turns it
// into a render handle that launches the client or exports the plot.
//
//	dispatcher → Engine.PlotScatter(ctx, clientPath, x, y, ...) → Ref → plot.New(ref)
//
// Tests substitute a recording fake for [Engine] so no client process is
// ever started.
//
// # Titles
//
// Every operation receives an already normalized title: "" asks the client
// to generate "<xlabel> vs. <ylabel>", " " suppresses the title, anything
// else is shown verbatim. See [Spec.DisplayTitle].
package engine

import (
	"context"

	"github.com/matzehuels/showviz/pkg/chart"
	"github.com/matzehuels/showviz/pkg/column"
)

// Ref is the opaque result of an engine call: a plot that has been built
// but not displayed.
type Ref struct {
	ID          string     // Unique plot identifier
	Kind        chart.Kind // Encoding the spec was built for
	ClientPath  string     // Client executable that displays or exports the plot
	Spec        []byte     // Encoded plot spec
	Fingerprint string     // Content hash of the spec, stable across IDs
}

// Engine builds plots, one operation per chart kind.
type Engine interface {
	PlotScatter(ctx context.Context, clientPath string, x, y *column.Column, xlabel, ylabel, title string) (Ref, error)
	PlotCategoricalHeatmap(ctx context.Context, clientPath string, x, y *column.Column, xlabel, ylabel, title string) (Ref, error)
	PlotHeatmap(ctx context.Context, clientPath string, x, y *column.Column, xlabel, ylabel, title string) (Ref, error)
	PlotBoxesAndWhiskers(ctx context.Context, clientPath string, x, y *column.Column, xlabel, ylabel, title string) (Ref, error)
	PlotColumnwiseSummary(ctx context.Context, clientPath string, table *column.Table) (Ref, error)
	PlotHistogram(ctx context.Context, clientPath string, values *column.Column, xlabel, ylabel, title string) (Ref, error)
	PlotItemFrequency(ctx context.Context, clientPath string, values *column.Column, xlabel, ylabel, title string) (Ref, error)
}
