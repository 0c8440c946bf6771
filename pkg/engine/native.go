package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/showviz/pkg/chart"
	"github.com/matzehuels/showviz/pkg/column"
	"github.com/matzehuels/showviz/pkg/errors"
)

// Native is the default engine. It validates inputs and encodes them into a
// JSON spec for the rendering client, which computes all statistics itself.
//
// Native holds no mutable state; one instance may serve concurrent calls.
type Native struct {
	Logger *log.Logger

	newID func() string
	now   func() time.Time
}

// NewNative creates the default engine. A nil logger discards output.
func NewNative(logger *log.Logger) *Native {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Native{
		Logger: logger,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

// Plot selects the encoding with chart.SelectColumns and builds it.
// It is the engine-side counterpart of the dispatcher's auto-selection.
func (n *Native) Plot(ctx context.Context, clientPath string, x, y *column.Column, xlabel, ylabel, title string) (Ref, error) {
	kind, err := chart.SelectColumns(x, y)
	if err != nil {
		return Ref{}, err
	}
	switch kind {
	case chart.Scatter:
		return n.PlotScatter(ctx, clientPath, x, y, xlabel, ylabel, title)
	case chart.HeatMap:
		return n.PlotHeatmap(ctx, clientPath, x, y, xlabel, ylabel, title)
	case chart.BoxAndWhisker:
		return n.PlotBoxesAndWhiskers(ctx, clientPath, x, y, xlabel, ylabel, title)
	default:
		return n.PlotCategoricalHeatmap(ctx, clientPath, x, y, xlabel, ylabel, title)
	}
}

// PlotScatter plots individual points. Both columns must be numeric.
func (n *Native) PlotScatter(ctx context.Context, clientPath string, x, y *column.Column, xlabel, ylabel, title string) (Ref, error) {
	return n.pair(ctx, chart.Scatter, column.KindNumeric, column.KindNumeric, clientPath, x, y, xlabel, ylabel, title)
}

// PlotHeatmap plots binned point density. Both columns must be numeric.
func (n *Native) PlotHeatmap(ctx context.Context, clientPath string, x, y *column.Column, xlabel, ylabel, title string) (Ref, error) {
	return n.pair(ctx, chart.HeatMap, column.KindNumeric, column.KindNumeric, clientPath, x, y, xlabel, ylabel, title)
}

// PlotBoxesAndWhiskers plots the distribution of numeric x per category of textual y.
func (n *Native) PlotBoxesAndWhiskers(ctx context.Context, clientPath string, x, y *column.Column, xlabel, ylabel, title string) (Ref, error) {
	return n.pair(ctx, chart.BoxAndWhisker, column.KindNumeric, column.KindText, clientPath, x, y, xlabel, ylabel, title)
}

// PlotCategoricalHeatmap plots co-occurrence counts of two textual columns.
func (n *Native) PlotCategoricalHeatmap(ctx context.Context, clientPath string, x, y *column.Column, xlabel, ylabel, title string) (Ref, error) {
	return n.pair(ctx, chart.CategoricalHeatMap, column.KindText, column.KindText, clientPath, x, y, xlabel, ylabel, title)
}

// PlotHistogram plots the distribution of a numeric column.
func (n *Native) PlotHistogram(ctx context.Context, clientPath string, values *column.Column, xlabel, ylabel, title string) (Ref, error) {
	return n.single(ctx, chart.Histogram, column.KindNumeric, clientPath, values, xlabel, ylabel, title)
}

// PlotItemFrequency plots value counts of a textual column.
func (n *Native) PlotItemFrequency(ctx context.Context, clientPath string, values *column.Column, xlabel, ylabel, title string) (Ref, error) {
	return n.single(ctx, chart.ItemFrequency, column.KindText, clientPath, values, xlabel, ylabel, title)
}

// PlotColumnwiseSummary plots a summary of every column of a table.
// Columns of any kind are accepted; the client decides how to summarize them.
func (n *Native) PlotColumnwiseSummary(ctx context.Context, clientPath string, table *column.Table) (Ref, error) {
	if err := ctx.Err(); err != nil {
		return Ref{}, err
	}
	if table == nil || table.NumCols() == 0 {
		return Ref{}, errors.New(errors.ErrCodeInvalidInput, "columnwise summary needs a table with at least one column")
	}

	cols := make([]ColumnSpec, 0, table.NumCols())
	for _, c := range table.Columns() {
		cols = append(cols, columnSpec(RoleColumn, c))
		c.Release()
	}
	return n.build(chart.ColumnSummary, clientPath, "", "", "", table.NumRows(), cols)
}

func (n *Native) pair(ctx context.Context, kind chart.Kind, wantX, wantY column.Kind, clientPath string, x, y *column.Column, xlabel, ylabel, title string) (Ref, error) {
	if err := ctx.Err(); err != nil {
		return Ref{}, err
	}
	if x == nil || y == nil {
		return Ref{}, errors.New(errors.ErrCodeInvalidInput, "%s needs both x and y columns", kind)
	}
	if x.Len() != y.Len() {
		return Ref{}, errors.New(errors.ErrCodeLengthMismatch,
			"x has %d values and y has %d; columns must be the same length", x.Len(), y.Len())
	}
	if x.Kind() != wantX || y.Kind() != wantY {
		return Ref{}, errors.New(errors.ErrCodeUnsupportedKind,
			"%s requires %s x and %s y, got %s x and %s y", kind, wantX, wantY, x.Kind(), y.Kind())
	}

	cols := []ColumnSpec{columnSpec(RoleX, x), columnSpec(RoleY, y)}
	return n.build(kind, clientPath, xlabel, ylabel, title, x.Len(), cols)
}

func (n *Native) single(ctx context.Context, kind chart.Kind, want column.Kind, clientPath string, values *column.Column, xlabel, ylabel, title string) (Ref, error) {
	if err := ctx.Err(); err != nil {
		return Ref{}, err
	}
	if values == nil {
		return Ref{}, errors.New(errors.ErrCodeInvalidInput, "%s needs a column", kind)
	}
	if values.Kind() != want {
		return Ref{}, errors.New(errors.ErrCodeUnsupportedKind,
			"%s requires a %s column, got %s", kind, want, values.Kind())
	}

	cols := []ColumnSpec{columnSpec(RoleValues, values)}
	return n.build(kind, clientPath, xlabel, ylabel, title, values.Len(), cols)
}

func (n *Native) build(kind chart.Kind, clientPath, xlabel, ylabel, title string, rows int, cols []ColumnSpec) (Ref, error) {
	spec := Spec{
		Version: SpecVersion,
		ID:      n.newID(),
		Kind:    kind,
		Title:   title,
		XLabel:  xlabel,
		YLabel:  ylabel,
		Rows:    rows,
		Columns: cols,
	}

	fingerprint, err := Fingerprint(&spec)
	if err != nil {
		return Ref{}, errors.Wrap(errors.ErrCodeInternal, err, "fingerprint %s spec", kind)
	}

	spec.CreatedAt = n.now().UTC()
	data, err := spec.Encode()
	if err != nil {
		return Ref{}, errors.Wrap(errors.ErrCodeInternal, err, "encode %s spec", kind)
	}

	n.Logger.Debug("built plot spec", "kind", kind, "id", spec.ID, "rows", rows, "bytes", len(data))

	return Ref{
		ID:          spec.ID,
		Kind:        kind,
		ClientPath:  clientPath,
		Spec:        data,
		Fingerprint: fingerprint,
	}, nil
}

// Fingerprint hashes the content of a spec, ignoring its ID and creation time.
// Two plots of the same data, labels and kind share a fingerprint.
func Fingerprint(s *Spec) (string, error) {
	content := *s
	content.ID = ""
	content.CreatedAt = time.Time{}
	data, err := content.Encode()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

var _ Engine = (*Native)(nil)
