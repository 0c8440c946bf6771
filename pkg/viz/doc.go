// Package viz is the user-facing entry point: it turns one or two columns
// into a plot.
//
// # Automatic Selection
//
// [Show] picks the encoding from the element kinds of the two columns and
// their length, then displays the result:
//
//	numeric x, numeric y, n <= 5000   scatter
//	numeric x, numeric y, n >  5000   heat map
//	numeric x, text y                 box and whisker
//	text x, text y                    categorical heat map
//
// Text x with numeric y has no encoding and fails with
// AUTO_SELECTION_UNDEFINED; swap the columns to get a box plot.
//
// # Forced Encodings
//
// [Scatter], [Heatmap], [CategoricalHeatmap], [BoxPlot], [Histogram],
// [ItemFrequency] and [ColumnwiseSummary] skip selection and return the
// plot without displaying it:
//
//	p, err := viz.Heatmap(ctx, x, y, viz.WithTitle("Density"))
//	if err != nil {
//	    return err
//	}
//	return p.Save(ctx, "density.svg")
//
// # Titles
//
// Without [WithTitle] the client titles the plot "<xlabel> vs. <ylabel>".
// WithTitle("") suppresses the title entirely.
//
// Every call first resolves the rendering client path for the running
// platform. On platforms other than macOS and Linux every operation fails
// with UNSUPPORTED_PLATFORM before any plot is built.
package viz
