// Package pkg holds the libraries behind showviz, a tool that picks a chart
// for one or two data columns and hands it to a native rendering client.
//
// # Overview
//
// A plot request flows through these packages:
//
//	columns ([column])
//	    ↓
//	[viz] dispatcher: normalize the title ([title]), pick the encoding ([chart]),
//	                  locate the client ([client])
//	    ↓
//	[engine]: validate and encode a JSON plot spec
//	    ↓
//	[plot] handle: display on the configured target, or export via the
//	               client, [render] (PDF/PNG) and [cache]
//
// The "browser" display target publishes plots to a [store] backend
// (memory, file, Redis or MongoDB) and serves them with [viewer].
//
// # Quick Start
//
//	x := column.Float64s([]float64{1, 2, 3})
//	y := column.Float64s([]float64{2, 4, 6})
//	err := viz.Show(ctx, x, y, viz.WithTitle("Growth"))
//
// # Supporting Packages
//
// [config] loads the TOML configuration, [errors] defines coded errors,
// [observability] carries dispatch, cache and HTTP hooks, and [buildinfo]
// reports version information.
package pkg
