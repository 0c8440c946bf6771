// Package render converts SVG plots into raster and print formats.
//
// The rendering client produces SVG. [ToPDF] and [ToPNG] convert that SVG
// using the external rsvg-convert tool (from librsvg):
//
//	svg, err := p.Export(ctx, "svg")
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [Formats] lists every export format understood by the plot handle, and
// [ParseFormat] normalizes user input such as ".PNG" or "svg".
package render
