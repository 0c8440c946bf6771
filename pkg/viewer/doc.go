// Package viewer serves stored plots over HTTP.
//
// The viewer is the "browser" display target. A [Publisher] stores each shown
// plot and prints a link; a [Server], usually started with `showviz serve`,
// reads the same store and serves:
//
//	GET /healthz           liveness probe
//	GET /plots             stored plots, newest first
//	GET /plots/{id}        the plot spec as JSON
//	GET /plots/{id}/view   an HTML page embedding the spec
//
// The page hands the spec to the rendering client's web component; the
// viewer itself computes nothing about the data.
package viewer
