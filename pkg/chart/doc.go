// Package chart defines the chart encodings and the rule that picks one.
//
// # Kinds
//
// [Kind] is a closed enumeration: [Scatter], [HeatMap], [BoxAndWhisker],
// [CategoricalHeatMap], [ColumnSummary], [Histogram] and [ItemFrequency].
// Each has a stable wire name (for example "box_and_whisker") used in plot
// specs and on the command line.
//
// # Auto-selection
//
// [Select] maps the element kinds of an x/y pair plus the element count to
// one of the four two-column encodings:
//
//	numeric × numeric, n <= 5000  → Scatter
//	numeric × numeric, n >  5000  → HeatMap
//	numeric × text                → BoxAndWhisker
//	text    × text                → CategoricalHeatMap
//
// Every other pair, including text × numeric, is rejected with
// AUTO_SELECTION_UNDEFINED rather than mirrored.
//
// # Decision Diagram
//
// [DecisionDOT] draws the same rules as a Graphviz digraph with the path for
// a concrete input highlighted; [RenderDecisionSVG] renders it with go-graphviz.
package chart
