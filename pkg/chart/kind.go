package chart

import (
	"fmt"
	"strings"
)

// Kind is a chart encoding. The set is closed.
type Kind int

const (
	Invalid Kind = iota
	Scatter
	HeatMap
	BoxAndWhisker
	CategoricalHeatMap
	ColumnSummary
	Histogram
	ItemFrequency
)

var kindNames = map[Kind]string{
	Scatter:            "scatter",
	HeatMap:            "heatmap",
	BoxAndWhisker:      "box_and_whisker",
	CategoricalHeatMap: "categorical_heatmap",
	ColumnSummary:      "columnwise_summary",
	Histogram:          "histogram",
	ItemFrequency:      "item_frequency",
}

// Kinds lists every valid kind in declaration order.
var Kinds = []Kind{Scatter, HeatMap, BoxAndWhisker, CategoricalHeatMap, ColumnSummary, Histogram, ItemFrequency}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind parses a wire name. Dashes are accepted in place of underscores.
func ParseKind(s string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for k, name := range kindNames {
		if name == norm {
			return k, nil
		}
	}
	return Invalid, fmt.Errorf("unknown chart kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid chart kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
