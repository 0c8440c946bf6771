package engine

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/matzehuels/showviz/pkg/chart"
	"github.com/matzehuels/showviz/pkg/column"
	"github.com/matzehuels/showviz/pkg/title"
)

// SpecVersion is the version of the JSON plot spec understood by the client.
const SpecVersion = 1

// Column roles within a spec.
const (
	RoleX      = "x"
	RoleY      = "y"
	RoleValues = "values"
	RoleColumn = "column"
)

// Spec is the document handed to the rendering client.
type Spec struct {
	Version   int          `json:"version"`
	ID        string       `json:"id"`
	Kind      chart.Kind   `json:"kind"`
	Title     string       `json:"title"`
	XLabel    string       `json:"xlabel,omitempty"`
	YLabel    string       `json:"ylabel,omitempty"`
	Rows      int          `json:"rows"`
	Columns   []ColumnSpec `json:"columns"`
	CreatedAt time.Time    `json:"created_at"`
}

// ColumnSpec carries one column's data.
type ColumnSpec struct {
	Name   string `json:"name,omitempty"`
	Role   string `json:"role"`
	Kind   string `json:"kind"`
	Type   string `json:"type"`
	Values []any  `json:"values"`
}

func columnSpec(role string, c *column.Column) ColumnSpec {
	return ColumnSpec{
		Name:   c.Name(),
		Role:   role,
		Kind:   c.Kind().String(),
		Type:   c.Type().String(),
		Values: c.Values(),
	}
}

// DisplayTitle returns the title a renderer shows.
func (s *Spec) DisplayTitle() string {
	if s.Kind == chart.ColumnSummary && s.Title == "" {
		return "Columnwise summary"
	}
	return title.Display(s.Title, s.XLabel, s.YLabel)
}

// Encode serializes the spec.
func (s *Spec) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSpec parses an encoded spec and checks its version.
func DecodeSpec(data []byte) (*Spec, error) {
	var s Spec
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode plot spec: %w", err)
	}
	if s.Version != SpecVersion {
		return nil, fmt.Errorf("unsupported plot spec version %d", s.Version)
	}
	return &s, nil
}
