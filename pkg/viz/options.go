package viz

import "github.com/matzehuels/showviz/pkg/title"

// Default axis labels.
const (
	DefaultXLabel      = "X"
	DefaultYLabel      = "Y"
	DefaultValuesLabel = "Values"
	DefaultCountLabel  = "Count"
)

// Option customizes a plot's labels and title.
type Option func(*options)

type options struct {
	xlabel *string
	ylabel *string
	title  *string
}

// WithXLabel sets the x axis label.
func WithXLabel(s string) Option {
	return func(o *options) { o.xlabel = &s }
}

// WithYLabel sets the y axis label.
func WithYLabel(s string) Option {
	return func(o *options) { o.ylabel = &s }
}

// WithTitle sets the plot title. An empty string suppresses the title.
func WithTitle(s string) Option {
	return func(o *options) { o.title = title.Of(s) }
}

// resolved labels and normalized title handed to the engine.
type labels struct {
	x, y, title string
}

func resolve(opts []Option, defX, defY string) labels {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	l := labels{x: defX, y: defY, title: title.Normalize(o.title)}
	if o.xlabel != nil {
		l.x = *o.xlabel
	}
	if o.ylabel != nil {
		l.y = *o.ylabel
	}
	return l
}
