package viewer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/showviz/pkg/plot"
	"github.com/matzehuels/showviz/pkg/store"
)

// Publisher displays plots by storing them for a viewer and printing a link.
type Publisher struct {
	Store   store.Store
	BaseURL string    // e.g. http://127.0.0.1:8765
	Out     io.Writer // defaults to os.Stdout
}

// NewPublisher creates a publisher that links to the viewer at baseURL.
func NewPublisher(s store.Store, baseURL string) *Publisher {
	return &Publisher{Store: s, BaseURL: baseURL, Out: os.Stdout}
}

// Display stores p and prints its view URL.
func (pub *Publisher) Display(ctx context.Context, p *plot.Plot) error {
	rec, err := store.FromPlot(p)
	if err != nil {
		return err
	}
	if err := pub.Store.Put(ctx, rec); err != nil {
		return fmt.Errorf("publish plot %s: %w", p.ID(), err)
	}

	out := pub.Out
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintln(out, pub.URL(p.ID()))
	return err
}

// URL returns the view URL of a plot.
func (pub *Publisher) URL(id string) string {
	base := pub.BaseURL
	if base == "" {
		base = "http://" + DefaultAddr
	}
	return strings.TrimRight(base, "/") + ViewPath(id)
}

var _ plot.Displayer = (*Publisher)(nil)
