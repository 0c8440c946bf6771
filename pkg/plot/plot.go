package plot

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/showviz/pkg/cache"
	"github.com/matzehuels/showviz/pkg/chart"
	"github.com/matzehuels/showviz/pkg/engine"
	"github.com/matzehuels/showviz/pkg/errors"
	"github.com/matzehuels/showviz/pkg/observability"
	"github.com/matzehuels/showviz/pkg/render"
)

// DefaultPNGScale is the scale factor used for PNG export.
const DefaultPNGScale = 2.0

// Displayer shows a plot somewhere: a native window, a browser, nowhere.
type Displayer interface {
	Display(ctx context.Context, p *Plot) error
}

// DisplayerFunc adapts a function to the Displayer interface.
type DisplayerFunc func(ctx context.Context, p *Plot) error

// Display calls f(ctx, p).
func (f DisplayerFunc) Display(ctx context.Context, p *Plot) error { return f(ctx, p) }

// exportFunc renders a spec to SVG with the client at path.
type exportFunc func(ctx context.Context, clientPath string, spec []byte) ([]byte, error)

// Plot is a render handle for a built plot.
type Plot struct {
	ref      engine.Ref
	cache    cache.Cache
	ttl      time.Duration
	pngScale float64
	logger   *log.Logger
	export   exportFunc
}

// Option configures a Plot.
type Option func(*Plot)

// WithCache stores exported artifacts in c.
func WithCache(c cache.Cache) Option {
	return func(p *Plot) {
		if c != nil {
			p.cache = c
		}
	}
}

// WithCacheTTL sets how long exported artifacts stay cached.
func WithCacheTTL(ttl time.Duration) Option {
	return func(p *Plot) { p.ttl = ttl }
}

// WithPNGScale sets the PNG export scale factor.
func WithPNGScale(scale float64) Option {
	return func(p *Plot) {
		if scale > 0 {
			p.pngScale = scale
		}
	}
}

// WithLogger sets the logger used for export diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(p *Plot) {
		if l != nil {
			p.logger = l
		}
	}
}

// New wraps an engine result in a render handle.
func New(ref engine.Ref, opts ...Option) *Plot {
	p := &Plot{
		ref:      ref,
		cache:    cache.NewNullCache(),
		ttl:      cache.DefaultTTL,
		pngScale: DefaultPNGScale,
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
		export:   exportSVG,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the plot's unique identifier.
func (p *Plot) ID() string { return p.ref.ID }

// Kind returns the chart kind the plot was built as.
func (p *Plot) Kind() chart.Kind { return p.ref.Kind }

// Ref returns the underlying engine result.
func (p *Plot) Ref() engine.Ref { return p.ref }

// Spec decodes the plot spec.
func (p *Plot) Spec() (*engine.Spec, error) {
	return engine.DecodeSpec(p.ref.Spec)
}

// Title returns the title a renderer would show, or "" if the spec cannot be decoded.
func (p *Plot) Title() string {
	spec, err := p.Spec()
	if err != nil {
		return ""
	}
	return spec.DisplayTitle()
}

// Show displays the plot on the process-wide display target.
func (p *Plot) Show(ctx context.Context) error {
	d, err := CurrentDisplayer()
	if err != nil {
		return err
	}
	return d.Display(ctx, p)
}

// Export renders the plot into the given format: json, svg, png or pdf.
func (p *Plot) Export(ctx context.Context, format string) ([]byte, error) {
	format, err := render.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if format == render.FormatJSON {
		return p.ref.Spec, nil
	}

	start := time.Now()
	data, err := p.exportCached(ctx, format)
	observability.Dispatch().OnExport(ctx, format, len(data), time.Since(start), err)
	return data, err
}

func (p *Plot) exportCached(ctx context.Context, format string) ([]byte, error) {
	key := cache.ArtifactKey(p.ref.Fingerprint, format)
	if p.ref.Fingerprint != "" {
		if data, ok, err := p.cache.Get(ctx, key); err == nil && ok {
			observability.Cache().OnCacheHit(ctx, "artifact")
			p.logger.Debug("export cache hit", "format", format, "plot", p.ref.ID)
			return data, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	data, err := p.exportUncached(ctx, format)
	if err != nil {
		return nil, err
	}

	if p.ref.Fingerprint != "" {
		if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
			p.logger.Warn("failed to cache export", "format", format, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return data, nil
}

func (p *Plot) exportUncached(ctx context.Context, format string) ([]byte, error) {
	svg, err := p.export(ctx, p.ref.ClientPath, p.ref.Spec)
	if err != nil {
		return nil, err
	}
	switch format {
	case render.FormatPNG:
		return render.ToPNG(ctx, svg, p.pngScale)
	case render.FormatPDF:
		return render.ToPDF(ctx, svg)
	default:
		return svg, nil
	}
}

// Save exports the plot to path, choosing the format from its extension.
func (p *Plot) Save(ctx context.Context, path string) error {
	ext := filepath.Ext(path)
	if ext == "" {
		return errors.New(errors.ErrCodeInvalidFormat, "cannot infer export format from %q: no file extension", path)
	}
	data, err := p.Export(ctx, ext)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "write %s", path)
	}
	p.logger.Info("saved plot", "path", path, "bytes", len(data))
	return nil
}

// exportSVG runs the client headless: spec on stdin, SVG on stdout.
func exportSVG(ctx context.Context, clientPath string, spec []byte) ([]byte, error) {
	if clientPath == "" {
		return nil, errors.New(errors.ErrCodeClientLaunch, "no rendering client path for export")
	}
	cmd := exec.CommandContext(ctx, clientPath, "--export", render.FormatSVG)
	cmd.Stdin = bytes.NewReader(spec)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeClientLaunch, err, "start rendering client %s", clientPath)
	}
	if err := cmd.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "rendering client: %s", strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}
