package plot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/showviz/pkg/cache"
	"github.com/matzehuels/showviz/pkg/chart"
	"github.com/matzehuels/showviz/pkg/column"
	"github.com/matzehuels/showviz/pkg/engine"
	"github.com/matzehuels/showviz/pkg/errors"
)

func testRef(t *testing.T, clientPath string) engine.Ref {
	t.Helper()
	x := column.Int64s([]int64{0, 1, 2})
	y := column.Int64s([]int64{0, 2, 4})
	ref, err := engine.NewNative(nil).PlotScatter(context.Background(), clientPath, x, y, "X", "Y", "")
	if err != nil {
		t.Fatalf("PlotScatter: %v", err)
	}
	return ref
}

// countingExport returns a fixed SVG and counts invocations.
func countingExport(calls *int) exportFunc {
	return func(_ context.Context, _ string, _ []byte) ([]byte, error) {
		*calls++
		return []byte("<svg/>"), nil
	}
}

func TestPlotAccessors(t *testing.T) {
	ref := testRef(t, "/client")
	p := New(ref)

	if p.ID() != ref.ID {
		t.Errorf("ID() = %q, want %q", p.ID(), ref.ID)
	}
	if p.Kind() != chart.Scatter {
		t.Errorf("Kind() = %v", p.Kind())
	}
	if p.Title() != "X vs. Y" {
		t.Errorf("Title() = %q, want %q", p.Title(), "X vs. Y")
	}
	spec, err := p.Spec()
	if err != nil || spec.ID != ref.ID {
		t.Errorf("Spec() = %+v, %v", spec, err)
	}
}

func TestExportJSON(t *testing.T) {
	ref := testRef(t, "")
	data, err := New(ref).Export(context.Background(), "json")
	if err != nil {
		t.Fatalf("Export json: %v", err)
	}
	if string(data) != string(ref.Spec) {
		t.Error("json export should return the spec unchanged")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := New(testRef(t, "")).Export(context.Background(), "gif")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestExportSVGUsesCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ref := testRef(t, "/client")

	var calls int
	p := New(ref, WithCache(c))
	p.export = countingExport(&calls)

	for i := 0; i < 2; i++ {
		data, err := p.Export(context.Background(), "svg")
		if err != nil {
			t.Fatalf("Export svg: %v", err)
		}
		if string(data) != "<svg/>" {
			t.Errorf("Export svg = %q", data)
		}
	}
	if calls != 1 {
		t.Errorf("client invoked %d times, want 1", calls)
	}

	// A second plot of the same content shares the cached artifact.
	q := New(testRef(t, "/client"), WithCache(c))
	q.export = countingExport(&calls)
	if _, err := q.Export(context.Background(), ".SVG"); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("identical content should hit the cache, client invoked %d times", calls)
	}
}

func TestSave(t *testing.T) {
	var calls int
	p := New(testRef(t, "/client"))
	p.export = countingExport(&calls)

	path := filepath.Join(t.TempDir(), "plot.svg")
	if err := p.Save(context.Background(), path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("saved %q", data)
	}

	if err := p.Save(context.Background(), filepath.Join(t.TempDir(), "plot")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Save without extension error = %v", err)
	}
}

func TestExportSVGMissingClient(t *testing.T) {
	ctx := context.Background()
	if _, err := exportSVG(ctx, "", nil); !errors.Is(err, errors.ErrCodeClientLaunch) {
		t.Errorf("empty path error = %v", err)
	}
	missing := filepath.Join(t.TempDir(), "visualization_client")
	if _, err := exportSVG(ctx, missing, nil); !errors.Is(err, errors.ErrCodeClientLaunch) {
		t.Errorf("missing client error = %v", err)
	}
}

func TestLauncherMissingClient(t *testing.T) {
	l := NewLauncher(nil)
	ctx := context.Background()

	if err := l.Display(ctx, New(testRef(t, ""))); !errors.Is(err, errors.ErrCodeClientLaunch) {
		t.Errorf("empty path error = %v", err)
	}

	missing := filepath.Join(t.TempDir(), "Showviz Visualization", "visualization_client")
	if err := l.Display(ctx, New(testRef(t, missing))); !errors.Is(err, errors.ErrCodeClientLaunch) {
		t.Errorf("missing client error = %v", err)
	}
}
