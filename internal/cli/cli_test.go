package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/showviz/pkg/column"
	"github.com/matzehuels/showviz/pkg/errors"
	"github.com/matzehuels/showviz/pkg/plot"
	"github.com/matzehuels/showviz/pkg/viz"
)

const petsCSV = `animal,mood,age
dog,happy,3
cat,grumpy,5
dog,grumpy,1
dog,happy,7
cat,grumpy,2
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func nonInteractive(t *testing.T) {
	t.Helper()
	old := interactive
	interactive = func() bool { return false }
	t.Cleanup(func() { interactive = old })
}

func TestRootCommandRegistersCommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	want := []string{"show", "scatter", "heatmap", "categorical-heatmap", "box-plot",
		"histogram", "item-frequency", "summary", "explain", "serve", "locate", "cache", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
	for _, flag := range []string{"verbose", "config", "target"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
}

func TestVizOptionsTitle(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no flags", nil, 0},
		{"empty title", []string{"--title", ""}, 1},
		{"labels and title", []string{"--xlabel", "a", "--ylabel", "b", "--title", "t"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts plotOpts
			cmd := &cobra.Command{Use: "test"}
			addLabelFlags(cmd, &opts)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatal(err)
			}
			if got := len(vizOptions(cmd, &opts)); got != tt.want {
				t.Errorf("len(vizOptions) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoadPair(t *testing.T) {
	nonInteractive(t)
	path := writeCSV(t, petsCSV)

	tbl, x, y, err := loadPair(path, &plotOpts{x: "age", y: "animal"})
	if err != nil {
		t.Fatalf("loadPair: %v", err)
	}
	defer tbl.Release()
	defer x.Release()
	defer y.Release()

	if x.Kind() != column.KindNumeric || y.Kind() != column.KindText {
		t.Errorf("kinds = %s, %s", x.Kind(), y.Kind())
	}
	if x.Len() != 5 {
		t.Errorf("rows = %d", x.Len())
	}
}

func TestLoadPairErrors(t *testing.T) {
	nonInteractive(t)
	path := writeCSV(t, petsCSV)

	if _, _, _, err := loadPair(path, &plotOpts{x: "age"}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("missing --y error = %v", err)
	} else if !strings.Contains(err.Error(), "--y") {
		t.Errorf("error should name the flag: %v", err)
	}
	if _, _, _, err := loadPair(path, &plotOpts{x: "age", y: "weight"}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown column error = %v", err)
	}
	if _, _, _, err := loadPair(filepath.Join(t.TempDir(), "none.csv"), &plotOpts{x: "a", y: "b"}); err == nil {
		t.Error("missing file should fail")
	}
}

func TestFinishSaves(t *testing.T) {
	nonInteractive(t)
	c := New(&bytes.Buffer{}, LogInfo)
	d := viz.NewDispatcher(nil)
	d.Locator = viz.LocatorFunc(func() (string, error) { return "/client", nil })

	p, err := d.Histogram(t.Context(), column.Float64s([]float64{1, 2, 2, 3}))
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "hist.json")
	if err := c.finish(t.Context(), p, out); err != nil {
		t.Fatalf("finish: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(p.Ref().Spec) {
		t.Error("json export should write the spec")
	}
}

func TestFinishDisplays(t *testing.T) {
	var shown int
	plot.SetDisplayer(plot.DisplayerFunc(func(_ context.Context, _ *plot.Plot) error {
		shown++
		return nil
	}))
	defer plot.SetDisplayer(nil)

	c := New(&bytes.Buffer{}, LogInfo)
	d := viz.NewDispatcher(nil)
	d.Locator = viz.LocatorFunc(func() (string, error) { return "/client", nil })
	p, err := d.ItemFrequency(t.Context(), column.Strings([]string{"a", "b"}))
	if err != nil {
		t.Fatal(err)
	}
	if err := c.finish(t.Context(), p, ""); err != nil {
		t.Fatal(err)
	}
	if shown != 1 {
		t.Errorf("shown = %d, want 1", shown)
	}
}

func TestCacheDirFromConfig(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	c.Config.Cache.Dir = "/tmp/showviz-cache"
	if dir, _ := c.cacheDir(); dir != "/tmp/showviz-cache" {
		t.Errorf("cacheDir() = %q", dir)
	}

	c.Config.Cache.Dir = ""
	t.Setenv("XDG_CACHE_HOME", "/xdg")
	if dir, _ := c.cacheDir(); dir != filepath.Join("/xdg", "showviz", "artifacts") {
		t.Errorf("cacheDir() = %q", dir)
	}
}

func TestWriteDecision(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(t.Context())
	dir := t.TempDir()

	if err := writeDecision(cmd, filepath.Join(dir, "tree.dot"), "digraph G {}"); err != nil {
		t.Fatal(err)
	}
	if data, _ := os.ReadFile(filepath.Join(dir, "tree.dot")); string(data) != "digraph G {}" {
		t.Errorf("dot = %q", data)
	}
	if err := writeDecision(cmd, filepath.Join(dir, "tree.png"), "digraph G {}"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("png error = %v", err)
	}
}
