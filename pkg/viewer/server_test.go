package viewer

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/matzehuels/showviz/pkg/column"
	"github.com/matzehuels/showviz/pkg/engine"
	"github.com/matzehuels/showviz/pkg/observability"
	"github.com/matzehuels/showviz/pkg/plot"
	"github.com/matzehuels/showviz/pkg/store"
)

func publishTestPlot(t *testing.T, s store.Store, title string) *plot.Plot {
	t.Helper()
	x := column.Strings([]string{"dog", "cat", "dog"})
	y := column.Strings([]string{"happy", "grumpy", "grumpy"})
	ref, err := engine.NewNative(nil).PlotCategoricalHeatmap(context.Background(), "/client", x, y, "X", "Y", title)
	if err != nil {
		t.Fatal(err)
	}
	p := plot.New(ref)

	var out bytes.Buffer
	pub := &Publisher{Store: s, BaseURL: "http://viewer.test/", Out: &out}
	if err := pub.Display(context.Background(), p); err != nil {
		t.Fatalf("Display: %v", err)
	}
	want := "http://viewer.test/plots/" + p.ID() + "/view\n"
	if out.String() != want {
		t.Errorf("printed %q, want %q", out.String(), want)
	}
	return p
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	srv := NewServer(store.NewMemory(), nil)
	rec := get(t, srv.Handler(), "/healthz")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestListAndSpec(t *testing.T) {
	s := store.NewMemory()
	p := publishTestPlot(t, s, "")
	h := NewServer(s, nil).Handler()

	rec := get(t, h, "/plots")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list []plotSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != p.ID() || list[0].Title != "X vs. Y" {
		t.Errorf("list = %+v", list)
	}
	if list[0].URL != ViewPath(p.ID()) {
		t.Errorf("url = %q", list[0].URL)
	}

	rec = get(t, h, "/plots/"+p.ID())
	if rec.Code != http.StatusOK {
		t.Fatalf("spec status = %d", rec.Code)
	}
	if rec.Body.String() != string(p.Ref().Spec) {
		t.Error("spec endpoint should return the stored spec")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
}

func TestView(t *testing.T) {
	s := store.NewMemory()
	p := publishTestPlot(t, s, "Pets </script><b>")
	h := NewServer(s, nil).Handler()

	rec := get(t, h, ViewPath(p.ID()))
	if rec.Code != http.StatusOK {
		t.Fatalf("view status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Pets &lt;/script&gt;&lt;b&gt;</title>") {
		t.Error("title should be HTML escaped")
	}
	if strings.Count(body, "</script>") != 2 {
		t.Error("spec must not be able to close its script element")
	}
	if !strings.Contains(body, p.ID()) {
		t.Error("view should reference the plot id")
	}
}

func TestNotFound(t *testing.T) {
	h := NewServer(store.NewMemory(), nil).Handler()

	for _, path := range []string{"/plots/missing", "/plots/missing/view", "/nowhere"} {
		rec := get(t, h, path)
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "NOT_FOUND") {
			t.Errorf("GET %s body = %s", path, rec.Body.String())
		}
	}
}

type recordingHTTPHooks struct {
	observability.NoopHTTPHooks
	statuses []int
}

func (h *recordingHTTPHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.statuses = append(h.statuses, status)
}

func TestHTTPHooks(t *testing.T) {
	hooks := &recordingHTTPHooks{}
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	h := NewServer(store.NewMemory(), nil).Handler()
	get(t, h, "/healthz")
	get(t, h, "/plots/missing")

	if len(hooks.statuses) != 2 || hooks.statuses[0] != 200 || hooks.statuses[1] != 404 {
		t.Errorf("statuses = %v", hooks.statuses)
	}
}

func TestPublisherDefaultURL(t *testing.T) {
	pub := NewPublisher(store.NewMemory(), "")
	if got := pub.URL("abc"); got != "http://"+DefaultAddr+"/plots/abc/view" {
		t.Errorf("URL = %q", got)
	}
}
