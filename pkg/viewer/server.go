package viewer

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/matzehuels/showviz/pkg/chart"
	"github.com/matzehuels/showviz/pkg/errors"
	"github.com/matzehuels/showviz/pkg/observability"
	"github.com/matzehuels/showviz/pkg/store"
)

// DefaultAddr is the address the viewer listens on by default.
const DefaultAddr = "127.0.0.1:8765"

// Server is the plot viewer.
type Server struct {
	store  store.Store
	logger *log.Logger
	router chi.Router
}

// NewServer creates a viewer over s. A nil logger discards output.
func NewServer(s store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	srv := &Server{store: s, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(hooks)
	r.Get("/healthz", srv.handleHealth)
	r.Route("/plots", func(r chi.Router) {
		r.Get("/", srv.handleList)
		r.Get("/{id}", srv.handleSpec)
		r.Get("/{id}/view", srv.handleView)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.New(errors.ErrCodeNotFound, "no route for %s", r.URL.Path))
	})
	srv.router = r
	return srv
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("viewer listening", "addr", addr)
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("viewer shutting down")
		return hs.Shutdown(shutdownCtx)
	}
}

// =============================================================================
// Handlers
// =============================================================================

type plotSummary struct {
	ID        string     `json:"id"`
	Kind      chart.Kind `json:"kind"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	URL       string     `json:"url"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("list plots", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]plotSummary, len(recs))
	for i, rec := range recs {
		out[i] = plotSummary{
			ID:        rec.ID,
			Kind:      rec.Kind,
			Title:     rec.Title,
			CreatedAt: rec.CreatedAt,
			URL:       ViewPath(rec.ID),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSpec(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rec.Spec)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.lookup(w, r)
	if !ok {
		return
	}
	var spec any
	if err := json.Unmarshal(rec.Spec, &spec); err != nil {
		s.logger.Error("decode stored spec", "plot", rec.ID, "error", err)
		writeError(w, http.StatusInternalServerError, errors.Wrap(errors.ErrCodeInternal, err, "plot %s has a corrupt spec", rec.ID))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := viewTemplate.Execute(w, viewData{
		Title: rec.Title,
		Kind:  rec.Kind.String(),
		ID:    rec.ID,
		Spec:  spec,
	})
	if err != nil {
		s.logger.Error("render view", "plot", rec.ID, "error", err)
	}
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*store.Record, bool) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if errors.Is(err, errors.ErrCodeNotFound) {
		writeError(w, http.StatusNotFound, errors.New(errors.ErrCodeNotFound, "plot %q not found", id))
		return nil, false
	}
	if err != nil {
		s.logger.Error("get plot", "plot", id, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return nil, false
	}
	return rec, true
}

// ViewPath returns the path of a plot's HTML view.
func ViewPath(id string) string {
	return "/plots/" + id + "/view"
}

// =============================================================================
// Helpers
// =============================================================================

type errorBody struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: errors.UserMessage(err), Code: errors.GetCode(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// hooks reports every request to the registered HTTP hooks.
func hooks(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}
