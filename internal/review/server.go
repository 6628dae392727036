package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/ayoisaiah/rehearse/internal/catalog"
	"github.com/ayoisaiah/rehearse/internal/timeutil"
)

const shutdownTimeout = 5 * time.Second

type errorResponse struct {
	Error string `json:"error"`
}

type listResponse struct {
	Interviews    []catalog.Interview `json:"interviews"`
	Total         int                 `json:"total"`
	AverageRating float64             `json:"average_rating"`
}

type transcriptResponse struct {
	ID    string         `json:"id"`
	Lines []catalog.Line `json:"lines"`
}

type handler struct {
	cat *catalog.Catalog
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// requestLogger logs each request through slog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		slog.InfoContext(
			r.Context(),
			"review request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// NewRouter returns the review API.
func NewRouter(cat *catalog.Catalog) http.Handler {
	h := &handler{cat: cat}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))

	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", h.templates)

		r.Route("/interviews", func(r chi.Router) {
			r.Get("/", h.list)
			r.Get("/{id}", h.interview)
			r.Get("/{id}/transcript", h.transcript)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errRouteNotFound)
	})

	return r
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := catalog.Filter{
		Search: q.Get("search"),
		Type:   q.Get("type"),
	}

	if since := strings.TrimSpace(q.Get("since")); since != "" {
		t, err := timeutil.FromStr(since)
		if err != nil {
			writeError(w, http.StatusBadRequest, errBadSince.Fmt(since))
			return
		}

		f.Since = t
	}

	found := h.cat.Find(f)
	if found == nil {
		found = []catalog.Interview{}
	}

	writeJSON(w, http.StatusOK, listResponse{
		Interviews:    found,
		Total:         len(found),
		AverageRating: catalog.AverageRating(found),
	})
}

func (h *handler) lookup(w http.ResponseWriter, r *http.Request) (catalog.Interview, bool) {
	iv, err := h.cat.Interview(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return iv, false
	}

	return iv, true
}

func (h *handler) interview(w http.ResponseWriter, r *http.Request) {
	if iv, ok := h.lookup(w, r); ok {
		writeJSON(w, http.StatusOK, iv)
	}
}

func (h *handler) transcript(w http.ResponseWriter, r *http.Request) {
	if iv, ok := h.lookup(w, r); ok {
		writeJSON(w, http.StatusOK, transcriptResponse{
			ID:    iv.ID,
			Lines: iv.Transcript,
		})
	}
}

func (h *handler) templates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.cat.Templates)
}

// Serve runs the review API on addr until ctx is cancelled. ready, if not
// nil, receives the bound address once the listener is open.
func Serve(ctx context.Context, addr string, cat *catalog.Catalog, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errListen.Fmt(addr).Wrap(err)
	}

	srv := &http.Server{
		Handler:           NewRouter(cat),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if ready != nil {
		ready(ln.Addr())
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down review server: %w", err)
		}

		return nil
	}
}
