// internal/server/server.go
// Package server serves the leaderboard over HTTP: the HTML page, a JSON API
// for ranked rows and color lookups, health and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CadeHall0/EsoBench/internal/colorscale"
	"github.com/CadeHall0/EsoBench/internal/leaderboard"
	"github.com/CadeHall0/EsoBench/internal/logging"
	"github.com/CadeHall0/EsoBench/internal/report"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Title string
	// Registry receives the server's collectors and backs /metrics. A fresh
	// registry is created when nil.
	Registry *prometheus.Registry
}

// Server holds one loaded board shared read-only by all requests.
type Server struct {
	board    *leaderboard.Board
	title    string
	metrics  *Metrics
	registry *prometheus.Registry
	mux      *http.ServeMux
}

// New builds the server and registers its metrics.
func New(board *leaderboard.Board, opts Options) (*Server, error) {
	if board == nil {
		return nil, errors.New("server: board is nil")
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	s := &Server{
		board:    board,
		title:    opts.Title,
		metrics:  NewMetrics(),
		registry: reg,
		mux:      http.NewServeMux(),
	}
	if err := s.metrics.Register(reg); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /health", health)
	s.mux.HandleFunc("GET /api/leaderboard", s.handleLeaderboard)
	s.mux.HandleFunc("GET /api/color", s.handleColor)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
}

// Handler returns the routed, instrumented handler.
func (s *Server) Handler() http.Handler {
	return s.instrument(s.mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.LogEvent("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.LogEvent("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument logs and measures each request. The path label is the matched
// route pattern so unknown paths do not explode label cardinality.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		s.metrics.ObserveHTTPRequest(r.Method, route, strconv.Itoa(rec.status), elapsed.Seconds())
		logging.LogRequest(r.Method, r.URL.Path, rec.status, elapsed)
	})
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type errorResponse struct {
	Error string `json:"error"`
}

type leaderboardResponse struct {
	Sort    leaderboard.SortState `json:"sort"`
	Entries []leaderboard.Entry   `json:"entries"`
}

type colorResponse struct {
	Score float64        `json:"score"`
	Color colorscale.RGB `json:"color"`
	Hex   string         `json:"hex"`
	CSS   string         `json:"css"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func sortState(r *http.Request) (leaderboard.SortState, error) {
	q := r.URL.Query()
	return leaderboard.ParseSortState(q.Get("sort"), q.Get("dir"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state, err := sortState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.metrics.IncSort(string(state.Key), string(state.Direction))

	page, err := report.GenerateHTML(s.board, state, report.HTMLOptions{Title: s.title, SortLinks: true})
	if err != nil {
		logging.LogEvent("render page: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	state, err := sortState(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	withHeatmap := false
	if v := r.URL.Query().Get("heatmap"); v != "" {
		withHeatmap, err = strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid heatmap flag: " + v})
			return
		}
	}
	s.metrics.IncSort(string(state.Key), string(state.Direction))

	writeJSON(w, http.StatusOK, leaderboardResponse{
		Sort:    state,
		Entries: leaderboard.Entries(s.board.Rows(state), withHeatmap),
	})
}

func (s *Server) handleColor(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("score")
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid score: " + strconv.Quote(raw)})
		return
	}
	s.metrics.IncColorLookup()

	c := s.board.Scale().ColorFor(score)
	writeJSON(w, http.StatusOK, colorResponse{Score: score, Color: c, Hex: c.Hex(), CSS: c.CSS()})
}
