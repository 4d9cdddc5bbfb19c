// Package server answers layout requests over HTTP.
//
// Routes:
//
//	GET /healthz                  liveness and build version
//	GET /layouts/{count}          layout record as JSON
//	GET /layouts/{count}.{format} rendered artifact (json, png, svg, pdf)
//
// Image routes accept ?fill=rrggbbaa and ?outline=true. Invalid requests are
// answered with the error code and message as JSON.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/isotile/pkg/buildinfo"
	"github.com/matzehuels/isotile/pkg/errors"
	"github.com/matzehuels/isotile/pkg/pipeline"
)

// shutdownTimeout bounds how long in-flight requests may finish after the
// server context is cancelled.
const shutdownTimeout = 5 * time.Second

// contentTypes maps output formats to response media types.
var contentTypes = map[string]string{
	pipeline.FormatJSON: "application/json",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPDF:  "application/pdf",
}

// Options configures a Server.
type Options struct {
	Addr      string
	MaxTiles  int    // largest count a request may ask for
	TileWidth int    // 0 = geometry default
	TileEdge  int    // 0 = geometry default
	Fill      string // default fill when the request has none
}

// Server serves layouts rendered by a pipeline runner.
type Server struct {
	opts   Options
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server. The runner's cache is shared by all requests.
func New(opts Options, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	return &Server{opts: opts, runner: runner, logger: logger}
}

// Handler returns the router with all routes and middleware installed.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/layouts/{name}", s.handleLayout)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.New(errors.ErrCodeNotFound, "no route for %s", r.URL.Path))
	})
	return r
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", s.opts.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Short(),
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	count, format, err := s.parseName(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}

	opts := pipeline.Options{
		Count:     count,
		TileWidth: s.opts.TileWidth,
		TileEdge:  s.opts.TileEdge,
		Formats:   []string{format},
		Fill:      s.opts.Fill,
		Logger:    s.logger,
	}
	q := r.URL.Query()
	if fill := q.Get("fill"); fill != "" {
		opts.Fill = fill
	}
	if outline := q.Get("outline"); outline != "" {
		v, err := strconv.ParseBool(outline)
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidArgument, err, "outline must be a boolean"))
			return
		}
		opts.Outline = v
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	cacheStatus := "miss"
	if result.CacheInfo.RenderHit {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Run-ID", result.RunID)
	w.Header().Set("X-Cache", cacheStatus)
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[format])
}

// parseName splits "37" or "37.png" into a tile count and format.
func (s *Server) parseName(name string) (int, string, error) {
	base, format, found := strings.Cut(name, ".")
	if !found {
		format = pipeline.FormatJSON
	}
	format = strings.ToLower(format)
	if err := pipeline.ValidateFormat(format); err != nil {
		return 0, "", errors.Wrap(errors.ErrCodeNotFound, err, "no such artifact %q", name)
	}

	count, err := errors.ParseTileCount(base)
	if err != nil {
		return 0, "", err
	}
	if s.opts.MaxTiles > 0 && count > s.opts.MaxTiles {
		return 0, "", errors.New(errors.ErrCodeInvalidArgument, "at most %d tiles can be requested, got %d", s.opts.MaxTiles, count)
	}
	return count, format, nil
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, errors.HTTPStatus(err), errorBody{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
