// SPDX-License-Identifier: MIT

// Package server exposes the heatmap pipeline over HTTP.
//
//	POST /heatmap  {"heroes":"A,...,J","winrates":"..;..","format":"png"} → image bytes
//	POST /winrate  same body → {"radiant_winrate":..,"dire_winrate":..,"anchor":..}
//	GET  /status   → {"ready":true}
//
// Every request runs its own pipeline call; the Server holds only
// configuration.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/draftheat/heatmap"
	"github.com/katalvlaran/draftheat/render"
	"github.com/katalvlaran/draftheat/scale"
	"github.com/katalvlaran/draftheat/winrate"
)

const (
	maxBodyBytes      = 64 << 10
	readHeaderTimeout = 5 * time.Second
	requestTimeout    = 30 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server serves heatmaps built by a shared, read-only Pipeline.
type Server struct {
	pipeline *heatmap.Pipeline
	origins  []string
	log      zerolog.Logger
}

// Option customizes New.
type Option func(*Server)

// WithCORSOrigins sets the allowed CORS origins. Default: any origin.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.origins = origins
		}
	}
}

// WithLogger sets the access and error logger. Default: zerolog.Nop().
func WithLogger(l zerolog.Logger) Option { return func(s *Server) { s.log = l } }

// New returns a Server around p. p must not be modified afterwards.
func New(p *heatmap.Pipeline, opts ...Option) *Server {
	s := &Server{pipeline: p, origins: []string{"*"}, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Routes returns the HTTP handler with middleware applied.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.accessLog, middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/status", s.handleStatus)
	r.Post("/heatmap", s.handleHeatmap)
	r.Post("/winrate", s.handleWinrate)

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("http server started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.log.Info().Msg("http server stopped")

		return nil
	}
}

// Request is the body of POST /heatmap and POST /winrate.
type Request struct {
	Heroes       string `json:"heroes"`
	Winrates     string `json:"winrates"`
	Format       string `json:"format,omitempty"`       // png (default) or svg
	Augmentation string `json:"augmentation,omitempty"` // enabled (default) or disabled
}

// WinrateResponse is the body returned by POST /winrate.
type WinrateResponse struct {
	Radiant  float64 `json:"radiant_winrate"`
	Dire     float64 `json:"dire_winrate"`
	Favoured bool    `json:"radiant_favoured"`
	Anchor   float64 `json:"anchor"`
}

type statusResponse struct {
	Ready bool `json:"ready"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, statusResponse{Ready: true})
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	format := render.PNG
	if req.Format != "" {
		f, err := render.ParseFormat(req.Format)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		format = f
	}
	p, err := s.pipelineFor(req.Augmentation)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := p.Compute(winrate.ParseNames(req.Heroes), req.Winrates)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	// Encode fully before writing headers so a render failure can still be a 500.
	var buf bytes.Buffer
	if err = p.Render(&buf, format, res); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleWinrate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	p, err := s.pipelineFor(heatmap.AugmentationEnabled.String())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := p.Compute(winrate.ParseNames(req.Heroes), req.Winrates)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, WinrateResponse{
		Radiant:  res.Outcome.TeamA,
		Dire:     res.Outcome.TeamB(),
		Favoured: res.Outcome.Favoured(),
		Anchor:   res.Anchor.Position,
	})
}

// pipelineFor returns a per-request copy of the shared pipeline.
func (s *Server) pipelineFor(augmentation string) (*heatmap.Pipeline, error) {
	p := *s.pipeline
	if augmentation != "" {
		a, err := heatmap.ParseAugmentation(augmentation)
		if err != nil {
			return nil, err
		}
		p.Augmentation = a
	}
	p.Logger = s.log

	return &p, nil
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (Request, bool) {
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return Request{}, false
	}

	return req, true
}

// fail maps pipeline errors to status codes: bad input is the client's
// fault, a flat grid under strict mode cannot be drawn, anything else is ours.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, winrate.ErrMalformedInput),
		errors.Is(err, render.ErrUnsupportedFormat),
		errors.Is(err, heatmap.ErrUnknownAugmentation):
		status = http.StatusBadRequest
	case errors.Is(err, scale.ErrDegenerateRange):
		status = http.StatusUnprocessableEntity
	}

	ev := s.log.Warn()
	if status >= http.StatusInternalServerError {
		ev = s.log.Error()
	}
	ev.Err(err).Str("request_id", middleware.GetReqID(r.Context())).Int("status", status).Msg("request failed")
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}
