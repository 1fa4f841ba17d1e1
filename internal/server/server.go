// Package server implements the camo HTTP API.
//
// # Endpoints
//
//	POST   /api/generate          generate a texture, returns the image
//	GET    /api/presets/{family}  preset palette and settings as JSON
//	GET    /api/gallery           list saved textures (metadata only)
//	POST   /api/gallery           generate and save a texture
//	GET    /api/gallery/{id}      saved texture PNG
//	DELETE /api/gallery/{id}      remove a saved texture
//	GET    /healthz               liveness probe
//
// Generation requests carry pipeline options as JSON. Responses include
// X-Camo-Seamless, X-Camo-Seed and X-Camo-Family headers so clients can
// reproduce a texture without parsing the body. A `target` query parameter
// groups requests for latest-wins supervision: when a newer request for the
// same target lands while one is running, the older one returns 409.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/andreaperaltro/camo/pkg/buildinfo"
	"github.com/andreaperaltro/camo/pkg/gallery"
	"github.com/andreaperaltro/camo/pkg/observability"
	"github.com/andreaperaltro/camo/pkg/pipeline"
)

// Config holds server dependencies.
type Config struct {
	Runner  *pipeline.Runner // required
	Gallery gallery.Store    // optional; gallery routes 503 without it
	Logger  *log.Logger
}

// Server is the camo HTTP API.
type Server struct {
	supervisor *pipeline.Supervisor
	gallery    gallery.Store
	logger     *log.Logger
	router     chi.Router
}

// New creates a server with all routes registered.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		supervisor: pipeline.NewSupervisor(cfg.Runner),
		gallery:    cfg.Gallery,
		logger:     logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Get("/presets/{family}", s.handlePresets)
		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", s.handleGalleryList)
			r.Post("/", s.handleGallerySave)
			r.Get("/{id}", s.handleGalleryGet)
			r.Delete("/{id}", s.handleGalleryDelete)
		})
	})
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// logRequests emits one structured log line per request and feeds the HTTP
// observability hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", elapsed.Round(time.Millisecond))
	})
}

// targetID returns the latest-wins grouping key for a generation request.
// Clients that do not pass a target get a fresh one per request, which
// disables supersession for them.
func targetID(r *http.Request) string {
	if t := r.URL.Query().Get("target"); t != "" {
		return t
	}
	return uuid.NewString()
}

func setTextureHeaders(w http.ResponseWriter, result *pipeline.Result) {
	w.Header().Set("X-Camo-Seamless", strconv.FormatBool(result.Seamless))
	w.Header().Set("X-Camo-Seed", strconv.FormatInt(result.Options.Seed, 10))
	w.Header().Set("X-Camo-Family", string(result.Family))
}
