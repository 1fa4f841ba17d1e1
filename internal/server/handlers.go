package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	camoerrors "github.com/andreaperaltro/camo/pkg/errors"
	"github.com/andreaperaltro/camo/pkg/export"
	"github.com/andreaperaltro/camo/pkg/gallery"
	"github.com/andreaperaltro/camo/pkg/pattern"
	"github.com/andreaperaltro/camo/pkg/pipeline"
	"github.com/andreaperaltro/camo/pkg/raster"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	code := camoerrors.GetCode(err)
	if code == "" {
		code = camoerrors.ErrCodeInternal
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:    string(code),
		Message: camoerrors.UserMessage(err),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorStatus maps error codes to HTTP statuses.
func errorStatus(err error) int {
	switch camoerrors.GetCode(err) {
	case camoerrors.ErrCodeInvalidInput, camoerrors.ErrCodeInvalidFormat,
		camoerrors.ErrCodeInvalidColor, camoerrors.ErrCodeInvalidFamily:
		return http.StatusBadRequest
	case camoerrors.ErrCodeNotFound, camoerrors.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case camoerrors.ErrCodeSuperseded:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// generateFromRequest decodes the request body and runs the pipeline under
// latest-wins supervision.
func (s *Server) generateFromRequest(w http.ResponseWriter, r *http.Request) (*pipeline.Result, pipeline.Options, bool) {
	var opts pipeline.Options
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			s.writeError(w, http.StatusBadRequest,
				camoerrors.Wrap(camoerrors.ErrCodeInvalidInput, err, "decode request body"))
			return nil, opts, false
		}
	}
	if r.URL.Query().Get("refresh") == "true" {
		opts.Refresh = true
	}

	result, err := s.supervisor.Generate(r.Context(), targetID(r), opts)
	if err != nil {
		s.writeError(w, errorStatus(err), err)
		return nil, opts, false
	}
	return result, opts, true
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	result, opts, ok := s.generateFromRequest(w, r)
	if !ok {
		return
	}

	// The first requested format decides the response body.
	format := pipeline.FormatPNG
	if len(opts.Formats) > 0 {
		format = opts.Formats[0]
	}
	data := result.Artifacts[format]

	setTextureHeaders(w, result)
	switch format {
	case pipeline.FormatSVG:
		w.Header().Set("Content-Type", "image/svg+xml")
	default:
		w.Header().Set("Content-Type", "image/png")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// presetResponse describes one family's presets.
type presetResponse struct {
	Family   string   `json:"family"`
	Fallback bool     `json:"fallback,omitempty"`
	Colors   []string `json:"colors"`
	Settings struct {
		Scale          float64 `json:"scale"`
		Complexity     float64 `json:"complexity"`
		Contrast       float64 `json:"contrast"`
		Sharpness      float64 `json:"sharpness"`
		BlockSize      int     `json:"block_size,omitempty"`
		OrientationDeg float64 `json:"orientation_deg,omitempty"`
		Blockiness     float64 `json:"blockiness,omitempty"`
	} `json:"settings"`
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "family")
	fam, known := pattern.Resolve(name)

	resp := presetResponse{
		Family:   string(fam),
		Fallback: !known,
	}
	for _, c := range pattern.PresetColors(fam) {
		resp.Colors = append(resp.Colors, raster.FormatHex(c))
	}
	settings := pattern.PresetSettings(fam)
	resp.Settings.Scale = settings.Scale
	resp.Settings.Complexity = settings.Complexity
	resp.Settings.Contrast = settings.Contrast
	resp.Settings.Sharpness = settings.Sharpness
	resp.Settings.BlockSize = settings.BlockSize
	resp.Settings.OrientationDeg = settings.OrientationDeg
	resp.Settings.Blockiness = settings.Blockiness

	s.writeJSON(w, http.StatusOK, resp)
}

// galleryEntryResponse is entry metadata without the image payload.
type galleryEntryResponse struct {
	ID        string          `json:"id"`
	Family    string          `json:"family"`
	Options   pattern.Options `json:"options"`
	Seamless  bool            `json:"seamless"`
	SizeBytes int             `json:"size_bytes"`
	CreatedAt string          `json:"created_at"`
}

func entryResponse(e *gallery.Entry) galleryEntryResponse {
	return galleryEntryResponse{
		ID:        e.ID,
		Family:    e.Family,
		Options:   e.Options,
		Seamless:  e.Seamless,
		SizeBytes: len(e.PNG),
		CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func renderGalleryPNG(result *pipeline.Result) ([]byte, error) {
	return export.RenderPNG(result.Raster)
}

// requireGallery 503s when no gallery backend is configured.
func (s *Server) requireGallery(w http.ResponseWriter) bool {
	if s.gallery == nil {
		s.writeError(w, http.StatusServiceUnavailable,
			camoerrors.New(camoerrors.ErrCodeUnsupported, "no gallery backend configured"))
		return false
	}
	return true
}

func (s *Server) handleGalleryList(w http.ResponseWriter, r *http.Request) {
	if !s.requireGallery(w) {
		return
	}
	entries, err := s.gallery.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError,
			camoerrors.Wrap(camoerrors.ErrCodeStore, err, "list gallery"))
		return
	}
	resp := make([]galleryEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, entryResponse(e))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGallerySave(w http.ResponseWriter, r *http.Request) {
	if !s.requireGallery(w) {
		return
	}
	result, _, ok := s.generateFromRequest(w, r)
	if !ok {
		return
	}
	png := result.Artifacts[pipeline.FormatPNG]
	if png == nil {
		// Gallery entries always keep a PNG, even for SVG-only requests.
		var err error
		png, err = renderGalleryPNG(result)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError,
				camoerrors.Wrap(camoerrors.ErrCodeInternal, err, "render gallery image"))
			return
		}
	}

	entry := gallery.NewEntry(string(result.Family), result.Options, result.Seamless, png)
	if err := s.gallery.Put(r.Context(), entry); err != nil {
		s.writeError(w, http.StatusInternalServerError,
			camoerrors.Wrap(camoerrors.ErrCodeStore, err, "save gallery entry"))
		return
	}

	setTextureHeaders(w, result)
	s.writeJSON(w, http.StatusCreated, entryResponse(entry))
}

func (s *Server) handleGalleryGet(w http.ResponseWriter, r *http.Request) {
	if !s.requireGallery(w) {
		return
	}
	entry, err := s.gallery.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, gallery.ErrNotFound) {
		s.writeError(w, http.StatusNotFound,
			camoerrors.New(camoerrors.ErrCodeEntryNotFound, "no gallery entry %s", chi.URLParam(r, "id")))
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError,
			camoerrors.Wrap(camoerrors.ErrCodeStore, err, "load gallery entry"))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(entry.PNG)
}

func (s *Server) handleGalleryDelete(w http.ResponseWriter, r *http.Request) {
	if !s.requireGallery(w) {
		return
	}
	err := s.gallery.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, gallery.ErrNotFound) {
		s.writeError(w, http.StatusNotFound,
			camoerrors.New(camoerrors.ErrCodeEntryNotFound, "no gallery entry %s", chi.URLParam(r, "id")))
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError,
			camoerrors.Wrap(camoerrors.ErrCodeStore, err, "delete gallery entry"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
