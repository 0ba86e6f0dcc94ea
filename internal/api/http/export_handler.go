// Package http is the thin transport in front of the export engine: decode
// a request, run the orchestrator, stream the bytes back. No engine logic
// lives here.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/examkit/internal/config"
	"github.com/mind-engage/examkit/internal/export"
	"github.com/mind-engage/examkit/internal/render"
)

// NewRouter wires the export routes onto a fresh chi router. Middleware is
// the caller's business (see cmd).
func NewRouter(orc *export.Orchestrator, reg *render.Registry, branding config.BrandingDefaults) chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/formats", ListFormatsHandler(reg))
	r.Post("/export", ExportHandler(orc, branding))
	return r
}

// GET /formats
func ListFormatsHandler(reg *render.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		formats := reg.Available()
		out := make([]string, len(formats))
		for i, f := range formats {
			out[i] = string(f)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"formats": out})
	}
}

// POST /export (body: export.Request JSON; response: the document or zip)
func ExportHandler(orc *export.Orchestrator, branding config.BrandingDefaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req export.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		req.Branding = branding.Apply(req.Branding)

		res, err := orc.Export(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}

		w.Header().Set("Content-Type", res.MIME)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
		w.Header().Set("X-Export-Id", res.ExportID)
		if len(res.Warnings) > 0 {
			w.Header().Set("X-Export-Warnings", strings.Join(res.Warnings, "; "))
		}
		w.Write(res.Bytes)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, export.ErrEmptyAssessment):
		return http.StatusBadRequest
	case errors.Is(err, export.ErrNoFormatsAvailable), errors.Is(err, export.ErrMissingDependency):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
