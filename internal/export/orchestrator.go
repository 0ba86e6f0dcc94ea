// Package export drives assessments through the renderers: single documents
// on the no-versioning path, zip packages for the versions x formats matrix.
package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mind-engage/examkit/internal/assessment"
	"github.com/mind-engage/examkit/internal/render"
)

// Request is the export contract consumed from the generation side: one
// materialized assessment plus branding and export parameters.
type Request struct {
	Assessment    assessment.Assessment `json:"assessment"`
	Branding      assessment.Branding   `json:"branding"`
	Formats       []string              `json:"formats"`
	Versions      []string              `json:"versions,omitempty"`
	RevealAnswers bool                  `json:"reveal_answers"`
}

// Result is the uniform outcome of one export: a single document or a zip
// package, plus anything non-fatal worth reporting back.
type Result struct {
	ExportID        string           `json:"export_id"`
	Filename        string           `json:"filename"`
	MIME            string           `json:"mime"`
	Bytes           []byte           `json:"-"`
	Warnings        []string         `json:"warnings,omitempty"`
	PartialFailures []PartialFailure `json:"partial_failures,omitempty"`
}

// Orchestrator is the engine's top-level entry point. The capability
// registry is injected at construction; nothing here reads process-global
// state, so one orchestrator serves concurrent exports.
type Orchestrator struct {
	reg     *render.Registry
	builder *PackageBuilder
	log     *slog.Logger
}

func NewOrchestrator(reg *render.Registry, log *slog.Logger, opts ...BuilderOption) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		reg:     reg,
		builder: NewPackageBuilder(reg, log, opts...),
		log:     log,
	}
}

// Export validates the request, resolves formats against the registry and
// runs either a single render or the full package build.
//
// Unavailable formats are dropped with a warning rather than failing the
// request; only a request left with zero usable formats is fatal.
func (o *Orchestrator) Export(ctx context.Context, req Request) (Result, error) {
	res := Result{ExportID: uuid.NewString()}

	a := assessment.Normalize(req.Assessment, o.log)
	if a.QuestionCount() == 0 {
		return Result{}, ErrEmptyAssessment
	}

	usable, warnings := o.resolveFormats(req.Formats)
	res.Warnings = warnings
	if len(usable) == 0 {
		return Result{}, fmt.Errorf("%w: requested %v", ErrNoFormatsAvailable, req.Formats)
	}

	// Single document: no versioning requested and exactly one format left.
	if len(req.Versions) == 0 && len(usable) == 1 {
		r, _ := o.reg.Lookup(usable[0])
		docBytes, err := r.Render(a, req.Branding, req.RevealAnswers)
		if err != nil {
			return Result{}, fmt.Errorf("render %s: %w", usable[0], err)
		}
		res.Filename = artifactName(a.Title, "", r.Ext())
		res.MIME = r.MIME()
		res.Bytes = docBytes
		o.log.Info("export complete", "export_id", res.ExportID, "format", string(usable[0]), "bytes", len(res.Bytes))
		return res, nil
	}

	pkg, err := o.builder.Build(ctx, a, req.Versions, usable, req.Branding, req.RevealAnswers)
	if err != nil {
		return Result{}, err
	}
	archive, err := pkg.Archive()
	if err != nil {
		return Result{}, err
	}
	res.Filename = fmt.Sprintf("%s_Export.zip", sanitizeTitle(a.Title))
	res.MIME = "application/zip"
	res.Bytes = archive
	res.PartialFailures = pkg.PartialFailures
	o.log.Info("export complete", "export_id", res.ExportID,
		"versions", len(pkg.Manifest.Versions), "formats", len(pkg.Manifest.Formats),
		"artifacts", len(pkg.Artifacts), "failed_cells", len(pkg.PartialFailures))
	return res, nil
}

// resolveFormats keeps the usable subset of the request, recording a warning
// per dropped format.
func (o *Orchestrator) resolveFormats(requested []string) ([]render.Format, []string) {
	var usable []render.Format
	var warnings []string
	for _, raw := range requested {
		f := render.Format(raw)
		if _, ok := o.reg.Lookup(f); ok {
			usable = append(usable, f)
			continue
		}
		w := fmt.Sprintf("%s: %q", ErrMissingDependency, raw)
		if reason, ok := o.reg.UnavailableReason(f); ok {
			w += ": " + reason
		}
		warnings = append(warnings, w)
		o.log.Warn("requested format dropped", "format", raw)
	}
	return usable, warnings
}
