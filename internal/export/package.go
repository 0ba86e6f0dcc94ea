package export

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mind-engage/examkit/internal/assessment"
	"github.com/mind-engage/examkit/internal/render"
	"github.com/mind-engage/examkit/internal/version"
)

// Artifact is one rendered output file: one (version, format) cell or one
// answer key.
type Artifact struct {
	Format        string `json:"format"`
	VersionLetter string `json:"version,omitempty"`
	Filename      string `json:"filename"`
	MIME          string `json:"mime"`
	Bytes         []byte `json:"-"`
}

// PartialFailure records one (version, format) cell that could not be
// rendered. The rest of the matrix is unaffected.
type PartialFailure struct {
	Format        string `json:"format"`
	VersionLetter string `json:"version"`
	Reason        string `json:"reason"`
}

// Manifest is serialized into the archive as manifest.json.
type Manifest struct {
	Title     string    `json:"title"`
	Versions  []string  `json:"versions"`
	Formats   []string  `json:"formats"`
	CreatedAt time.Time `json:"createdAt"`
}

// Package is the full bundle for a multi-version, multi-format export.
type Package struct {
	Manifest        Manifest
	Artifacts       []Artifact
	PartialFailures []PartialFailure
}

// Archive serializes the package into one zip: manifest.json plus every
// artifact under its deterministic filename.
func (p Package) Archive() ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	mw, err := zw.Create("manifest.json")
	if err != nil {
		return nil, err
	}
	mb, err := json.MarshalIndent(p.Manifest, "", "  ")
	if err != nil {
		return nil, err
	}
	if _, err := mw.Write(mb); err != nil {
		return nil, err
	}

	for _, a := range p.Artifacts {
		w, err := zw.Create(a.Filename)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", a.Filename, err)
		}
		if _, err := w.Write(a.Bytes); err != nil {
			return nil, fmt.Errorf("write %s: %w", a.Filename, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PackageBuilder drives the {versions} x {formats} matrix. It holds no
// cross-call state; a single builder is safe for concurrent Build calls.
type PackageBuilder struct {
	reg         *render.Registry
	log         *slog.Logger
	parallelism int
	now         func() time.Time
}

type BuilderOption func(*PackageBuilder)

// WithParallelism caps concurrent render cells. Zero means one goroutine per
// cell.
func WithParallelism(n int) BuilderOption {
	return func(b *PackageBuilder) { b.parallelism = n }
}

// WithClock is a test hook for Manifest.CreatedAt.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *PackageBuilder) { b.now = now }
}

func NewPackageBuilder(reg *render.Registry, log *slog.Logger, opts ...BuilderOption) *PackageBuilder {
	if log == nil {
		log = slog.Default()
	}
	b := &PackageBuilder{reg: reg, log: log, now: time.Now}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Build renders every (version, format) cell plus one answer key per
// version. Cells are independent: a failing cell lands in PartialFailures
// and the rest of the matrix still completes. Build errors only when the
// whole matrix produced nothing.
//
// An empty letters slice means the no-versioning path: the assessment is
// exported as-is, unshuffled, with unsuffixed filenames.
func (b *PackageBuilder) Build(ctx context.Context, a assessment.Assessment, letters []string, formats []render.Format, branding assessment.Branding, revealAnswers bool) (Package, error) {
	letters = sortedCopy(letters)
	formats = sortedFormats(formats)

	versions, err := b.generateVersions(a, letters)
	if err != nil {
		return Package{}, err
	}

	type cell struct {
		artifact *Artifact
		failure  *PartialFailure
	}
	cells := make([]cell, len(versions)*len(formats))

	g, ctx := errgroup.WithContext(ctx)
	if b.parallelism > 0 {
		g.SetLimit(b.parallelism)
	}
	for vi := range versions {
		for fi := range formats {
			vi, fi := vi, fi
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				v := versions[vi]
				f := formats[fi]
				idx := vi*len(formats) + fi
				r, ok := b.reg.Lookup(f)
				if !ok {
					cells[idx].failure = &PartialFailure{
						Format:        string(f),
						VersionLetter: v.Letter,
						Reason:        ErrMissingDependency.Error(),
					}
					return nil
				}
				docBytes, err := r.Render(v.Assessment, branding, revealAnswers)
				if err != nil {
					b.log.Warn("render cell failed", "format", string(f), "version", v.Letter, "err", err)
					cells[idx].failure = &PartialFailure{
						Format:        string(f),
						VersionLetter: v.Letter,
						Reason:        err.Error(),
					}
					return nil
				}
				cells[idx].artifact = &Artifact{
					Format:        string(f),
					VersionLetter: v.Letter,
					Filename:      artifactName(a.Title, v.Letter, r.Ext()),
					MIME:          r.MIME(),
					Bytes:         docBytes,
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Package{}, err
	}

	pkg := Package{Manifest: Manifest{
		Title:     a.Title,
		Versions:  letters,
		Formats:   formatStrings(formats),
		CreatedAt: b.now().UTC(),
	}}
	for _, c := range cells {
		if c.artifact != nil {
			pkg.Artifacts = append(pkg.Artifacts, *c.artifact)
		}
		if c.failure != nil {
			pkg.PartialFailures = append(pkg.PartialFailures, *c.failure)
		}
	}
	if len(pkg.Artifacts) == 0 {
		return Package{}, fmt.Errorf("%w: %d cells failed", ErrPackagingFailed, len(pkg.PartialFailures))
	}

	// One answer key per version, after the documents so matrix failures
	// alone decide whether the package is viable.
	for _, v := range versions {
		key := assessment.BuildAnswerKey(v.Assessment)
		kb, err := key.MarshalText()
		if err != nil {
			return Package{}, err
		}
		pkg.Artifacts = append(pkg.Artifacts, Artifact{
			Format:        "answer_key",
			VersionLetter: v.Letter,
			Filename:      answerKeyName(a.Title, v.Letter),
			MIME:          "text/plain",
			Bytes:         kb,
		})
	}
	return pkg, nil
}

// generateVersions produces each requested version exactly once. No letters
// means one unshuffled pseudo-version carrying the original assessment.
func (b *PackageBuilder) generateVersions(a assessment.Assessment, letters []string) ([]assessment.Version, error) {
	if len(letters) == 0 {
		return []assessment.Version{{Assessment: a.Clone()}}, nil
	}
	out := make([]assessment.Version, 0, len(letters))
	seen := map[string]bool{}
	for _, letter := range letters {
		if seen[letter] {
			continue
		}
		seen[letter] = true
		v, err := version.Generate(a, letter)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

var (
	unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
	underscoreRun  = regexp.MustCompile(`_+`)
)

// sanitizeTitle makes an assessment title safe as a filename stem.
func sanitizeTitle(title string) string {
	s := unsafeFilename.ReplaceAllString(title, "_")
	s = underscoreRun.ReplaceAllString(s, "_")
	s = trimUnderscores(s)
	if s == "" {
		return "Assessment"
	}
	return s
}

func trimUnderscores(s string) string {
	for len(s) > 0 && s[0] == '_' {
		s = s[1:]
	}
	for len(s) > 0 && s[len(s)-1] == '_' {
		s = s[:len(s)-1]
	}
	return s
}

func artifactName(title, letter, ext string) string {
	if letter == "" {
		return fmt.Sprintf("%s.%s", sanitizeTitle(title), ext)
	}
	return fmt.Sprintf("%s_Version_%s.%s", sanitizeTitle(title), letter, ext)
}

func answerKeyName(title, letter string) string {
	if letter == "" {
		return fmt.Sprintf("%s_AnswerKey.txt", sanitizeTitle(title))
	}
	return fmt.Sprintf("%s_Version_%s_AnswerKey.txt", sanitizeTitle(title), letter)
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)
	return out
}

func sortedFormats(in []render.Format) []render.Format {
	out := append([]render.Format(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func formatStrings(in []render.Format) []string {
	out := make([]string, len(in))
	for i, f := range in {
		out[i] = string(f)
	}
	return out
}
