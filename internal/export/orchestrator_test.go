package export_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mind-engage/examkit/internal/assessment"
	"github.com/mind-engage/examkit/internal/export"
	"github.com/mind-engage/examkit/internal/render"
)

func TestExportEmptyAssessment(t *testing.T) {
	orc := export.NewOrchestrator(render.NewRegistry(&fakeRenderer{format: "fmt1"}), discard())
	_, err := orc.Export(context.Background(), export.Request{
		Assessment: assessment.Assessment{Title: "Empty"},
		Formats:    []string{"fmt1"},
	})
	if !errors.Is(err, export.ErrEmptyAssessment) {
		t.Fatalf("expected ErrEmptyAssessment, got %v", err)
	}
}

func TestExportNoFormatsAvailable(t *testing.T) {
	orc := export.NewOrchestrator(render.NewRegistry(), discard())
	_, err := orc.Export(context.Background(), export.Request{
		Assessment: matrixAssessment(),
		Formats:    []string{"pdf"},
	})
	if !errors.Is(err, export.ErrNoFormatsAvailable) {
		t.Fatalf("expected ErrNoFormatsAvailable, got %v", err)
	}
}

func TestExportDropsUnavailableFormatWithWarning(t *testing.T) {
	orc := export.NewOrchestrator(render.NewRegistry(&fakeRenderer{format: "fmt1"}), discard())
	res, err := orc.Export(context.Background(), export.Request{
		Assessment: matrixAssessment(),
		Formats:    []string{"fmt1", "pdf"},
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "pdf") {
		t.Fatalf("expected one warning naming pdf, got %v", res.Warnings)
	}
	// One usable format, no versions: single-document path.
	if res.MIME != "text/plain" {
		t.Fatalf("MIME = %q", res.MIME)
	}
	if res.Filename != "Matrix_Test.fmt1" {
		t.Fatalf("filename = %q", res.Filename)
	}
	if res.ExportID == "" {
		t.Fatal("missing export id")
	}
}

func TestExportSingleDocumentPath(t *testing.T) {
	orc := export.NewOrchestrator(render.NewRegistry(&fakeRenderer{format: "fmt1"}), discard())
	res, err := orc.Export(context.Background(), export.Request{
		Assessment:    matrixAssessment(),
		Formats:       []string{"fmt1"},
		RevealAnswers: true,
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(string(res.Bytes), "reveal=true") {
		t.Fatal("reveal flag not forwarded to renderer")
	}
}

func TestExportPackagePath(t *testing.T) {
	orc := export.NewOrchestrator(render.NewRegistry(
		&fakeRenderer{format: "fmt1"},
		&fakeRenderer{format: "fmt2"},
	), discard())
	res, err := orc.Export(context.Background(), export.Request{
		Assessment: matrixAssessment(),
		Formats:    []string{"fmt1", "fmt2"},
		Versions:   []string{"A", "B", "C"},
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.MIME != "application/zip" {
		t.Fatalf("MIME = %q", res.MIME)
	}
	if res.Filename != "Matrix_Test_Export.zip" {
		t.Fatalf("filename = %q", res.Filename)
	}
	zr, err := zip.NewReader(bytes.NewReader(res.Bytes), int64(len(res.Bytes)))
	if err != nil {
		t.Fatalf("result is not a zip: %v", err)
	}
	// 3 versions x 2 formats + 3 answer keys + manifest.
	if got := len(zr.File); got != 10 {
		t.Fatalf("archive has %d files, want 10", got)
	}
}

func TestExportMultipleFormatsWithoutVersions(t *testing.T) {
	orc := export.NewOrchestrator(render.NewRegistry(
		&fakeRenderer{format: "fmt1"},
		&fakeRenderer{format: "fmt2"},
	), discard())
	res, err := orc.Export(context.Background(), export.Request{
		Assessment: matrixAssessment(),
		Formats:    []string{"fmt1", "fmt2"},
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if res.MIME != "application/zip" {
		t.Fatalf("expected a package for multiple formats, got MIME %q", res.MIME)
	}
	zr, err := zip.NewReader(bytes.NewReader(res.Bytes), int64(len(res.Bytes)))
	if err != nil {
		t.Fatalf("result is not a zip: %v", err)
	}
	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	if !names["Matrix_Test.fmt1"] || !names["Matrix_Test.fmt2"] {
		t.Fatalf("unsuffixed artifacts missing: %v", names)
	}
}
