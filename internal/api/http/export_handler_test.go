package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/mind-engage/examkit/internal/api/http"
	"github.com/mind-engage/examkit/internal/assessment"
	"github.com/mind-engage/examkit/internal/config"
	"github.com/mind-engage/examkit/internal/export"
	"github.com/mind-engage/examkit/internal/render"
	"github.com/mind-engage/examkit/internal/render/htmldoc"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := render.NewRegistry(htmldoc.New())
	orc := export.NewOrchestrator(reg, log)
	srv := httptest.NewServer(api.NewRouter(orc, reg, config.BrandingDefaults{InstitutionName: "Testing U"}))
	t.Cleanup(srv.Close)
	return srv
}

func postExport(t *testing.T, srv *httptest.Server, req export.Request) *http.Response {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(srv.URL+"/export", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST /export: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func sampleRequest() export.Request {
	return export.Request{
		Assessment: assessment.Assessment{
			Title: "HTTP Quiz",
			Questions: []assessment.Question{{
				Type:          assessment.TypeMultipleChoice,
				Text:          "1 + 1 = ?",
				Options:       []string{"1", "2", "3"},
				CorrectAnswer: "B",
				Points:        1,
			}},
		},
		Formats: []string{"html"},
	}
}

func TestExportEndpointSingleDocument(t *testing.T) {
	srv := newServer(t)
	resp := postExport(t, srv, sampleRequest())

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html" {
		t.Fatalf("content type %q", ct)
	}
	if resp.Header.Get("X-Export-Id") == "" {
		t.Fatal("missing X-Export-Id")
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "1 + 1 = ?") {
		t.Fatal("document body missing question text")
	}
	// Branding default injected by the harness.
	if !strings.Contains(string(body), "Testing U") {
		t.Fatal("branding default not applied")
	}
}

func TestExportEndpointPackage(t *testing.T) {
	srv := newServer(t)
	req := sampleRequest()
	req.Versions = []string{"A", "B"}
	resp := postExport(t, srv, req)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/zip" {
		t.Fatalf("content type %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "HTTP_Quiz_Export.zip") {
		t.Fatalf("content disposition %q", cd)
	}
}

func TestExportEndpointEmptyAssessment(t *testing.T) {
	srv := newServer(t)
	req := export.Request{Formats: []string{"html"}}
	resp := postExport(t, srv, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}

func TestExportEndpointUnknownFormat(t *testing.T) {
	srv := newServer(t)
	req := sampleRequest()
	req.Formats = []string{"pdf"} // not registered in this harness
	resp := postExport(t, srv, req)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", resp.StatusCode)
	}
}

func TestFormatsEndpoint(t *testing.T) {
	srv := newServer(t)
	resp, err := http.Get(srv.URL + "/formats")
	if err != nil {
		t.Fatalf("GET /formats: %v", err)
	}
	defer resp.Body.Close()
	var out struct {
		Formats []string `json:"formats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Formats) != 1 || out.Formats[0] != "html" {
		t.Fatalf("formats = %v", out.Formats)
	}
}
