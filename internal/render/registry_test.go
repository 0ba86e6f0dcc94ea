package render_test

import (
	"reflect"
	"testing"

	"github.com/mind-engage/examkit/internal/assessment"
	"github.com/mind-engage/examkit/internal/render"
)

type stubRenderer struct{ format render.Format }

func (s *stubRenderer) Format() render.Format { return s.format }
func (s *stubRenderer) MIME() string          { return "application/octet-stream" }
func (s *stubRenderer) Ext() string           { return "bin" }
func (s *stubRenderer) Render(assessment.Assessment, assessment.Branding, bool) ([]byte, error) {
	return []byte{}, nil
}

func TestRegistryLookupAndAvailable(t *testing.T) {
	reg := render.NewRegistry(&stubRenderer{format: "zzz"}, &stubRenderer{format: "aaa"})

	if _, ok := reg.Lookup("aaa"); !ok {
		t.Fatal("registered format not found")
	}
	if _, ok := reg.Lookup("pdf"); ok {
		t.Fatal("unregistered format reported available")
	}
	if got := reg.Available(); !reflect.DeepEqual(got, []render.Format{"aaa", "zzz"}) {
		t.Fatalf("Available() = %v, want sorted [aaa zzz]", got)
	}
}

func TestHeaderLinesPlaceholders(t *testing.T) {
	lines := render.HeaderLines(assessment.Branding{})
	if len(lines) != 3 {
		t.Fatalf("expected 3 header lines, got %d", len(lines))
	}
	if lines[0] != render.PlaceholderInstitution {
		t.Fatalf("line 1 = %q", lines[0])
	}

	lines = render.HeaderLines(assessment.Branding{
		InstitutionName: "MIT",
		Course:          "6.001",
		ExamDate:        "2025-06-01",
	})
	if lines[0] != "MIT" {
		t.Fatalf("line 1 = %q", lines[0])
	}
	if lines[1] != render.PlaceholderDepartment+" / 6.001" {
		t.Fatalf("line 2 = %q", lines[1])
	}
	if lines[2] != "Instructor: "+render.PlaceholderInstructor+"    Date: 2025-06-01" {
		t.Fatalf("line 3 = %q", lines[2])
	}
}

func TestEssayLines(t *testing.T) {
	base := assessment.Question{Type: assessment.TypeEssay}
	if got := render.EssayLines(base); got != 10 {
		t.Fatalf("default essay lines = %d", got)
	}
	base.Difficulty = "hard"
	if got := render.EssayLines(base); got != 16 {
		t.Fatalf("hard essay lines = %d", got)
	}
	base.MaxLength = 2400 // 30 ruled lines
	if got := render.EssayLines(base); got != 30 {
		t.Fatalf("hinted essay lines = %d", got)
	}
}

func TestItemsNumbering(t *testing.T) {
	a := assessment.Assessment{
		Questions: []assessment.Question{{Text: "q1"}, {Text: "q2"}},
		Sections: []assessment.Section{{
			Name:      "S",
			Questions: []assessment.Question{{Text: "q3"}},
		}},
	}
	items := render.Items(&a)
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	if items[2].Heading == nil {
		t.Fatal("expected section heading at position 3")
	}
	if items[3].Number != 3 {
		t.Fatalf("section question numbered %d, want 3", items[3].Number)
	}
}
