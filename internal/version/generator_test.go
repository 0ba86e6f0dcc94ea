package version_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/mind-engage/examkit/internal/assessment"
	"github.com/mind-engage/examkit/internal/version"
)

func capitals() assessment.Assessment {
	mc := func(text string) assessment.Question {
		return assessment.Question{
			Type:          assessment.TypeMultipleChoice,
			Text:          text,
			Options:       []string{"Paris", "London", "Berlin", "Rome"},
			CorrectAnswer: "A",
			Points:        2,
		}
	}
	return assessment.Assessment{
		Title:       "European Capitals",
		ContentType: "exam",
		Questions:   []assessment.Question{mc("Q1"), mc("Q2"), mc("Q3")},
	}
}

func TestGenerateDeterministic(t *testing.T) {
	src := capitals()
	v1, err := version.Generate(src, "B")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	v2, err := version.Generate(src, "B")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(v1, v2) {
		t.Fatalf("same source and letter produced different versions:\n%#v\n%#v", v1, v2)
	}
}

func TestGenerateLettersDiverge(t *testing.T) {
	src := capitals()
	vA, _ := version.Generate(src, "A")
	vB, _ := version.Generate(src, "B")
	if reflect.DeepEqual(vA.Assessment, vB.Assessment) {
		t.Fatal("versions A and B are identical; letters should drive distinct permutations")
	}
}

func TestGenerateDoesNotMutateSource(t *testing.T) {
	src := capitals()
	want := src.Clone()
	if _, err := version.Generate(src, "C"); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !reflect.DeepEqual(src, want) {
		t.Fatal("Generate mutated its source assessment")
	}
}

// The answer must keep designating the same option content, whatever letter
// that content now carries.
func TestGenerateContentIdentity(t *testing.T) {
	src := capitals()
	for _, letter := range []string{"A", "B", "C", "D"} {
		v, err := version.Generate(src, letter)
		if err != nil {
			t.Fatalf("Generate(%s): %v", letter, err)
		}
		for i, q := range v.Assessment.Questions {
			got, ok := assessment.CorrectOptionText(q)
			if !ok {
				t.Fatalf("version %s question %d: correct answer %q unresolvable", letter, i+1, q.CorrectAnswer)
			}
			if got != "Paris" {
				t.Fatalf("version %s question %d: correct answer points at %q, want Paris", letter, i+1, got)
			}
		}
	}
}

func TestGenerateVersionCScenario(t *testing.T) {
	src := capitals()
	v, err := version.Generate(src, "C")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(v.Assessment.Questions) != 3 {
		t.Fatalf("question count changed: %d", len(v.Assessment.Questions))
	}
	for i, q := range v.Assessment.Questions {
		// Option set unchanged, only order may differ.
		got := append([]string(nil), q.Options...)
		sort.Strings(got)
		want := []string{"Berlin", "London", "Paris", "Rome"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("question %d options changed: %v", i+1, q.Options)
		}
		// Whatever letter Paris landed on is the new correct answer.
		parisAt := -1
		for j, opt := range q.Options {
			if opt == "Paris" {
				parisAt = j
			}
		}
		if want := assessment.OptionLetter(parisAt); q.CorrectAnswer != want {
			t.Fatalf("question %d: correct answer %q, Paris is at %q", i+1, q.CorrectAnswer, want)
		}
	}
}

func TestGeneratePointsConserved(t *testing.T) {
	src := capitals()
	v, err := version.Generate(src, "B")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	key := assessment.BuildAnswerKey(v.Assessment)
	if key.TotalPoints != v.Assessment.SumPoints() {
		t.Fatalf("key total %d, version sum %d", key.TotalPoints, v.Assessment.SumPoints())
	}
	if key.TotalPoints != src.SumPoints() {
		t.Fatalf("version total %d diverged from source %d", key.TotalPoints, src.SumPoints())
	}
}

func TestGenerateShufflesWithinSections(t *testing.T) {
	src := assessment.Assessment{
		Title: "Sectioned",
		Sections: []assessment.Section{
			{Name: "Part I", Questions: []assessment.Question{
				{Type: assessment.TypeShortAnswer, Text: "s1", Points: 1},
				{Type: assessment.TypeShortAnswer, Text: "s2", Points: 1},
			}},
			{Name: "Part II", Questions: []assessment.Question{
				{Type: assessment.TypeEssay, Text: "e1", Points: 5},
			}},
		},
	}
	v, err := version.Generate(src, "B")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(v.Assessment.Sections) != 2 {
		t.Fatalf("section structure changed: %d sections", len(v.Assessment.Sections))
	}
	if got := len(v.Assessment.Sections[0].Questions); got != 2 {
		t.Fatalf("Part I has %d questions", got)
	}
	if v.Assessment.Sections[1].Questions[0].Text != "e1" {
		t.Fatal("questions leaked across sections")
	}
}

func TestGenerateEmptyLetter(t *testing.T) {
	if _, err := version.Generate(capitals(), ""); err == nil {
		t.Fatal("expected error for empty letter")
	}
}

func TestGenerateUnresolvableAnswerLeftAlone(t *testing.T) {
	src := assessment.Assessment{
		Title: "Odd",
		Questions: []assessment.Question{{
			Type:          assessment.TypeMultipleChoice,
			Text:          "q",
			Options:       []string{"x", "y", "z"},
			CorrectAnswer: "not-an-option",
			Points:        1,
		}},
	}
	v, err := version.Generate(src, "A")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if v.Assessment.Questions[0].CorrectAnswer != "not-an-option" {
		t.Fatalf("unresolvable answer was rewritten to %q", v.Assessment.Questions[0].CorrectAnswer)
	}
}
