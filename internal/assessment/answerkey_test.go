package assessment_test

import (
	"strings"
	"testing"

	"github.com/mind-engage/examkit/internal/assessment"
)

func sampleAssessment() assessment.Assessment {
	return assessment.Assessment{
		Title:       "Geography Basics",
		ContentType: "quiz",
		TotalPoints: 9,
		Questions: []assessment.Question{
			mcq("A", "Paris", "London", "Berlin", "Rome"),
			{Type: assessment.TypeTrueFalse, Text: "The Danube flows into the Black Sea.", CorrectAnswer: "true", Points: 1},
			{Type: assessment.TypeShortAnswer, Text: "Capital of Japan?", CorrectAnswer: "Tokyo", Explanation: "Since 1868.", Points: 2},
		},
		Sections: []assessment.Section{{
			Name:         "Essays",
			Instructions: "Answer in full sentences.",
			Questions: []assessment.Question{
				{Type: assessment.TypeEssay, Text: "Discuss plate tectonics.", Points: 4, Difficulty: "hard"},
			},
		}},
	}
}

func TestBuildAnswerKeyNumberingAndPoints(t *testing.T) {
	a := sampleAssessment()
	key := assessment.BuildAnswerKey(a)

	if len(key.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(key.Entries))
	}
	for i, e := range key.Entries {
		if e.QuestionNumber != i+1 {
			t.Fatalf("entry %d numbered %d", i, e.QuestionNumber)
		}
	}
	if key.TotalPoints != a.SumPoints() {
		t.Fatalf("key total %d, question sum %d", key.TotalPoints, a.SumPoints())
	}
}

func TestBuildAnswerKeyEntries(t *testing.T) {
	key := assessment.BuildAnswerKey(sampleAssessment())

	if got := key.Entries[0].CorrectAnswer; got != "A) Paris" {
		t.Fatalf("mcq entry = %q", got)
	}
	if got := key.Entries[1].CorrectAnswer; got != "True" {
		t.Fatalf("true_false entry = %q", got)
	}
	if got := key.Entries[2].CorrectAnswer; got != "Tokyo" {
		t.Fatalf("short_answer entry = %q", got)
	}
	if got := key.Entries[3].CorrectAnswer; got != "(graded manually)" {
		t.Fatalf("essay entry = %q", got)
	}
}

func TestAnswerKeyMarshalText(t *testing.T) {
	key := assessment.BuildAnswerKey(sampleAssessment())
	b, err := key.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	text := string(b)
	for _, want := range []string{"Geography Basics", "Total points: 9", "1. A) Paris", "Explanation: Since 1868."} {
		if !strings.Contains(text, want) {
			t.Fatalf("key text missing %q:\n%s", want, text)
		}
	}
}
