package assessment

import (
	"bytes"
	"fmt"
)

// KeyEntry is one line of an answer key.
type KeyEntry struct {
	QuestionNumber int    `json:"question_number"`
	CorrectAnswer  string `json:"correct_answer"`
	Explanation    string `json:"explanation,omitempty"`
	Points         int    `json:"points"`
}

// Key is a renderer-agnostic answer key for one assessment (original or any
// shuffled version).
type Key struct {
	Title       string     `json:"title"`
	Entries     []KeyEntry `json:"entries"`
	TotalPoints int        `json:"total_points"`
}

// BuildAnswerKey derives the answer key from the assessment's questions in
// numbering order. For multiple_choice the answer is reported as the current
// letter plus option content so the key stays meaningful after a shuffle;
// unresolvable answers fall back to the raw CorrectAnswer text.
func BuildAnswerKey(a Assessment) Key {
	k := Key{Title: a.Title}
	for i, q := range a.AllQuestions() {
		e := KeyEntry{
			QuestionNumber: i + 1,
			CorrectAnswer:  keyAnswer(q),
			Explanation:    q.Explanation,
			Points:         q.Points,
		}
		k.Entries = append(k.Entries, e)
		k.TotalPoints += q.Points
	}
	return k
}

func keyAnswer(q Question) string {
	switch q.Type {
	case TypeMultipleChoice:
		if i, ok := ResolveCorrectOption(q); ok {
			return fmt.Sprintf("%s) %s", OptionLetter(i), q.Options[i])
		}
	case TypeTrueFalse:
		if IsTrue(q) {
			return "True"
		}
		return "False"
	case TypeEssay:
		if q.CorrectAnswer == "" {
			return "(graded manually)"
		}
	}
	if q.CorrectAnswer == "" {
		return "(not provided)"
	}
	return q.CorrectAnswer
}

// MarshalText renders the key as the plain-text artifact bundled into export
// packages.
func (k Key) MarshalText() ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "ANSWER KEY - %s\n", k.Title)
	fmt.Fprintf(&b, "Total points: %d\n\n", k.TotalPoints)
	for _, e := range k.Entries {
		fmt.Fprintf(&b, "%d. %s (%d pts)\n", e.QuestionNumber, e.CorrectAnswer, e.Points)
		if e.Explanation != "" {
			fmt.Fprintf(&b, "   Explanation: %s\n", e.Explanation)
		}
	}
	return b.Bytes(), nil
}
