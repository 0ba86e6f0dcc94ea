package render

import (
	"fmt"
	"strings"

	"github.com/mind-engage/examkit/internal/assessment"
)

// Placeholder strings substituted for unset branding fields. Identical
// across formats so student and instructor copies line up.
const (
	PlaceholderInstitution = "[Institution Name]"
	PlaceholderDepartment  = "[Department]"
	PlaceholderCourse      = "[Course]"
	PlaceholderInstructor  = "[Instructor]"
	PlaceholderDate        = "Date: ____________"
)

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}

// HeaderLines produces the three-line document header every format renders:
// institution, department / course, instructor + date.
func HeaderLines(b assessment.Branding) []string {
	date := PlaceholderDate
	if strings.TrimSpace(b.ExamDate) != "" {
		date = "Date: " + b.ExamDate
	}
	return []string{
		orPlaceholder(b.InstitutionName, PlaceholderInstitution),
		orPlaceholder(b.Department, PlaceholderDepartment) + " / " + orPlaceholder(b.Course, PlaceholderCourse),
		"Instructor: " + orPlaceholder(b.Instructor, PlaceholderInstructor) + "    " + date,
	}
}

// MetaLine summarizes the assessment under the title: kind, points, duration.
func MetaLine(a assessment.Assessment) string {
	kind := a.ContentType
	if kind == "" {
		kind = "quiz"
	}
	line := fmt.Sprintf("%s | %d points", strings.ToUpper(kind[:1])+kind[1:], a.SumPoints())
	if a.EstimatedDuration > 0 {
		line += fmt.Sprintf(" | %d minutes", a.EstimatedDuration)
	}
	return line
}

// EssayLines sizes the ruled writing area by difficulty, widened by the
// optional MaxLength hint (roughly 80 characters per ruled line).
func EssayLines(q assessment.Question) int {
	lines := 10
	switch strings.ToLower(q.Difficulty) {
	case "easy":
		lines = 8
	case "hard":
		lines = 16
	}
	if q.MaxLength > 0 {
		if byHint := q.MaxLength / 80; byHint > lines {
			lines = byHint
		}
	}
	if q.MinLength > 0 {
		if byHint := q.MinLength/80 + 2; byHint > lines {
			lines = byHint
		}
	}
	return lines
}

// Item is one layout unit in document order: a section heading or a numbered
// question. Keeping the traversal here guarantees all formats and the answer
// key agree on numbering.
type Item struct {
	Heading  *assessment.Section // non-nil for a heading item
	Question *assessment.Question
	Number   int // 1-based, question items only
}

// Items flattens the assessment into renderer-ready order: top-level
// questions first, then each section preceded by its heading.
func Items(a *assessment.Assessment) []Item {
	var out []Item
	num := 0
	for i := range a.Questions {
		num++
		out = append(out, Item{Question: &a.Questions[i], Number: num})
	}
	for i := range a.Sections {
		s := &a.Sections[i]
		out = append(out, Item{Heading: s})
		for j := range s.Questions {
			num++
			out = append(out, Item{Question: &s.Questions[j], Number: num})
		}
	}
	return out
}

// TrueFalseOptions is the fixed option pair rendered for true_false
// questions regardless of what the source carries.
func TrueFalseOptions() []string { return []string{"True", "False"} }
