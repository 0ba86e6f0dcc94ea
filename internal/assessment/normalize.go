package assessment

import (
	"fmt"
	"log/slog"
)

// Placeholder values substituted for required fields the generator left
// absent. Normalization keeps a malformed question renderable instead of
// failing the whole export.
const (
	placeholderText   = "Question text unavailable"
	placeholderOption = "Option"
)

// Normalize returns a copy of a with malformed questions repaired: empty
// text, missing multiple_choice options and non-positive point values are
// replaced with safe defaults. Each repair is logged at warn level. A
// declared-vs-actual TotalPoints mismatch is recorded the same way but left
// untouched.
func Normalize(a Assessment, log *slog.Logger) Assessment {
	if log == nil {
		log = slog.Default()
	}
	out := a.Clone()
	num := 0
	fix := func(qs []Question) {
		for i := range qs {
			num++
			normalizeQuestion(&qs[i], num, log)
		}
	}
	fix(out.Questions)
	for i := range out.Sections {
		fix(out.Sections[i].Questions)
	}
	if out.PointsMismatch() {
		log.Warn("declared total points disagree with question sum",
			"declared", out.TotalPoints, "actual", out.SumPoints())
	}
	return out
}

func normalizeQuestion(q *Question, num int, log *slog.Logger) {
	if q.Text == "" {
		q.Text = placeholderText
		log.Warn("question has no text, using placeholder", "question", num)
	}
	if q.Points <= 0 {
		log.Warn("question has non-positive points, defaulting to 1", "question", num, "points", q.Points)
		q.Points = 1
	}
	if q.Type == TypeMultipleChoice && len(q.Options) == 0 {
		for i := 0; i < 4; i++ {
			q.Options = append(q.Options, fmt.Sprintf("%s %s", placeholderOption, OptionLetter(i)))
		}
		log.Warn("multiple_choice question has no options, using placeholders", "question", num)
	}
}
