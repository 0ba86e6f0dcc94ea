package assessment

// QuestionType enumerates the question kinds the engine knows how to lay
// out. Values arriving from the generator that match none of these still
// decode fine; renderers route them through a generic fallback block.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeShortAnswer    QuestionType = "short_answer"
	TypeFillBlank      QuestionType = "fill_blank"
	TypeEssay          QuestionType = "essay"
)

// Known reports whether t is one of the five supported kinds.
func (t QuestionType) Known() bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeShortAnswer, TypeFillBlank, TypeEssay:
		return true
	}
	return false
}

type Question struct {
	ID            string       `json:"id,omitempty"`
	Type          QuestionType `json:"type"`
	Text          string       `json:"text"`
	Options       []string     `json:"options,omitempty"` // multiple_choice only
	CorrectAnswer string       `json:"correct_answer,omitempty"`
	Explanation   string       `json:"explanation,omitempty"`
	Points        int          `json:"points"`
	Difficulty    string       `json:"difficulty,omitempty"` // easy|medium|hard

	// Optional essay sizing hints (characters).
	MinLength int `json:"min_length,omitempty"`
	MaxLength int `json:"max_length,omitempty"`
}

// Clone returns a deep copy; Options is the only reference field.
func (q Question) Clone() Question {
	out := q
	if q.Options != nil {
		out.Options = append([]string(nil), q.Options...)
	}
	return out
}

type Section struct {
	Name         string     `json:"name"`
	Instructions string     `json:"instructions,omitempty"`
	Questions    []Question `json:"questions"`
}

type Assessment struct {
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	ContentType       string     `json:"content_type,omitempty"` // quiz|exam
	TotalPoints       int        `json:"total_points,omitempty"`
	EstimatedDuration int        `json:"estimated_duration,omitempty"` // minutes
	Questions         []Question `json:"questions,omitempty"`
	Sections          []Section  `json:"sections,omitempty"`
}

// Clone returns a fully independent copy of the assessment.
func (a Assessment) Clone() Assessment {
	out := a
	if a.Questions != nil {
		out.Questions = make([]Question, len(a.Questions))
		for i, q := range a.Questions {
			out.Questions[i] = q.Clone()
		}
	}
	if a.Sections != nil {
		out.Sections = make([]Section, len(a.Sections))
		for i, s := range a.Sections {
			cs := s
			cs.Questions = make([]Question, len(s.Questions))
			for j, q := range s.Questions {
				cs.Questions[j] = q.Clone()
			}
			out.Sections[i] = cs
		}
	}
	return out
}

// AllQuestions flattens top-level questions followed by each section's
// questions, in declaration order. This is the numbering order every
// renderer and the answer key use.
func (a Assessment) AllQuestions() []Question {
	out := make([]Question, 0, a.QuestionCount())
	out = append(out, a.Questions...)
	for _, s := range a.Sections {
		out = append(out, s.Questions...)
	}
	return out
}

func (a Assessment) QuestionCount() int {
	n := len(a.Questions)
	for _, s := range a.Sections {
		n += len(s.Questions)
	}
	return n
}

// SumPoints totals the points of every contained question.
func (a Assessment) SumPoints() int {
	total := 0
	for _, q := range a.AllQuestions() {
		total += q.Points
	}
	return total
}

// PointsMismatch reports whether the declared TotalPoints disagrees with the
// actual sum. The engine trusts the declared value but records mismatches; it
// never rewrites TotalPoints.
func (a Assessment) PointsMismatch() bool {
	return a.TotalPoints != 0 && a.TotalPoints != a.SumPoints()
}

// Branding carries caller-supplied institutional identity fields. All are
// optional; renderers substitute fixed placeholder text per unset field.
type Branding struct {
	InstitutionName string `json:"institution_name,omitempty"`
	Department      string `json:"department,omitempty"`
	Course          string `json:"course,omitempty"`
	Instructor      string `json:"instructor,omitempty"`
	ExamDate        string `json:"exam_date,omitempty"`
	Watermark       string `json:"watermark,omitempty"`
	Logo            string `json:"logo,omitempty"`
}

type VariationMeta struct {
	ShuffledQuestionOrder bool `json:"shuffled_question_order"`
	ShuffledOptions       bool `json:"shuffled_options"`
}

// Version is one independently shuffled copy of an assessment, identified by
// a letter. It owns its Assessment outright and is never mutated after
// construction.
type Version struct {
	Letter     string        `json:"letter"`
	Assessment Assessment    `json:"assessment"`
	Meta       VariationMeta `json:"variation_metadata"`
}

// OptionLetter maps an option position to its display letter: A..Z, then
// AA, AB and so on for pathological option counts.
func OptionLetter(i int) string {
	if i < 0 {
		return "?"
	}
	if i < 26 {
		return string(rune('A' + i))
	}
	return OptionLetter(i/26-1) + OptionLetter(i%26)
}
