// Package htmldoc renders an assessment as a single self-contained HTML
// document with inline styles and no external resources.
package htmldoc

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/mind-engage/examkit/internal/assessment"
	"github.com/mind-engage/examkit/internal/render"
)

func init() {
	render.RegisterFactory(render.FormatHTML, func() (render.Renderer, error) {
		return New(), nil
	})
}

type Renderer struct{}

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Format() render.Format { return render.FormatHTML }
func (r *Renderer) MIME() string          { return "text/html" }
func (r *Renderer) Ext() string           { return "html" }

// Render builds the document through html/template. Auto-escaping is the
// safety boundary here: question text, options and explanations are
// generator output and must never be interpreted as markup.
func (r *Renderer) Render(a assessment.Assessment, b assessment.Branding, revealAnswers bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, buildView(a, b, revealAnswers)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type docView struct {
	Title       string
	Description string
	Meta        string
	Header      []string
	Logo        template.URL // inline data URI only, keeps the page self-contained
	Watermark   string
	Reveal      bool
	Blocks      []blockView
}

type blockView struct {
	// Exactly one of Section / Question is set.
	Section  *sectionView
	Question *questionView
}

type sectionView struct {
	Name         string
	Instructions string
}

type questionView struct {
	Number      int
	Text        string
	Points      int
	Options     []optionView // multiple_choice and true_false
	BlankLines  int          // short_answer, fill_blank, essay, fallback
	Answer      string       // reveal mode only
	Explanation string       // reveal mode only
	Fallback    bool         // unknown question type
}

type optionView struct {
	Letter  string
	Text    string
	Correct bool // reveal mode only
}

func buildView(a assessment.Assessment, b assessment.Branding, reveal bool) docView {
	v := docView{
		Title:       a.Title,
		Description: a.Description,
		Meta:        render.MetaLine(a),
		Header:      render.HeaderLines(b),
		Watermark:   b.Watermark,
		Reveal:      reveal,
	}
	if strings.HasPrefix(b.Logo, "data:image/") {
		v.Logo = template.URL(b.Logo)
	}
	for _, it := range render.Items(&a) {
		if it.Heading != nil {
			v.Blocks = append(v.Blocks, blockView{Section: &sectionView{
				Name:         it.Heading.Name,
				Instructions: it.Heading.Instructions,
			}})
			continue
		}
		v.Blocks = append(v.Blocks, blockView{Question: questionBlock(*it.Question, it.Number, reveal)})
	}
	return v
}

func questionBlock(q assessment.Question, number int, reveal bool) *questionView {
	qv := &questionView{Number: number, Text: q.Text, Points: q.Points}
	switch q.Type {
	case assessment.TypeMultipleChoice:
		correct := -1
		if reveal {
			if i, ok := assessment.ResolveCorrectOption(q); ok {
				correct = i
			}
		}
		for i, opt := range q.Options {
			qv.Options = append(qv.Options, optionView{
				Letter:  assessment.OptionLetter(i),
				Text:    opt,
				Correct: i == correct,
			})
		}
	case assessment.TypeTrueFalse:
		isTrue := assessment.IsTrue(q)
		for i, opt := range render.TrueFalseOptions() {
			qv.Options = append(qv.Options, optionView{
				Letter:  assessment.OptionLetter(i),
				Text:    opt,
				Correct: reveal && ((i == 0) == isTrue),
			})
		}
	case assessment.TypeShortAnswer, assessment.TypeFillBlank:
		qv.BlankLines = 1
		if reveal {
			qv.Answer = q.CorrectAnswer
		}
	case assessment.TypeEssay:
		qv.BlankLines = render.EssayLines(q)
		if reveal {
			qv.Answer = q.CorrectAnswer
		}
	default:
		// Unknown kind: generic labelled answer line, never fatal.
		qv.Fallback = true
		qv.BlankLines = 1
		if reveal {
			qv.Answer = q.CorrectAnswer
		}
	}
	if reveal {
		qv.Explanation = q.Explanation
	}
	return qv
}
