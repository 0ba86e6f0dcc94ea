// Package pdfdoc renders an assessment as a paginated PDF document.
package pdfdoc

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/mind-engage/examkit/internal/assessment"
	"github.com/mind-engage/examkit/internal/render"
)

func init() {
	render.RegisterFactory(render.FormatPDF, New)
}

type Renderer struct{}

// New probes the backend with a one-page render so a broken environment
// downgrades to a missing-dependency at startup instead of failing exports
// cell by cell.
func New() (render.Renderer, error) {
	r := &Renderer{}
	probe := assessment.Assessment{Title: "probe", Questions: []assessment.Question{
		{Type: assessment.TypeShortAnswer, Text: "probe", Points: 1},
	}}
	if _, err := r.Render(probe, assessment.Branding{}, false); err != nil {
		return nil, fmt.Errorf("pdf backend probe: %w", err)
	}
	return r, nil
}

func (r *Renderer) Format() render.Format { return render.FormatPDF }
func (r *Renderer) MIME() string          { return "application/pdf" }
func (r *Renderer) Ext() string           { return "pdf" }

const (
	lineH    = 5.5 // mm
	ruledGap = 8.0
)

func (r *Renderer) Render(a assessment.Assessment, b assessment.Branding, revealAnswers bool) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	// Fixed creation date keeps repeated renders of the same input stable.
	pdf.SetCreationDate(time.Unix(0, 0))
	pdf.SetTitle(a.Title, true)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	if b.Watermark != "" {
		drawWatermark(pdf, tr(b.Watermark))
	}
	drawHeader(pdf, tr, a, b)

	for _, it := range render.Items(&a) {
		if it.Heading != nil {
			drawSectionHeading(pdf, tr, it.Heading)
			continue
		}
		drawQuestion(pdf, tr, *it.Question, it.Number, revealAnswers)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, a assessment.Assessment, b assessment.Branding) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	lines := render.HeaderLines(b)
	pdf.CellFormat(0, 6, tr(lines[0]), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(lines[1]), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(lines[2]), "", 1, "C", false, 0, "")
	w, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	y := pdf.GetY() + 2
	pdf.Line(left, y, w-right, y)
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 15)
	pdf.MultiCell(0, 7, tr(a.Title), "", "C", false)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 5, tr(render.MetaLine(a)), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	if a.Description != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, tr(a.Description), "", "L", false)
	}
	pdf.Ln(4)
}

func drawSectionHeading(pdf *fpdf.Fpdf, tr func(string) string, s *assessment.Section) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 6, tr(s.Name), "", "L", false)
	if s.Instructions != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(90, 90, 90)
		pdf.MultiCell(0, 4.5, tr(s.Instructions), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(2)
}

func drawQuestion(pdf *fpdf.Fpdf, tr func(string) string, q assessment.Question, number int, reveal bool) {
	pdf.SetFont("Helvetica", "B", 10)
	stem := fmt.Sprintf("%d. %s  (%d pts)", number, q.Text, q.Points)
	pdf.MultiCell(0, lineH, tr(stem), "", "L", false)
	pdf.SetFont("Helvetica", "", 10)

	switch q.Type {
	case assessment.TypeMultipleChoice:
		correct := -1
		if reveal {
			if i, ok := assessment.ResolveCorrectOption(q); ok {
				correct = i
			}
		}
		for i, opt := range q.Options {
			drawOption(pdf, tr, assessment.OptionLetter(i), opt, i == correct)
		}
	case assessment.TypeTrueFalse:
		isTrue := assessment.IsTrue(q)
		for i, opt := range render.TrueFalseOptions() {
			drawOption(pdf, tr, assessment.OptionLetter(i), opt, reveal && ((i == 0) == isTrue))
		}
	case assessment.TypeShortAnswer, assessment.TypeFillBlank:
		drawBlank(pdf, 1)
		if reveal {
			drawRevealed(pdf, tr, "Answer", q.CorrectAnswer)
		}
	case assessment.TypeEssay:
		drawBlank(pdf, render.EssayLines(q))
		if reveal {
			drawRevealed(pdf, tr, "Expected answer", q.CorrectAnswer)
		}
	default:
		pdf.CellFormat(8, lineH, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(0, lineH, tr("Answer: ______________________________"), "", 1, "L", false, 0, "")
		if reveal {
			drawRevealed(pdf, tr, "Answer", q.CorrectAnswer)
		}
	}
	if reveal && q.Explanation != "" {
		drawRevealed(pdf, tr, "Explanation", q.Explanation)
	}
	pdf.Ln(3)
}

func drawOption(pdf *fpdf.Fpdf, tr func(string) string, letter, text string, correct bool) {
	marker := "( )"
	if correct {
		marker = "(X)"
		pdf.SetFont("Helvetica", "B", 10)
	}
	pdf.CellFormat(8, lineH, "", "", 0, "L", false, 0, "")
	pdf.MultiCell(0, lineH, tr(fmt.Sprintf("%s %s. %s", marker, letter, text)), "", "L", false)
	if correct {
		pdf.SetFont("Helvetica", "", 10)
	}
}

func drawBlank(pdf *fpdf.Fpdf, lines int) {
	w, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.SetDrawColor(150, 150, 150)
	for i := 0; i < lines; i++ {
		// Let auto page break place the cursor, then rule under it.
		pdf.CellFormat(0, ruledGap, "", "", 1, "L", false, 0, "")
		y := pdf.GetY()
		pdf.Line(left+8, y, w-right, y)
	}
	pdf.SetDrawColor(0, 0, 0)
}

func drawRevealed(pdf *fpdf.Fpdf, tr func(string) string, label, text string) {
	if text == "" {
		text = "(graded manually)"
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(60, 60, 60)
	pdf.MultiCell(0, 4.5, tr(label+": "+text), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
}

func drawWatermark(pdf *fpdf.Fpdf, text string) {
	x, y := pdf.GetXY()
	w, h := pdf.GetPageSize()
	pdf.SetFont("Helvetica", "B", 50)
	pdf.SetTextColor(225, 225, 225)
	pdf.TransformBegin()
	pdf.TransformRotate(35, w/2, h/2)
	pdf.SetXY(0, h/2)
	pdf.CellFormat(w, 20, text, "", 0, "C", false, 0, "")
	pdf.TransformEnd()
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(x, y)
}
