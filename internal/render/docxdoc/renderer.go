// Package docxdoc renders an assessment as an editable Word document
// (OOXML). The .docx container is a zip of XML parts; the document body is
// built from a small WordprocessingML model and marshalled with
// encoding/xml.
package docxdoc

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/mind-engage/examkit/internal/assessment"
	"github.com/mind-engage/examkit/internal/render"
)

func init() {
	render.RegisterFactory(render.FormatDOCX, func() (render.Renderer, error) {
		return New(), nil
	})
}

type Renderer struct{}

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Format() render.Format { return render.FormatDOCX }
func (r *Renderer) MIME() string {
	return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
}
func (r *Renderer) Ext() string { return "docx" }

func (r *Renderer) Render(a assessment.Assessment, b assessment.Branding, revealAnswers bool) ([]byte, error) {
	doc := buildDocument(a, b, revealAnswers)
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document body: %w", err)
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	parts := []struct {
		name    string
		content []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(relsXML)},
		{"word/_rels/document.xml.rels", []byte(documentRelsXML)},
		{"word/document.xml", append([]byte(xml.Header), body...)},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := w.Write(p.content); err != nil {
			return nil, fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildDocument(a assessment.Assessment, b assessment.Branding, reveal bool) document {
	var paras []paragraph

	if b.Watermark != "" {
		paras = append(paras, centered(para(styledRun(runStyle{color: "C8C8C8", halfPts: 36, bold: true}, b.Watermark))))
	}
	for i, line := range render.HeaderLines(b) {
		style := runStyle{}
		if i == 0 {
			style.bold = true
		}
		paras = append(paras, centered(para(styledRun(style, line))))
	}
	paras = append(paras,
		centered(para(styledRun(runStyle{bold: true, halfPts: 32}, a.Title))),
		centered(para(styledRun(runStyle{color: "595959"}, render.MetaLine(a)))),
	)
	if a.Description != "" {
		paras = append(paras, para(styledRun(runStyle{italic: true}, a.Description)))
	}
	paras = append(paras, para()) // spacer

	for _, it := range render.Items(&a) {
		if it.Heading != nil {
			paras = append(paras, para(styledRun(runStyle{bold: true, halfPts: 26}, it.Heading.Name)))
			if it.Heading.Instructions != "" {
				paras = append(paras, para(styledRun(runStyle{italic: true, color: "595959"}, it.Heading.Instructions)))
			}
			continue
		}
		paras = append(paras, questionParas(*it.Question, it.Number, reveal)...)
	}

	return document{XmlnsW: wmlNS, Body: body{Paragraphs: paras}}
}

func questionParas(q assessment.Question, number int, reveal bool) []paragraph {
	out := []paragraph{para(
		styledRun(runStyle{bold: true}, fmt.Sprintf("%d. ", number)),
		styledRun(runStyle{}, q.Text),
		styledRun(runStyle{color: "808080"}, fmt.Sprintf("  (%d pts)", q.Points)),
	)}

	appendOption := func(letter, text string, correct bool) {
		marker := "( ) "
		style := runStyle{}
		if correct {
			marker = "(X) "
			style.bold = true
		}
		p := para(styledRun(style, fmt.Sprintf("    %s%s. %s", marker, letter, text)))
		if correct {
			p = shaded(p, "E8F5E9")
		}
		out = append(out, p)
	}

	switch q.Type {
	case assessment.TypeMultipleChoice:
		correct := -1
		if reveal {
			if i, ok := assessment.ResolveCorrectOption(q); ok {
				correct = i
			}
		}
		for i, opt := range q.Options {
			appendOption(assessment.OptionLetter(i), opt, i == correct)
		}
	case assessment.TypeTrueFalse:
		isTrue := assessment.IsTrue(q)
		for i, opt := range render.TrueFalseOptions() {
			appendOption(assessment.OptionLetter(i), opt, reveal && ((i == 0) == isTrue))
		}
	case assessment.TypeShortAnswer, assessment.TypeFillBlank:
		out = append(out, ruledLine())
		if reveal {
			out = append(out, revealPara("Answer", q.CorrectAnswer))
		}
	case assessment.TypeEssay:
		for i := 0; i < render.EssayLines(q); i++ {
			out = append(out, ruledLine())
		}
		if reveal {
			out = append(out, revealPara("Expected answer", q.CorrectAnswer))
		}
	default:
		out = append(out, para(styledRun(runStyle{}, "    Answer: ______________________________")))
		if reveal {
			out = append(out, revealPara("Answer", q.CorrectAnswer))
		}
	}
	if reveal && q.Explanation != "" {
		out = append(out, revealPara("Explanation", q.Explanation))
	}
	out = append(out, para()) // spacer between questions
	return out
}

func revealPara(label, text string) paragraph {
	if text == "" {
		text = "(graded manually)"
	}
	return para(styledRun(runStyle{italic: true, color: "3C3C3C"}, label+": "+text))
}
