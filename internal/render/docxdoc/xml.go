package docxdoc

import (
	"encoding/xml"
	"strconv"
)

// Minimal WordprocessingML model, export only. xml.Marshal escapes all user
// text, which is the safety boundary for generator-supplied content.

const wmlNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

type document struct {
	XMLName xml.Name `xml:"w:document"`
	XmlnsW  string   `xml:"xmlns:w,attr"`
	Body    body     `xml:"w:body"`
}

type body struct {
	Paragraphs []paragraph `xml:"w:p"`
}

type paragraph struct {
	Props *paraProps `xml:"w:pPr,omitempty"`
	Runs  []run      `xml:"w:r"`
}

type paraProps struct {
	Justify *valAttr     `xml:"w:jc,omitempty"`
	Border  *paraBorders `xml:"w:pBdr,omitempty"`
	Shading *shading     `xml:"w:shd,omitempty"`
}

type paraBorders struct {
	Bottom *borderEdge `xml:"w:bottom,omitempty"`
}

type borderEdge struct {
	Val   string `xml:"w:val,attr"`
	Size  string `xml:"w:sz,attr"`
	Color string `xml:"w:color,attr"`
}

type shading struct {
	Val  string `xml:"w:val,attr"`
	Fill string `xml:"w:fill,attr"`
}

type run struct {
	Props *runProps `xml:"w:rPr,omitempty"`
	Text  *text     `xml:"w:t,omitempty"`
}

type runProps struct {
	Bold   *empty   `xml:"w:b,omitempty"`
	Italic *empty   `xml:"w:i,omitempty"`
	Color  *valAttr `xml:"w:color,omitempty"`
	Size   *valAttr `xml:"w:sz,omitempty"` // half-points
}

type empty struct{}

type valAttr struct {
	Val string `xml:"w:val,attr"`
}

type text struct {
	Space string `xml:"xml:space,attr"`
	Value string `xml:",chardata"`
}

// Paragraph builders.

type runStyle struct {
	bold    bool
	italic  bool
	color   string // RRGGBB
	halfPts int    // 0 means inherit
}

func styledRun(s runStyle, t string) run {
	r := run{Text: &text{Space: "preserve", Value: t}}
	props := &runProps{}
	used := false
	if s.bold {
		props.Bold = &empty{}
		used = true
	}
	if s.italic {
		props.Italic = &empty{}
		used = true
	}
	if s.color != "" {
		props.Color = &valAttr{Val: s.color}
		used = true
	}
	if s.halfPts > 0 {
		props.Size = &valAttr{Val: strconv.Itoa(s.halfPts)}
		used = true
	}
	if used {
		r.Props = props
	}
	return r
}

func para(runs ...run) paragraph { return paragraph{Runs: runs} }

func centered(p paragraph) paragraph {
	if p.Props == nil {
		p.Props = &paraProps{}
	}
	p.Props.Justify = &valAttr{Val: "center"}
	return p
}

func shaded(p paragraph, fill string) paragraph {
	if p.Props == nil {
		p.Props = &paraProps{}
	}
	p.Props.Shading = &shading{Val: "clear", Fill: fill}
	return p
}

// ruledLine is an empty paragraph with a bottom border, used for writing
// areas.
func ruledLine() paragraph {
	return paragraph{
		Props: &paraProps{Border: &paraBorders{Bottom: &borderEdge{Val: "single", Size: "6", Color: "999999"}}},
		Runs:  []run{{Text: &text{Space: "preserve", Value: " "}}},
	}
}

// Fixed package parts. A .docx is a zip of XML parts; these three and
// word/document.xml are the minimum a word processor accepts.

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>
`

const relsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>
`

const documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"/>
`
