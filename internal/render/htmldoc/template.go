package htmldoc

import "html/template"

var docTemplate = template.Must(template.New("assessment").Funcs(template.FuncMap{
	// seqLines lets the template repeat a ruled line n times.
	"seqLines": func(n int) []struct{} { return make([]struct{}, n) },
}).Parse(docHTML))

const docHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, "Times New Roman", serif; margin: 2.5rem auto; max-width: 50rem; color: #1a1a1a; }
.doc-header { text-align: center; border-bottom: 2px solid #1a1a1a; padding-bottom: 0.75rem; margin-bottom: 1.5rem; }
.doc-header p { margin: 0.15rem 0; }
h1 { text-align: center; font-size: 1.5rem; margin: 1rem 0 0.25rem; }
.meta { text-align: center; color: #444; margin-bottom: 1.5rem; }
.description { font-style: italic; margin-bottom: 1.5rem; }
.section-heading { margin: 1.75rem 0 0.5rem; border-bottom: 1px solid #888; }
.section-heading h2 { font-size: 1.15rem; margin: 0 0 0.25rem; }
.section-heading p { font-style: italic; color: #444; margin: 0 0 0.5rem; }
.question { margin-bottom: 1.4rem; page-break-inside: avoid; }
.question .stem { margin-bottom: 0.4rem; }
.points { color: #666; font-size: 0.85rem; }
ol.options { list-style: none; padding-left: 1.5rem; margin: 0.25rem 0; }
ol.options li { margin: 0.2rem 0; }
.correct { font-weight: bold; background: #e8f5e9; }
.blank { border-bottom: 1px solid #1a1a1a; display: inline-block; min-width: 20rem; height: 1.1rem; }
.ruled { border-bottom: 1px solid #bbb; height: 1.6rem; }
.answer, .explanation { background: #f5f5f0; border-left: 3px solid #888; padding: 0.35rem 0.6rem; margin-top: 0.4rem; font-size: 0.9rem; }
.watermark { position: fixed; top: 40%; left: 0; right: 0; text-align: center; font-size: 5rem; color: rgba(160,160,160,0.18); transform: rotate(-30deg); pointer-events: none; z-index: -1; }
</style>
</head>
<body>
{{if .Watermark}}<div class="watermark">{{.Watermark}}</div>{{end}}
<div class="doc-header">
{{if .Logo}}<img src="{{.Logo}}" alt="" style="max-height: 60px;">
{{end}}{{range .Header}}<p>{{.}}</p>
{{end}}</div>
<h1>{{.Title}}</h1>
<p class="meta">{{.Meta}}</p>
{{if .Description}}<p class="description">{{.Description}}</p>{{end}}
{{range .Blocks}}{{if .Section}}
<div class="section-heading">
<h2>{{.Section.Name}}</h2>
{{if .Section.Instructions}}<p>{{.Section.Instructions}}</p>{{end}}
</div>
{{else}}{{with .Question}}
<div class="question">
<p class="stem"><strong>{{.Number}}.</strong> {{.Text}} <span class="points">({{.Points}} pts)</span></p>
{{if .Options}}<ol class="options">
{{range .Options}}<li{{if .Correct}} class="correct"{{end}}>{{.Letter}}. {{.Text}}{{if .Correct}} &#10003;{{end}}</li>
{{end}}</ol>
{{else if .Fallback}}<p>Answer: <span class="blank"></span></p>
{{else if eq .BlankLines 1}}<p><span class="blank"></span></p>
{{else}}{{range $i := seqLines .BlankLines}}<div class="ruled"></div>
{{end}}{{end}}
{{if .Answer}}<div class="answer"><strong>Answer:</strong> {{.Answer}}</div>{{end}}
{{if .Explanation}}<div class="explanation"><strong>Explanation:</strong> {{.Explanation}}</div>{{end}}
</div>
{{end}}{{end}}{{end}}
</body>
</html>
`
