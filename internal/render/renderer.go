// Package render defines the per-format document renderers and the registry
// that records which of them are usable in this process.
package render

import (
	"github.com/mind-engage/examkit/internal/assessment"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
)

// Renderer turns an assessment into one complete, self-contained document.
// Implementations are stateless and safe for concurrent use; revealAnswers
// selects the instructor copy (answers and explanations shown) over the
// student copy.
type Renderer interface {
	Format() Format
	MIME() string
	Ext() string
	Render(a assessment.Assessment, b assessment.Branding, revealAnswers bool) ([]byte, error)
}
