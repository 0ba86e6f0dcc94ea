// Package all registers every built-in renderer factory. Blank-import it
// from a main before calling render.NewDefaultRegistry.
package all

import (
	_ "github.com/mind-engage/examkit/internal/render/docxdoc"
	_ "github.com/mind-engage/examkit/internal/render/htmldoc"
	_ "github.com/mind-engage/examkit/internal/render/pdfdoc"
)
