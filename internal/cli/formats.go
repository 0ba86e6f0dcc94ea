package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mind-engage/examkit/internal/render"
	_ "github.com/mind-engage/examkit/internal/render/all"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the output formats usable in this environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			reg := render.NewDefaultRegistry(log)
			for _, f := range reg.Available() {
				r, _ := reg.Lookup(f)
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", string(f), r.MIME())
			}
			for _, f := range []render.Format{render.FormatDOCX, render.FormatHTML, render.FormatPDF} {
				if reason, ok := reg.UnavailableReason(f); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%-6s unavailable: %s\n", string(f), reason)
				}
			}
			return nil
		},
	}
}
