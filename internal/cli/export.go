package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mind-engage/examkit/internal/assessment"
	"github.com/mind-engage/examkit/internal/config"
	"github.com/mind-engage/examkit/internal/export"
	"github.com/mind-engage/examkit/internal/render"
	_ "github.com/mind-engage/examkit/internal/render/all"
	"github.com/mind-engage/examkit/internal/storage"
)

func newExportCmd() *cobra.Command {
	var (
		inPath    string
		formats   []string
		versions  string
		reveal    bool
		answerKey bool
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an assessment JSON file to one or more document formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.OutputDir
			}
			if len(formats) == 0 {
				formats = cfg.DefaultFormats
			}

			data, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}
			var a assessment.Assessment
			if err := json.Unmarshal(data, &a); err != nil {
				return fmt.Errorf("parse %s: %w", inPath, err)
			}

			store, err := storage.NewFSStore(outDir)
			if err != nil {
				return err
			}

			if answerKey {
				return writeAnswerKey(cmd, store, a)
			}

			reg := render.NewDefaultRegistry(log)
			orc := export.NewOrchestrator(reg, log, export.WithParallelism(cfg.RenderParallelism))
			res, err := orc.Export(cmd.Context(), export.Request{
				Assessment:    a,
				Branding:      cfg.Branding.Apply(assessment.Branding{}),
				Formats:       formats,
				Versions:      splitVersions(versions),
				RevealAnswers: reveal,
			})
			if err != nil {
				return err
			}
			for _, w := range res.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}
			for _, pf := range res.PartialFailures {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: version %s %s failed: %s\n", pf.VersionLetter, pf.Format, pf.Reason)
			}

			key, err := store.Put(res.Filename, bytes.NewReader(res.Bytes))
			if err != nil {
				return err
			}
			url, _ := store.URL(key)
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "assessment JSON file (required)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "output formats: pdf, docx, html")
	cmd.Flags().StringVar(&versions, "versions", "", "comma-separated version letters, e.g. A,B,C")
	cmd.Flags().BoolVar(&reveal, "reveal-answers", false, "render the instructor copy with answers shown")
	cmd.Flags().BoolVar(&answerKey, "answer-key", false, "write only the standalone answer key")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from config)")
	cmd.MarkFlagRequired("in")
	return cmd
}

func writeAnswerKey(cmd *cobra.Command, store storage.BlobStore, a assessment.Assessment) error {
	key := assessment.BuildAnswerKey(a)
	kb, err := key.MarshalText()
	if err != nil {
		return err
	}
	name := "AnswerKey.txt"
	if a.Title != "" {
		name = a.Title + "_AnswerKey.txt"
	}
	k, err := store.Put(name, bytes.NewReader(kb))
	if err != nil {
		return err
	}
	url, _ := store.URL(k)
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}

func splitVersions(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}
