package cli

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"

	api "github.com/mind-engage/examkit/internal/api/http"
	"github.com/mind-engage/examkit/internal/config"
	"github.com/mind-engage/examkit/internal/export"
	"github.com/mind-engage/examkit/internal/render"
	_ "github.com/mind-engage/examkit/internal/render/all"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the export engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.HTTPAddr
			}

			reg := render.NewDefaultRegistry(log)
			orc := export.NewOrchestrator(reg, log, export.WithParallelism(cfg.RenderParallelism))

			r := chi.NewRouter()
			r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
			r.Use(middleware.Timeout(60 * time.Second))
			if len(cfg.CORSOrigins) > 0 {
				r.Use(cors.Handler(cors.Options{
					AllowedOrigins: cfg.CORSOrigins,
					AllowedMethods: []string{"GET", "POST", "OPTIONS"},
					AllowedHeaders: []string{"Content-Type"},
					ExposedHeaders: []string{"Content-Disposition", "X-Export-Id", "X-Export-Warnings"},
					MaxAge:         300,
				}))
			}
			r.Mount("/api", api.NewRouter(orc, reg, cfg.Branding))

			log.Info("listening", "addr", addr, "formats", reg.Available())
			srv := &http.Server{
				Addr:              addr,
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
