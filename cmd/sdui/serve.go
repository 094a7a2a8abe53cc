package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/vango-dev/sdui/pkg/middleware"
	"github.com/vango-dev/sdui/pkg/render"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve a rendered descriptor for preview",
		Long: `Serve the rendered descriptor as an HTML page. The file is read and
rendered again on every request, so edits show on reload.

Routes:
  /          the rendered page
  /fragment  the rendered tree without the document wrapper
  /metrics   Prometheus metrics
  /healthz   liveness probe

Examples:
  sdui serve form.yaml
  sdui serve form.yaml --addr=0.0.0.0:8080`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(flags)
			if err != nil {
				return err
			}
			defer e.Close()
			if addr == "" {
				addr = e.cfg.Serve.Addr
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           e.previewRouter(args[0]),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				success("Serving %s on http://%s", args[0], addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				info("Shutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from sdui.yaml serve.addr)")

	return cmd
}

// previewRouter serves the descriptor at path.
func (e *env) previewRouter(path string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.OpenTelemetry(middleware.WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz" && r.URL.Path != "/metrics"
	})))
	r.Use(middleware.Prometheus(middleware.WithRegistry(e.metrics.Registry())))

	r.Get("/", e.renderHandler(path, true))
	r.Get("/fragment", e.renderHandler(path, false))
	r.Handle("/metrics", e.metrics.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func (e *env) renderHandler(path string, page bool) http.HandlerFunc {
	renderer := render.NewRenderer(render.RendererConfig{})
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := readDescriptor(path)
		if err != nil {
			e.logger.Error("descriptor unreadable", "path", path, "error", err,
				"request_id", chimw.GetReqID(r.Context()))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		n := e.render(r.Context(), d)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if page {
			err = renderer.RenderPage(w, render.PageData{Title: d.Tag, Body: n})
		} else {
			err = renderer.RenderToWriter(w, n)
		}
		if err != nil {
			e.logger.Warn("response write failed", "error", err)
		}
	}
}
