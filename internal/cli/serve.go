package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"html"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spdxlens/pkg/errors"
)

// shutdownGrace is how long in-flight requests get to finish on shutdown.
const shutdownGrace = 5 * time.Second

// serveCommand creates the serve command for browsing a directory of
// example documents over HTTP. Every view request performs a fresh render;
// nothing is cached between requests.
func (c *CLI) serveCommand() *cobra.Command {
	opts := renderOpts{
		skipValidate: c.Config.SkipValidate,
		timeout:      c.Config.HTTPTimeout(),
	}
	addr := c.Config.Serve.Addr

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Serve rendered views of a directory of example documents",
		Long: `Serve lists the JSON documents in a directory and renders each on
request. Renders share nothing: every request starts from empty anchor,
identifier, and validation state, so edits to the files show up on reload.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runServe(cmd.Context(), dir, addr, opts)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "bind address")
	cmd.Flags().BoolVar(&opts.skipValidate, "skip-validate", opts.skipValidate, "skip network validation of documentation links")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "HTTP timeout for context fetch and link checks")

	return cmd
}

// runServe starts the HTTP server and shuts it down when ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, dir, addr string, opts renderOpts) error {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return errors.New(errors.ErrCodeInvalidInput, "not a directory: %s", dir)
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: c.serveRouter(dir, opts),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	c.Logger.Infof("Serving %s on %s", dir, addr)
	if err := srv.ListenAndServe(); !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// serveRouter builds the chi router for the document browser.
func (c *CLI) serveRouter(dir string, opts renderOpts) chi.Router {
	r := chi.NewRouter()
	r.Get("/", c.handleIndex(dir))
	r.Get("/view/{name}", c.handleView(dir, opts))
	return r
}

// handleIndex lists the JSON documents in dir as links to their views.
func (c *CLI) handleIndex(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			http.Error(w, "cannot read directory", http.StatusInternalServerError)
			return
		}

		var names []string
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<body>\n<h1>%s</h1>\n<ul>\n", html.EscapeString(appName))
		for _, name := range names {
			fmt.Fprintf(w, `<li><a href="/view/%s">%s</a></li>`+"\n",
				html.EscapeString(name), html.EscapeString(name))
		}
		fmt.Fprint(w, "</ul>\n</body>\n</html>\n")
	}
}

// handleView renders one document per request. Output is buffered so a
// failed render produces a clean error page instead of a truncated one, and
// every request gets its own render id for log correlation.
func (c *CLI) handleView(dir string, opts renderOpts) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "name")
		if name != filepath.Base(name) || !strings.HasSuffix(name, ".json") {
			http.Error(w, "invalid document name", http.StatusBadRequest)
			return
		}

		logger := c.Logger.With("render", uuid.NewString())
		logger.Info("Rendering", "file", name)
		p := newProgress(logger)

		renderer, _, err := c.newRenderer(req.Context(), filepath.Join(dir, name), opts)
		if err != nil {
			if errors.Is(err, errors.ErrCodeFileNotFound) {
				http.NotFound(w, req)
				return
			}
			logger.Error("Render setup failed", "err", err)
			http.Error(w, errors.UserMessage(err), http.StatusBadGateway)
			return
		}

		var buf bytes.Buffer
		if err := renderer.WritePage(req.Context(), &buf); err != nil {
			logger.Error("Render failed", "err", err)
			http.Error(w, errors.UserMessage(err), http.StatusBadGateway)
			return
		}
		p.done("Rendered " + name)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	}
}
