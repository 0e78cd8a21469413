package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spdxlens/internal/config"
	"github.com/matzehuels/spdxlens/pkg/buildinfo"
	"github.com/matzehuels/spdxlens/pkg/docref"
	"github.com/matzehuels/spdxlens/pkg/httputil"
	"github.com/matzehuels/spdxlens/pkg/jsonld"
	"github.com/matzehuels/spdxlens/pkg/render/htmlview"
	"github.com/matzehuels/spdxlens/pkg/spdx"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "spdxlens"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config
}

// New creates a new CLI instance with a default logger and the user's
// configuration. A broken config file is reported and replaced by defaults
// rather than blocking the run.
func New(w io.Writer, level log.Level) *CLI {
	logger := newLogger(w, level)

	cfg, err := config.Load()
	if err != nil {
		logger.Warnf("Ignoring config: %v", err)
		cfg = config.Default()
	}

	return &CLI{Logger: logger, Config: cfg}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself performs the render: one input document, one
// output HTML file.
func (c *CLI) RootCommand() *cobra.Command {
	opts := renderOpts{
		skipValidate: c.Config.SkipValidate,
		timeout:      c.Config.HTTPTimeout(),
	}

	root := &cobra.Command{
		Use:   "spdxlens <input.json> <output.html>",
		Short: "Spdxlens renders SPDX 3.0 documents as cross-linked HTML",
		Long: `Spdxlens renders an SPDX 3.0 JSON-LD example document into a
syntax-highlighted HTML view in which every class, property, vocabulary
entry, and identifier is cross-linked: terms link into the published
specification model (after confirming the target page exists) and
identifier references link within the page.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], args[1], opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().BoolVar(&opts.skipValidate, "skip-validate", opts.skipValidate, "skip network validation of documentation links")
	root.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "HTTP timeout for context fetch and link checks")

	// Register all subcommands
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Renderer Factory
// =============================================================================

// newRenderer assembles the per-render collaborators for one input document:
// the parsed document, its fetched root context, and a renderer whose
// validator starts from empty state. Nothing is shared between renders.
func (c *CLI) newRenderer(ctx context.Context, input string, opts renderOpts) (*htmlview.Renderer, *docref.Validator, error) {
	doc, err := spdx.LoadDocument(input)
	if err != nil {
		return nil, nil, err
	}

	url, err := doc.ContextURL()
	if err != nil {
		return nil, nil, err
	}

	client := httputil.NewClient(opts.timeout)
	jctx, err := jsonld.Fetch(ctx, client, url)
	if err != nil {
		return nil, nil, err
	}

	var checker docref.Checker = client
	if opts.skipValidate {
		checker = docref.NopChecker{}
	}
	validator := docref.NewValidator(checker)

	return htmlview.New(doc, jctx, docref.NewResolver(validator)), validator, nil
}
