package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spdxlens/pkg/errors"
	"github.com/matzehuels/spdxlens/pkg/render/elemgraph"
	"github.com/matzehuels/spdxlens/pkg/spdx"
)

// Graph output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string // output file path; "" means stdout for DOT
	format   string // "dot", "svg", or "png"
	detailed bool   // include node types in labels
}

// graphCommand creates the graph command for rendering the document's
// element/relationship structure as a node-link diagram.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "graph <input.json>",
		Short: "Render the element/relationship graph of a document",
		Long: `Graph draws the identified elements of the document's @graph and the
edges contributed by its Relationship nodes. DOT output goes to stdout by
default; SVG and PNG are rendered through Graphviz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGraphFormat(opts.format); err != nil {
				return err
			}
			return c.runGraph(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout for dot when empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include node types in labels")

	return cmd
}

// validateGraphFormat checks that the requested format is supported.
func validateGraphFormat(format string) error {
	switch format {
	case formatDOT, formatSVG, formatPNG:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'dot', 'svg', or 'png')", format)
	}
}

// runGraph loads the document and renders its element graph.
func (c *CLI) runGraph(ctx context.Context, input string, opts graphOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Drawing element graph for %s", input)

	doc, err := spdx.LoadDocument(input)
	if err != nil {
		return err
	}
	dot := elemgraph.ToDOT(doc, elemgraph.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		logger.Info("Rendering SVG via Graphviz")
		data, err = elemgraph.RenderSVG(ctx, dot)
	case formatPNG:
		logger.Info("Rendering PNG via Graphviz")
		data, err = elemgraph.RenderPNG(ctx, dot)
	}
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" && opts.format != formatDOT {
		path = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}

	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if path != "" {
		printSuccess("Generated %s graph", opts.format)
		printFile(path)
	}
	return nil
}

// openOutput opens path for writing, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

// nopCloser wraps stdout so callers can close uniformly.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
