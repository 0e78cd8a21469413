package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// renderOpts holds the flags shared by the rendering commands.
type renderOpts struct {
	skipValidate bool          // render without network validation of links
	timeout      time.Duration // HTTP timeout for context fetch and checks
}

// runRender renders input to an HTML file at output. The output file is
// created before rendering starts; a fatal validation failure mid-walk
// leaves a truncated file behind, matching the streaming write model.
func (c *CLI) runRender(ctx context.Context, input, output string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)
	p := newProgress(logger)

	renderer, validator, err := c.newRenderer(ctx, input, opts)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer out.Close()

	if err := renderer.WritePage(ctx, out); err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %s", output))

	printSuccess("Rendered %s", input)
	printFile(output)
	if opts.skipValidate {
		printDetail("link validation skipped")
	} else {
		printDetail("%d documentation links validated", validator.Checked())
	}
	return nil
}
