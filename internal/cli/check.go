package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// checkCommand creates the check command for validating documentation links
// without writing any HTML. Useful in CI over a corpus of example documents.
func (c *CLI) checkCommand() *cobra.Command {
	opts := renderOpts{timeout: c.Config.HTTPTimeout()}

	cmd := &cobra.Command{
		Use:   "check <input.json>",
		Short: "Validate every documentation link a render would emit",
		Long: `Check runs the same context-sensitive walk as a render, validating
every derived documentation URL against the published specification model,
but writes no HTML. The first broken link aborts with a non-zero exit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "HTTP timeout for context fetch and link checks")

	return cmd
}

// runCheck renders into the void: the walk and its validation side effects
// happen, the markup is discarded.
func (c *CLI) runCheck(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Checking %s", input)
	p := newProgress(logger)

	renderer, validator, err := c.newRenderer(ctx, input, opts)
	if err != nil {
		return err
	}

	if err := renderer.Write(ctx, io.Discard); err != nil {
		printError("Broken link in %s", input)
		return err
	}
	p.done("Checked " + input)

	printSuccess("All documentation links resolve")
	printDetail("%d distinct links validated", validator.Checked())
	return nil
}
