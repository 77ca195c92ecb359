package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/flowshape/syntaxdiagrams/pkg/dgerrors"
	"github.com/flowshape/syntaxdiagrams/pkg/metric"
	"github.com/flowshape/syntaxdiagrams/pkg/render"
)

const (
	backendVector = "vector"
	backendText   = "text"
)

// renderOpts holds the render command's flags.
type renderOpts struct {
	backend    string
	configPath string
	debug      bool
}

// renderCommand renders a single diagram file to stdout.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a diagram data-literal file to stdout",
		Long:  `Load a JSON or TOML diagram description, lay it out, and write the finished drawing (SVG for the vector backend, a character grid for text) to stdout.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.backend, "backend", backendVector, `output backend: "vector" or "text"`)
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML settings file, as printed by the config command")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "tag emitted shapes with tree-path debug identifiers")

	return cmd
}

func (c *CLI) runRender(path string, opts renderOpts) error {
	tree, err := loadDiagramFile(path)
	if err != nil {
		return reportLoadFailure(c.Logger, err)
	}

	settings := metric.DefaultSettings()
	if opts.configPath != "" {
		loaded, err := loadSettingsFile(opts.configPath)
		if err != nil {
			return err
		}
		settings = loaded
	}

	prog := newProgress(c.Logger)
	spin := newSpinner("rendering " + opts.backend)
	spin.Start()

	var out string
	switch opts.backend {
	case backendVector:
		if opts.debug {
			out, err = render.VectorDebug(tree, settings)
		} else {
			out, err = render.Vector(tree, settings)
		}
	case backendText:
		if opts.debug {
			out, err = render.TextDebug(tree, settings)
		} else {
			out, err = render.Text(tree, settings)
		}
	default:
		spin.Stop()
		return fmt.Errorf("unknown backend %q, want %q or %q", opts.backend, backendVector, backendText)
	}
	if err != nil {
		spin.StopWithError(dgerrors.UserMessage(err))
		return err
	}
	spin.Stop()
	prog.done("rendered " + opts.backend)

	_, err = fmt.Fprintln(os.Stdout, out)
	return err
}

// reportLoadFailure logs a single-line message for a LoadingError or
// EmbedderError, per spec.md §6's CLI contract, and returns it so
// cobra's SilenceUsage keeps the exit code non-zero without a stack trace.
func reportLoadFailure(logger *log.Logger, err error) error {
	logger.Error(dgerrors.UserMessage(err))
	return err
}
