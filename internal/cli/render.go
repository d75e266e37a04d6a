package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotkit/pkg/io"
	"github.com/matzehuels/plotkit/pkg/render/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file, or base path for several formats
	formats []string // output formats; empty means infer from output or config
	noCache bool     // skip the artifact cache
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts
	var formatsStr string

	cmd := &cobra.Command{
		Use:   "render <spec>",
		Short: "Render a figure spec (TOML or JSON)",
		Long: `Render a figure spec to one or more image formats.

The spec kind picks the chart: histogram, lines, lines_confidence, scatter,
bar, sorted_bar, image or image_grid. Image paths in the spec are resolved
relative to the spec file.`,
		Example: `  plotkit render hist.toml
  plotkit render hist.toml -o out/hist.pdf
  plotkit render grid.json -f png,svg -o out/grid`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", fmt.Sprintf("output format(s), comma-separated: %s", strings.Join(sink.Formats(), ", ")))
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runRender loads the spec, renders every requested format and writes the
// files.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	prog := newProgress(c.Logger)

	spec, err := io.Import(input)
	if err != nil {
		return err
	}
	c.Config.Style.apply(spec)
	if err := io.LoadImages(spec, filepath.Dir(input)); err != nil {
		return err
	}

	formats := c.resolveFormats(opts)
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Render(ctx, spec, formats)
	if err != nil {
		return err
	}

	paths := outputPaths(opts.output, input, formats)
	for _, f := range formats {
		if err := writeFile(paths[f], result.Artifacts[f]); err != nil {
			return err
		}
	}

	printSuccess("Rendered %s", spec.Kind)
	for _, f := range formats {
		printFile(paths[f])
	}
	printStats(len(formats), result.Stats.Hits, result.CacheHit)
	prog.done(fmt.Sprintf("Rendered %s", input))
	return nil
}

// resolveFormats prefers explicit formats, then the output extension, then
// the configured defaults.
func (c *CLI) resolveFormats(opts renderOpts) []string {
	if len(opts.formats) > 0 {
		return opts.formats
	}
	if opts.output != "" {
		if f, err := sink.FormatFromPath(opts.output); err == nil {
			return []string{f}
		}
	}
	return c.Config.Formats
}

// outputPaths maps each format to the file it is written to. A single
// format goes to output as given when it already has that extension.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		if f, err := sink.FormatFromPath(output); err == nil && f == formats[0] {
			paths[f] = output
			return paths
		}
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	if _, err := sink.FormatFromPath(output); err == nil {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
