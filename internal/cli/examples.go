package cli

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/plotkit/pkg/grid"
	"github.com/matzehuels/plotkit/pkg/render/chart"
	"github.com/matzehuels/plotkit/pkg/render/images"
	"github.com/matzehuels/plotkit/pkg/render/sink"
	"github.com/matzehuels/plotkit/pkg/render/style"
)

// example is one sample figure.
type example struct {
	name  string
	build func(rnd *rand.Rand) (*sink.Figure, error)
}

// examplesCommand creates the examples command.
func (c *CLI) examplesCommand() *cobra.Command {
	var (
		dir    string
		format string
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Write a set of sample figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sink.ValidateFormat(format); err != nil {
				return err
			}
			prog := newProgress(c.Logger)
			paths, err := writeExamples(dir, format, seed)
			if err != nil {
				return err
			}
			printSuccess("Wrote %d examples", len(paths))
			for _, p := range paths {
				printFile(p)
			}
			prog.done("Wrote examples")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "examples", "output directory")
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "output format")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the random sample data")
	return cmd
}

// writeExamples renders every example into dir and returns the paths.
func writeExamples(dir, format string, seed uint64) ([]string, error) {
	rnd := rand.New(rand.NewPCG(seed, seed))
	var paths []string
	for _, ex := range examples() {
		fig, err := ex.build(rnd)
		if err != nil {
			return nil, fmt.Errorf("example %s: %w", ex.name, err)
		}
		path := filepath.Join(dir, ex.name+"."+format)
		if err := fig.Save(path); err != nil {
			return nil, fmt.Errorf("example %s: %w", ex.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func examples() []example {
	bar1 := []chart.Bar{{Key: "1", Value: 10}, {Key: "2", Value: 3}, {Key: "3", Value: 30}}
	bar2 := []chart.Bar{{Key: "1", Value: 1}, {Key: "2", Value: 10}, {Key: "3", Value: 2}}
	labels := func(title string) style.Labels {
		return style.Labels{Title: title, X: "xlabel", Y: "ylabel"}
	}

	return []example{
		{"sorted_bar1", func(*rand.Rand) (*sink.Figure, error) {
			return chart.SortedBar(bar1, labels("bar1"))
		}},
		{"sorted_bar2", func(*rand.Rand) (*sink.Figure, error) {
			return chart.SortedBar(bar2, labels("bar2"))
		}},
		{"bar", func(*rand.Rand) (*sink.Figure, error) {
			return chart.BarPlot(bar1, labels("bar"))
		}},
		{"hist", func(rnd *rand.Rand) (*sink.Figure, error) {
			samples := []chart.Sample{
				{Label: "test1", Values: bimodal(rnd, 200, 0, 5)},
				{Label: "test2", Values: bimodal(rnd, 200, 3, 8)},
			}
			return chart.Histogram(samples, style.Labels{}, chart.HistogramOptions{Density: true})
		}},
		{"image_grid", func(rnd *rand.Rand) (*sink.Figure, error) {
			return images.Grid(noiseBatch(rnd, 4), "test", images.GridOptions{
				Titles:  []string{"1", "2", "3", "4"},
				Padding: 0.3,
			})
		}},
		{"subgrid", buildSubgrid},
	}
}

// buildSubgrid places the same titled image grid in the first and last
// cell of a 2x2 figure.
func buildSubgrid(rnd *rand.Rand) (*sink.Figure, error) {
	batch := noiseBatch(rnd, 4)
	named := make([]images.Named, len(batch))
	for i, t := range batch {
		named[i] = images.Named{Name: fmt.Sprint(i + 1), Tensor: t}
	}
	shape, err := grid.For(len(named), true)
	if err != nil {
		return nil, err
	}
	sub, err := images.Subgrid(named, shape, 0.2*vg.Inch)
	if err != nil {
		return nil, err
	}

	panels, err := sink.NewPanels(grid.Shape{Rows: 2, Cols: 2})
	if err != nil {
		return nil, err
	}
	for _, pos := range []int{1, 4} {
		if err := panels.Set(pos, sub); err != nil {
			return nil, err
		}
	}
	return sink.NewFigure(style.Inches(6, 4), panels), nil
}

// bimodal draws 30% of n samples around lo and the rest around hi, both
// with unit variance.
func bimodal(rnd *rand.Rand, n int, lo, hi float64) []float64 {
	k := int(0.3 * float64(n))
	values := make([]float64, n)
	for i := range values {
		mu := hi
		if i < k {
			mu = lo
		}
		values[i] = mu + rnd.NormFloat64()
	}
	return values
}

// noiseBatch returns n random 3x32x32 tensors.
func noiseBatch(rnd *rand.Rand, n int) []images.Tensor {
	const c, h, w = 3, 32, 32
	batch := make([]images.Tensor, n)
	for i := range batch {
		data := make([]float64, c*h*w)
		for j := range data {
			data[j] = rnd.NormFloat64()
		}
		batch[i] = images.Tensor{Channels: c, Height: h, Width: w, Data: data}
	}
	return batch
}
