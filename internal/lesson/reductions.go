package lesson

import (
	"fmt"
	"io"

	"github.com/sprout-ml/sprout/internal/backend/cpu"
	"github.com/sprout-ml/sprout/internal/tensor"
)

func init() {
	Register(Lesson{
		Slug:    "04-reductions",
		Title:   "Reductions",
		Summary: "Sum, per-dimension sums and means, Argmax, and a dot product.",
		Run:     runReductions,
	})
}

func runReductions(w io.Writer, _ Options) error {
	backend := cpu.New()

	m, err := tensor.FromSlice([]float32{3, 1, 4, 1, 5, 9}, tensor.Shape{2, 3}, backend)
	if err != nil {
		return err
	}
	section(w, "The source matrix")
	fmt.Fprintf(w, "m {2,3}:\n%s\n", m.Preview())

	section(w, "Total sum collapses to a scalar")
	fmt.Fprintf(w, "Sum() = %v\n", m.Sum().Item())
	fmt.Fprintf(w, "Mean() = %v\n", m.Mean().Item())

	section(w, "Per-dimension reductions")
	fmt.Fprintf(w, "SumDim(0) column sums %v: %s\n", m.SumDim(0, false).Shape(), m.SumDim(0, false).Preview())
	fmt.Fprintf(w, "SumDim(1) row sums %v: %s\n", m.SumDim(1, false).Shape(), m.SumDim(1, false).Preview())
	kept := m.SumDim(1, true)
	fmt.Fprintf(w, "SumDim(1, keepDim) %v:\n%s\n", kept.Shape(), kept.Preview())
	fmt.Fprintf(w, "MeanDim(1) row means: %s\n", m.MeanDim(1, false).Preview())

	section(w, "Argmax finds positions, not values")
	fmt.Fprintf(w, "Argmax(1) per row: %s\n", m.Argmax(1).Preview())
	fmt.Fprintf(w, "Max() = %v\n", m.Max().Item())

	section(w, "Reducing a product: the dot product")
	a, err := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
	if err != nil {
		return err
	}
	b, err := tensor.FromSlice([]float32{4, 5, 6}, tensor.Shape{3}, backend)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "a·b = Mul then Sum = %v\n", a.Mul(b).Sum().Item())

	return nil
}
