package lesson

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/sprout-ml/sprout/internal/backend/cpu"
	"github.com/sprout-ml/sprout/internal/tensor"
)

func init() {
	Register(Lesson{
		Slug:    "00-tensors",
		Title:   "Creating and inspecting tensors",
		Summary: "Constructors, shape and dtype metadata, element access, copies.",
		Run:     runTensors,
	})
}

func runTensors(w io.Writer, opts Options) error {
	backend := cpu.New()

	section(w, "Constructors")
	zeros := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
	fmt.Fprintf(w, "Zeros{2,3}:\n%s\n", zeros.Preview())

	ones := tensor.Ones[float32](tensor.Shape{3}, backend)
	fmt.Fprintf(w, "Ones{3}: %s\n", ones.Preview())

	sevens := tensor.Full[float32](tensor.Shape{2, 2}, 7, backend)
	fmt.Fprintf(w, "Full{2,2}(7):\n%s\n", sevens.Preview())

	counted := tensor.Arange[int32](0, 6, backend).Reshape(2, 3)
	fmt.Fprintf(w, "Arange(0,6) reshaped to {2,3}:\n%s\n", counted.Preview())

	eye := tensor.Eye[float32](3, backend)
	fmt.Fprintf(w, "Eye(3):\n%s\n", eye.Preview())

	rng := rand.New(rand.NewSource(opts.Seed))
	noise := tensor.RandnFrom[float32](tensor.Shape{2, 3}, rng, backend)
	fmt.Fprintf(w, "RandnFrom{2,3} (seed %d):\n%s\n", opts.Seed, noise.Preview())

	section(w, "From Go slices")
	grid, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "FromSlice([1..6], {2,3}):\n%s\n", grid.Preview())

	// FromSlice validates that the data fits the shape.
	_, err = tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 3}, backend)
	fmt.Fprintf(w, "mismatched slice length: %v\n", err)

	section(w, "Metadata")
	fmt.Fprintf(w, "%s\n", grid)
	fmt.Fprintf(w, "shape=%v dtype=%s elements=%d\n", grid.Shape(), grid.DType(), grid.NumElements())

	section(w, "Element access")
	fmt.Fprintf(w, "grid[1,2] = %v\n", grid.At(1, 2))
	grid.Set(60, 1, 2)
	fmt.Fprintf(w, "after Set(60, 1, 2):\n%s\n", grid.Preview())

	section(w, "Clone is a deep copy")
	snapshot := grid.Clone()
	grid.Set(-1, 0, 0)
	fmt.Fprintf(w, "grid after Set(-1, 0, 0):\n%s\n", grid.Preview())
	fmt.Fprintf(w, "snapshot, unchanged:\n%s\n", snapshot.Preview())

	return nil
}
