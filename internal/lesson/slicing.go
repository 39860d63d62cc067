package lesson

import (
	"fmt"
	"io"

	"github.com/sprout-ml/sprout/internal/backend/cpu"
	"github.com/sprout-ml/sprout/internal/tensor"
)

func init() {
	Register(Lesson{
		Slug:    "03-slicing",
		Title:   "Slicing and recombining",
		Summary: "Narrow, Squeeze, Cat, and conditional selection with Where.",
		Run:     runSlicing,
	})
}

func runSlicing(w io.Writer, _ Options) error {
	backend := cpu.New()

	x := tensor.Arange[float32](0, 12, backend).Reshape(3, 4)
	section(w, "The source matrix")
	fmt.Fprintf(w, "x {3,4}:\n%s\n", x.Preview())

	section(w, "Narrow keeps a contiguous range of one dimension")
	middle := x.Narrow(0, 1, 1)
	fmt.Fprintf(w, "Narrow(0, 1, 1), the middle row as {1,4}:\n%s\n", middle.Preview())

	cols := x.Narrow(1, 1, 2)
	fmt.Fprintf(w, "Narrow(1, 1, 2), two inner columns as {3,2}:\n%s\n", cols.Preview())

	section(w, "Squeeze drops the leftover size-1 dimension")
	row := middle.Squeeze(0)
	fmt.Fprintf(w, "middle row as a vector %v: %s\n", row.Shape(), row.Preview())

	section(w, "Cat reassembles slices")
	top := x.Narrow(0, 0, 1)
	bottom := x.Narrow(0, 1, 2)
	rebuilt := tensor.Cat([]*tensor.Tensor[float32, *cpu.Backend]{top, bottom}, 0)
	fmt.Fprintf(w, "Cat(top, bottom) restores {3,4}:\n%s\n", rebuilt.Preview())

	section(w, "Where selects by condition")
	threshold := tensor.Full[float32](tensor.Shape{1}, 6, backend)
	mask := x.Greater(threshold)
	fmt.Fprintf(w, "x > 6:\n%s\n", mask.Preview())

	capped := tensor.Where(mask, threshold.Expand(x.Shape()), x)
	fmt.Fprintf(w, "values above 6 clamped to 6:\n%s\n", capped.Preview())

	return nil
}
