package lesson

import (
	"fmt"
	"io"

	"github.com/sprout-ml/sprout/internal/backend/cpu"
	"github.com/sprout-ml/sprout/internal/tensor"
)

func init() {
	Register(Lesson{
		Slug:    "02-broadcasting",
		Title:   "Broadcasting rules",
		Summary: "How differently-shaped tensors align in elementwise operations.",
		Run:     runBroadcasting,
	})
}

func runBroadcasting(w io.Writer, _ Options) error {
	backend := cpu.New()

	section(w, "The alignment rule")
	fmt.Fprintln(w, "Shapes align from the right; each dimension pair must be equal,")
	fmt.Fprintln(w, "or one of them must be 1 and is stretched to match.")
	for _, pair := range [][2]tensor.Shape{
		{{3, 1}, {1, 4}},
		{{2, 3}, {3}},
		{{5}, {1}},
	} {
		out, _, err := tensor.BroadcastShapes(pair[0], pair[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v and %v broadcast to %v\n", pair[0], pair[1], out)
	}

	section(w, "Column + row = grid")
	col, err := tensor.FromSlice([]float32{0, 10, 20}, tensor.Shape{3, 1}, backend)
	if err != nil {
		return err
	}
	row, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{1, 4}, backend)
	if err != nil {
		return err
	}
	grid := col.Add(row)
	fmt.Fprintf(w, "{3,1} + {1,4} gives {3,4}:\n%s\n", grid.Preview())

	section(w, "Scalar broadcast")
	fmt.Fprintf(w, "grid * 2:\n%s\n", grid.MulScalar(2).Preview())

	section(w, "Incompatible shapes")
	_, _, err = tensor.BroadcastShapes(tensor.Shape{3, 2}, tensor.Shape{4})
	fmt.Fprintf(w, "{3,2} vs {4}: %v\n", err)

	return nil
}
