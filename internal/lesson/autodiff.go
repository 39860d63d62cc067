package lesson

import (
	"fmt"
	"io"

	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/backend/cpu"
	"github.com/sprout-ml/sprout/internal/tensor"
)

func init() {
	Register(Lesson{
		Slug:    "05-autodiff",
		Title:   "Automatic differentiation",
		Summary: "The gradient tape, accumulation, and detaching from the graph.",
		Run:     runAutodiff,
	})
}

func runAutodiff(w io.Writer, _ Options) error {
	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	section(w, "Recording y = x² + 3x")
	x, err := tensor.FromSlice([]float32{2}, tensor.Shape{1}, backend)
	if err != nil {
		return err
	}

	tape.StartRecording()
	y := x.Mul(x).Add(x.MulScalar(3))
	tape.StopRecording()

	fmt.Fprintf(w, "x = %v, y = %v, operations on tape: %d\n", x.At(0), y.At(0), tape.NumOps())

	grads := autodiff.Backward(y)
	dx := grads.Get(x.Raw())
	fmt.Fprintf(w, "dy/dx = 2x + 3 = %v at x = 2\n", dx.AsFloat32()[0])

	section(w, "Gradients accumulate across uses")
	tape.Clear()
	u, err := tensor.FromSlice([]float32{5}, tensor.Shape{1}, backend)
	if err != nil {
		return err
	}
	tape.StartRecording()
	v := u.Add(u)
	tape.StopRecording()

	du := autodiff.Backward(v).Get(u.Raw())
	fmt.Fprintf(w, "v = u + u, so dv/du = 1 + 1 = %v\n", du.AsFloat32()[0])

	section(w, "Detach cuts gradient flow")
	tape.Clear()
	tape.StartRecording()
	squared := x.Mul(x)
	frozen := squared.Detach()
	z := frozen.MulScalar(2)
	tape.StopRecording()

	zGrads := autodiff.Backward(z)
	fmt.Fprintf(w, "z = detach(x²) * 2 = %v\n", z.At(0))
	fmt.Fprintf(w, "gradient reaches the detached value: %v\n", zGrads.Get(frozen.Raw()) != nil)
	fmt.Fprintf(w, "gradient reaches x through the detach: %v\n", zGrads.Get(x.Raw()) != nil)

	return nil
}
