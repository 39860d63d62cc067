package ops

import (
	"github.com/sprout-ml/sprout/internal/tensor"
)

// reduceBroadcast reduces a gradient tensor to match the target shape,
// undoing the fan-out a broadcast introduced in the forward pass.
//
// Example:
//
//	forward:  a[3,1] + b[3,4] -> c[3,4]   (a broadcast along dim 1)
//	backward: grad_c[3,4] -> grad_a[3,1]  (sum along dim 1)
func reduceBroadcast(grad *tensor.RawTensor, targetShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	gradShape := grad.Shape()

	// Clone on match so later accumulation never aliases a shared grad.
	if gradShape.Equal(targetShape) {
		return grad.Clone()
	}

	// Sum away leading dimensions the target doesn't have.
	for len(grad.Shape()) > len(targetShape) {
		grad = backend.SumDim(grad, 0, false)
	}

	// Sum along dimensions where the target is 1.
	for i := 0; i < len(targetShape); i++ {
		if targetShape[i] == 1 && grad.Shape()[i] > 1 {
			grad = backend.SumDim(grad, i, true)
		}
	}

	if !grad.Shape().Equal(targetShape) {
		grad = backend.Reshape(grad, targetShape)
	}

	return grad
}

// expandToInput broadcasts a reduction gradient back over the reduced
// dimension. keepShape is the input shape with the reduced dimension
// set to 1 (what the gradient looks like with keepDim).
func expandToInput(grad *tensor.RawTensor, keepShape, inputShape tensor.Shape, backend tensor.Backend) *tensor.RawTensor {
	if !grad.Shape().Equal(keepShape) {
		grad = backend.Reshape(grad, keepShape)
	}
	return backend.Expand(grad, inputShape)
}

// zerosLike allocates a zero tensor with x's shape and dtype.
func zerosLike(x *tensor.RawTensor, backend tensor.Backend) *tensor.RawTensor {
	z, err := tensor.NewRaw(x.Shape(), x.DType(), backend.Device())
	if err != nil {
		panic(err)
	}
	return z
}
