// Package autodiff implements reverse-mode automatic differentiation
// as a decorator over any compute backend.
//
// Backend wraps an inner tensor.Backend and records every
// differentiable operation on a GradientTape. Calling Backward on the
// tape walks the recorded operations in reverse, applying the chain
// rule to produce a gradient for every tensor that contributed to the
// final output.
package autodiff

import (
	"github.com/sprout-ml/sprout/internal/autodiff/ops"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Backend decorates an inner compute backend with gradient recording.
// Forward computation is delegated to the inner backend unchanged; the
// decorator only observes inputs and outputs.
type Backend[B tensor.Backend] struct {
	inner B
	tape  *GradientTape
}

// The decorator must itself satisfy the backend contract.
var _ tensor.Backend = (*Backend[tensor.Backend])(nil)

// New creates an autodiff backend wrapping the given compute backend.
// The tape starts out not recording; call Tape().StartRecording()
// before the forward pass that should be differentiated.
func New[B tensor.Backend](inner B) *Backend[B] {
	return &Backend[B]{
		inner: inner,
		tape:  NewGradientTape(),
	}
}

// Tape returns the gradient tape.
func (b *Backend[B]) Tape() *GradientTape {
	return b.tape
}

// Inner returns the wrapped compute backend.
func (b *Backend[B]) Inner() B {
	return b.inner
}

// Name returns the backend name, e.g. "Autodiff(CPU)".
func (b *Backend[B]) Name() string {
	return "Autodiff(" + b.inner.Name() + ")"
}

// Device returns the device of the wrapped backend.
func (b *Backend[B]) Device() tensor.Device {
	return b.inner.Device()
}

// Add performs element-wise addition and records the operation.
func (b *Backend[B]) Add(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Add(x, y)
	b.tape.Record(ops.NewAddOp(x, y, out))
	return out
}

// Sub performs element-wise subtraction and records the operation.
func (b *Backend[B]) Sub(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sub(x, y)
	b.tape.Record(ops.NewSubOp(x, y, out))
	return out
}

// Mul performs element-wise multiplication and records the operation.
func (b *Backend[B]) Mul(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Mul(x, y)
	b.tape.Record(ops.NewMulOp(x, y, out))
	return out
}

// Div performs element-wise division and records the operation.
func (b *Backend[B]) Div(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Div(x, y)
	b.tape.Record(ops.NewDivOp(x, y, out))
	return out
}

// MatMul performs matrix multiplication and records the operation.
func (b *Backend[B]) MatMul(x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.MatMul(x, y)
	b.tape.Record(ops.NewMatMulOp(x, y, out))
	return out
}

// AddScalar adds a scalar element-wise and records the operation.
func (b *Backend[B]) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	out := b.inner.AddScalar(x, scalar)
	b.tape.Record(ops.NewScalarOp(ops.ScalarAdd, x, scalar, out))
	return out
}

// SubScalar subtracts a scalar element-wise and records the operation.
func (b *Backend[B]) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	out := b.inner.SubScalar(x, scalar)
	b.tape.Record(ops.NewScalarOp(ops.ScalarSub, x, scalar, out))
	return out
}

// MulScalar multiplies by a scalar element-wise and records the operation.
func (b *Backend[B]) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	out := b.inner.MulScalar(x, scalar)
	b.tape.Record(ops.NewScalarOp(ops.ScalarMul, x, scalar, out))
	return out
}

// DivScalar divides by a scalar element-wise and records the operation.
func (b *Backend[B]) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	out := b.inner.DivScalar(x, scalar)
	b.tape.Record(ops.NewScalarOp(ops.ScalarDiv, x, scalar, out))
	return out
}

// Neg negates element-wise and records the operation.
func (b *Backend[B]) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Neg(x)
	b.tape.Record(ops.NewNegOp(x, out))
	return out
}

// Exp computes e^x element-wise and records the operation.
func (b *Backend[B]) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Exp(x)
	b.tape.Record(ops.NewExpOp(x, out))
	return out
}

// Log computes the natural logarithm element-wise and records the operation.
func (b *Backend[B]) Log(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Log(x)
	b.tape.Record(ops.NewLogOp(x, out))
	return out
}

// Sqrt computes the square root element-wise and records the operation.
func (b *Backend[B]) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sqrt(x)
	b.tape.Record(ops.NewSqrtOp(x, out))
	return out
}

// Pow raises elements to a constant power and records the operation.
func (b *Backend[B]) Pow(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	out := b.inner.Pow(x, exponent)
	b.tape.Record(ops.NewPowOp(x, exponent, out))
	return out
}

// ReLU computes max(x, 0) element-wise and records the operation.
func (b *Backend[B]) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.ReLU(x)
	b.tape.Record(ops.NewReLUOp(x, out))
	return out
}

// Sum reduces all elements to a scalar and records the operation.
func (b *Backend[B]) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Sum(x)
	b.tape.Record(ops.NewSumOp(x, out))
	return out
}

// SumDim sums along a dimension and records the operation.
func (b *Backend[B]) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	out := b.inner.SumDim(x, dim, keepDim)
	if dim < 0 {
		dim += len(x.Shape())
	}
	b.tape.Record(ops.NewSumDimOp(x, dim, keepDim, out))
	return out
}

// MeanDim averages along a dimension and records the operation.
func (b *Backend[B]) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	out := b.inner.MeanDim(x, dim, keepDim)
	if dim < 0 {
		dim += len(x.Shape())
	}
	b.tape.Record(ops.NewMeanDimOp(x, dim, keepDim, out))
	return out
}

// Max returns the maximum element. Not differentiable; not recorded.
func (b *Backend[B]) Max(x *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.Max(x)
}

// Argmax returns indices of maxima. Not differentiable; not recorded.
func (b *Backend[B]) Argmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	return b.inner.Argmax(x, dim)
}

// Reshape changes the shape and records the operation.
func (b *Backend[B]) Reshape(x *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	out := b.inner.Reshape(x, newShape)
	b.tape.Record(ops.NewReshapeOp(x, out))
	return out
}

// Transpose permutes dimensions and records the operation.
func (b *Backend[B]) Transpose(x *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	out := b.inner.Transpose(x, axes...)
	if len(axes) == 0 {
		// Default is full reversal; materialize it so the backward
		// pass can invert the permutation.
		n := len(x.Shape())
		axes = make([]int, n)
		for i := range axes {
			axes[i] = n - 1 - i
		}
	}
	b.tape.Record(ops.NewTransposeOp(x, out, axes))
	return out
}

// Unsqueeze inserts a size-1 dimension. Recorded as a reshape since
// the gradient only needs the original shape back.
func (b *Backend[B]) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	out := b.inner.Unsqueeze(x, dim)
	b.tape.Record(ops.NewReshapeOp(x, out))
	return out
}

// Squeeze removes a size-1 dimension. Recorded as a reshape.
func (b *Backend[B]) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	out := b.inner.Squeeze(x, dim)
	b.tape.Record(ops.NewReshapeOp(x, out))
	return out
}

// Expand broadcasts to a larger shape and records the operation.
func (b *Backend[B]) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	out := b.inner.Expand(x, shape)
	b.tape.Record(ops.NewExpandOp(x, out))
	return out
}

// Narrow slices a contiguous range along a dimension and records the operation.
func (b *Backend[B]) Narrow(x *tensor.RawTensor, dim, start, length int) *tensor.RawTensor {
	out := b.inner.Narrow(x, dim, start, length)
	if dim < 0 {
		dim += len(x.Shape())
	}
	b.tape.Record(ops.NewNarrowOp(x, dim, start, length, out))
	return out
}

// Cat concatenates tensors along a dimension and records the operation.
func (b *Backend[B]) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	out := b.inner.Cat(tensors, dim)
	if len(tensors) > 0 && dim < 0 {
		dim += len(tensors[0].Shape())
	}
	b.tape.Record(ops.NewCatOp(tensors, dim, out))
	return out
}

// Greater compares element-wise. The result is boolean; not recorded.
func (b *Backend[B]) Greater(x, y *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.Greater(x, y)
}

// Lower compares element-wise. The result is boolean; not recorded.
func (b *Backend[B]) Lower(x, y *tensor.RawTensor) *tensor.RawTensor {
	return b.inner.Lower(x, y)
}

// Where selects elements by condition and records the operation.
// Gradients flow to x and y; the condition receives none.
func (b *Backend[B]) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	out := b.inner.Where(condition, x, y)
	b.tape.Record(ops.NewWhereOp(condition, x, y, out))
	return out
}

// Cast converts the element type. Not recorded; gradients do not flow
// across dtype conversions.
func (b *Backend[B]) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	return b.inner.Cast(x, dtype)
}
