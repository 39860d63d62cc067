package ops

import "github.com/sprout-ml/sprout/internal/tensor"

// ScalarOpKind identifies which scalar operation was recorded.
type ScalarOpKind int

// Scalar operation kinds.
const (
	ScalarAdd ScalarOpKind = iota
	ScalarSub
	ScalarMul
	ScalarDiv
)

// ScalarOp records an element-wise operation between a tensor and a
// scalar constant: output = x ⊕ s. The scalar is a constant, so only
// the tensor input receives a gradient.
type ScalarOp struct {
	kind   ScalarOpKind
	scalar any
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewScalarOp creates a ScalarOp of the given kind.
func NewScalarOp(kind ScalarOpKind, x *tensor.RawTensor, scalar any, output *tensor.RawTensor) *ScalarOp {
	return &ScalarOp{
		kind:   kind,
		scalar: scalar,
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward computes the tensor gradient:
//
//	add/sub: grad
//	mul:     grad * s
//	div:     grad / s
func (op *ScalarOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	var grad *tensor.RawTensor
	switch op.kind {
	case ScalarAdd, ScalarSub:
		grad = outputGrad.Clone()
	case ScalarMul:
		grad = backend.MulScalar(outputGrad, op.scalar)
	case ScalarDiv:
		grad = backend.DivScalar(outputGrad, op.scalar)
	default:
		panic("scalar op: unknown kind")
	}
	return []*tensor.RawTensor{grad}
}

// Inputs returns [x].
func (op *ScalarOp) Inputs() []*tensor.RawTensor {
	return op.inputs
}

// Output returns x ⊕ s.
func (op *ScalarOp) Output() *tensor.RawTensor {
	return op.output
}
