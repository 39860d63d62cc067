package ops

import "github.com/sprout-ml/sprout/internal/tensor"

// SumOp records a full reduction to a scalar: output = Σx.
type SumOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewSumOp creates a new SumOp.
func NewSumOp(x, output *tensor.RawTensor) *SumOp {
	return &SumOp{inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward broadcasts the scalar gradient over the input shape: every
// element contributed with weight 1.
func (op *SumOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	return []*tensor.RawTensor{backend.Expand(outputGrad, x.Shape())}
}

// Inputs returns [x].
func (op *SumOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns Σx.
func (op *SumOp) Output() *tensor.RawTensor { return op.output }

// SumDimOp records a sum along one dimension.
type SumDimOp struct {
	dim     int // normalized
	keepDim bool
	inputs  []*tensor.RawTensor // [x]
	output  *tensor.RawTensor
}

// NewSumDimOp creates a new SumDimOp. dim must already be normalized
// to a non-negative index.
func NewSumDimOp(x *tensor.RawTensor, dim int, keepDim bool, output *tensor.RawTensor) *SumDimOp {
	return &SumDimOp{dim: dim, keepDim: keepDim, inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward broadcasts the gradient back over the reduced dimension.
func (op *SumDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	keepShape := x.Shape().Clone()
	keepShape[op.dim] = 1
	return []*tensor.RawTensor{expandToInput(outputGrad, keepShape, x.Shape(), backend)}
}

// Inputs returns [x].
func (op *SumDimOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the reduced tensor.
func (op *SumDimOp) Output() *tensor.RawTensor { return op.output }

// MeanDimOp records a mean along one dimension.
type MeanDimOp struct {
	dim     int // normalized
	keepDim bool
	inputs  []*tensor.RawTensor // [x]
	output  *tensor.RawTensor
}

// NewMeanDimOp creates a new MeanDimOp. dim must already be normalized.
func NewMeanDimOp(x *tensor.RawTensor, dim int, keepDim bool, output *tensor.RawTensor) *MeanDimOp {
	return &MeanDimOp{dim: dim, keepDim: keepDim, inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward broadcasts the gradient over the reduced dimension and
// scales it by 1/n, each element having contributed with weight 1/n.
func (op *MeanDimOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	shape := x.Shape()
	keepShape := shape.Clone()
	keepShape[op.dim] = 1

	grad := expandToInput(outputGrad, keepShape, shape, backend)
	grad = backend.DivScalar(grad, float64(shape[op.dim]))
	return []*tensor.RawTensor{grad}
}

// Inputs returns [x].
func (op *MeanDimOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the reduced tensor.
func (op *MeanDimOp) Output() *tensor.RawTensor { return op.output }
