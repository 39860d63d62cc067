package ops

import "github.com/sprout-ml/sprout/internal/tensor"

// ReshapeOp records a shape change. Without recording it, gradients
// computed for the reshaped tensor would never reach the original
// parameter the optimizer is watching.
type ReshapeOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewReshapeOp creates a new ReshapeOp.
func NewReshapeOp(x, output *tensor.RawTensor) *ReshapeOp {
	return &ReshapeOp{inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward reshapes the gradient back to the input shape.
func (op *ReshapeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{backend.Reshape(outputGrad, op.inputs[0].Shape())}
}

// Inputs returns [x].
func (op *ReshapeOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the reshaped tensor.
func (op *ReshapeOp) Output() *tensor.RawTensor { return op.output }

// TransposeOp records a dimension permutation.
//
// The backend copies data on transpose, so the output is a new tensor;
// without this op on the tape the chain from a transposed weight back
// to the parameter would be severed.
type TransposeOp struct {
	axes   []int
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewTransposeOp creates a new TransposeOp. axes is the forward
// permutation (already defaulted to full reversal by the caller).
func NewTransposeOp(x, output *tensor.RawTensor, axes []int) *TransposeOp {
	return &TransposeOp{axes: axes, inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward applies the inverse permutation to the gradient.
func (op *TransposeOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	inverse := make([]int, len(op.axes))
	for i, ax := range op.axes {
		inverse[ax] = i
	}
	return []*tensor.RawTensor{backend.Transpose(outputGrad, inverse...)}
}

// Inputs returns [x].
func (op *TransposeOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the transposed tensor.
func (op *TransposeOp) Output() *tensor.RawTensor { return op.output }

// ExpandOp records an explicit broadcast to a larger shape.
type ExpandOp struct {
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewExpandOp creates a new ExpandOp.
func NewExpandOp(x, output *tensor.RawTensor) *ExpandOp {
	return &ExpandOp{inputs: []*tensor.RawTensor{x}, output: output}
}

// Backward sums the gradient back down to the input shape.
func (op *ExpandOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	return []*tensor.RawTensor{reduceBroadcast(outputGrad, op.inputs[0].Shape(), backend)}
}

// Inputs returns [x].
func (op *ExpandOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the expanded tensor.
func (op *ExpandOp) Output() *tensor.RawTensor { return op.output }
