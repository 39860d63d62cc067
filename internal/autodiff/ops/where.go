package ops

import "github.com/sprout-ml/sprout/internal/tensor"

// WhereOp records conditional selection: output = cond ? x : y.
// The condition is a constant mask; only x and y receive gradients.
type WhereOp struct {
	cond   *tensor.RawTensor
	inputs []*tensor.RawTensor // [x, y]
	output *tensor.RawTensor
}

// NewWhereOp creates a new WhereOp.
func NewWhereOp(cond, x, y, output *tensor.RawTensor) *WhereOp {
	return &WhereOp{
		cond:   cond,
		inputs: []*tensor.RawTensor{x, y},
		output: output,
	}
}

// Backward routes the gradient to x where the condition held and to y
// elsewhere, reducing along any broadcast dimensions.
func (op *WhereOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x, y := op.inputs[0], op.inputs[1]
	zeros := zerosLike(outputGrad, backend)

	gradX := reduceBroadcast(backend.Where(op.cond, outputGrad, zeros), x.Shape(), backend)
	gradY := reduceBroadcast(backend.Where(op.cond, zeros, outputGrad), y.Shape(), backend)

	return []*tensor.RawTensor{gradX, gradY}
}

// Inputs returns [x, y].
func (op *WhereOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the selected tensor.
func (op *WhereOp) Output() *tensor.RawTensor { return op.output }
