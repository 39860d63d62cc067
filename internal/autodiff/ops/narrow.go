package ops

import "github.com/sprout-ml/sprout/internal/tensor"

// NarrowOp records slicing along one dimension:
// output = x[..., start:start+length, ...].
type NarrowOp struct {
	dim    int // normalized
	start  int
	length int
	inputs []*tensor.RawTensor // [x]
	output *tensor.RawTensor
}

// NewNarrowOp creates a new NarrowOp. dim must already be normalized.
func NewNarrowOp(x *tensor.RawTensor, dim, start, length int, output *tensor.RawTensor) *NarrowOp {
	return &NarrowOp{
		dim:    dim,
		start:  start,
		length: length,
		inputs: []*tensor.RawTensor{x},
		output: output,
	}
}

// Backward pads the gradient with zeros outside the sliced range so it
// matches the input shape. Built by concatenating zero blocks around
// the gradient along the sliced dimension.
func (op *NarrowOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	x := op.inputs[0]
	shape := x.Shape()

	parts := make([]*tensor.RawTensor, 0, 3)
	if op.start > 0 {
		padShape := shape.Clone()
		padShape[op.dim] = op.start
		pad, err := tensor.NewRaw(padShape, x.DType(), backend.Device())
		if err != nil {
			panic(err)
		}
		parts = append(parts, pad)
	}
	parts = append(parts, outputGrad)
	if rest := shape[op.dim] - op.start - op.length; rest > 0 {
		padShape := shape.Clone()
		padShape[op.dim] = rest
		pad, err := tensor.NewRaw(padShape, x.DType(), backend.Device())
		if err != nil {
			panic(err)
		}
		parts = append(parts, pad)
	}

	if len(parts) == 1 {
		return []*tensor.RawTensor{outputGrad.Clone()}
	}
	return []*tensor.RawTensor{backend.Cat(parts, op.dim)}
}

// Inputs returns [x].
func (op *NarrowOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the sliced tensor.
func (op *NarrowOp) Output() *tensor.RawTensor { return op.output }
