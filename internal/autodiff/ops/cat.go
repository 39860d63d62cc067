package ops

import "github.com/sprout-ml/sprout/internal/tensor"

// CatOp records concatenation of several tensors along one dimension.
type CatOp struct {
	dim    int // normalized
	inputs []*tensor.RawTensor
	output *tensor.RawTensor
}

// NewCatOp creates a new CatOp. dim must already be normalized.
func NewCatOp(inputs []*tensor.RawTensor, dim int, output *tensor.RawTensor) *CatOp {
	return &CatOp{dim: dim, inputs: inputs, output: output}
}

// Backward slices the gradient back into one piece per input.
func (op *CatOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	grads := make([]*tensor.RawTensor, len(op.inputs))
	offset := 0
	for i, in := range op.inputs {
		size := in.Shape()[op.dim]
		grads[i] = backend.Narrow(outputGrad, op.dim, offset, size)
		offset += size
	}
	return grads
}

// Inputs returns the concatenated tensors.
func (op *CatOp) Inputs() []*tensor.RawTensor { return op.inputs }

// Output returns the concatenated result.
func (op *CatOp) Output() *tensor.RawTensor { return op.output }
