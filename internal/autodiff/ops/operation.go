// Package ops defines the differentiable operations recorded on the
// gradient tape.
//
// Each operation stores the raw tensors of its forward pass and knows
// how to turn the gradient of its output into gradients of its inputs
// (the chain rule, one op at a time):
//   - AddOp: d(a+b)/da = 1, d(a+b)/db = 1
//   - MulOp: d(a*b)/da = b, d(a*b)/db = a
//   - MatMulOp: d(A@B)/dA = grad@Bᵀ, d(A@B)/dB = Aᵀ@grad
//
// Operations whose forward pass broadcast their inputs reduce the
// output gradient back to each input's shape before returning it.
package ops

import "github.com/sprout-ml/sprout/internal/tensor"

// Operation is one differentiable step in the recorded computation.
type Operation interface {
	// Backward computes gradients for the inputs given the output
	// gradient. The returned slice parallels Inputs().
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors this operation differentiates
	// with respect to.
	Inputs() []*tensor.RawTensor

	// Output returns the tensor produced by this operation.
	Output() *tensor.RawTensor
}
