// Package nn implements small neural network building blocks used by
// the lessons: trainable parameters, a fully connected layer,
// activations, and loss functions.
//
// Design follows PyTorch's nn.Module shape, adapted for Go generics.
package nn

import (
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Module is the base interface for network components.
//
// Modules compose:
//
//	layer := nn.NewLinear(1, 1, backend)
//	out := layer.Forward(x)
type Module[B tensor.Backend] interface {
	// Forward computes the module output for the given input.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns the trainable parameters of this module.
	// Modules without parameters return an empty slice.
	Parameters() []*Parameter[B]
}
