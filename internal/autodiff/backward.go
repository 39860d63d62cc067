package autodiff

import (
	"github.com/sprout-ml/sprout/internal/tensor"
)

// BackwardCapable is satisfied by backends that carry a gradient tape.
type BackwardCapable interface {
	Tape() *GradientTape
}

// GetTape extracts the gradient tape from a backend, or nil if the
// backend does not record gradients.
func GetTape(backend tensor.Backend) *GradientTape {
	if bc, ok := backend.(BackwardCapable); ok {
		return bc.Tape()
	}
	return nil
}

// Gradients holds the result of a backward pass, keyed by tensor
// identity. Use Get with a tensor's Raw() pointer to look up its
// gradient.
type Gradients struct {
	grads   map[*tensor.RawTensor]*tensor.RawTensor
	backend tensor.Backend
}

// Get returns the gradient for the given tensor, or nil if no gradient
// flowed to it.
func (g *Gradients) Get(raw *tensor.RawTensor) *tensor.RawTensor {
	return g.grads[raw]
}

// Map returns the underlying identity-keyed gradient map, in the form
// optimizers consume.
func (g *Gradients) Map() map[*tensor.RawTensor]*tensor.RawTensor {
	return g.grads
}

// Backward runs reverse-mode differentiation from a scalar loss.
//
// The loss tensor's backend must be a recording backend and its tape
// must contain the operations that produced the loss. The seed
// gradient is a tensor of ones matching the loss shape.
func Backward[T tensor.DType, B tensor.Backend](loss *tensor.Tensor[T, B]) *Gradients {
	tape := GetTape(loss.Backend())
	if tape == nil {
		panic("autodiff: Backward called on a tensor whose backend does not record gradients")
	}
	if tape.NumOps() == 0 {
		panic("autodiff: gradient tape is empty; did you forget to call Tape().StartRecording() before the forward pass?")
	}

	seed := tensor.Ones[T](loss.Shape(), loss.Backend())
	grads := tape.Backward(seed.Raw(), loss.Backend())
	return &Gradients{grads: grads, backend: loss.Backend()}
}
