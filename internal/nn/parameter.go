package nn

import (
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Parameter is a trainable tensor, typically a layer weight or bias.
// The gradient slot is filled by the optimizer after a backward pass
// and cleared by ZeroGrad before the next iteration.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float32, B]
	grad   *tensor.Tensor[float32, B]
}

// NewParameter creates a trainable parameter wrapping an initialized
// tensor. The gradient starts out nil.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name, e.g. "weight".
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Grad returns the gradient, or nil before the first backward pass.
func (p *Parameter[B]) Grad() *tensor.Tensor[float32, B] {
	return p.grad
}

// SetGrad stores a gradient on the parameter.
func (p *Parameter[B]) SetGrad(grad *tensor.Tensor[float32, B]) {
	p.grad = grad
}

// ZeroGrad clears the stored gradient. Call before each training
// iteration to avoid carrying gradients across steps.
func (p *Parameter[B]) ZeroGrad() {
	p.grad = nil
}
