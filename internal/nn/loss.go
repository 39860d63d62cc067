package nn

import (
	"github.com/sprout-ml/sprout/internal/tensor"
)

// MSELoss computes mean squared error: mean((predictions - targets)²).
//
// The whole computation, including the final mean, is expressed through
// backend operations. On a recording backend the loss therefore sits on
// the tape and gradients flow all the way back to the predictions.
type MSELoss[B tensor.Backend] struct{}

// NewMSELoss creates an MSE loss function.
func NewMSELoss[B tensor.Backend]() *MSELoss[B] {
	return &MSELoss[B]{}
}

// Forward computes the loss. Predictions and targets must share a
// shape. The result is a scalar tensor.
func (m *MSELoss[B]) Forward(predictions, targets *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	if !predictions.Shape().Equal(targets.Shape()) {
		panic("MSELoss: predictions and targets must have the same shape")
	}

	diff := predictions.Sub(targets)
	squared := diff.Mul(diff)
	n := float32(squared.NumElements())
	return squared.Sum().DivScalar(n)
}

// Parameters returns nil; loss functions have no trainable parameters.
func (m *MSELoss[B]) Parameters() []*Parameter[B] {
	return nil
}
