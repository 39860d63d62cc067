// Package optim implements gradient-based parameter update rules.
//
// The lessons only need plain gradient descent, so the package
// provides SGD with optional momentum behind a small Optimizer
// interface.
package optim

import (
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Optimizer updates model parameters from computed gradients.
type Optimizer interface {
	// Step applies one update to all parameters using the gradient
	// map produced by a backward pass. Parameters with no entry in
	// the map are skipped.
	Step(grads map[*tensor.RawTensor]*tensor.RawTensor)

	// ZeroGrad clears stored parameter gradients. Call before each
	// backward pass.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float32
}

// Config holds settings shared by all optimizers.
type Config struct {
	LR float32
}

// getGradient looks up the gradient for a parameter by the identity of
// its raw tensor. Returns nil when the parameter took no part in the
// recorded computation.
func getGradient[B tensor.Backend](param *nn.Parameter[B], grads map[*tensor.RawTensor]*tensor.RawTensor) *tensor.RawTensor {
	if param == nil {
		return nil
	}
	return grads[param.Tensor().Raw()]
}
