package optim

import (
	"github.com/sprout-ml/sprout/internal/nn"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Without momentum:
//
//	param = param - lr * grad
//
// With momentum:
//
//	velocity = momentum * velocity + grad
//	param = param - lr * velocity
//
// Updates are written back into the existing parameter buffers, so
// parameter identity is stable across training steps.
type SGD[B tensor.Backend] struct {
	params     []*nn.Parameter[B]
	lr         float32
	momentum   float32
	velocities map[*nn.Parameter[B]]*tensor.Tensor[float32, B]
	backend    B
}

// SGDConfig holds SGD settings.
type SGDConfig struct {
	LR       float32 // learning rate, defaults to 0.01
	Momentum float32 // momentum factor in [0, 1), defaults to 0
}

// NewSGD creates an SGD optimizer over the given parameters.
func NewSGD[B tensor.Backend](params []*nn.Parameter[B], config SGDConfig, backend B) *SGD[B] {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD[B]{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter[B]]*tensor.Tensor[float32, B]),
		backend:    backend,
	}
}

// Step applies one gradient descent update to every parameter that has
// a gradient in the map.
func (s *SGD[B]) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, param := range s.params {
		grad := getGradient(param, grads)
		if grad == nil {
			continue
		}

		gradTensor := tensor.New[float32, B](grad, s.backend)
		param.SetGrad(gradTensor)

		if s.momentum == 0 {
			s.update(param, gradTensor)
		} else {
			s.updateWithMomentum(param, gradTensor)
		}
	}
}

func (s *SGD[B]) update(param *nn.Parameter[B], grad *tensor.Tensor[float32, B]) {
	updated := param.Tensor().Sub(grad.MulScalar(s.lr))
	copy(param.Tensor().Raw().AsFloat32(), updated.Raw().AsFloat32())
}

func (s *SGD[B]) updateWithMomentum(param *nn.Parameter[B], grad *tensor.Tensor[float32, B]) {
	velocity, ok := s.velocities[param]
	if !ok {
		velocity = tensor.Zeros[float32](param.Tensor().Shape(), s.backend)
		s.velocities[param] = velocity
	}

	newVelocity := velocity.MulScalar(s.momentum).Add(grad)
	copy(velocity.Raw().AsFloat32(), newVelocity.Raw().AsFloat32())

	updated := param.Tensor().Sub(velocity.MulScalar(s.lr))
	copy(param.Tensor().Raw().AsFloat32(), updated.Raw().AsFloat32())
}

// ZeroGrad clears gradients on all parameters.
func (s *SGD[B]) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD[B]) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate, for scheduling.
func (s *SGD[B]) SetLR(lr float32) {
	s.lr = lr
}
