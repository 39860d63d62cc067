// Copyright 2026 Sprout ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// It wraps any backend with a gradient tape that records operations
// during the forward pass, then replays them in reverse to compute
// gradients.
//
// Example:
//
//	import (
//	    "github.com/sprout-ml/sprout/autodiff"
//	    "github.com/sprout-ml/sprout/backend/cpu"
//	    "github.com/sprout-ml/sprout/tensor"
//	)
//
//	func main() {
//	    backend := autodiff.New(cpu.New())
//	    backend.Tape().StartRecording()
//
//	    x, _ := tensor.FromSlice([]float32{2}, tensor.Shape{1}, backend)
//	    y := x.Mul(x)
//
//	    backend.Tape().StopRecording()
//	    grads := autodiff.Backward(y)
//	    dx := grads.Get(x.Raw()) // dy/dx = 2x
//	}
package autodiff

import (
	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/tensor"
)

// Backend is the gradient-recording decorator over a compute backend.
type Backend[B tensor.Backend] = autodiff.Backend[B]

// New creates an autodiff backend wrapping the given backend.
func New[B tensor.Backend](backend B) *Backend[B] {
	return autodiff.New(backend)
}

// GradientTape records operations for automatic differentiation.
type GradientTape = autodiff.GradientTape

// NewGradientTape creates a new gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// BackwardCapable is satisfied by backends that carry a gradient tape.
type BackwardCapable = autodiff.BackwardCapable

// Gradients holds the result of a backward pass, keyed by tensor
// identity.
type Gradients = autodiff.Gradients

// Backward runs reverse-mode differentiation from a scalar loss,
// seeding a ones gradient. The loss must have been computed on a
// recording backend with the tape active.
func Backward[T tensor.DType, B tensor.Backend](loss *tensor.Tensor[T, B]) *Gradients {
	return autodiff.Backward(loss)
}
