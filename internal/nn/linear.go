package nn

import (
	"fmt"
	"math/rand"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Linear is a fully connected layer computing y = x @ W.T + b, where
// x is [batch, inFeatures], W is [outFeatures, inFeatures] and b is
// [outFeatures].
//
// Weights use Xavier initialization, biases start at zero.
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B]
	bias        *Parameter[B]
	backend     B
}

// NewLinear creates a Linear layer with Xavier-initialized weights.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	w := Xavier(inFeatures, outFeatures, tensor.Shape{outFeatures, inFeatures}, backend)
	return newLinear(inFeatures, outFeatures, w, backend)
}

// NewLinearFrom creates a Linear layer whose weights are drawn from
// the given random source, so repeated runs with the same seed build
// identical layers.
func NewLinearFrom[B tensor.Backend](inFeatures, outFeatures int, rng *rand.Rand, backend B) *Linear[B] {
	w := XavierFrom(inFeatures, outFeatures, tensor.Shape{outFeatures, inFeatures}, rng, backend)
	return newLinear(inFeatures, outFeatures, w, backend)
}

func newLinear[B tensor.Backend](inFeatures, outFeatures int, w *tensor.Tensor[float32, B], backend B) *Linear[B] {
	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", w),
		bias:        NewParameter("bias", Zeros(tensor.Shape{outFeatures}, backend)),
		backend:     backend,
	}
}

// Forward computes y = x @ W.T + b.
//
// Input shape [batch, inFeatures], output shape [batch, outFeatures].
func (l *Linear[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shape := input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("Linear.Forward: expected 2D input [batch, features], got shape %v", shape))
	}
	if shape[1] != l.inFeatures {
		panic(fmt.Sprintf("Linear.Forward: expected input with %d features, got %d", l.inFeatures, shape[1]))
	}

	// [batch, in] @ [in, out] = [batch, out]
	out := input.MatMul(l.weight.Tensor().T())

	// Bias broadcasts from [1, out] across the batch.
	b := l.bias.Tensor().Reshape(1, l.outFeatures)
	return out.Add(b)
}

// Parameters returns [weight, bias].
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the input feature count.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output feature count.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}
