package cpu

import (
	"fmt"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Reshape returns a tensor with the same data but a different shape.
// Data is copied; tensors are contiguous so the element order is stable.
func (c *Backend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}
	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			t.Shape(), newShape))
	}

	result, err := tensor.NewRaw(newShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	copy(result.Data(), t.Data())
	return result
}

// Transpose permutes the tensor's dimensions. With no axes given, all
// dimensions are reversed.
func (c *Backend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: axis %d out of range for rank %d", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	outShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		outShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(outShape, t.DType(), t.Device())
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	// Walk output positions; for each, gather the source element whose
	// coordinates are the permuted output coordinates.
	inStrides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	esz := t.DType().Size()
	src, dst := t.Data(), result.Data()

	n := t.NumElements()
	for outIdx := 0; outIdx < n; outIdx++ {
		rem := outIdx
		srcIdx := 0
		for i := 0; i < ndim; i++ {
			coord := rem / outStrides[i]
			rem %= outStrides[i]
			srcIdx += coord * inStrides[axes[i]]
		}
		copy(dst[outIdx*esz:(outIdx+1)*esz], src[srcIdx*esz:(srcIdx+1)*esz])
	}

	return result
}

// Unsqueeze adds a dimension of size 1 at the given position.
// Supports negative dim indexing; -1 inserts after the current last
// dimension.
func (c *Backend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	d := dim
	if d < 0 {
		d += ndim + 1
	}
	if d < 0 || d > ndim {
		panic(fmt.Sprintf("unsqueeze: dimension %d out of range for tensor of rank %d", dim, ndim))
	}

	outShape := make(tensor.Shape, 0, ndim+1)
	outShape = append(outShape, shape[:d]...)
	outShape = append(outShape, 1)
	outShape = append(outShape, shape[d:]...)

	return c.Reshape(x, outShape)
}

// Squeeze removes a dimension of size 1 at the given position.
// Panics if the dimension size is not 1. Supports negative dim indexing.
func (c *Backend) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	d := normalizeDim("squeeze", dim, len(shape))
	if shape[d] != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d has size %d, expected 1", d, shape[d]))
	}

	outShape := make(tensor.Shape, 0, len(shape)-1)
	outShape = append(outShape, shape[:d]...)
	outShape = append(outShape, shape[d+1:]...)

	return c.Reshape(x, outShape)
}

// Expand broadcasts a tensor to a larger shape. The target must be
// reachable by broadcasting rules from the input shape.
func (c *Backend) Expand(x *tensor.RawTensor, shape tensor.Shape) *tensor.RawTensor {
	broadcast, _, err := tensor.BroadcastShapes(x.Shape(), shape)
	if err != nil || !broadcast.Equal(shape) {
		panic(fmt.Sprintf("expand: cannot expand %v to %v", x.Shape(), shape))
	}

	result, err := tensor.NewRaw(shape, x.DType(), x.Device())
	if err != nil {
		panic(fmt.Sprintf("expand: %v", err))
	}

	outStrides := shape.ComputeStrides()
	inStrides := broadcastStrides(x.Shape(), shape)
	esz := x.DType().Size()
	src, dst := x.Data(), result.Data()

	n := shape.NumElements()
	for i := 0; i < n; i++ {
		srcIdx := flatIndex(i, outStrides, inStrides)
		copy(dst[i*esz:(i+1)*esz], src[srcIdx*esz:(srcIdx+1)*esz])
	}

	return result
}
