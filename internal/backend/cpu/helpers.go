package cpu

import (
	"github.com/sprout-ml/sprout/internal/tensor"
)

// broadcastStrides computes strides for reading inShape as if it had
// been broadcast to outShape: broadcast dimensions (size 1 or missing
// on the left) get stride 0.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0:
			strides[i] = 0 // padded dimension
		case inShape[inIdx] == 1:
			strides[i] = 0 // broadcast dimension
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// flatIndex maps a flat output index to the flat source index using
// broadcast-adjusted source strides.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	idx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		idx += coord * inStrides[i]
	}
	return idx
}

// dimSplit decomposes a shape around dim into (outer, dimSize, inner)
// so that the flat index of element (o, d, i) is (o*dimSize+d)*inner+i.
func dimSplit(shape tensor.Shape, dim int) (outer, dimSize, inner int) {
	outer, inner = 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	return outer, shape[dim], inner
}
