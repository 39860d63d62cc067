package cpu

import (
	"fmt"
	"math"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Sum reduces all elements to a scalar tensor (shape {}).
func (c *Backend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), c.device)
	if err != nil {
		panic(fmt.Sprintf("sum: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		var sum float32
		for _, v := range x.AsFloat32() {
			sum += v
		}
		result.AsFloat32()[0] = sum
	case tensor.Float64:
		var sum float64
		for _, v := range x.AsFloat64() {
			sum += v
		}
		result.AsFloat64()[0] = sum
	case tensor.Int32:
		var sum int32
		for _, v := range x.AsInt32() {
			sum += v
		}
		result.AsInt32()[0] = sum
	case tensor.Int64:
		var sum int64
		for _, v := range x.AsInt64() {
			sum += v
		}
		result.AsInt64()[0] = sum
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// SumDim sums along a dimension. Supports negative dim indexing.
func (c *Backend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	return c.reduceDim("sum_dim", x, dim, keepDim, false)
}

// MeanDim averages along a dimension. Supports negative dim indexing.
// Only float dtypes are supported.
func (c *Backend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	if x.DType() != tensor.Float32 && x.DType() != tensor.Float64 {
		panic(fmt.Sprintf("mean_dim: only float32 and float64 supported, got %s", x.DType()))
	}
	return c.reduceDim("mean_dim", x, dim, keepDim, true)
}

// reduceDim accumulates along dim into a tensor with that dimension
// removed (or kept with size 1). When mean is set, the accumulated sums
// are divided by the dimension size.
func (c *Backend) reduceDim(name string, x *tensor.RawTensor, dim int, keepDim, mean bool) *tensor.RawTensor {
	shape := x.Shape()
	d := normalizeDim(name, dim, len(shape))
	outer, dimSize, inner := dimSplit(shape, d)

	outShape := reducedShape(shape, d, keepDim)
	result, err := tensor.NewRaw(outShape, x.DType(), c.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		reduceSum(x.AsFloat32(), result.AsFloat32(), outer, dimSize, inner)
		if mean {
			dst := result.AsFloat32()
			n := float32(dimSize)
			for i := range dst {
				dst[i] /= n
			}
		}
	case tensor.Float64:
		reduceSum(x.AsFloat64(), result.AsFloat64(), outer, dimSize, inner)
		if mean {
			dst := result.AsFloat64()
			n := float64(dimSize)
			for i := range dst {
				dst[i] /= n
			}
		}
	case tensor.Int32:
		reduceSum(x.AsInt32(), result.AsInt32(), outer, dimSize, inner)
	case tensor.Int64:
		reduceSum(x.AsInt64(), result.AsInt64(), outer, dimSize, inner)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

// reduceSum accumulates src over the middle axis of the (outer, dimSize,
// inner) decomposition into dst of logical shape (outer, inner).
func reduceSum[T float32 | float64 | int32 | int64](src, dst []T, outer, dimSize, inner int) {
	for o := 0; o < outer; o++ {
		for d := 0; d < dimSize; d++ {
			base := (o*dimSize + d) * inner
			out := o * inner
			for i := 0; i < inner; i++ {
				dst[out+i] += src[base+i]
			}
		}
	}
}

// Max returns the maximum element as a scalar tensor.
// Only float dtypes are supported.
func (c *Backend) Max(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, x.DType(), c.device)
	if err != nil {
		panic(fmt.Sprintf("max: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		m := float32(math.Inf(-1))
		for _, v := range x.AsFloat32() {
			if v > m {
				m = v
			}
		}
		result.AsFloat32()[0] = m
	case tensor.Float64:
		m := math.Inf(-1)
		for _, v := range x.AsFloat64() {
			if v > m {
				m = v
			}
		}
		result.AsFloat64()[0] = m
	default:
		panic(fmt.Sprintf("max: only float32 and float64 supported, got %s", x.DType()))
	}

	return result
}

// Argmax returns the index of the maximum value along a dimension as an
// int32 tensor with that dimension removed. Ties resolve to the lowest
// index. Supports negative dim indexing.
func (c *Backend) Argmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	d := normalizeDim("argmax", dim, len(shape))
	outer, dimSize, inner := dimSplit(shape, d)

	outShape := reducedShape(shape, d, false)
	result, err := tensor.NewRaw(outShape, tensor.Int32, c.device)
	if err != nil {
		panic(fmt.Sprintf("argmax: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		argmax(x.AsFloat32(), result.AsInt32(), outer, dimSize, inner)
	case tensor.Float64:
		argmax(x.AsFloat64(), result.AsInt32(), outer, dimSize, inner)
	case tensor.Int32:
		argmax(x.AsInt32(), result.AsInt32(), outer, dimSize, inner)
	case tensor.Int64:
		argmax(x.AsInt64(), result.AsInt32(), outer, dimSize, inner)
	default:
		panic(fmt.Sprintf("argmax: unsupported dtype %s", x.DType()))
	}

	return result
}

func argmax[T float32 | float64 | int32 | int64](src []T, dst []int32, outer, dimSize, inner int) {
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			best := src[o*dimSize*inner+i]
			bestIdx := int32(0)
			for d := 1; d < dimSize; d++ {
				v := src[(o*dimSize+d)*inner+i]
				if v > best {
					best = v
					bestIdx = int32(d)
				}
			}
			dst[o*inner+i] = bestIdx
		}
	}
}

// reducedShape drops dim from shape, or keeps it with size 1.
// A full reduction of a 1D tensor without keepDim yields a scalar shape.
func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	for i, s := range shape {
		if i != dim {
			out = append(out, s)
		}
	}
	return out
}

func normalizeDim(name string, dim, ndim int) int {
	d := dim
	if d < 0 {
		d += ndim
	}
	if d < 0 || d >= ndim {
		panic(fmt.Sprintf("%s: dimension %d out of range for tensor of rank %d", name, dim, ndim))
	}
	return d
}
