package cpu

import (
	"fmt"
	"math"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Neg negates each element.
func (c *Backend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), c.device)
	if err != nil {
		panic(fmt.Sprintf("neg: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i, v := range src {
			dst[i] = -v
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = -v
		}
	case tensor.Int32:
		src, dst := x.AsInt32(), result.AsInt32()
		for i, v := range src {
			dst[i] = -v
		}
	case tensor.Int64:
		src, dst := x.AsInt64(), result.AsInt64()
		for i, v := range src {
			dst[i] = -v
		}
	default:
		panic(fmt.Sprintf("neg: unsupported dtype %s", x.DType()))
	}

	return result
}

// Exp computes e^x element-wise.
func (c *Backend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unaryFloat("exp", x, math.Exp)
}

// Log computes the natural logarithm element-wise.
// Input values must be positive; non-positive inputs produce -Inf/NaN,
// matching math.Log.
func (c *Backend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unaryFloat("log", x, math.Log)
}

// Sqrt computes the square root element-wise.
func (c *Backend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unaryFloat("sqrt", x, math.Sqrt)
}

// Pow raises each element to the given power.
func (c *Backend) Pow(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	return c.unaryFloat("pow", x, func(v float64) float64 { return math.Pow(v, exponent) })
}

// ReLU applies max(0, x) element-wise.
func (c *Backend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return c.unaryFloat("relu", x, func(v float64) float64 { return math.Max(v, 0) })
}

// unaryFloat applies a float function element-wise.
// Only float dtypes are supported.
func (c *Backend) unaryFloat(name string, x *tensor.RawTensor, f func(float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), c.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i, v := range src {
			dst[i] = float32(f(float64(v)))
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = f(v)
		}
	default:
		panic(fmt.Sprintf("%s: only float32 and float64 supported, got %s", name, x.DType()))
	}

	return result
}
