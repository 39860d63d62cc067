package cpu

import (
	"fmt"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// AddScalar adds a scalar to each element.
func (c *Backend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("add_scalar", x, scalar,
		func(v, s float32) float32 { return v + s },
		func(v, s float64) float64 { return v + s },
		func(v, s int32) int32 { return v + s },
		func(v, s int64) int64 { return v + s },
	)
}

// SubScalar subtracts a scalar from each element.
func (c *Backend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("sub_scalar", x, scalar,
		func(v, s float32) float32 { return v - s },
		func(v, s float64) float64 { return v - s },
		func(v, s int32) int32 { return v - s },
		func(v, s int64) int64 { return v - s },
	)
}

// MulScalar multiplies each element by a scalar.
func (c *Backend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("mul_scalar", x, scalar,
		func(v, s float32) float32 { return v * s },
		func(v, s float64) float64 { return v * s },
		func(v, s int32) int32 { return v * s },
		func(v, s int64) int64 { return v * s },
	)
}

// DivScalar divides each element by a scalar.
func (c *Backend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return c.scalarOp("div_scalar", x, scalar,
		func(v, s float32) float32 { return v / s },
		func(v, s float64) float64 { return v / s },
		func(v, s int32) int32 { return v / s },
		func(v, s int64) int64 { return v / s },
	)
}

// scalarOp applies a scalar operation element-wise, coercing the scalar
// to the tensor's dtype. The scalar must be a numeric Go value.
func (c *Backend) scalarOp(
	name string,
	x *tensor.RawTensor,
	scalar any,
	f32 func(float32, float32) float32,
	f64 func(float64, float64) float64,
	i32 func(int32, int32) int32,
	i64 func(int64, int64) int64,
) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), c.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		s := float32(toFloat64(name, scalar))
		src, dst := x.AsFloat32(), result.AsFloat32()
		for i, v := range src {
			dst[i] = f32(v, s)
		}
	case tensor.Float64:
		s := toFloat64(name, scalar)
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = f64(v, s)
		}
	case tensor.Int32:
		s := int32(toFloat64(name, scalar))
		src, dst := x.AsInt32(), result.AsInt32()
		for i, v := range src {
			dst[i] = i32(v, s)
		}
	case tensor.Int64:
		s := int64(toFloat64(name, scalar))
		src, dst := x.AsInt64(), result.AsInt64()
		for i, v := range src {
			dst[i] = i64(v, s)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

// toFloat64 widens any supported numeric scalar to float64.
func toFloat64(name string, scalar any) float64 {
	switch s := scalar.(type) {
	case float32:
		return float64(s)
	case float64:
		return s
	case int:
		return float64(s)
	case int32:
		return float64(s)
	case int64:
		return float64(s)
	default:
		panic(fmt.Sprintf("%s: unsupported scalar type %T", name, scalar))
	}
}
