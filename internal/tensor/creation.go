package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // shape validation should prevent this
	}

	// make() already zero-initialized the buffer
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	var one T
	switch any(dummy).(type) {
	case float32:
		one = any(float32(1)).(T)
	case float64:
		one = any(float64(1)).(T)
	case int32:
		one = any(int32(1)).(T)
	case int64:
		one = any(int64(1)).(T)
	case bool:
		one = any(true).(T)
	}
	return Full[T, B](shape, one, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Randn creates a tensor with values drawn from a standard normal
// distribution N(0, 1) using the Box-Muller transform.
// Only float types are supported. Uses math/rand, which is what you
// want for reproducible experiments (seed with rand.Seed or a local
// *rand.Rand via RandnFrom).
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	return RandnFrom[T, B](shape, nil, b)
}

// RandnFrom is Randn with an explicit source. A nil rng falls back to
// the global math/rand source.
func RandnFrom[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	uniform := rand.Float64
	if rng != nil {
		uniform = rng.Float64
	}

	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dst := any(data).([]float32)
		for i := 0; i < len(dst); i += 2 {
			z0, z1 := boxMuller(uniform)
			dst[i] = float32(z0)
			if i+1 < len(dst) {
				dst[i+1] = float32(z1)
			}
		}
	case float64:
		dst := any(data).([]float64)
		for i := 0; i < len(dst); i += 2 {
			z0, z1 := boxMuller(uniform)
			dst[i] = z0
			if i+1 < len(dst) {
				dst[i+1] = z1
			}
		}
	default:
		panic("Randn only supports float32 and float64 types")
	}
	return t
}

// boxMuller converts two uniform samples into two normal samples.
func boxMuller(uniform func() float64) (float64, float64) {
	u1 := uniform()
	for u1 == 0 {
		u1 = uniform()
	}
	u2 := uniform()
	r := math.Sqrt(-2.0 * math.Log(u1))
	return r * math.Cos(2.0*math.Pi*u2), r * math.Sin(2.0*math.Pi*u2)
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
// Only float types are supported.
func Rand[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dst := any(data).([]float32)
		for i := range dst {
			dst[i] = rand.Float32()
		}
	case float64:
		dst := any(data).([]float64)
		for i := range dst {
			dst[i] = rand.Float64()
		}
	default:
		panic("Rand only supports float32 and float64 types")
	}
	return t
}

// Arange creates a 1D tensor with values from start to end (exclusive),
// stepping by 1.
//
// Example:
//
//	t := tensor.Arange[int32](0, 10, backend) // [0, 1, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) *Tensor[T, B] {
	var dummy T
	var n int
	switch any(dummy).(type) {
	case float32:
		n = int(any(end).(float32) - any(start).(float32))
	case float64:
		n = int(any(end).(float64) - any(start).(float64))
	case int32:
		n = int(any(end).(int32) - any(start).(int32))
	case int64:
		n = int(any(end).(int64) - any(start).(int64))
	default:
		panic("Arange does not support bool tensors")
	}
	if n <= 0 {
		panic("Arange: end must be greater than start")
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	switch any(dummy).(type) {
	case float32:
		s := any(start).(float32)
		dst := any(data).([]float32)
		for i := range dst {
			dst[i] = s + float32(i)
		}
	case float64:
		s := any(start).(float64)
		dst := any(data).([]float64)
		for i := range dst {
			dst[i] = s + float64(i)
		}
	case int32:
		s := any(start).(int32)
		dst := any(data).([]int32)
		for i := range dst {
			dst[i] = s + int32(i)
		}
	case int64:
		s := any(start).(int64)
		dst := any(data).([]int64)
		for i := range dst {
			dst[i] = s + int64(i)
		}
	}
	return t
}

// Eye creates an n×n identity matrix.
func Eye[T DType, B Backend](n int, b B) *Tensor[T, B] {
	t := Zeros[T, B](Shape{n, n}, b)
	var dummy T
	var one T
	switch any(dummy).(type) {
	case float32:
		one = any(float32(1)).(T)
	case float64:
		one = any(float64(1)).(T)
	case int32:
		one = any(int32(1)).(T)
	case int64:
		one = any(int64(1)).(T)
	case bool:
		one = any(true).(T)
	}

	data := t.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] = one
	}
	return t
}
