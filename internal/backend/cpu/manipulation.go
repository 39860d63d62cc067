package cpu

import (
	"fmt"

	"github.com/sprout-ml/sprout/internal/tensor"
)

// Narrow copies out the [start, start+length) range of dim.
// Supports negative dim indexing.
func (c *Backend) Narrow(x *tensor.RawTensor, dim, start, length int) *tensor.RawTensor {
	shape := x.Shape()
	d := normalizeDim("narrow", dim, len(shape))
	if start < 0 || length <= 0 || start+length > shape[d] {
		panic(fmt.Sprintf("narrow: range [%d, %d) out of bounds for dimension %d (size %d)",
			start, start+length, d, shape[d]))
	}

	outShape := shape.Clone()
	outShape[d] = length

	result, err := tensor.NewRaw(outShape, x.DType(), x.Device())
	if err != nil {
		panic(fmt.Sprintf("narrow: %v", err))
	}

	outer, dimSize, inner := dimSplit(shape, d)
	block := inner * x.DType().Size()
	src, dst := x.Data(), result.Data()

	for o := 0; o < outer; o++ {
		srcOff := (o*dimSize + start) * block
		dstOff := o * length * block
		copy(dst[dstOff:dstOff+length*block], src[srcOff:srcOff+length*block])
	}

	return result
}

// Cat concatenates tensors along the specified dimension. All tensors
// must share dtype and shape except along dim. Supports negative dim.
func (c *Backend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	first := tensors[0]
	shape := first.Shape()
	d := normalizeDim("cat", dim, len(shape))

	catDim := 0
	for _, t := range tensors {
		tShape := t.Shape()
		if t.DType() != first.DType() {
			panic(fmt.Sprintf("cat: dtype mismatch: %s vs %s", first.DType(), t.DType()))
		}
		if len(tShape) != len(shape) {
			panic(fmt.Sprintf("cat: rank mismatch: %v vs %v", shape, tShape))
		}
		for i := range tShape {
			if i != d && tShape[i] != shape[i] {
				panic(fmt.Sprintf("cat: shapes differ outside dimension %d: %v vs %v", d, shape, tShape))
			}
		}
		catDim += tShape[d]
	}

	outShape := shape.Clone()
	outShape[d] = catDim

	result, err := tensor.NewRaw(outShape, first.DType(), first.Device())
	if err != nil {
		panic(fmt.Sprintf("cat: %v", err))
	}

	outer, _, inner := dimSplit(outShape, d)
	esz := first.DType().Size()
	dst := result.Data()

	// For each outer block, append every tensor's slab in order.
	dstOff := 0
	for o := 0; o < outer; o++ {
		for _, t := range tensors {
			slab := t.Shape()[d] * inner * esz
			srcOff := o * slab
			copy(dst[dstOff:dstOff+slab], t.Data()[srcOff:srcOff+slab])
			dstOff += slab
		}
	}

	return result
}

// Where selects from x where condition is true and from y otherwise.
// condition, x, and y broadcast against each other; condition must be
// a bool tensor.
func (c *Backend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition must be bool, got %s", condition.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: dtype mismatch: %s vs %s", x.DType(), y.DType()))
	}

	xyShape, _, err := tensor.BroadcastShapes(x.Shape(), y.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}
	outShape, _, err := tensor.BroadcastShapes(xyShape, condition.Shape())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	result, err := tensor.NewRaw(outShape, x.DType(), x.Device())
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	outStrides := outShape.ComputeStrides()
	condStrides := broadcastStrides(condition.Shape(), outShape)
	xStrides := broadcastStrides(x.Shape(), outShape)
	yStrides := broadcastStrides(y.Shape(), outShape)

	cond := condition.AsBool()
	esz := x.DType().Size()
	xData, yData, dst := x.Data(), y.Data(), result.Data()

	n := outShape.NumElements()
	for i := 0; i < n; i++ {
		var srcIdx int
		var src []byte
		if cond[flatIndex(i, outStrides, condStrides)] {
			srcIdx = flatIndex(i, outStrides, xStrides)
			src = xData
		} else {
			srcIdx = flatIndex(i, outStrides, yStrides)
			src = yData
		}
		copy(dst[i*esz:(i+1)*esz], src[srcIdx*esz:(srcIdx+1)*esz])
	}

	return result
}

// Greater compares element-wise with broadcasting: a > b.
func (c *Backend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compare("greater", a, b,
		func(x, y float64) bool { return x > y },
	)
}

// Lower compares element-wise with broadcasting: a < b.
func (c *Backend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return c.compare("lower", a, b,
		func(x, y float64) bool { return x < y },
	)
}

// compare runs a broadcasting comparison, producing a bool tensor.
// Operands are widened to float64 for the comparison; exact for every
// int32 and for int64 values below 2^53, which covers lesson-scale data.
func (c *Backend) compare(name string, a, b *tensor.RawTensor, cmp func(float64, float64) bool) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, c.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	at := elementGetter(name, a)
	bt := elementGetter(name, b)
	dst := result.AsBool()

	for i := range dst {
		dst[i] = cmp(at(flatIndex(i, outStrides, aStrides)), bt(flatIndex(i, outStrides, bStrides)))
	}

	return result
}

// elementGetter returns an accessor that reads element i widened to float64.
func elementGetter(name string, t *tensor.RawTensor) func(int) float64 {
	switch t.DType() {
	case tensor.Float32:
		data := t.AsFloat32()
		return func(i int) float64 { return float64(data[i]) }
	case tensor.Float64:
		data := t.AsFloat64()
		return func(i int) float64 { return data[i] }
	case tensor.Int32:
		data := t.AsInt32()
		return func(i int) float64 { return float64(data[i]) }
	case tensor.Int64:
		data := t.AsInt64()
		return func(i int) float64 { return float64(data[i]) }
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, t.DType()))
	}
}

// Cast converts a tensor to a different data type. Float to int
// truncates toward zero. Bool tensors cannot be cast.
func (c *Backend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}
	if x.DType() == tensor.Bool || dtype == tensor.Bool {
		panic("cast: bool tensors cannot be cast")
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, c.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	get := elementGetter("cast", x)
	n := x.NumElements()

	switch dtype {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i := 0; i < n; i++ {
			dst[i] = float32(get(i))
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		for i := 0; i < n; i++ {
			dst[i] = get(i)
		}
	case tensor.Int32:
		dst := result.AsInt32()
		for i := 0; i < n; i++ {
			dst[i] = int32(get(i))
		}
	case tensor.Int64:
		dst := result.AsInt64()
		for i := 0; i < n; i++ {
			dst[i] = int64(get(i))
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", dtype))
	}

	return result
}
