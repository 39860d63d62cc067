package cpu_test

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sprout-ml/sprout/internal/backend/cpu"
	"github.com/sprout-ml/sprout/internal/tensor"
)

func fromSlice(t *testing.T, data []float32, shape tensor.Shape, b *cpu.Backend) *tensor.Tensor[float32, *cpu.Backend] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, b)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	return x
}

func assertFloats(t *testing.T, got, want []float32, tol float64, msg string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length %d, want %d", msg, len(got), len(want))
	}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > tol {
			t.Fatalf("%s: element %d = %v, want %v", msg, i, got[i], want[i])
		}
	}
}

// Elementwise

func TestAddSameShape(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 2, 3}, tensor.Shape{3}, b)
	y := fromSlice(t, []float32{10, 20, 30}, tensor.Shape{3}, b)

	assertFloats(t, x.Add(y).Data(), []float32{11, 22, 33}, 0, "Add")
}

func TestElementwiseBroadcast(t *testing.T) {
	b := cpu.New()
	col := fromSlice(t, []float32{0, 10, 20}, tensor.Shape{3, 1}, b)
	row := fromSlice(t, []float32{1, 2, 3, 4}, tensor.Shape{1, 4}, b)

	sum := col.Add(row)
	if !sum.Shape().Equal(tensor.Shape{3, 4}) {
		t.Fatalf("broadcast shape = %v, want {3,4}", sum.Shape())
	}
	assertFloats(t, sum.Data(), []float32{
		1, 2, 3, 4,
		11, 12, 13, 14,
		21, 22, 23, 24,
	}, 0, "broadcast add")
}

func TestMulVectorAcrossMatrix(t *testing.T) {
	b := cpu.New()
	m := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, b)
	v := fromSlice(t, []float32{10, 100, 1000}, tensor.Shape{3}, b)

	assertFloats(t, m.Mul(v).Data(), []float32{10, 200, 3000, 40, 500, 6000}, 0, "Mul broadcast")
}

func TestSubDivInt(t *testing.T) {
	b := cpu.New()
	x, err := tensor.FromSlice([]int32{10, 20, 30}, tensor.Shape{3}, b)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	y, err := tensor.FromSlice([]int32{3, 4, 5}, tensor.Shape{3}, b)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	sub := x.Sub(y).Data()
	div := x.Div(y).Data()
	wantSub := []int32{7, 16, 25}
	wantDiv := []int32{3, 5, 6}
	for i := range sub {
		if sub[i] != wantSub[i] {
			t.Errorf("Sub[%d] = %d, want %d", i, sub[i], wantSub[i])
		}
		if div[i] != wantDiv[i] {
			t.Errorf("Div[%d] = %d, want %d", i, div[i], wantDiv[i])
		}
	}
}

func TestAddDTypeMismatchPanics(t *testing.T) {
	b := cpu.New()
	f, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
	i, _ := tensor.NewRaw(tensor.Shape{2}, tensor.Int32, tensor.CPU)

	defer func() {
		if recover() == nil {
			t.Error("Add with mismatched dtypes did not panic")
		}
	}()
	b.Add(f, i)
}

// Scalar ops

func TestScalarOps(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 2, 4}, tensor.Shape{3}, b)

	assertFloats(t, x.AddScalar(1).Data(), []float32{2, 3, 5}, 0, "AddScalar")
	assertFloats(t, x.SubScalar(1).Data(), []float32{0, 1, 3}, 0, "SubScalar")
	assertFloats(t, x.MulScalar(2).Data(), []float32{2, 4, 8}, 0, "MulScalar")
	assertFloats(t, x.DivScalar(2).Data(), []float32{0.5, 1, 2}, 0, "DivScalar")
}

// Math ops

func TestUnaryMath(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 4, 9}, tensor.Shape{3}, b)

	assertFloats(t, x.Neg().Data(), []float32{-1, -4, -9}, 0, "Neg")
	assertFloats(t, x.Sqrt().Data(), []float32{1, 2, 3}, 1e-6, "Sqrt")
	assertFloats(t, x.Pow(2).Data(), []float32{1, 16, 81}, 1e-4, "Pow")

	e := fromSlice(t, []float32{0, 1}, tensor.Shape{2}, b)
	assertFloats(t, e.Exp().Data(), []float32{1, float32(math.E)}, 1e-6, "Exp")
	assertFloats(t, e.Exp().Log().Data(), []float32{0, 1}, 1e-6, "Log of Exp")
}

func TestReLU(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{-2, -0.5, 0, 3}, tensor.Shape{4}, b)
	assertFloats(t, x.ReLU().Data(), []float32{0, 0, 0, 3}, 0, "ReLU")
}

// MatMul, checked against gonum

func TestMatMulAgainstGonum(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(7))

	const m, k, n = 5, 4, 6
	aData := make([]float32, m*k)
	bData := make([]float32, k*n)
	aDense := mat.NewDense(m, k, nil)
	bDense := mat.NewDense(k, n, nil)

	for i := range aData {
		v := rng.Float64()*2 - 1
		aData[i] = float32(v)
		aDense.Set(i/k, i%k, float64(aData[i]))
	}
	for i := range bData {
		v := rng.Float64()*2 - 1
		bData[i] = float32(v)
		bDense.Set(i/n, i%n, float64(bData[i]))
	}

	x := fromSlice(t, aData, tensor.Shape{m, k}, b)
	y := fromSlice(t, bData, tensor.Shape{k, n}, b)
	got := x.MatMul(y)

	if !got.Shape().Equal(tensor.Shape{m, n}) {
		t.Fatalf("MatMul shape = %v, want {%d,%d}", got.Shape(), m, n)
	}

	var want mat.Dense
	want.Mul(aDense, bDense)

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(float64(got.At(i, j))-want.At(i, j)) > 1e-5 {
				t.Fatalf("MatMul[%d,%d] = %v, gonum says %v", i, j, got.At(i, j), want.At(i, j))
			}
		}
	}
}

func TestMatMulShapeMismatchPanics(t *testing.T) {
	b := cpu.New()
	x := tensor.Zeros[float32](tensor.Shape{2, 3}, b)
	y := tensor.Zeros[float32](tensor.Shape{4, 5}, b)

	defer func() {
		if recover() == nil {
			t.Error("MatMul with mismatched inner dims did not panic")
		}
	}()
	x.MatMul(y)
}

// Randn moments, checked with gonum/stat

func TestRandnMoments(t *testing.T) {
	b := cpu.New()
	rng := rand.New(rand.NewSource(1))

	const n = 20000
	x := tensor.RandnFrom[float64](tensor.Shape{n}, rng, b)

	samples := x.Data()
	mean := stat.Mean(samples, nil)
	sd := stat.StdDev(samples, nil)

	if math.Abs(mean) > 0.03 {
		t.Errorf("Randn mean = %v, want ~0", mean)
	}
	if math.Abs(sd-1) > 0.03 {
		t.Errorf("Randn stddev = %v, want ~1", sd)
	}
}
