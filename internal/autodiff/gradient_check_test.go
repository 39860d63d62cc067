package autodiff_test

import (
	"math"
	"testing"

	"github.com/sprout-ml/sprout/internal/autodiff"
	"github.com/sprout-ml/sprout/internal/backend/cpu"
	"github.com/sprout-ml/sprout/internal/tensor"
)

type cpuBackend = *cpu.Backend
type adBackend = *autodiff.Backend[cpuBackend]

// checkGradients compares the recorded gradient of f at xs against a
// central finite difference, element by element. f must reduce its
// input to a scalar.
func checkGradients(t *testing.T, name string, xs []float64, shape tensor.Shape,
	f func(x *tensor.Tensor[float64, adBackend]) *tensor.Tensor[float64, adBackend]) {
	t.Helper()

	backend := autodiff.New(cpu.New())
	tape := backend.Tape()

	x, err := tensor.FromSlice(xs, shape, backend)
	if err != nil {
		t.Fatalf("%s: FromSlice: %v", name, err)
	}

	tape.StartRecording()
	y := f(x)
	tape.StopRecording()

	grad := autodiff.Backward(y).Get(x.Raw())
	if grad == nil {
		t.Fatalf("%s: no gradient for input", name)
	}
	analytic := grad.AsFloat64()

	// eval runs f outside any tape.
	eval := func(vals []float64) float64 {
		plain := autodiff.New(cpu.New())
		in, err := tensor.FromSlice(vals, shape, plain)
		if err != nil {
			t.Fatalf("%s: FromSlice: %v", name, err)
		}
		return f(in).Item()
	}

	const eps = 1e-6
	for i := range xs {
		bumped := make([]float64, len(xs))
		copy(bumped, xs)

		bumped[i] = xs[i] + eps
		plus := eval(bumped)
		bumped[i] = xs[i] - eps
		minus := eval(bumped)

		numeric := (plus - minus) / (2 * eps)
		if math.Abs(analytic[i]-numeric) > 1e-4 {
			t.Errorf("%s: grad[%d] = %v, finite difference says %v", name, i, analytic[i], numeric)
		}
	}
}

func TestGradCheckPolynomial(t *testing.T) {
	checkGradients(t, "x³-2x", []float64{0.5, -1.2, 2.0}, tensor.Shape{3},
		func(x *tensor.Tensor[float64, adBackend]) *tensor.Tensor[float64, adBackend] {
			return x.Pow(3).Sub(x.MulScalar(2)).Sum()
		})
}

func TestGradCheckExpLog(t *testing.T) {
	checkGradients(t, "exp+log", []float64{0.7, 1.3, 2.4}, tensor.Shape{3},
		func(x *tensor.Tensor[float64, adBackend]) *tensor.Tensor[float64, adBackend] {
			return x.Exp().Add(x.Log()).Sum()
		})
}

func TestGradCheckSqrtDiv(t *testing.T) {
	checkGradients(t, "sqrt/x", []float64{1.5, 2.5, 4.0, 9.0}, tensor.Shape{4},
		func(x *tensor.Tensor[float64, adBackend]) *tensor.Tensor[float64, adBackend] {
			return x.Sqrt().Div(x.AddScalar(1)).Sum()
		})
}

func TestGradCheckBroadcastProduct(t *testing.T) {
	checkGradients(t, "broadcast product", []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3},
		func(x *tensor.Tensor[float64, adBackend]) *tensor.Tensor[float64, adBackend] {
			rowMeans := x.MeanDim(1, true) // {2,1}
			return x.Mul(rowMeans).Sum()
		})
}

func TestGradCheckMatMulChain(t *testing.T) {
	checkGradients(t, "matmul chain", []float64{0.3, -0.8, 1.1, 0.4}, tensor.Shape{2, 2},
		func(x *tensor.Tensor[float64, adBackend]) *tensor.Tensor[float64, adBackend] {
			return x.MatMul(x.Transpose()).Sum()
		})
}

func TestGradCheckMeanDim(t *testing.T) {
	checkGradients(t, "mean over dim", []float64{2, 4, 6, 8}, tensor.Shape{2, 2},
		func(x *tensor.Tensor[float64, adBackend]) *tensor.Tensor[float64, adBackend] {
			return x.MeanDim(0, false).Mul(x.MeanDim(0, false)).Sum()
		})
}
