package cpu_test

import (
	"testing"

	"github.com/sprout-ml/sprout/internal/backend/cpu"
	"github.com/sprout-ml/sprout/internal/tensor"
)

func TestSumAndMean(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, b)

	s := x.Sum()
	if !s.Shape().Equal(tensor.Shape{}) {
		t.Fatalf("Sum shape = %v, want scalar {}", s.Shape())
	}
	if s.Item() != 21 {
		t.Errorf("Sum = %v, want 21", s.Item())
	}
	if x.Mean().Item() != 3.5 {
		t.Errorf("Mean = %v, want 3.5", x.Mean().Item())
	}
}

func TestSumDim(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, b)

	cols := x.SumDim(0, false)
	if !cols.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("SumDim(0) shape = %v, want {3}", cols.Shape())
	}
	assertFloats(t, cols.Data(), []float32{5, 7, 9}, 0, "SumDim(0)")

	rows := x.SumDim(1, false)
	assertFloats(t, rows.Data(), []float32{6, 15}, 0, "SumDim(1)")

	kept := x.SumDim(1, true)
	if !kept.Shape().Equal(tensor.Shape{2, 1}) {
		t.Fatalf("SumDim(1, keepDim) shape = %v, want {2,1}", kept.Shape())
	}

	// Negative dim counts from the right.
	neg := x.SumDim(-1, false)
	assertFloats(t, neg.Data(), []float32{6, 15}, 0, "SumDim(-1)")
}

func TestMeanDim(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, b)

	assertFloats(t, x.MeanDim(1, false).Data(), []float32{2, 5}, 1e-6, "MeanDim(1)")
	assertFloats(t, x.MeanDim(0, false).Data(), []float32{2.5, 3.5, 4.5}, 1e-6, "MeanDim(0)")
}

func TestSumDimOutOfRangePanics(t *testing.T) {
	b := cpu.New()
	x := tensor.Zeros[float32](tensor.Shape{2, 3}, b)

	defer func() {
		if recover() == nil {
			t.Error("SumDim(2) on 2D tensor did not panic")
		}
	}()
	x.SumDim(2, false)
}

func TestMax(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{-3, 1, -4, 1, -5, 9}, tensor.Shape{6}, b)
	if got := x.Max().Item(); got != 9 {
		t.Errorf("Max = %v, want 9", got)
	}

	allNeg := fromSlice(t, []float32{-3, -1, -4}, tensor.Shape{3}, b)
	if got := allNeg.Max().Item(); got != -1 {
		t.Errorf("Max of negatives = %v, want -1", got)
	}
}

func TestArgmax(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{3, 1, 4, 1, 5, 9}, tensor.Shape{2, 3}, b)

	idx := x.Argmax(1)
	if idx.DType() != tensor.Int32 {
		t.Fatalf("Argmax dtype = %v, want Int32", idx.DType())
	}
	want := []int32{2, 2}
	for i, v := range idx.Data() {
		if v != want[i] {
			t.Errorf("Argmax[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestArgmaxTieGoesToLowestIndex(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{5, 5, 5}, tensor.Shape{1, 3}, b)

	if got := x.Argmax(1).Data()[0]; got != 0 {
		t.Errorf("Argmax on tie = %d, want 0", got)
	}
}
