package cpu_test

import (
	"testing"

	"github.com/sprout-ml/sprout/internal/backend/cpu"
	"github.com/sprout-ml/sprout/internal/tensor"
)

func TestReshape(t *testing.T) {
	b := cpu.New()
	x := tensor.Arange[float32](0, 6, b)

	m := x.Reshape(2, 3)
	if !m.Shape().Equal(tensor.Shape{2, 3}) {
		t.Fatalf("Reshape shape = %v, want {2,3}", m.Shape())
	}
	if m.At(1, 0) != 3 {
		t.Errorf("reshaped[1,0] = %v, want 3", m.At(1, 0))
	}
}

func TestReshapeElementCountMismatchPanics(t *testing.T) {
	b := cpu.New()
	x := tensor.Zeros[float32](tensor.Shape{6}, b)

	defer func() {
		if recover() == nil {
			t.Error("Reshape(4) of 6 elements did not panic")
		}
	}()
	x.Reshape(4)
}

func TestTransposeDefaultReversesAxes(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, b)

	xt := x.Transpose()
	if !xt.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Transpose shape = %v, want {3,2}", xt.Shape())
	}
	assertFloats(t, xt.Data(), []float32{1, 4, 2, 5, 3, 6}, 0, "Transpose")
}

func TestTransposeExplicitAxes(t *testing.T) {
	b := cpu.New()
	x := tensor.Arange[float32](0, 24, b).Reshape(2, 3, 4)

	p := x.Transpose(1, 0, 2)
	if !p.Shape().Equal(tensor.Shape{3, 2, 4}) {
		t.Fatalf("Transpose(1,0,2) shape = %v, want {3,2,4}", p.Shape())
	}
	if p.At(2, 1, 3) != x.At(1, 2, 3) {
		t.Errorf("permuted[2,1,3] = %v, want %v", p.At(2, 1, 3), x.At(1, 2, 3))
	}
}

func TestTransposeDoubleIsIdentity(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, b)

	back := x.Transpose().Transpose()
	assertFloats(t, back.Data(), x.Data(), 0, "Transpose twice")
}

func TestUnsqueezeSqueeze(t *testing.T) {
	b := cpu.New()
	x := tensor.Ones[float32](tensor.Shape{3}, b)

	up := x.Unsqueeze(0)
	if !up.Shape().Equal(tensor.Shape{1, 3}) {
		t.Fatalf("Unsqueeze(0) shape = %v, want {1,3}", up.Shape())
	}

	tail := x.Unsqueeze(-1)
	if !tail.Shape().Equal(tensor.Shape{3, 1}) {
		t.Fatalf("Unsqueeze(-1) shape = %v, want {3,1}", tail.Shape())
	}

	down := up.Squeeze(0)
	if !down.Shape().Equal(tensor.Shape{3}) {
		t.Fatalf("Squeeze(0) shape = %v, want {3}", down.Shape())
	}
}

func TestSqueezeNonUnitDimPanics(t *testing.T) {
	b := cpu.New()
	x := tensor.Zeros[float32](tensor.Shape{2, 3}, b)

	defer func() {
		if recover() == nil {
			t.Error("Squeeze of size-2 dim did not panic")
		}
	}()
	x.Squeeze(0)
}

func TestExpand(t *testing.T) {
	b := cpu.New()
	col := fromSlice(t, []float32{1, 2, 3}, tensor.Shape{3, 1}, b)

	e := col.Expand(tensor.Shape{3, 4})
	if !e.Shape().Equal(tensor.Shape{3, 4}) {
		t.Fatalf("Expand shape = %v, want {3,4}", e.Shape())
	}
	assertFloats(t, e.Data(), []float32{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
	}, 0, "Expand")
}

func TestNarrow(t *testing.T) {
	b := cpu.New()
	x := tensor.Arange[float32](0, 12, b).Reshape(3, 4)

	cols := x.Narrow(1, 1, 2)
	if !cols.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Narrow shape = %v, want {3,2}", cols.Shape())
	}
	assertFloats(t, cols.Data(), []float32{1, 2, 5, 6, 9, 10}, 0, "Narrow(1,1,2)")
}

func TestNarrowOutOfBoundsPanics(t *testing.T) {
	b := cpu.New()
	x := tensor.Zeros[float32](tensor.Shape{3, 4}, b)

	defer func() {
		if recover() == nil {
			t.Error("Narrow past the end did not panic")
		}
	}()
	x.Narrow(0, 2, 5)
}

func TestWhereBroadcast(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 5, 3, 8}, tensor.Shape{4}, b)
	threshold := fromSlice(t, []float32{4}, tensor.Shape{1}, b)

	mask := x.Greater(threshold)
	capped := tensor.Where(mask, threshold.Expand(tensor.Shape{4}), x)
	assertFloats(t, capped.Data(), []float32{1, 4, 3, 4}, 0, "Where clamp")
}

func TestGreaterLower(t *testing.T) {
	b := cpu.New()
	x := fromSlice(t, []float32{1, 5}, tensor.Shape{2}, b)
	y := fromSlice(t, []float32{3, 3}, tensor.Shape{2}, b)

	gt := x.Greater(y).Data()
	lt := x.Lower(y).Data()
	if gt[0] || !gt[1] {
		t.Errorf("Greater = %v, want [false true]", gt)
	}
	if !lt[0] || lt[1] {
		t.Errorf("Lower = %v, want [true false]", lt)
	}
}
