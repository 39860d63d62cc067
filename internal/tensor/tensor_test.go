package tensor

import (
	"testing"
)

// DType tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Int32, "int32"},
		{Int64, "int64"},
		{Bool, "bool"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%s.String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestInferDataType(t *testing.T) {
	if dt := inferDataType(float32(0)); dt != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", dt)
	}
	if dt := inferDataType(float64(0)); dt != Float64 {
		t.Errorf("inferDataType(float64) = %v, want Float64", dt)
	}
	if dt := inferDataType(int32(0)); dt != Int32 {
		t.Errorf("inferDataType(int32) = %v, want Int32", dt)
	}
	if dt := inferDataType(int64(0)); dt != Int64 {
		t.Errorf("inferDataType(int64) = %v, want Int64", dt)
	}
	if dt := inferDataType(false); dt != Bool {
		t.Errorf("inferDataType(bool) = %v, want Bool", dt)
	}
}

// Shape tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1}, // scalar
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape   Shape
		strides []int
	}{
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{5}, []int{1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.strides) {
			t.Fatalf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.strides)
		}
		for i := range got {
			if got[i] != tt.strides[i] {
				t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.strides)
				break
			}
		}
	}
}

func TestShapeEqualAndClone(t *testing.T) {
	s := Shape{2, 3}
	if !s.Equal(Shape{2, 3}) {
		t.Error("Equal shapes reported unequal")
	}
	if s.Equal(Shape{3, 2}) {
		t.Error("Unequal shapes reported equal")
	}

	c := s.Clone()
	c[0] = 99
	if s[0] != 2 {
		t.Error("Clone shares backing array with original")
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b     Shape
		expected Shape
	}{
		{Shape{3, 1}, Shape{1, 4}, Shape{3, 4}},
		{Shape{2, 3}, Shape{3}, Shape{2, 3}},
		{Shape{2, 3}, Shape{2, 3}, Shape{2, 3}},
		{Shape{5}, Shape{1}, Shape{5}},
		{Shape{4, 1, 6}, Shape{2, 6}, Shape{4, 2, 6}},
	}

	for _, tt := range tests {
		got, _, err := BroadcastShapes(tt.a, tt.b)
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v) error: %v", tt.a, tt.b, err)
			continue
		}
		if !got.Equal(tt.expected) {
			t.Errorf("BroadcastShapes(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestBroadcastShapesIncompatible(t *testing.T) {
	tests := []struct{ a, b Shape }{
		{Shape{3, 2}, Shape{4}},
		{Shape{2, 3}, Shape{2, 4}},
		{Shape{5}, Shape{3}},
	}

	for _, tt := range tests {
		if _, _, err := BroadcastShapes(tt.a, tt.b); err == nil {
			t.Errorf("BroadcastShapes(%v, %v) succeeded, want error", tt.a, tt.b)
		}
	}
}

// RawTensor tests

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	if !raw.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape() = %v, want {2,3}", raw.Shape())
	}
	if raw.DType() != Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}

	data := raw.AsFloat32()
	if len(data) != 6 {
		t.Fatalf("AsFloat32() length = %d, want 6", len(data))
	}
	for i, v := range data {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, 0}, Float32, CPU); err == nil {
		t.Error("NewRaw with zero dimension succeeded, want error")
	}
	if _, err := NewRaw(Shape{-1, 3}, Float32, CPU); err == nil {
		t.Error("NewRaw with negative dimension succeeded, want error")
	}
}

func TestRawTensorCloneIsDeep(t *testing.T) {
	raw, err := NewRaw(Shape{3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	raw.AsFloat32()[0] = 1

	clone := raw.Clone()
	clone.AsFloat32()[0] = 42

	if raw.AsFloat32()[0] != 1 {
		t.Error("Clone shares buffer with original")
	}
}

func TestDetachSharesBufferNewIdentity(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}

	detached := raw.Detach()
	if detached == raw {
		t.Error("Detach returned the same header")
	}

	raw.AsFloat32()[0] = 7
	if detached.AsFloat32()[0] != 7 {
		t.Error("Detach did not share the buffer")
	}
}

func TestAsFloat32WrongDTypePanics(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Int32, CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("AsFloat32 on int32 tensor did not panic")
		}
	}()
	raw.AsFloat32()
}
