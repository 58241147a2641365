package dense

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-tensor/tensor/check"
)

func TestNewFloat64(t *testing.T) {
	a, err := NewFloat64(2, 3)
	if err != nil {
		t.Fatalf("NewFloat64: %v", err)
	}
	if a.Rank() != 2 || a.Len() != 6 {
		t.Fatalf("rank=%d len=%d, want 2 and 6", a.Rank(), a.Len())
	}
	if a.DType() != DTFloat64 {
		t.Fatalf("DType() = %v, want DTFloat64", a.DType())
	}
	for _, v := range a.Data() {
		if v != 0 {
			t.Fatal("new array must be zero-filled")
		}
	}
}

func TestNewNegativeExtent(t *testing.T) {
	_, err := NewInt64(2, -1)
	if !errors.Is(err, check.ErrInvalidArgument) {
		t.Fatalf("NewInt64(2,-1) = %v, want invalid argument", err)
	}
}

func TestFromShapeMismatch(t *testing.T) {
	_, err := FromFloat64([]float64{1, 2, 3}, 2, 2)
	if !errors.Is(err, ErrShapeData) {
		t.Fatalf("FromFloat64 = %v, want ErrShapeData", err)
	}
}

func TestAtSetAt(t *testing.T) {
	a, err := FromInt64([]int64{1, 2, 3, 4, 5, 6}, 2, 3)
	if err != nil {
		t.Fatalf("FromInt64: %v", err)
	}

	// Row-major layout: element (1,2) is the last one.
	v, err := a.At(1, 2)
	if err != nil || v != 6 {
		t.Fatalf("At(1,2) = %d, %v, want 6", v, err)
	}

	if err := a.SetAt(42, 0, 1); err != nil {
		t.Fatalf("SetAt: %v", err)
	}
	if a.Data()[1] != 42 {
		t.Fatalf("Data()[1] = %d after SetAt(42,0,1), want 42", a.Data()[1])
	}
}

func TestAtErrors(t *testing.T) {
	a, _ := NewFloat64(2, 3)

	if _, err := a.At(0); !errors.Is(err, ErrIndex) {
		t.Fatalf("wrong arity: %v, want ErrIndex", err)
	}
	if _, err := a.At(2, 0); !errors.Is(err, ErrIndex) {
		t.Fatalf("out of range: %v, want ErrIndex", err)
	}
	if _, err := a.At(0, -1); !errors.Is(err, ErrIndex) {
		t.Fatalf("negative index: %v, want ErrIndex", err)
	}
}

func TestZeroDimItem(t *testing.T) {
	f, _ := FromFloat64([]float64{5})
	v, err := f.Item()
	if err != nil || v != 5 {
		t.Fatalf("Float64.Item() = %v, %v, want 5", v, err)
	}

	i, _ := FromInt64([]int64{7})
	v, err = i.Item()
	if err != nil || v != 7 {
		t.Fatalf("Int64.Item() = %v, %v, want 7", v, err)
	}

	o, _ := FromObject([]any{3.5})
	v, err = o.Item()
	if err != nil || v != 3.5 {
		t.Fatalf("Object.Item() = %v, %v, want 3.5", v, err)
	}
}

func TestItemNotZeroDim(t *testing.T) {
	a, _ := NewFloat64(3)
	if _, err := a.Item(); !errors.Is(err, ErrNotZeroDim) {
		t.Fatalf("rank-1 Item() = %v, want ErrNotZeroDim", err)
	}
}

func TestObjectItemNotNumeric(t *testing.T) {
	o, _ := FromObject([]any{"five"})
	if _, err := o.Item(); !errors.Is(err, ErrNotNumeric) {
		t.Fatalf("Item() = %v, want ErrNotNumeric", err)
	}
}

func TestDTypeStringSize(t *testing.T) {
	tests := []struct {
		dt   DType
		name string
		size int
	}{
		{DTObject, "object", 16},
		{DTInt64, "int64", 8},
		{DTFloat64, "float64", 8},
	}
	for _, tt := range tests {
		if tt.dt.String() != tt.name {
			t.Fatalf("String() = %q, want %q", tt.dt.String(), tt.name)
		}
		if tt.dt.Size() != tt.size {
			t.Fatalf("%s Size() = %d, want %d", tt.name, tt.dt.Size(), tt.size)
		}
	}
}
