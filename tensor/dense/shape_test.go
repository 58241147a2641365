package dense

import "testing"

func TestShapeElems(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{name: "rank0", shape: nil, want: 1},
		{name: "vector", shape: Shape{5}, want: 5},
		{name: "matrix", shape: Shape{2, 3}, want: 6},
		{name: "zero extent", shape: Shape{4, 0, 2}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Elems(); got != tt.want {
				t.Fatalf("Elems() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShapeStrides(t *testing.T) {
	got := Shape{2, 3, 4}.Strides()
	want := []int{12, 4, 1}
	if len(got) != len(want) {
		t.Fatalf("Strides() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Strides() = %v, want %v", got, want)
		}
	}

	if Shape(nil).Strides() != nil {
		t.Fatal("rank-0 strides must be nil")
	}
}

func TestShapeEqualClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	if !s.Equal(c) {
		t.Fatal("clone must equal original")
	}
	c[0] = 9
	if s[0] != 2 {
		t.Fatal("clone must be independent")
	}
	if s.Equal(Shape{2, 3, 1}) || s.Equal(Shape{3, 2}) {
		t.Fatal("Equal must compare rank and extents")
	}
}
