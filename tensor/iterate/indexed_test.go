package iterate

import (
	"errors"
	"testing"
)

func TestIndexedOrder(t *testing.T) {
	xs := []string{"a", "b", "c", "d"}

	var gotIdx []int
	var gotVal []string
	err := Indexed(xs, func(i int, v string) error {
		gotIdx = append(gotIdx, i)
		gotVal = append(gotVal, v)
		return nil
	})
	if err != nil {
		t.Fatalf("Indexed() = %v, want nil", err)
	}
	if len(gotIdx) != len(xs) {
		t.Fatalf("body ran %d times, want %d", len(gotIdx), len(xs))
	}
	for i := range xs {
		if gotIdx[i] != i {
			t.Fatalf("index %d: got position %d", i, gotIdx[i])
		}
		if gotVal[i] != xs[i] {
			t.Fatalf("index %d: got element %q, want %q", i, gotVal[i], xs[i])
		}
	}
}

func TestIndexedEmpty(t *testing.T) {
	calls := 0
	err := Indexed(nil, func(i int, v int) error {
		calls++
		return nil
	})
	if err != nil || calls != 0 {
		t.Fatalf("empty sequence: err=%v calls=%d", err, calls)
	}
}

func TestIndexedErrorHalts(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Indexed([]int{10, 20, 30}, func(i int, v int) error {
		calls++
		if i == 1 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Indexed() = %v, want boom unmodified", err)
	}
	if calls != 2 {
		t.Fatalf("body ran %d times after error, want 2", calls)
	}
}
