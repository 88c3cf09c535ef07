package identified

import (
	"slices"
	"testing"
)

func TestValuesOrder(t *testing.T) {
	v := intVec(3, 1, 2)
	var got []int
	for e := range v.Values() {
		got = append(got, e)
	}
	if !slices.Equal(got, []int{3, 1, 2}) {
		t.Fatalf("values = %v", got)
	}
}

func TestValuesRestartable(t *testing.T) {
	v := intVec(1, 2, 3)
	for range 2 {
		got := slices.Collect(v.Values())
		if !slices.Equal(got, []int{1, 2, 3}) {
			t.Fatalf("values = %v", got)
		}
	}
	wantElements(t, v, []int{1, 2, 3})
}

func TestValuesEarlyBreak(t *testing.T) {
	v := intVec(1, 2, 3)
	var got []int
	for e := range v.Values() {
		got = append(got, e)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("values = %v", got)
	}
	// Borrowing iteration never mutates.
	wantElements(t, v, []int{1, 2, 3})
}

func TestAll(t *testing.T) {
	v := intVec(10, 20, 30)
	for i, e := range v.All() {
		if want, _ := v.At(i); e != want {
			t.Fatalf("All yielded (%d, %d), want element %d", i, e, want)
		}
	}
}

func TestDrain(t *testing.T) {
	v := intVec(1, 2, 3)
	got := slices.Collect(v.Drain())
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("drained = %v", got)
	}
	wantElements(t, v, []int{})
}

func TestDrainEarlyBreak(t *testing.T) {
	v := intVec(1, 2, 3, 4)
	var got []int
	for e := range v.Drain() {
		got = append(got, e)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("drained = %v", got)
	}
	// Yielded elements are gone, the tail remains.
	wantElements(t, v, []int{3, 4})
}

func TestDrainEmpty(t *testing.T) {
	v := intVec()
	for range v.Drain() {
		t.Fatal("empty collection should yield nothing")
	}
}
