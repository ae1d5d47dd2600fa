package physics

import (
	"math"
	"slices"
	"testing"
)

func TestWithinIsStrict(t *testing.T) {
	if Within(0, 0, 3, 4, 5) {
		t.Fatal("points exactly at the limit must not count as within")
	}
	if !Within(0, 0, 3, 4, 5.001) {
		t.Fatal("points just inside the limit must count as within")
	}
}

func TestAngleToAndAdvance(t *testing.T) {
	angle := AngleTo(10, 10, 10, 20)
	if math.Abs(angle-math.Pi/2) > 1e-9 {
		t.Fatalf("AngleTo = %v, want pi/2", angle)
	}
	x, y := Advance(10, 10, angle, 4)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-14) > 1e-9 {
		t.Fatalf("Advance = (%v,%v), want (10,14)", x, y)
	}
}

func TestInRect(t *testing.T) {
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{512, 512, true},
		{512.01, 10, false},
		{-0.01, 10, false},
		{10, 513, false},
	}
	for _, tt := range tests {
		if got := InRect(tt.x, tt.y, 512, 512); got != tt.want {
			t.Errorf("InRect(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSpatialGridQueryAround(t *testing.T) {
	g := NewSpatialGrid(100, 100, 10)
	g.Insert(5, 5, 0)
	g.Insert(15, 15, 1)
	g.Insert(55, 55, 2)
	g.Insert(-20, 200, 3) // clamped to bottom-left cell

	var found []int
	g.QueryAround(5, 5, func(i int) bool {
		found = append(found, i)
		return false
	})
	slices.Sort(found)
	if !slices.Equal(found, []int{0, 1}) {
		t.Fatalf("QueryAround(5,5) = %v, want [0 1]", found)
	}

	found = found[:0]
	g.QueryAround(0, 99, func(i int) bool {
		found = append(found, i)
		return false
	})
	if !slices.Equal(found, []int{3}) {
		t.Fatalf("QueryAround(0,99) = %v, want [3]", found)
	}

	g.Clear()
	g.QueryAround(5, 5, func(i int) bool {
		t.Fatalf("unexpected item %d after Clear", i)
		return true
	})
}

func TestSpatialGridStopsEarly(t *testing.T) {
	g := NewSpatialGrid(30, 30, 10)
	for i := range 5 {
		g.Insert(12, 12, i)
	}
	calls := 0
	g.QueryAround(12, 12, func(int) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
