package core

import (
	"math"
	"testing"
)

func TestWrapIndex(t *testing.T) {
	const w, h = 3, 4

	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{3, 4, 0},
		{6, 2, 6},
		{-2, -2, 7},
		{-2456, 562, 7},
		{-5, 0, 1},
	}
	for _, c := range cases {
		if got := WrapIndex(c.x, c.y, w, h); got != c.want {
			t.Errorf("WrapIndex(%d, %d, %d, %d) = %d, want %d", c.x, c.y, w, h, got, c.want)
		}
	}
}

func TestWrapIndexPeriodic(t *testing.T) {
	const w, h = 7, 5
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := WrapIndex(x, y, w, h)
			for _, k := range []int{-3, -1, 1, 2, 10} {
				if got := WrapIndex(x+k*w, y, w, h); got != base {
					t.Fatalf("WrapIndex(%d+%d*%d, %d) = %d, want %d", x, k, w, y, got, base)
				}
				if got := WrapIndex(x, y+k*h, w, h); got != base {
					t.Fatalf("WrapIndex(%d, %d+%d*%d) = %d, want %d", x, y, k, h, got, base)
				}
			}
		}
	}
}

func TestWrapIndexInRange(t *testing.T) {
	const w, h = 3, 4
	for y := -9; y <= 9; y++ {
		for x := -2460; x <= 9; x++ {
			i := WrapIndex(x, y, w, h)
			if i < 0 || i >= w*h {
				t.Fatalf("WrapIndex(%d, %d, %d, %d) = %d, out of range", x, y, w, h, i)
			}
			wx, wy := Wrap(x, y, w, h)
			if i != wy*w+wx {
				t.Fatalf("WrapIndex(%d, %d) = %d, Wrap gives (%d, %d)", x, y, i, wx, wy)
			}
		}
	}
}

func TestClamp32(t *testing.T) {
	if got := Clamp32(-100, 0, 10); got != 0 {
		t.Errorf("Clamp32(-100, 0, 10) = %v, want 0", got)
	}
	if got := Clamp32(100, 0, 10); got != 10 {
		t.Errorf("Clamp32(100, 0, 10) = %v, want 10", got)
	}
	if got := Clamp32(8.56, 0, 10); got != 8.56 {
		t.Errorf("Clamp32(8.56, 0, 10) = %v, want 8.56", got)
	}
}

func TestClamp32Idempotent(t *testing.T) {
	for _, v := range []float32{-5, -0.1, 0, 0.4, 1, 27} {
		once := Clamp32(v, -1, 1)
		if twice := Clamp32(once, -1, 1); twice != once {
			t.Errorf("Clamp32 not idempotent for %v: %v != %v", v, twice, once)
		}
	}
}

func TestClamp32NaN(t *testing.T) {
	nan := float32(math.NaN())
	if got := Clamp32(nan, -1, 1); got != -1 {
		t.Errorf("Clamp32(NaN, -1, 1) = %v, want -1", got)
	}
}

func TestClamp32PanicsOnInvertedBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Clamp32(5, 7, 2) should panic")
		}
	}()
	Clamp32(5, 7, 2)
}

func TestMapRange(t *testing.T) {
	if got := MapRange(0.5, 0, 1, 0, 10); got != 5 {
		t.Errorf("MapRange(0.5, 0, 1, 0, 10) = %v, want 5", got)
	}
	if got := MapRange(0.25, 0.25, 0.75, 0, 1); got != 0 {
		t.Errorf("MapRange at range start = %v, want 0", got)
	}
	if got := MapRange(0.75, 0.25, 0.75, 0, 1); got != 1 {
		t.Errorf("MapRange at range end = %v, want 1", got)
	}
}

func TestLerpByte(t *testing.T) {
	if got := LerpByte(0, 255, 0); got != 0 {
		t.Errorf("LerpByte(0, 255, 0) = %d, want 0", got)
	}
	if got := LerpByte(0, 255, 1); got != 255 {
		t.Errorf("LerpByte(0, 255, 1) = %d, want 255", got)
	}
	// Truncating: 0.5 between 0 and 255 is 127.5 which truncates to 127.
	if got := LerpByte(0, 255, 0.5); got != 127 {
		t.Errorf("LerpByte(0, 255, 0.5) = %d, want 127", got)
	}
}
