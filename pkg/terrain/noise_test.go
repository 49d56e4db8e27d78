package terrain

import "testing"

func TestUnitIntervalClampsToZeroOne(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-1, 0},
		{-5, 0},
		{0, 0.5},
		{1, 1},
		{5, 1},
	}
	for _, c := range cases {
		if got := unitInterval(c.in); got != c.want {
			t.Errorf("unitInterval(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestBlendAtExtremesPicksEndpoint(t *testing.T) {
	if got := blend(1, 2, -1); got != 1 {
		t.Errorf("blend(1,2,-1) = %v, want 1 (control=-1 selects a)", got)
	}
	if got := blend(1, 2, 1); got != 2 {
		t.Errorf("blend(1,2,1) = %v, want 2 (control=1 selects b)", got)
	}
}

func TestExponentPreservesSign(t *testing.T) {
	if got := exponent(0.5, 2); got <= 0 {
		t.Errorf("exponent(0.5,2) = %v, want > 0", got)
	}
	if got := exponent(-0.5, 2); got >= 0 {
		t.Errorf("exponent(-0.5,2) = %v, want < 0", got)
	}
}

func TestFBMLayerSampleIsDeterministic(t *testing.T) {
	layer := newFBMLayer(99, 0.5, 0.5, 2.0, 4)
	a := layer.sample(12.5, -3.25)
	b := layer.sample(12.5, -3.25)
	if a != b {
		t.Errorf("sample(12.5,-3.25) = %v then %v, want equal", a, b)
	}
}

func TestFBMLayerDifferentSeedsDiffer(t *testing.T) {
	a := newFBMLayer(1, 0.5, 0.5, 2.0, 4).sample(10, 10)
	b := newFBMLayer(2, 0.5, 0.5, 2.0, 4).sample(10, 10)
	if a == b {
		t.Error("two different seeds sampled an identical value")
	}
}
