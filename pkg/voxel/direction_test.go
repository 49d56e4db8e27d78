package voxel

import "testing"

func TestDirectionsReturnsAllSixInOrdinalOrder(t *testing.T) {
	want := [6]Direction{Top, Bottom, Left, Right, Front, Back}
	if got := Directions(); got != want {
		t.Errorf("Directions() = %v, want %v", got, want)
	}
}

func TestDirectionOffsetsAreOpposite(t *testing.T) {
	pairs := []struct{ a, b Direction }{
		{Top, Bottom},
		{Left, Right},
		{Front, Back},
	}
	for _, p := range pairs {
		oa, ob := p.a.offset(), p.b.offset()
		for i := 0; i < 3; i++ {
			if oa[i] != -ob[i] {
				t.Errorf("%v.offset()[%d] = %d, want -%v.offset()[%d] (%d)", p.a, i, oa[i], p.b, i, -ob[i])
			}
		}
	}
}

func TestDirectionVectorMatchesOffset(t *testing.T) {
	for _, d := range directions {
		o := d.offset()
		v := d.Vector()
		if v.X() != float32(o[0]) || v.Y() != float32(o[1]) || v.Z() != float32(o[2]) {
			t.Errorf("%v.Vector() = %v, want (%d,%d,%d)", d, v, o[0], o[1], o[2])
		}
	}
}
