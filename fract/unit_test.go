package fract

import "testing"

func TestToFloat64(t *testing.T) {
	tests := []struct {
		in  Unit
		out float64
	}{
		{0, 0}, {64, 1}, {32, 0.5}, {-32, -0.5},
		{1, 1.0/64.0}, {-2, -2.0/64.0}, {96, 1.5},
		{MinUnit, MinFloat64}, {MaxUnit, MaxFloat64},
	}

	for i, test := range tests {
		out := test.in.ToFloat64()
		if out != test.out {
			t.Fatalf("test #%d: in %d expected out %f, but got %f", i, test.in, test.out, out)
		}
	}
}

func TestFromFloat64Up(t *testing.T) {
	tests := []struct {
		in  float64
		out Unit
	}{
		{0, 0}, {1, 64}, {0.5, 32}, {-0.5, -32},
		{1.0/128.0, 1}, {-1.0/128.0, 0}, {0.3, 19}, {-0.3, -19},
		{32, 2048}, {32.001, 2048}, {12.5, 800},
	}

	for i, test := range tests {
		out := FromFloat64Up(test.in)
		if out != test.out {
			t.Fatalf("test #%d: in %f expected out %d, but got %d", i, test.in, test.out, out)
		}
	}
}

func TestFromFloat64Down(t *testing.T) {
	tests := []struct {
		in  float64
		out Unit
	}{
		{0, 0}, {1, 64}, {1.0/128.0, 0}, {-1.0/128.0, -1}, {0.3, 19},
	}

	for i, test := range tests {
		out := FromFloat64Down(test.in)
		if out != test.out {
			t.Fatalf("test #%d: in %f expected out %d, but got %d", i, test.in, test.out, out)
		}
	}
}

func TestIntConversions(t *testing.T) {
	tests := []struct {
		in Unit
		floor, ceil, halfUp int
	}{
		{0, 0, 0, 0}, {64, 1, 1, 1}, {32, 0, 1, 1}, {31, 0, 1, 0},
		{-32, -1, 0, 0}, {-33, -1, 0, -1}, {-64, -1, -1, -1}, {100, 1, 2, 2},
	}

	for i, test := range tests {
		if test.in.ToIntFloor() != test.floor {
			t.Fatalf("test #%d: floor(%d) expected %d, got %d", i, test.in, test.floor, test.in.ToIntFloor())
		}
		if test.in.ToIntCeil() != test.ceil {
			t.Fatalf("test #%d: ceil(%d) expected %d, got %d", i, test.in, test.ceil, test.in.ToIntCeil())
		}
		if test.in.ToInt() != test.halfUp {
			t.Fatalf("test #%d: halfUp(%d) expected %d, got %d", i, test.in, test.halfUp, test.in.ToInt())
		}
	}
}

func TestMulAndScale(t *testing.T) {
	if FromInt(3).Mul(FromInt(4)) != FromInt(12) {
		t.Fatalf("3*4 != 12")
	}
	if FromInt(3).Mul(32) != 96 {
		t.Fatalf("3*0.5 != 1.5")
	}
	if FromInt(10).Scale(1.5) != FromInt(15) {
		t.Fatalf("10*1.5 != 15")
	}
}

func TestRectExpand(t *testing.T) {
	rect := UnitsToRect(64, 64, 64, 64)
	rect = rect.Expand(IntsToPoint(3, -1))
	rect = rect.Expand(IntsToPoint(-2, 2))
	want := UnitsToRect(FromInt(-2), FromInt(-1), FromInt(3), FromInt(2))
	if rect != want {
		t.Fatalf("expected %s, got %s", want, rect)
	}
	if rect.ImageRect().Dx() != 5 || rect.ImageRect().Dy() != 3 {
		t.Fatalf("unexpected image rect %v", rect.ImageRect())
	}
	if !(Rect{}).Union(rect).Min.X.IsWhole() {
		t.Fatalf("union lost whole coordinates")
	}
}

func TestUnitString(t *testing.T) {
	if Unit(-96).String() != "-1.5" { t.Fatalf("expected -1.5, got %s", Unit(-96).String()) }
	if FromInt(32).String() != "32" { t.Fatalf("expected 32, got %s", FromInt(32).String()) }
}
