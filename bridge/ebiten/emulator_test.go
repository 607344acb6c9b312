package ebiten

import "testing"

func TestFit_Letterbox(t *testing.T) {
	scale, ox, oy := fit(640, 512, 128, 128)
	if scale != 4 || ox != 64 || oy != 0 {
		t.Errorf("got scale=%v offset=(%v,%v), want 4 (64,0)", scale, ox, oy)
	}
}

func TestToConsole(t *testing.T) {
	scale, ox, oy := fit(640, 512, 128, 128)

	tests := []struct {
		x, y   int
		cx, cy int
	}{
		{64, 0, 0, 0},
		{67, 3, 0, 0},
		{68, 4, 1, 1},
		{575, 511, 127, 127},
		{10, 10, -14, 2},
		{63, 0, -1, 0},
	}
	for _, tt := range tests {
		cx, cy := toConsole(tt.x, tt.y, scale, ox, oy)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("(%d,%d): got (%d,%d), want (%d,%d)", tt.x, tt.y, cx, cy, tt.cx, tt.cy)
		}
	}

	if cx, cy := toConsole(5, 5, 0, 0, 0); cx != -1 || cy != -1 {
		t.Errorf("zero scale: got (%d,%d)", cx, cy)
	}
}
