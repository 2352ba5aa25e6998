package breakout

import "testing"

func TestBoxOverlap(t *testing.T) {
	brick := Box{X: 448, Y: 64, W: 64, H: 32}
	const r = 8

	tests := []struct {
		name   string
		bx, by float64
		want   bool
	}{
		{"inside", 470, 70, true},
		{"left reach is one diameter", 432, 70, true},
		{"just past left reach", 431.9, 70, false},
		{"right edge inclusive", 512, 70, true},
		{"just past right edge", 512.1, 70, false},
		{"top reach is one diameter", 470, 48, true},
		{"bottom edge inclusive", 470, 96, true},
		{"below", 470, 96.1, false},
		{"corner touch", 512, 96, true},
		{"far corner touch", 432, 48, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoxOverlap(tt.bx, tt.by, r, brick); got != tt.want {
				t.Errorf("BoxOverlap(%v, %v) = %v, want %v", tt.bx, tt.by, got, tt.want)
			}
		})
	}
}

func TestWallCrossed(t *testing.T) {
	const r = 8
	tests := []struct {
		name   string
		bx, by float64
		line   float64
		dir    Direction
		want   bool
	}{
		{"north at line", 500, 32, 32, North, true},
		{"north below line", 500, 32.5, 32, North, false},
		{"east at line", 416, 300, 416, East, true},
		{"east inside", 417, 300, 416, East, false},
		{"west far edge at line", 848, 300, 864, West, true},
		{"west inside", 847, 300, 864, West, false},
		{"south far edge at line", 600, 704, 720, South, true},
		{"south inside", 600, 703, 720, South, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WallCrossed(tt.bx, tt.by, r, tt.line, tt.dir); got != tt.want {
				t.Errorf("WallCrossed(%v, %v, %v, %s) = %v, want %v", tt.bx, tt.by, tt.line, tt.dir, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	brick := Box{X: 448, Y: 64, W: 64, H: 32}
	const r = 8

	tests := []struct {
		name   string
		bx, by float64
		want   Hit
	}{
		{"from above", 470, 50, HitFace},
		{"from below", 470, 90, HitFace},
		{"top face on the edge", 440, 56, HitFace},
		{"from the left", 436, 70, HitSide},
		{"from the right", 506, 70, HitSide},
		{"corner above left", 436, 50, HitCorner},
		{"corner below right", 506, 92, HitCorner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.bx, tt.by, r, brick); got != tt.want {
				t.Errorf("Classify(%v, %v) = %s, want %s", tt.bx, tt.by, got, tt.want)
			}
		})
	}
}

func TestBoxOverlapAtRectCorner(t *testing.T) {
	for _, r := range []float64{1, 8, 20} {
		b := Box{X: 100, Y: 50, W: 64, H: 32}
		if !BoxOverlap(b.X, b.Y, r, b) {
			t.Errorf("ball at the rect's top-left with r=%v reports no overlap", r)
		}
	}
}
