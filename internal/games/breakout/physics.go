package breakout

// Box is an axis-aligned rectangle anchored at its top-left corner.
type Box struct {
	X, Y, W, H float64
}

// Direction names a playfield wall.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Axis selects a velocity component.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Hit is the kind of contact between the ball and a box.
type Hit int

const (
	HitFace   Hit = iota // top or bottom face
	HitSide              // left or right side
	HitCorner            // neither; both components flip
)

func (h Hit) String() string {
	switch h {
	case HitFace:
		return "face"
	case HitSide:
		return "side"
	default:
		return "corner"
	}
}

// BoxOverlap reports whether a ball whose sprite top-left is (bx, by) with
// radius r touches b. The test is inclusive and spans [b.X-2r, b.X+b.W]
// horizontally, so the ball's sprite may sit up to one diameter left of or
// above the box, but only its corner past the right or bottom edge.
func BoxOverlap(bx, by, r float64, b Box) bool {
	return bx >= b.X-2*r && bx <= b.X+b.W &&
		by >= b.Y-2*r && by <= b.Y+b.H
}

// WallCrossed reports whether the ball has reached a wall line.
// North and East compare the sprite's top-left; South and West compare its
// far edge.
func WallCrossed(bx, by, r, line float64, dir Direction) bool {
	switch dir {
	case North:
		return by <= line
	case South:
		return by >= line-2*r
	case East:
		return bx <= line
	case West:
		return bx >= line-2*r
	default:
		return false
	}
}

// Classify decides how a ball at (bx, by), already stepped back to its
// previous position, met b. It samples the point (bx+r, by+r).
func Classify(bx, by, r float64, b Box) Hit {
	cx, cy := bx+r, by+r
	if faceContact(cx, cy, b) {
		return HitFace
	}
	if sideContact(cx, cy, b) {
		return HitSide
	}
	return HitCorner
}

func faceContact(cx, cy float64, b Box) bool {
	return cx >= b.X && cx <= b.X+b.W && (cy <= b.Y || cy >= b.Y+b.H)
}

func sideContact(cx, cy float64, b Box) bool {
	return cy >= b.Y && cy <= b.Y+b.H && (cx <= b.X || cx >= b.X+b.W)
}

// SideContact reports whether a ball at (bx, by) is level with b and at or
// beyond one of its sides.
func SideContact(bx, by, r float64, b Box) bool {
	return sideContact(bx+r, by+r, b)
}
