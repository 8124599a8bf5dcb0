package kdtree

import (
	"fmt"
	"math"
)

// Tolerance is the absolute tolerance used for coordinate equality and for
// breaking ties between axis spreads.
const Tolerance = 1e-8

// Axis identifies a splitting dimension.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

// Point is a photon sample: a position and the incoming direction angles.
type Point struct {
	X, Y, Z    float64
	Phi, Theta float64
}

// Coord returns the coordinate of p along axis a.
func (p Point) Coord(a Axis) float64 {
	switch a {
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	default:
		return p.X
	}
}

// Equal reports whether p and q occupy the same position within Tolerance.
// Direction angles are not compared.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) < Tolerance &&
		math.Abs(p.Y-q.Y) < Tolerance &&
		math.Abs(p.Z-q.Z) < Tolerance
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}
