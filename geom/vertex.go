package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the squared-distance tolerance used by AlmostEqual.
const Epsilon = 0.01

// Vertex is an immutable point in 3D space.
type Vertex struct {
	Position mgl64.Vec3
}

// NewVertex builds a Vertex from its coordinates.
func NewVertex(x, y, z float64) Vertex {
	return Vertex{Position: mgl64.Vec3{x, y, z}}
}

// X, Y and Z return the individual coordinates.
func (v Vertex) X() float64 { return v.Position[0] }
func (v Vertex) Y() float64 { return v.Position[1] }
func (v Vertex) Z() float64 { return v.Position[2] }

// String renders the vertex as "(x, y, z)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.Position[0], v.Position[1], v.Position[2])
}

// DistanceSq returns the squared Euclidean distance between a and b.
func DistanceSq(a, b Vertex) float64 {
	d := a.Position.Sub(b.Position)

	return d.Dot(d)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vertex) float64 {
	return math.Sqrt(DistanceSq(a, b))
}

// AlmostEqual reports whether a and b lie within sqrt(Epsilon) of each other.
func AlmostEqual(a, b Vertex) bool {
	return DistanceSq(a, b) < Epsilon
}

// Less orders vertices lexicographically by (x, y, z).
func Less(a, b Vertex) bool {
	for i := 0; i < 3; i++ {
		if a.Position[i] != b.Position[i] {
			return a.Position[i] < b.Position[i]
		}
	}

	return false
}
