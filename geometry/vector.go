package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// Epsilon is the default coordinate-equality tolerance used to
// deduplicate points when building a tree from a vertex buffer.
const Epsilon = 1e-4

// Vector3 is a fixed-arity, copy-cheap R^3 vector. It is built on top
// of github.com/golang/geo's r3.Vector rather than a hand-rolled
// struct, so the arithmetic is exercised by a real vector-math
// library instead of reimplemented here.
type Vector3 struct {
	r3.Vector
}

// NewVector3 constructs a Vector3 from its three components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{r3.Vector{X: x, Y: y, Z: z}}
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.Vector.Add(other.Vector)}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.Vector.Sub(other.Vector)}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v.Vector.Mul(s)}
}

// Dot returns the dot product of v and other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.Vector.Dot(other.Vector)
}

// Cross returns the cross product v x other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{v.Vector.Cross(other.Vector)}
}

// Length returns the Euclidean norm of v.
func (v Vector3) Length() float64 {
	return v.Vector.Norm()
}

// Component returns the coordinate of v on the given axis, where axis
// is in {0, 1, 2} for {X, Y, Z}. r3.Vector has no integer-indexed
// accessor, so the k-d tree's per-axis comparisons go through this
// helper instead.
func (v Vector3) Component(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("geometry: axis out of range [0,2]")
	}
}

// WithComponent returns a copy of v with the given axis set to value.
func (v Vector3) WithComponent(axis int, value float64) Vector3 {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic("geometry: axis out of range [0,2]")
	}
	return v
}

// ApproxEqual reports whether v and other are within tolerance on
// every axis.
func (v Vector3) ApproxEqual(other Vector3, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance &&
		math.Abs(v.Y-other.Y) <= tolerance &&
		math.Abs(v.Z-other.Z) <= tolerance
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Vector3) Vector3 {
	return NewVector3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vector3) Vector3 {
	return NewVector3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))
}
