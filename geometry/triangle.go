package geometry

// Triangle is three corner points in R^3. Equality of triangles is by
// identity (their position in a Tree's triangle arena), never by
// value; a Triangle is a plain value type so it can be stored
// contiguously and passed by value.
type Triangle struct {
	A, B, C Vector3
}

// Degenerate reports whether the triangle's corners are colinear (or
// coincident) within tolerance, i.e. it has no well-defined normal.
// Degenerate triangles are not an error: the intersection kernel
// simply never reports a hit against them (spec error-handling: "not
// an error").
func (t Triangle) Degenerate(tolerance float64) bool {
	e1 := t.B.Sub(t.A)
	e2 := t.C.Sub(t.A)
	return e1.Cross(e2).Length() <= tolerance
}

// Ray is a half-line: origin plus direction, bounded by MaxDistance.
// Direction need not be unit length.
type Ray struct {
	Origin      Vector3
	Direction   Vector3
	MaxDistance float64
}

// At returns the point origin + direction*t along the ray.
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// RayHit is the result of a successful nearest-hit query: the index
// of the hit triangle in the Tree's triangle arena, the hit position,
// and the signed distance along the ray at which it occurred.
type RayHit struct {
	TriangleIndex int
	Position      Vector3
	Distance      float64
}
