package kdtree

import "github.com/meshtrace/kdtree/geometry"

// intersectTriangle implements the Möller–Trumbore ray-triangle
// intersection test. It returns the signed distance along the ray and
// true on a hit; on a miss (or a hit behind the origin) it returns
// false and the distance is meaningless.
//
// u and v (not returned) are the barycentric coordinates of the hit;
// they are validated here (0<=u<=1, 0<=v<=1, u+v<=1) but not returned
// since no caller needs them, only the hit distance and position.
func intersectTriangle(tri geometry.Triangle, ray geometry.Ray, epsilonParallel float64) (distance float64, hit bool) {
	e1 := tri.B.Sub(tri.A)
	e2 := tri.C.Sub(tri.A)
	h := ray.Direction.Cross(e2)
	a := e1.Dot(h)
	if a > -epsilonParallel && a < epsilonParallel {
		return 0, false // ray parallel to the triangle's plane
	}

	f := 1.0 / a
	s := ray.Origin.Sub(tri.A)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * e2.Dot(q)
	if t <= epsilonParallel {
		return 0, false // at or behind the origin
	}
	return t, true
}
