// Package geometry provides the fixed-arity value types shared by the
// kdtree package: a three-component vector, a triangle, a ray, and a
// ray-hit record. Nothing here allocates on the heap beyond what the
// caller already allocated for the backing vertex data.
package geometry
