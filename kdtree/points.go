package kdtree

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/meshtrace/kdtree/geometry"
)

// EpsilonParallel is the default Möller–Trumbore determinant
// threshold below which a ray is treated as parallel to a triangle's
// plane.
const EpsilonParallel = 1e-7

// BuildOptions configures tree construction. The zero value is valid
// and uses the package defaults.
type BuildOptions struct {
	// Epsilon is the coordinate-equality tolerance used to
	// deduplicate shared vertices in BuildFromIndexedMesh. Zero means
	// geometry.Epsilon.
	Epsilon float64

	// EpsilonParallel is the Möller–Trumbore determinant threshold
	// below which a ray is considered parallel to a triangle. Zero
	// means EpsilonParallel.
	EpsilonParallel float64

	// Verbose, if set, causes Log to be called with a line per build
	// stage (mirrors the teacher's NewKDTree debug fmt.Printf and the
	// kdtree-construction benchmark's verbose build stats).
	Verbose bool

	// Log receives verbose build messages. Defaults to a no-op if nil
	// even when Verbose is true, so callers that only set Verbose
	// never crash on a nil func.
	Log func(string)
}

func (o *BuildOptions) epsilon() float64 {
	if o == nil || o.Epsilon == 0 {
		return geometry.Epsilon
	}
	return o.Epsilon
}

func (o *BuildOptions) epsilonParallel() float64 {
	if o == nil || o.EpsilonParallel == 0 {
		return EpsilonParallel
	}
	return o.EpsilonParallel
}

func (o *BuildOptions) log(msg string) {
	if o == nil || !o.Verbose || o.Log == nil {
		return
	}
	o.Log(msg)
}

// point is a unique (within tolerance) vertex position plus the
// triangles it participates in, referenced by index into Tree.triangles.
type point struct {
	position        geometry.Vector3
	triangleIndices []int
}

// gridKey buckets a position onto an epsilon-sized grid so point
// deduplication during BuildFromIndexedMesh doesn't degrade to a full
// O(P^2) scan. Two points within Epsilon of each other on every axis
// lie in the same or an adjacent bucket, so a lookup searches the
// 3x3x3 block of buckets around the query position.
type gridKey [3]int64

func quantize(v geometry.Vector3, epsilon float64) gridKey {
	return gridKey{
		int64(math.Floor(v.X / epsilon)),
		int64(math.Floor(v.Y / epsilon)),
		int64(math.Floor(v.Z / epsilon)),
	}
}

// pointCatalog deduplicates vertex positions by Epsilon equality,
// recording which triangles reference each unique point.
type pointCatalog struct {
	points  []point
	buckets map[gridKey][]int
	epsilon float64
}

func newPointCatalog(epsilon float64) *pointCatalog {
	return &pointCatalog{buckets: make(map[gridKey][]int), epsilon: epsilon}
}

// add records that triangleIndex has a corner at pos, reusing an
// existing point within tolerance if one exists, and returns that
// point's index.
func (c *pointCatalog) add(pos geometry.Vector3, triangleIndex int) int {
	key := quantize(pos, c.epsilon)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				neighbor := gridKey{key[0] + dx, key[1] + dy, key[2] + dz}
				for _, idx := range c.buckets[neighbor] {
					if c.points[idx].position.ApproxEqual(pos, c.epsilon) {
						c.points[idx].triangleIndices = append(c.points[idx].triangleIndices, triangleIndex)
						return idx
					}
				}
			}
		}
	}
	idx := len(c.points)
	c.points = append(c.points, point{position: pos, triangleIndices: []int{triangleIndex}})
	c.buckets[key] = append(c.buckets[key], idx)
	return idx
}

// addDistinct always creates a new point, used by the non-indexed
// triangle-soup path where no deduplication is performed.
func (c *pointCatalog) addDistinct(pos geometry.Vector3, triangleIndex int) int {
	idx := len(c.points)
	c.points = append(c.points, point{position: pos, triangleIndices: []int{triangleIndex}})
	return idx
}

// BuildFromIndexedMesh builds a Tree from a contiguous vertex buffer
// (3 reals per vertex) and a triangle index buffer (3 indices per
// triangle), deduplicating shared vertices by Epsilon equality. An
// empty index buffer is legal and produces a Tree with no root.
func BuildFromIndexedMesh(vertices []float64, indices []uint32, opts *BuildOptions) (*Tree, error) {
	if len(vertices)%3 != 0 {
		return nil, errors.WithMessagef(ErrMalformedVertexBuffer,
			"vertex buffer has length %d, not a multiple of 3", len(vertices))
	}
	if len(indices)%3 != 0 {
		return nil, errors.WithMessagef(ErrMalformedVertexBuffer,
			"index buffer has length %d, not a multiple of 3", len(indices))
	}

	numVertices := len(vertices) / 3
	numTriangles := len(indices) / 3
	opts.log(fmt.Sprintf("buildFromIndexedMesh: vertices=%d triangles=%d", numVertices, numTriangles))

	triangles := make([]geometry.Triangle, numTriangles)
	for ti := 0; ti < numTriangles; ti++ {
		var corners [3]geometry.Vector3
		for c := 0; c < 3; c++ {
			vi := indices[ti*3+c]
			if int(vi) >= numVertices {
				return nil, errors.WithMessagef(ErrIndexOutOfRange,
					"triangle %d corner %d references vertex %d, but only %d vertices exist", ti, c, vi, numVertices)
			}
			corners[c] = geometry.NewVector3(
				vertices[int(vi)*3+0],
				vertices[int(vi)*3+1],
				vertices[int(vi)*3+2],
			)
		}
		triangles[ti] = geometry.Triangle{A: corners[0], B: corners[1], C: corners[2]}
	}

	catalog := newPointCatalog(opts.epsilon())
	for ti, tri := range triangles {
		catalog.add(tri.A, ti)
		catalog.add(tri.B, ti)
		catalog.add(tri.C, ti)
	}

	return newTree(triangles, catalog.points, opts), nil
}

// BuildFromTriangleSoup builds a Tree from a contiguous vertex buffer
// where every 9 consecutive reals form one triangle's three corners.
// No deduplication is performed: every triangle corner becomes its
// own Point, which is slower downstream than BuildFromIndexedMesh
// because shared vertices yield duplicate points and duplicate
// intersection work.
func BuildFromTriangleSoup(vertices []float64, opts *BuildOptions) (*Tree, error) {
	if len(vertices)%9 != 0 {
		return nil, errors.WithMessagef(ErrMalformedVertexBuffer,
			"triangle-soup vertex buffer has length %d, not a multiple of 9", len(vertices))
	}

	numTriangles := len(vertices) / 9
	opts.log(fmt.Sprintf("buildFromTriangleSoup: triangles=%d", numTriangles))

	triangles := make([]geometry.Triangle, numTriangles)
	catalog := newPointCatalog(opts.epsilon())
	for ti := 0; ti < numTriangles; ti++ {
		base := ti * 9
		a := geometry.NewVector3(vertices[base+0], vertices[base+1], vertices[base+2])
		b := geometry.NewVector3(vertices[base+3], vertices[base+4], vertices[base+5])
		c := geometry.NewVector3(vertices[base+6], vertices[base+7], vertices[base+8])
		triangles[ti] = geometry.Triangle{A: a, B: b, C: c}
		catalog.addDistinct(a, ti)
		catalog.addDistinct(b, ti)
		catalog.addDistinct(c, ti)
	}

	return newTree(triangles, catalog.points, opts), nil
}
