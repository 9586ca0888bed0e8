package kdtree

import "github.com/meshtrace/kdtree/geometry"

// Raycast descends the tree and returns the nearest triangle hit
// along ray, or ok=false if no triangle is hit within
// ray.MaxDistance. The search visits a node's own triangles before
// recursing into its children, ordered near-then-far relative to
// ray.Origin, pruning the far subtree whenever the ray cannot reach
// the splitting plane before the current best hit.
func (t *Tree) Raycast(ray geometry.Ray) (geometry.RayHit, bool) {
	if t.root == -1 {
		return geometry.RayHit{}, false
	}
	var best bestHit
	t.raycastNode(t.root, ray, &best)
	if !best.found {
		return geometry.RayHit{}, false
	}
	return geometry.RayHit{
		TriangleIndex: best.triangleIndex,
		Position:      best.position,
		Distance:      best.distance,
	}, true
}

type bestHit struct {
	found         bool
	triangleIndex int
	position      geometry.Vector3
	distance      float64
}

func (b *bestHit) consider(triangleIndex int, distance float64, position geometry.Vector3) {
	if !b.found || distance <= b.distance {
		b.found = true
		b.triangleIndex = triangleIndex
		b.distance = distance
		b.position = position
	}
}

// raycastNode implements the recursive near/far traversal described
// in the design: visit this node's point's triangles first (safe
// because best-hit distance only ever decreases), then recurse into
// the near child, then into the far child only if the ray can still
// reach the far side within the current best distance.
func (t *Tree) raycastNode(nodeIdx int, ray geometry.Ray, best *bestHit) {
	if nodeIdx == -1 {
		return
	}
	n := t.nodes[nodeIdx]
	p := t.points[n.pointIndex]

	for _, triIdx := range p.triangleIndices {
		if d, hit := intersectTriangle(t.triangles[triIdx], ray, t.epsilonParallel); hit && d <= ray.MaxDistance {
			best.consider(triIdx, d, ray.At(d))
		}
	}

	if n.isLeaf() {
		return
	}

	splitterCoord := p.position.Component(n.axis)
	originCoord := ray.Origin.Component(n.axis)
	directionCoord := ray.Direction.Component(n.axis)

	var near, far int
	if originCoord > splitterCoord {
		near, far = n.right, n.left
	} else {
		near, far = n.left, n.right
	}

	// Tighten the traversal horizon to the current best distance, per
	// the design notes: the search only ever needs to look as far as
	// the closest hit found so far.
	maxDistance := ray.MaxDistance
	if best.found && best.distance < maxDistance {
		maxDistance = best.distance
	}
	boundedRay := geometry.Ray{Origin: ray.Origin, Direction: ray.Direction, MaxDistance: maxDistance}

	if directionCoord == 0 {
		// Ray parallel to the splitting plane: it never reaches the
		// far side, so only the near child can contain a hit.
		t.raycastNode(near, boundedRay, best)
		return
	}

	t.raycastNode(near, boundedRay, best)

	planeT := (splitterCoord - originCoord) / directionCoord
	if planeT >= 0 && planeT < boundedRay.MaxDistance && (!best.found || best.distance > planeT) {
		t.raycastNode(far, boundedRay, best)
	}
}
