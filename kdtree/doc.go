// Package kdtree builds a static k-d tree over a triangulated mesh
// and answers nearest-hit ray intersection queries against it.
//
// A Tree is built once, from either an indexed vertex/index buffer
// pair (BuildFromIndexedMesh) or a flat triangle soup
// (BuildFromTriangleSoup), and is immutable afterward. Raycast then
// descends the tree to find the closest triangle a ray hits, pruning
// subtrees the ray cannot reach before the current best hit.
package kdtree
