package internal

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Estimate vertex normals as the mean of the normals of the faces each vertex
// belongs to. Faces are not weighted by area or angle. Degenerate faces
// contribute a zero normal, and a vertex that ends up with a zero sum keeps a
// zero normal.
//
// Panics with a MeshError if indices is not a whole number of triangles, or
// refers to a vertex that has no position.
func EstimateNormals(positions []mgl32.Vec3, indices []uint32) []mgl32.Vec3 {
	if len(indices)%3 != 0 {
		fatalf("index buffer has %d indices, which is not a whole number of triangles", len(indices))
	}

	normals := make([]mgl32.Vec3, len(positions))
	for i := 0; i < len(indices); i += 3 {
		face := indices[i : i+3]
		for _, vertex := range face {
			if int(vertex) >= len(positions) {
				fatalf("triangle %d refers to vertex %d, but there are only %d positions", i/3, vertex, len(positions))
			}
		}
		v0, v1, v2 := positions[face[0]], positions[face[1]], positions[face[2]]
		faceNormal := normalizeOrZero(v1.Sub(v0).Cross(v2.Sub(v0)))
		for _, vertex := range face {
			normals[vertex] = normals[vertex].Add(faceNormal)
		}
	}

	for i, n := range normals {
		normals[i] = normalizeOrZero(n)
	}
	return normals
}

// Unlike mgl32.Vec3.Normalize, this gives the zero vector instead of NaNs when
// the length is zero or not finite.
func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	length := v.Len()
	if length == 0 || math.IsInf(float64(length), 0) || math.IsNaN(float64(length)) {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{v[0] / length, v[1] / length, v[2] / length}
}
