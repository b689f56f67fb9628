package internal

// Triangulate a simple counterclockwise polygon by ear clipping, returning
// triangles as indices into points.
//
// We scan the ring for a run of (convex, convex, non-convex) angles A, B, C.
// That makes B an ear: we save triangle ABC, drop B, and recompute the
// convexity of C against its new neighbors A and D. Once three vertices remain,
// or a whole lap passes without finding an ear, whatever is left is treated as
// convex and cut into a fan from its first vertex.
//
// The lap limit means malformed input (self intersections, clockwise winding,
// piles of colinear points) gets a possibly wrong triangulation rather than an
// infinite loop. Polygons with fewer than three points produce no triangles.
func EarClip(points []Point) []Triangle {
	n := len(points)
	if n < 3 {
		return nil
	}

	ring := newVertexRing(ClassifyConvexity(points))
	triangles := make([]Triangle, 0, n-2)

	cursor := 0
	verticesSinceEar := 0
	for ring.Len() > 3 && verticesSinceEar < n {
		a, b, c, d := ring.window(cursor)
		if ring.convex[a] && ring.convex[b] && !ring.convex[c] {
			triangles = append(triangles, Triangle{a, b, c})
			ring.remove(b)
			ring.convex[c] = turn(points[a], points[c], points[d]) > 0
			verticesSinceEar = 0
			// The cursor stays on A, which is now followed by C
			continue
		}
		cursor = b
		verticesSinceEar++
	}

	// Fan out the convex remainder
	keys := ring.keys()
	for i := 1; i+1 < len(keys); i++ {
		triangles = append(triangles, Triangle{keys[0], keys[i], keys[i+1]})
	}
	return triangles
}

// Triangulate a simple polygon of either winding. Clockwise polygons are ear
// clipped in reverse and the indices mapped back, so the triangles always wind
// counterclockwise. For counterclockwise input this is exactly EarClip.
func Triangulate(points []Point) []Triangle {
	if !IsCW(points) {
		return EarClip(points)
	}

	n := len(points)
	reversed := make([]Point, n)
	for i, p := range points {
		reversed[n-1-i] = p
	}
	triangles := EarClip(reversed)
	for i, tri := range triangles {
		for j, index := range tri {
			triangles[i][j] = n - 1 - index
		}
	}
	return triangles
}
