package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const Epsilon = 1e-9

// Check that a triangulation is valid. The rules are:
// 1. Every index is in range, and no triangle repeats an index.
// 2. Every triangle is counterclockwise, with nonzero area.
// 3. Every edge of the polygon is an edge of some triangle.
// 4. The sum of the areas of all triangles is equal to the area of the polygon.
// 5. Points sampled inside the polygon land inside some triangle.
func AssertValidTriangulation(t *testing.T, polygon Polygon, triangles []Triangle) {
	points := polygon.Points
	require.True(t, IsCCW(points), "polygon is not counterclockwise")
	require.Len(t, triangles, len(points)-2, "a polygon with n points has n-2 triangles")

	var triangleArea float64
	edges := make(edgeSet)
	for _, tri := range triangles {
		for _, index := range tri {
			require.True(t, index >= 0 && index < len(points), "index %d out of range in %v", index, tri)
		}
		require.True(t, tri[0] != tri[1] && tri[1] != tri[2] && tri[0] != tri[2], "repeated index in %v", tri)

		area := SignedArea(triangleCorners(points, tri))
		require.Greater(t, area, 0.0, "triangle %v is not counterclockwise", tri)
		triangleArea += area

		edges.add(tri[0], tri[1])
		edges.add(tri[1], tri[2])
		edges.add(tri[2], tri[0])
	}

	for i := range points {
		j := CircularIndex(i+1, len(points))
		require.True(t, edges.contains(i, j), "polygon edge %d-%d is not an edge of any triangle", i, j)
	}

	require.InDelta(t, SignedArea(points), triangleArea, Epsilon*math.Max(1, SignedArea(points)))

	validateBySampling(t, polygon, triangles)
}

func triangleCorners(points []Point, tri Triangle) []Point {
	return []Point{points[tri[0]], points[tri[1]], points[tri[2]]}
}

// Edges are stored with the smaller index first
type edgeSet map[[2]int]struct{}

func (set edgeSet) add(a, b int) {
	if a > b {
		a, b = b, a
	}
	set[[2]int{a, b}] = struct{}{}
}

func (set edgeSet) contains(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	_, ok := set[[2]int{a, b}]
	return ok
}

func validateBySampling(t *testing.T, polygon Polygon, triangles []Triangle) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Offset the grid so samples don't land exactly on the axis aligned edges
	// our fixtures are made of
	step := math.Max(maxX-minX, maxY-minY) / 37
	for y := minY + step/3; y <= maxY; y += step {
		for x := minX + step/7; x <= maxX; x += step {
			p := Point{x, y}
			if !polygon.ContainsPointByEvenOdd(p) {
				continue
			}
			found := false
			for _, tri := range triangles {
				if (Polygon{triangleCorners(polygon.Points, tri)}).ContainsPointByEvenOdd(p) {
					found = true
					break
				}
			}
			assert.True(t, found, "point %v is inside the polygon but not inside any triangle", p)
		}
	}
}
