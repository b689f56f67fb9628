package internal

type Point struct {
	X float64
	Y float64
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// 2D cross product (the z component of the 3D cross product)
func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// The turn taken at b when walking a -> b -> c. Positive is a left turn, which
// for a counterclockwise polygon means the angle at b is convex. Zero means the
// three points are colinear.
func turn(a, b, c Point) float64 {
	return Cross(b.Sub(a), c.Sub(b))
}

// A triangle is three indices into the polygon it was cut from. The order of the
// indices follows the winding of the source polygon.
type Triangle [3]int

// Polygons are implicitly closed: the last point connects back to the first, and
// the first point is not repeated at the end.
type Polygon struct {
	Points []Point
}

// Geographic sources usually repeat the first point at the end of a ring. This
// returns the polygon without that duplicate.
func (poly Polygon) StripClosingPoint() Polygon {
	n := len(poly.Points)
	if n > 1 && poly.Points[0] == poly.Points[n-1] {
		return Polygon{poly.Points[:n-1]}
	}
	return poly
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shoelace area. Positive for counterclockwise polygons, negative for clockwise.
func SignedArea(points []Point) float64 {
	var area float64
	for i, p := range points {
		next := points[CircularIndex(i+1, len(points))]
		area += Cross(p, next)
	}
	return area / 2
}

func IsCCW(points []Point) bool {
	return SignedArea(points) > 0
}

func IsCW(points []Point) bool {
	return SignedArea(points) < 0
}

// Winding rule point-in-polygon. This is used to check triangulations by
// sampling.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts the edges crossed by a ray
// going right from p.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}
