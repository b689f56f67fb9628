package internal

// Determine whether the angle at each vertex is convex, assuming the points
// wind counterclockwise. A clockwise polygon inverts every answer.
//
// Colinear corners count as non-convex. An ear whose middle vertex sits on a
// straight line has zero area, and a zero area triangle would later produce a
// zero face normal.
func ClassifyConvexity(points []Point) []bool {
	n := len(points)
	isConvex := make([]bool, n)
	if n <= 3 {
		// A triangle is always convex
		for i := range isConvex {
			isConvex[i] = true
		}
		return isConvex
	}
	for i, p := range points {
		prev := points[CircularIndex(i-1, n)]
		next := points[CircularIndex(i+1, n)]
		isConvex[i] = turn(prev, p, next) > 0
	}
	return isConvex
}
