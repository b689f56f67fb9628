package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyConvexity(t *testing.T) {
	t.Run("square with a dot in the middle", func(t *testing.T) {
		assert.Equal(t, []bool{true, true, true, true, false}, ClassifyConvexity(NotchedSquare().Points))
	})

	t.Run("colinear corner", func(t *testing.T) {
		// This looks like a triangle, but three of the points are on a line, so the
		// last corner is flat. Flat corners must not count as convex.
		points := []Point{{0, 0}, {1, 0}, {1, 1}, {0.5, 0.5}}
		assert.Equal(t, []bool{true, true, true, false}, ClassifyConvexity(points))
	})

	t.Run("triangles are always convex", func(t *testing.T) {
		// Even clockwise ones
		assert.Equal(t, []bool{true, true, true}, ClassifyConvexity([]Point{{0, 0}, {0, 1}, {1, 0}}))
		assert.Equal(t, []bool{true, true}, ClassifyConvexity([]Point{{0, 0}, {0, 1}}))
		assert.Empty(t, ClassifyConvexity(nil))
	})

	t.Run("L shape", func(t *testing.T) {
		assert.Equal(t, []bool{true, true, true, false, true, true}, ClassifyConvexity(LShape().Points))
	})

	t.Run("clockwise input inverts the answers", func(t *testing.T) {
		reversed := UnitSquare().Reverse()
		assert.Equal(t, []bool{false, false, false, false}, ClassifyConvexity(reversed.Points))
	})
}
