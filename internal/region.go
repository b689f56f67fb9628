package internal

import (
	"hash/fnv"

	"github.com/go-gl/mathgl/mgl32"
)

// A Region is a named polygon, such as one piece of a state or county. Regions
// with several pieces share a name.
type Region struct {
	Name    string
	Polygon Polygon
}

// A display color chosen from a hash of the name, as a unit length RGB vector.
// Every piece of a region gets the same color.
func (r Region) Color() mgl32.Vec3 {
	return ColorFromName(r.Name)
}

func ColorFromName(name string) mgl32.Vec3 {
	h := fnv.New64a()
	h.Write([]byte(name))
	sum := h.Sum(nil)
	return normalizeOrZero(mgl32.Vec3{float32(sum[0]), float32(sum[1]), float32(sum[2])})
}
