// Stage by stage access to the mesh pipeline.
//
// Most callers want reliefmesh.BuildMesh. This package exposes the individual
// steps for tools that need the intermediate results, such as inspecting which
// vertices were considered convex, or drawing a triangulation.
package advanced

import (
	"image"

	"github.com/osuushi/reliefmesh/internal"
)

type Point = internal.Point
type Polygon = internal.Polygon
type Triangle = internal.Triangle

// Whether the angle at each vertex of a counterclockwise polygon is convex.
// Colinear corners are not convex.
func ClassifyConvexity(points []Point) []bool {
	return internal.ClassifyConvexity(points)
}

// Ear clip a counterclockwise polygon. Clockwise input is not detected; use
// Triangulate if the winding is unknown.
func EarClip(points []Point) []Triangle {
	return internal.EarClip(points)
}

// Ear clip a polygon of either winding. The triangles always wind
// counterclockwise.
func Triangulate(points []Point) []Triangle {
	return internal.Triangulate(points)
}

func SignedArea(points []Point) float64 {
	return internal.SignedArea(points)
}

func IsCCW(points []Point) bool {
	return internal.IsCCW(points)
}

func DrawTriangulation(points []Point, triangles []Triangle, scale float64) image.Image {
	return internal.DrawTriangulation(points, triangles, scale)
}

// Convert a panic raised by the pipeline into an error. Use it in a deferred
// function around calls into this package:
//
//	defer func() { err = advanced.HandlePanicRecover(recover()) }()
//
// Panics that did not come from the pipeline are re-raised.
func HandlePanicRecover(r interface{}) error {
	return internal.HandlePanicRecover(r)
}
