package internal

import "github.com/go-gl/mathgl/mgl32"

// A Mesh is a triangle list ready to hand to a renderer. Positions, Normals and
// UVs are parallel; Indices holds three entries per triangle.
type Mesh struct {
	Name      string
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0
}

// Build the mesh for one polygon. Each point's x and y go through the lon and
// lat pipes to become the scene's x and z, and every vertex sits at the given
// altitude on y. UVs come from the raw coordinates through UVPipe.
//
// Triangulation happens on the raw points, since the pipes are affine and keep
// the shape intact. The index buffer is the triangulation reversed end to end,
// which flips the winding so the faces point up (+y) in the scene.
func Assemble(polygon Polygon, altitude float64, lon, lat Pipe) *Mesh {
	points := polygon.StripClosingPoint().Points
	uv := UVPipe()

	mesh := &Mesh{
		Positions: make([]mgl32.Vec3, len(points)),
		UVs:       make([]mgl32.Vec2, len(points)),
	}
	for i, p := range points {
		mesh.Positions[i] = mgl32.Vec3{
			float32(lon.Apply(p.X)),
			float32(altitude),
			float32(lat.Apply(p.Y)),
		}
		mesh.UVs[i] = mgl32.Vec2{float32(uv.Apply(p.X)), float32(uv.Apply(p.Y))}
	}

	triangles := Triangulate(points)
	mesh.Indices = make([]uint32, 0, len(triangles)*3)
	for i := len(triangles) - 1; i >= 0; i-- {
		tri := triangles[i]
		mesh.Indices = append(mesh.Indices, uint32(tri[2]), uint32(tri[1]), uint32(tri[0]))
	}

	mesh.Normals = EstimateNormals(mesh.Positions, mesh.Indices)
	return mesh
}
