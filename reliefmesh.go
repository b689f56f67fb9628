// Turn geographic polygons into renderable meshes.
//
// This package takes simple polygons given in raw coordinates (longitude and
// latitude, or any other numeric units), remaps them into scene space with
// Pipes, triangulates them by ear clipping, and returns position, normal, UV
// and index buffers that any triangle renderer can consume.
//
// Building a mesh never fails on bad geometry. Degenerate polygons produce
// empty or degenerate meshes instead of errors.
package reliefmesh

import (
	"context"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"

	"github.com/osuushi/reliefmesh/internal"
)

type Point = internal.Point
type Polygon = internal.Polygon
type Triangle = internal.Triangle
type Region = internal.Region
type Mesh = internal.Mesh

type Interval = internal.Interval
type Pipe = internal.Pipe
type Overflow = internal.Overflow

const (
	Extend   = internal.Extend
	Saturate = internal.Saturate
)

// Create a pipe mapping domain onto rng. See internal.NewPipe.
func NewPipe(domain, rng Interval) Pipe {
	return internal.NewPipe(domain, rng)
}

// Infer an identity pipe spanning a sample of values.
func PipeFromSample(sample []float64) Pipe {
	return internal.PipeFromSample(sample)
}

func ParseOverflow(s string) (Overflow, error) {
	return internal.ParseOverflow(s)
}

// Build the mesh for one region. Points go through lon and lat to become the
// scene's x and z, and altitude becomes y.
func BuildMesh(region Region, altitude float64, lon, lat Pipe) *Mesh {
	mesh := internal.Assemble(region.Polygon, altitude, lon, lat)
	mesh.Name = region.Name
	return mesh
}

// Build meshes for many regions at once. Each region is independent, so they
// are built on up to workers goroutines (GOMAXPROCS when workers < 1). The
// result is in the same order as regions. If ctx is cancelled first, the
// context's error is returned.
func BuildMeshes(ctx context.Context, regions []Region, altitude float64, lon, lat Pipe, workers int) ([]*Mesh, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	meshes := make([]*Mesh, len(regions))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range regions {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			meshes[i] = BuildMesh(regions[i], altitude, lon, lat)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return meshes, nil
}

// Estimate per vertex normals for an arbitrary triangle list. This returns an
// error if the index buffer is not a whole number of triangles or refers to a
// missing vertex.
func EstimateNormals(positions []mgl32.Vec3, indices []uint32) (normals []mgl32.Vec3, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			normals = nil
			err = recoveredErr
		}
	}()
	return internal.EstimateNormals(positions, indices), nil
}
