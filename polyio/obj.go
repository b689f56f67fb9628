package polyio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/osuushi/reliefmesh"
)

// Write meshes as a Wavefront OBJ file, one object per mesh. This is handy for
// looking at results in Blender or any other model viewer.
func WriteOBJ(w io.Writer, meshes ...*reliefmesh.Mesh) error {
	bw := bufio.NewWriter(w)
	// OBJ indices are 1-based and global across the whole file
	offset := 1
	for i, mesh := range meshes {
		name := mesh.Name
		if name == "" {
			name = fmt.Sprintf("mesh%d", i)
		}
		fmt.Fprintf(bw, "o %s\n", name)
		for _, v := range mesh.Positions {
			fmt.Fprintf(bw, "v %s %s %s\n", ftoa(v[0]), ftoa(v[1]), ftoa(v[2]))
		}
		for _, vt := range mesh.UVs {
			fmt.Fprintf(bw, "vt %s %s\n", ftoa(vt[0]), ftoa(vt[1]))
		}
		for _, vn := range mesh.Normals {
			fmt.Fprintf(bw, "vn %s %s %s\n", ftoa(vn[0]), ftoa(vn[1]), ftoa(vn[2]))
		}
		for j := 0; j+2 < len(mesh.Indices); j += 3 {
			a := int(mesh.Indices[j]) + offset
			b := int(mesh.Indices[j+1]) + offset
			c := int(mesh.Indices[j+2]) + offset
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}
		offset += mesh.VertexCount()
	}
	return errors.Wrap(bw.Flush(), "writing obj")
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
