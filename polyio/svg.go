package polyio

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/reliefmesh"
)

// Read every <polygon> element of an SVG document. The element's id, if any,
// names the region. Points are taken as they are written; SVG's y axis points
// down, which flips the winding, but the mesh pipeline accepts either winding.
func ReadSVG(r io.Reader) ([]reliefmesh.Region, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}

	var regions []reliefmesh.Region
	for i, el := range root.FindAll("polygon") {
		points, err := parseSVGPoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.WithMessagef(err, "polygon %d", i)
		}
		regions = append(regions, reliefmesh.Region{
			Name:    el.Attributes["id"],
			Polygon: reliefmesh.Polygon{Points: points},
		})
	}
	return regions, nil
}

// SVG allows the coordinates to be separated by commas, whitespace, or both
func parseSVGPoints(attr string) ([]reliefmesh.Point, error) {
	fields := strings.Fields(strings.ReplaceAll(attr, ",", " "))
	if len(fields)%2 != 0 {
		return nil, malformedf("odd number of coordinates (%d)", len(fields))
	}
	points := make([]reliefmesh.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, malformedf("invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, malformedf("invalid y value %q", fields[i+1])
		}
		points = append(points, reliefmesh.Point{X: x, Y: y})
	}
	return points, nil
}
