package polyio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/reliefmesh"
)

// Read polygons in the plain text format: one "x y" point per line, with each
// polygon ended by a blank line. A line starting with # names the polygon that
// follows it, so several polygons can share a name.
//
//	# Utah
//	-114.05 37
//	-109.05 37
//	...
func ReadText(r io.Reader) ([]reliefmesh.Region, error) {
	var regions []reliefmesh.Region
	var name string
	var points []reliefmesh.Point

	flush := func() {
		if len(points) > 0 {
			regions = append(regions, reliefmesh.Region{Name: name, Polygon: reliefmesh.Polygon{Points: points}})
			points = nil
		}
	}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			flush()
			continue
		}

		if strings.HasPrefix(line, "#") {
			flush()
			name = strings.TrimSpace(strings.TrimPrefix(line, "#"))
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.WithMessagef(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	flush()
	return regions, nil
}

func parsePoint(line string) (reliefmesh.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return reliefmesh.Point{}, malformedf("expected 2 coordinates, got %d", len(parts))
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return reliefmesh.Point{}, malformedf("invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return reliefmesh.Point{}, malformedf("invalid y value %q", parts[1])
	}
	return reliefmesh.Point{X: x, Y: y}, nil
}
