// Reading source polygons and writing finished meshes.
//
// The mesh pipeline never touches files. This package is the thin layer the
// command line tool uses to get polygons in and meshes out: a plain text point
// format, SVG polygon elements, and Wavefront OBJ output.
package polyio

import "github.com/pkg/errors"

// Every parse failure wraps ErrMalformedInput, so callers can tell bad data
// apart from I/O failures with errors.Is.
var ErrMalformedInput = errors.New("malformed input data")

func malformedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedInput, format, args...)
}
