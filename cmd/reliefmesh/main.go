// Command reliefmesh turns polygons into meshes.
//
// Input is read from a file, or stdin if none is given, either in the plain
// text format (newline separated "x y" points, polygons separated by a blank
// line, "# name" lines naming the polygons that follow) or as SVG <polygon>
// elements. Every polygon is remapped, triangulated and written out as one
// object of a Wavefront OBJ file.
//
//	reliefmesh --config us.yaml --obj states.obj --png preview.png states.txt
package main

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/reliefmesh"
	"github.com/osuushi/reliefmesh/advanced"
	"github.com/osuushi/reliefmesh/config"
	"github.com/osuushi/reliefmesh/dbg"
	"github.com/osuushi/reliefmesh/polyio"
)

var (
	app = kingpin.New("reliefmesh", "Turn geographic polygons into renderable meshes.")

	input      = app.Arg("input", "Polygon file. Reads stdin when omitted.").ExistingFile()
	configPath = app.Flag("config", "YAML file configuring the longitude and latitude pipes.").Short('c').ExistingFile()
	format     = app.Flag("format", "Input format.").Default("text").Enum("text", "svg")
	objPath    = app.Flag("obj", "Write the meshes to this OBJ file.").Short('o').String()
	pngPath    = app.Flag("png", "Draw the triangulation of every polygon into this PNG file.").String()
	scale      = app.Flag("scale", "Pixels per source unit in the PNG preview.").Default("50").Float64()
	showImage  = app.Flag("imgcat", "Print the PNG preview inline in the terminal (iTerm only).").Bool()
	workers    = app.Flag("workers", "Polygons to mesh in parallel. Defaults to GOMAXPROCS.").Default("0").Int()
	dump       = app.Flag("dump", "Pretty print the finished meshes.").Bool()
	verbose    = app.Flag("verbose", "Log every step.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	log.SetFlags(0)
	log.SetPrefix("reliefmesh: ")

	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context) error {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}
	lon, lat := cfg.Pipes()
	if *verbose {
		log.Printf("longitude %v -> %v (%s)", lon.Domain(), lon.Range(), lon.Overflow())
		log.Printf("latitude %v -> %v (%s)", lat.Domain(), lat.Range(), lat.Overflow())
	}

	regions, err := readRegions()
	if err != nil {
		return err
	}
	for i := range regions {
		if regions[i].Name == "" {
			regions[i].Name = dbg.Name(i)
		}
	}
	if *verbose {
		log.Printf("read %d polygons", len(regions))
	}

	meshes, err := reliefmesh.BuildMeshes(ctx, regions, cfg.Altitude, lon, lat, *workers)
	if err != nil {
		return err
	}

	for i, mesh := range meshes {
		name := aurora.Green(mesh.Name)
		if mesh.IsEmpty() {
			name = aurora.Red(mesh.Name)
		}
		fmt.Printf("%s, %d points, %d triangles\n",
			name, len(regions[i].Polygon.Points), mesh.TriangleCount())
	}

	if *dump {
		pretty.Println(meshes)
	}

	if *objPath != "" {
		if err := writeOBJ(*objPath, meshes); err != nil {
			return err
		}
		if *verbose {
			log.Printf("wrote %s", *objPath)
		}
	}

	if *pngPath != "" {
		if err := writePreview(*pngPath, regions); err != nil {
			return err
		}
		if *showImage {
			imgcat.CatFile(*pngPath, os.Stdout)
		}
	}
	return nil
}

func readRegions() ([]reliefmesh.Region, error) {
	var r io.Reader = os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}

	if *format == "svg" {
		return polyio.ReadSVG(r)
	}
	return polyio.ReadText(r)
}

func writeOBJ(path string, meshes []*reliefmesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating obj file")
	}
	if err := polyio.WriteOBJ(f, meshes...); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing obj file")
}

// All polygons go into one picture, in source coordinates, so the preview
// shows the triangulations rather than the remapped scene.
func writePreview(path string, regions []reliefmesh.Region) error {
	var points []reliefmesh.Point
	var triangles []reliefmesh.Triangle
	for _, region := range regions {
		polygon := region.Polygon.StripClosingPoint()
		offset := len(points)
		points = append(points, polygon.Points...)
		for _, tri := range advanced.Triangulate(polygon.Points) {
			triangles = append(triangles, reliefmesh.Triangle{tri[0] + offset, tri[1] + offset, tri[2] + offset})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating preview")
	}
	if err := png.Encode(f, advanced.DrawTriangulation(points, triangles, *scale)); err != nil {
		f.Close()
		return errors.Wrap(err, "encoding preview")
	}
	return errors.Wrap(f.Close(), "closing preview")
}
