package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/intersect/intersect"
)

// Demo of isothetic polygon intersection. Input on stdin (or a file) should
// be newline separated integer points in the form "x y", with each polygon
// separated by an extra newline. The intersection is printed in the same
// format, holes flagged, and can optionally be rendered to a PNG and shown
// inline in the terminal (iTerm only).

var (
	input = kingpin.Arg("file", "Input file (defaults to stdin)").File()
	png   = kingpin.Flag("png", "Render the inputs and intersection to a PNG file").String()
	cat   = kingpin.Flag("cat", "Display the rendered PNG inline in the terminal").Bool()
	scale = kingpin.Flag("scale", "Pixels per grid unit when rendering").Default("20").Float64()
)

func main() {
	kingpin.Parse()

	in := os.Stdin
	if *input != nil {
		in = *input
		defer in.Close()
	}

	pointLists := readPolygons(in)
	fmt.Printf("Read %d polygons\n", len(pointLists))

	result, err := intersect.Intersect(pointLists...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "intersection failed: %v\n", err)
		os.Exit(1)
	}

	if len(result) == 0 {
		fmt.Println("No common area")
	}
	for _, r := range result {
		printRing(r.Outer, "")
		for _, hole := range r.Holes {
			printRing(hole, "hole ")
		}
	}

	if *png != "" || *cat {
		path := *png
		if path == "" {
			path = "/tmp/intersection.png"
		}
		polygons := make(intersect.PolygonList, 0, len(pointLists))
		for _, points := range pointLists {
			poly, _ := intersect.Validate(points)
			polygons = append(polygons, poly)
		}
		if err := intersect.RenderPNG(path, polygons, result, *scale); err != nil {
			fmt.Fprintf(os.Stderr, "rendering failed: %v\n", err)
			os.Exit(1)
		}
		if *cat {
			imgcat.CatFile(path, os.Stdout)
		}
	}
}

func printRing(poly *intersect.Polygon, label string) {
	fmt.Printf("\n%sarea %d:\n", label, poly.DoubleArea()/2)
	for _, p := range poly.Points {
		fmt.Printf("%d %d\n", p.X, p.Y)
	}
}

func readPolygons(in *os.File) [][]*intersect.Point {
	var polygons [][]*intersect.Point
	scanner := bufio.NewScanner(in)
	var points []*intersect.Point
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the polygon in progress
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}

		points = append(points, parsePoint(line))
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons
}

func parsePoint(line string) *intersect.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fmt.Fprintf(os.Stderr, "malformed point line %q\n", line)
		os.Exit(1)
	}
	x, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "malformed x coordinate %q\n", parts[0])
		os.Exit(1)
	}
	y, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "malformed y coordinate %q\n", parts[1])
		os.Exit(1)
	}
	return &intersect.Point{X: x, Y: y}
}
