package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/planar/geom"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for the geometry kernel. Input on stdin should be
// newline separated points in the form "x y", with each point list separated by
// an extra newline. Alternatively --svg reads the first polygon of an SVG file.
var (
	app     = kingpin.New("planar", "2D geometry kernel: hulls, polygon decomposition and intersections.")
	epsilon = app.Flag("epsilon", "Tolerance for every comparison.").Default("1e-6").Float64()
	svgPath = app.Flag("svg", "Read the first polygon of an SVG file instead of stdin.").ExistingFile()

	hullCmd = app.Command("hull", "Print the convex hull of the first point list.")

	decomposeCmd = app.Command("decompose", "Split a polygon ring into its convex hull and external holes.")

	intersectCmd = app.Command("intersect", "Intersect the hulls of the first two point lists.")

	renderCmd  = app.Command("render", "Draw every point list, decomposed, to a PNG file.")
	renderOut  = renderCmd.Flag("out", "Output PNG path.").Short('o').Default("planar.png").String()
	renderSize = renderCmd.Flag("size", "Size in pixels of the larger extent.").Default("500").Float64()
	renderCat  = renderCmd.Flag("imgcat", "Also print the image in the terminal (iTerm only).").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	defer func() {
		if err := geom.HandlePanicRecover(recover()); err != nil {
			log.Fatalf("%v", err)
		}
	}()

	env, err := newEnv(*epsilon)
	app.FatalIfError(err, "--epsilon")
	lists, err := readInput()
	app.FatalIfError(err, "reading input")

	switch command {
	case hullCmd.FullCommand():
		requireLists(lists, 1)
		fmt.Println(geom.Geometry(env, lists[0], *epsilon))

	case decomposeCmd.FullCommand():
		requireLists(lists, 1)
		poly := geom.NewPolygon(env, lists[0], *epsilon)
		printPolygon(os.Stdout, poly, 0)
		fmt.Printf("area %g, perimeter %g\n", poly.Area(), poly.Perimeter())

	case intersectCmd.FullCommand():
		requireLists(lists, 2)
		a := geom.Geometry(env, lists[0], *epsilon)
		b := geom.Geometry(env, lists[1], *epsilon)
		result := geom.Intersection(env, a, b, *epsilon)
		if result == nil {
			fmt.Println("no intersection")
			return
		}
		fmt.Println(result)

	case renderCmd.FullCommand():
		requireLists(lists, 1)
		shapes := make([]geom.Shape, 0, len(lists))
		for _, points := range lists {
			shapes = append(shapes, shapeForList(env, points))
		}
		scale := geom.FitScale(shapes, *renderSize)
		app.FatalIfError(geom.SavePNG(shapes, scale, *renderOut, *renderCat), "rendering")
		fmt.Printf("Wrote %s\n", *renderOut)
	}
}

func newEnv(eps float64) (env *geom.Env, err error) {
	defer func() {
		err = geom.HandlePanicRecover(recover())
	}()
	return geom.NewEnv(eps), nil
}

// Polygons for rings that have an area, otherwise whatever the points collapse to.
func shapeForList(env *geom.Env, points []geom.Point) geom.Shape {
	shape := geom.Geometry(env, points, *epsilon)
	switch shape.(type) {
	case *geom.Triangle, *geom.ConvexArea:
		return geom.NewPolygon(env, points, *epsilon)
	}
	return shape
}

func printPolygon(w io.Writer, poly *geom.Polygon, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%s\n", indent, poly)
	fmt.Fprintf(w, "%s  hull %v\n", indent, poly.Hull().Points())
	for _, hole := range poly.HoleList() {
		printPolygon(w, hole, depth+1)
	}
}

func requireLists(lists [][]geom.Point, n int) {
	if len(lists) < n {
		app.Fatalf("expected at least %d point list(s), got %d", n, len(lists))
	}
}

func readInput() ([][]geom.Point, error) {
	if *svgPath != "" {
		f, err := os.Open(*svgPath)
		if err != nil {
			return nil, errors.Wrap(err, "opening svg")
		}
		defer f.Close()
		points, err := geom.ReadSVGPolygon(f)
		if err != nil {
			return nil, err
		}
		return [][]geom.Point{points}, nil
	}
	return readPointLists(os.Stdin)
}

func readPointLists(in io.Reader) ([][]geom.Point, error) {
	lists := [][]geom.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []geom.Point{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the list
		if line == "" {
			if len(points) > 0 {
				lists = append(lists, points)
				points = []geom.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning input")
	}

	// Handle trailing list if any
	if len(points) > 0 {
		lists = append(lists, points)
	}
	return lists, nil
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return geom.NewPoint(x, y), nil
}
