package geom

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read the points of the first <polygon> element in an SVG document. This is
// not a full (or even correct) SVG reader: only the points attribute of a
// polygon element is understood, as "x,y" pairs separated by whitespace.
// Note that SVG's y axis points down, so the ring's winding is mirrored.
func ReadSVGPolygon(r io.Reader) ([]Point, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon element found")
	}
	return ParsePointList(polygons[0].Attributes["points"])
}

// Parse a whitespace separated list of "x,y" pairs.
func ParsePointList(s string) ([]Point, error) {
	fields := strings.Fields(s)
	points := make([]Point, 0, len(fields))
	for _, pointString := range fields {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", parts[0])
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", parts[1])
		}
		points = append(points, NewPoint(x, y))
	}
	return points, nil
}
