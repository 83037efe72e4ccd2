package life

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Pattern is a named set of live cells relative to its top-left corner.
type Pattern struct {
	Name  string
	Cells []Point
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (int, int) {
	w, h := 0, 0
	for _, c := range p.Cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

var patterns = map[string]Pattern{}

// Register adds a pattern under its name.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp sets every cell of p alive with its top-left corner at (x, y). Either
// the whole pattern fits or nothing is written.
func (e *Engine) Stamp(p Pattern, x, y int) error {
	for _, c := range p.Cells {
		if !e.cur.InBounds(x+c.X, y+c.Y) {
			return outOfBounds("Stamp "+p.Name, x+c.X, y+c.Y, e.cur.W, e.cur.H)
		}
	}
	for _, c := range p.Cells {
		e.cur.Cells()[e.cur.Index(x+c.X, y+c.Y)] = Alive
	}
	return nil
}

// ParsePoints parses "x,y;x,y;..." into points. Whitespace is ignored.
func ParsePoints(s string) ([]Point, error) {
	var pts []Point
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xs, ys, ok := strings.Cut(part, ",")
		if !ok {
			return nil, errors.Errorf("[ParsePoints] missing comma in %q", part)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, errors.Wrapf(err, "[ParsePoints] bad x in %q", part)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, errors.Wrapf(err, "[ParsePoints] bad y in %q", part)
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts, nil
}

func init() {
	Register(Pattern{Name: "block", Cells: []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}})
	Register(Pattern{Name: "blinker", Cells: []Point{{1, 0}, {1, 1}, {1, 2}}})
	Register(Pattern{Name: "glider", Cells: []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}})
	Register(Pattern{Name: "beehive", Cells: []Point{{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}}})
	Register(Pattern{Name: "toad", Cells: []Point{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}}})
	Register(Pattern{Name: "beacon", Cells: []Point{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}}})
}
