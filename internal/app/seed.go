package app

import (
	"flag"
	"strings"

	"github.com/pkg/errors"

	"lifeboard/internal/life"
)

// SeedOptions describe how to pre-populate a board before the first run.
type SeedOptions struct {
	Pattern string
	Cells   string
	Density float64
	Seed    int64
}

// Bind attaches the seeding options to the provided FlagSet.
func (o *SeedOptions) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.Pattern, "pattern", o.Pattern,
		"named pattern stamped at the board centre ("+strings.Join(life.PatternNames(), ", ")+")")
	fs.StringVar(&o.Cells, "alive", o.Cells, `live cells as "x,y;x,y;..."`)
	fs.Float64Var(&o.Density, "random", o.Density, "fill the board randomly with this density (0 disables)")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for -random")
}

// Apply seeds e. Random fill happens first so patterns and explicit cells
// are drawn on top of it.
func (o *SeedOptions) Apply(e *life.Engine) error {
	if o.Density > 0 {
		e.Randomize(o.Seed, o.Density)
	}
	if o.Pattern != "" {
		p, ok := life.Lookup(o.Pattern)
		if !ok {
			return errors.Errorf("[Apply] unknown pattern %q", o.Pattern)
		}
		w, h := p.Bounds()
		size := e.Size()
		if err := e.Stamp(p, (size.W-w)/2, (size.H-h)/2); err != nil {
			return errors.Wrap(err, "[Apply] pattern does not fit")
		}
	}
	if o.Cells != "" {
		pts, err := life.ParsePoints(o.Cells)
		if err != nil {
			return err
		}
		// Stamp checks every point before writing any of them.
		if err := e.Stamp(life.Pattern{Name: "alive", Cells: pts}, 0, 0); err != nil {
			return err
		}
	}
	return nil
}
