package citygen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/swarmroute/citymap"
	"github.com/katalvlaran/swarmroute/internal/rng"
)

// Generator builds city grids from its Options.
type Generator struct {
	opts Options
}

// New returns a Generator starting from DefaultOptions with opts applied.
func New(opts ...Option) *Generator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{opts: o}
}

// NewWithOptions returns a Generator using o verbatim.
func NewWithOptions(o Options) *Generator {
	return &Generator{opts: o}
}

// Options returns a copy of the generator configuration.
func (gen *Generator) Options() Options { return gen.opts }

// Size returns the effective (odd) width and height Generate will produce.
func (gen *Generator) Size() (width, height int) {
	return odd(gen.opts.Width), odd(gen.opts.Height)
}

// city is the mutable draft of a grid under construction, indexed [y][x].
type city struct {
	w, h    int
	layout  [][]int
	traffic [][]float64
	start   citymap.Cell
	goal    citymap.Cell
}

// Generate builds a fresh grid. Start is (1,1) and goal (W-2,H-2).
func (gen *Generator) Generate() (*citymap.Grid, error) {
	if err := gen.opts.validate(); err != nil {
		return nil, err
	}
	w, h := gen.Size()
	r := rng.FromSeed(gen.opts.Seed)

	c := &city{
		w: w, h: h,
		layout:  make([][]int, h),
		traffic: make([][]float64, h),
		start:   citymap.Cell{X: 1, Y: 1},
		goal:    citymap.Cell{X: w - 2, Y: h - 2},
	}
	for y := 0; y < h; y++ {
		c.layout[y] = make([]int, w)
		c.traffic[y] = make([]float64, w)
		for x := range c.layout[y] {
			c.layout[y][x] = citymap.Building
		}
	}

	c.carveArteries(gen.opts.ArterySpacing)
	c.carveAlleys(r, gen.opts.Alleys)
	c.carvePerimeter()
	c.layTraffic(r, gen.opts)

	g, err := citymap.NewGrid(c.layout, c.start, c.goal, citymap.WithTraffic(c.traffic))
	if err != nil {
		return nil, fmt.Errorf("citygen: %w", err)
	}
	return g, nil
}

func (c *city) road(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h && c.layout[y][x] == citymap.Road
}

func (c *city) carveArteries(spacing int) {
	for x := 1; x < c.w-1; x += spacing {
		for y := 0; y < c.h; y++ {
			c.layout[y][x] = citymap.Road
		}
	}
	for y := 1; y < c.h-1; y += spacing {
		for x := 0; x < c.w; x++ {
			c.layout[y][x] = citymap.Road
		}
	}
}

// carveAlleys opens n alleys of 3–8 cells, clipped before the outer edge.
func (c *city) carveAlleys(r *rand.Rand, n int) {
	for i := 0; i < n; i++ {
		y := between(r, 1, c.h-2)
		x := between(r, 1, c.w-2)
		if r.Float64() < 0.5 {
			end := min(x+between(r, 3, 8), c.w-1)
			for ; x < end; x++ {
				c.layout[y][x] = citymap.Road
			}
		} else {
			end := min(y+between(r, 3, 8), c.h-1)
			for ; y < end; y++ {
				c.layout[y][x] = citymap.Road
			}
		}
	}
}

func (c *city) carvePerimeter() {
	for x := 0; x < c.w; x++ {
		c.layout[1][x] = citymap.Road
		c.layout[c.h-2][x] = citymap.Road
	}
	for y := 0; y < c.h; y++ {
		c.layout[y][1] = citymap.Road
		c.layout[y][c.w-2] = citymap.Road
	}
	c.layout[c.start.Y][c.start.X] = citymap.Road
	c.layout[c.goal.Y][c.goal.X] = citymap.Road
}

// layTraffic places up to o.TrafficLines jams. A segment runs east if the
// cell to the east is a road, otherwise south, and stops early at a
// building or on entering the safe zone.
func (c *city) layTraffic(r *rand.Rand, o Options) {
	count, attempts := 0, 0
	for count < o.TrafficLines && attempts < o.MaxAttempts {
		attempts++
		at := citymap.Cell{X: between(r, 1, c.w-2), Y: between(r, 1, c.h-2)}
		if at.Manhattan(c.start) < o.SafeRadius || at.Manhattan(c.goal) < o.SafeRadius {
			continue
		}
		if !c.road(at.X, at.Y) {
			continue
		}

		length := between(r, 4, 8)
		var dx, dy int
		switch {
		case c.road(at.X+1, at.Y):
			dx = 1
		case c.road(at.X, at.Y+1):
			dy = 1
		default:
			continue
		}

		for i := 0; i < length; i++ {
			cell := at.Add(dx*i, dy*i)
			if !c.road(cell.X, cell.Y) ||
				cell.Manhattan(c.start) <= o.SafeRadius || cell.Manhattan(c.goal) <= o.SafeRadius {
				break
			}
			c.traffic[cell.Y][cell.X] = o.TrafficIntensity
		}
		count++
	}
}

// between returns a uniform integer in [lo, hi].
func between(r *rand.Rand, lo, hi int) int {
	return lo + rng.Pick(r, hi-lo+1)
}

func odd(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}
