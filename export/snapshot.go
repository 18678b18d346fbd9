// Package export serializes a solved city (layout, traffic, conductivity and
// route) as a JSON snapshot for renderers, and reloads a snapshot's map for
// re-solving.
//
// Coordinates in the snapshot (path, start, end) are [row, column] pairs,
// the order map renderers index the grid rows with.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/swarmroute/citymap"
)

// Snapshot statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusPending = "pending" // map only, not solved yet
)

// ErrBadSnapshot indicates a snapshot that cannot be turned back into a grid.
var ErrBadSnapshot = errors.New("export: malformed snapshot")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Dimensions is the grid size.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Point is a [row, column] pair.
type Point [2]int

// PointOf converts a cell to its [row, column] pair.
func PointOf(c citymap.Cell) Point { return Point{c.Y, c.X} }

// Cell converts p back to a cell.
func (p Point) Cell() citymap.Cell { return citymap.Cell{X: p[1], Y: p[0]} }

// Snapshot is the exported state of one run. Path and Conductivity are null
// when absent.
type Snapshot struct {
	RunID        string      `json:"run_id"`
	Status       string      `json:"status"`
	Strategy     string      `json:"strategy,omitempty"`
	Dimensions   Dimensions  `json:"dimensions"`
	Grid         [][]int     `json:"grid"`
	Traffic      [][]float64 `json:"traffic"`
	Conductivity [][]float64 `json:"conductivity"`
	Path         []Point     `json:"path"`
	Start        Point       `json:"start"`
	End          Point       `json:"end"`
}

// New captures g, the optional conductivity field and the optional path.
// Status is StatusSuccess when path is non-empty and StatusError otherwise.
func New(g *citymap.Grid, conductivity *citymap.Field, path citymap.Path) Snapshot {
	s := Snapshot{
		RunID:      uuid.NewString(),
		Status:     StatusError,
		Dimensions: Dimensions{Width: g.Width, Height: g.Height},
		Grid:       g.Layout(),
		Traffic:    g.TrafficMatrix(),
		Start:      PointOf(g.Start()),
		End:        PointOf(g.Goal()),
	}
	if conductivity != nil {
		s.Conductivity = conductivity.Rows()
	}
	if len(path) > 0 {
		s.Status = StatusSuccess
		s.Path = make([]Point, len(path))
		for i, c := range path {
			s.Path[i] = PointOf(c)
		}
	}
	return s
}

// Route returns the exported path as cells, or nil.
func (s Snapshot) Route() citymap.Path {
	if s.Path == nil {
		return nil
	}
	p := make(citymap.Path, len(s.Path))
	for i, pt := range s.Path {
		p[i] = pt.Cell()
	}
	return p
}

// Map rebuilds the grid described by the snapshot.
func (s Snapshot) Map() (*citymap.Grid, error) {
	if len(s.Grid) != s.Dimensions.Height || (len(s.Grid) > 0 && len(s.Grid[0]) != s.Dimensions.Width) {
		return nil, fmt.Errorf("%w: dimensions %dx%d do not match grid", ErrBadSnapshot, s.Dimensions.Width, s.Dimensions.Height)
	}
	var opts []citymap.Option
	if s.Traffic != nil {
		opts = append(opts, citymap.WithTraffic(s.Traffic))
	}
	g, err := citymap.NewGrid(s.Grid, s.Start.Cell(), s.End.Cell(), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	return g, nil
}

// Write encodes s as JSON to w.
func (s Snapshot) Write(w io.Writer) error {
	return json.NewEncoder(w).Encode(s)
}

// WriteFile writes s to the named file, creating or truncating it.
func (s Snapshot) WriteFile(name string) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()
	return s.Write(f)
}

// Read decodes a snapshot from r.
func Read(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	return s, nil
}

// ReadFile decodes the snapshot stored in the named file.
func ReadFile(name string) (Snapshot, error) {
	f, err := os.Open(name)
	if err != nil {
		return Snapshot{}, fmt.Errorf("export: %w", err)
	}
	defer f.Close()
	return Read(f)
}
