package maze

import (
	"errors"
	"math/rand"
)

// ErrNilRand is returned when a generator is built without a source.
var ErrNilRand = errors.New("maze: nil random source")

// Grid is the write surface a generator needs.
type Grid interface {
	Size() (rows, cols int)
	SetWall(r, c int) error
	ClearWall(r, c int) error
}

// Skip reports cells a generator must leave untouched.
type Skip func(r, c int) bool

// Generator paints walls on g.
type Generator func(g Grid, skip Skip) error

// DefaultRandomCount is the wall count used by Random when count <= 0:
// six walls per cell along the longer side.
func DefaultRandomCount(rows, cols int) int {
	return max(rows, cols) * 6
}

// Random walls count cells picked uniformly at random. Picks may repeat, so
// fewer than count distinct walls can result.
func Random(rng *rand.Rand, count int) Generator {
	return func(g Grid, skip Skip) error {
		if rng == nil {
			return ErrNilRand
		}
		rows, cols := g.Size()
		n := count
		if n <= 0 {
			n = DefaultRandomCount(rows, cols)
		}
		for i := 0; i < n; i++ {
			r, c := rng.Intn(rows), rng.Intn(cols)
			if skip != nil && skip(r, c) {
				continue
			}
			if err := g.SetWall(r, c); err != nil {
				return err
			}
		}
		return nil
	}
}

// RecursiveDivision splits the grid with a wall line carrying one gap, then
// recurses into both halves. Walls sit at odd offsets and gaps at even ones
// inside each chamber, so a later wall never seals an earlier gap and every
// open cell stays reachable.
func RecursiveDivision(rng *rand.Rand) Generator {
	return func(g Grid, skip Skip) error {
		if rng == nil {
			return ErrNilRand
		}
		rows, cols := g.Size()
		d := divider{g: g, skip: skip, rng: rng}
		return d.divide(0, 0, rows-1, cols-1)
	}
}

type divider struct {
	g    Grid
	skip Skip
	rng  *rand.Rand
}

// divide handles the chamber [r0,r1]×[c0,c1], bounds inclusive.
func (d divider) divide(r0, c0, r1, c1 int) error {
	height, width := r1-r0+1, c1-c0+1
	if height < 3 && width < 3 {
		return nil
	}

	horizontal := height > width
	if height == width {
		horizontal = d.rng.Intn(2) == 0
	}
	if height < 3 {
		horizontal = false
	}
	if width < 3 {
		horizontal = true
	}

	if horizontal {
		wr := r0 + 1 + 2*d.rng.Intn((r1-r0)/2)
		gap := c0 + 2*d.rng.Intn((c1-c0)/2+1)
		for c := c0; c <= c1; c++ {
			if err := d.paint(wr, c, c == gap); err != nil {
				return err
			}
		}
		if err := d.divide(r0, c0, wr-1, c1); err != nil {
			return err
		}
		return d.divide(wr+1, c0, r1, c1)
	}

	wc := c0 + 1 + 2*d.rng.Intn((c1-c0)/2)
	gap := r0 + 2*d.rng.Intn((r1-r0)/2+1)
	for r := r0; r <= r1; r++ {
		if err := d.paint(r, wc, r == gap); err != nil {
			return err
		}
	}
	if err := d.divide(r0, c0, r1, wc-1); err != nil {
		return err
	}
	return d.divide(r0, wc+1, r1, c1)
}

func (d divider) paint(r, c int, open bool) error {
	if d.skip != nil && d.skip(r, c) {
		return nil
	}
	if open {
		return d.g.ClearWall(r, c)
	}
	return d.g.SetWall(r, c)
}
