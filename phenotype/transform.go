package phenotype

import (
	"github.com/pthm-cable/petri/genome"
	"github.com/pthm-cable/petri/world"
)

// board is a square working canvas. The transform vocabulary is
// size-agnostic: the same operations run on the stamp-sized canvas while the
// stamp is shaped and on the world-sized canvas while it is placed.
type board struct {
	n     int
	cells []world.Cell
}

func newBoard(n int) *board {
	return &board{n: n, cells: make([]world.Cell, n*n)}
}

func (b *board) get(row, col int) world.Cell {
	return b.cells[world.Wrap(row, b.n)*b.n+world.Wrap(col, b.n)]
}

func (b *board) set(row, col int, c world.Cell) {
	b.cells[world.Wrap(row, b.n)*b.n+world.Wrap(col, b.n)] = c
}

func (b *board) clear() {
	for i := range b.cells {
		b.cells[i] = world.Dead
	}
}

func (b *board) copyFrom(src *board) {
	copy(b.cells, src.cells)
}

// orShifted merges a copy of src shifted by (dx columns, dy rows) into dst.
func orShifted(dst, src *board, dx, dy int) {
	n := src.n
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if src.cells[r*n+c] == world.Alive {
				dst.set(r+dy, c+dx, world.Alive)
			}
		}
	}
}

// transformFunc applies one transform, reading src and writing dst. dst is
// cleared before the call. Arguments arrive already resolved against the
// genotype; each transform reduces them modulo its own canvas size.
type transformFunc func(dst, src *board, a0, a1 genome.Scalar)

// transformTable dispatches on the transform tag. TransformNone never
// reaches the table; pipelines skip NONE slots.
var transformTable = map[genome.TransformType]transformFunc{
	genome.TransformTranslate: applyTranslate,
	genome.TransformRotate:    applyRotate,
	genome.TransformFlip:      applyFlip,
	genome.TransformMirror:    applyMirror,
	genome.TransformScale:     applyScale,
	genome.TransformCrop:      applyCrop,
	genome.TransformTile:      applyTile,
	genome.TransformArray1D:   applyArray1D,
	genome.TransformArray2D:   applyArray2D,
	genome.TransformCopy:      applyCopy,
	genome.TransformQuarter:   applyQuarter,
	genome.TransformDraw:      applyDraw,
	genome.TransformTest:      applyTest,
}

func applyTranslate(dst, src *board, a0, a1 genome.Scalar) {
	dx := int(a0) % src.n
	dy := int(a1) % src.n
	orShifted(dst, src, dx, dy)
}

func applyRotate(dst, src *board, a0, _ genome.Scalar) {
	n := src.n
	k := int(a0) % 4
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			tr, tc := r, c
			for i := 0; i < k; i++ {
				tr, tc = tc, n-1-tr
			}
			dst.cells[tr*n+tc] = src.cells[r*n+c]
		}
	}
}

func applyFlip(dst, src *board, a0, _ genome.Scalar) {
	n := src.n
	axis := int(a0) % 3
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			tr, tc := r, c
			if axis == 0 || axis == 2 {
				tc = n - 1 - c
			}
			if axis == 1 || axis == 2 {
				tr = n - 1 - r
			}
			dst.cells[tr*n+tc] = src.cells[r*n+c]
		}
	}
}

func applyMirror(dst, src *board, a0, _ genome.Scalar) {
	n := src.n
	vertical := int(a0)%2 == 1
	dst.copyFrom(src)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if src.cells[r*n+c] != world.Alive {
				continue
			}
			if vertical {
				dst.cells[(n-1-r)*n+c] = world.Alive
			} else {
				dst.cells[r*n+(n-1-c)] = world.Alive
			}
		}
	}
}

func applyScale(dst, src *board, a0, _ genome.Scalar) {
	n := src.n
	f := int(a0) % n
	if f == 0 {
		f = 1
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			dst.cells[r*n+c] = src.cells[(r/f)*n+(c/f)]
		}
	}
}

func applyCrop(dst, src *board, a0, a1 genome.Scalar) {
	n := src.n
	w := int(a0) % n
	h := int(a1) % n
	if w == 0 {
		w = n
	}
	if h == 0 {
		h = n
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			dst.cells[r*n+c] = src.cells[r*n+c]
		}
	}
}

func applyTile(dst, src *board, a0, _ genome.Scalar) {
	n := src.n
	p := int(a0) % n
	if p == 0 {
		p = n
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			dst.cells[r*n+c] = src.cells[(r%p)*n+(c%p)]
		}
	}
}

func applyArray1D(dst, src *board, a0, a1 genome.Scalar) {
	n := src.n
	dx := int(a0) % n
	dy := int(a1) % n
	step := max(dx, dy)
	if step == 0 {
		dst.copyFrom(src)
		return
	}
	reps := n / step
	for k := 0; k <= reps; k++ {
		orShifted(dst, src, k*dx, k*dy)
	}
}

func applyArray2D(dst, src *board, a0, a1 genome.Scalar) {
	n := src.n
	dx := int(a0) % n
	dy := int(a1) % n
	repsX, repsY := 0, 0
	if dx > 0 {
		repsX = n / dx
	}
	if dy > 0 {
		repsY = n / dy
	}
	for j := 0; j <= repsY; j++ {
		for i := 0; i <= repsX; i++ {
			orShifted(dst, src, i*dx, j*dy)
		}
	}
}

func applyCopy(dst, src *board, a0, a1 genome.Scalar) {
	dst.copyFrom(src)
	orShifted(dst, src, int(a0)%src.n, int(a1)%src.n)
}

func applyQuarter(dst, src *board, a0, _ genome.Scalar) {
	n := src.n
	q := int(a0) % 4
	half := n / 2
	r0, c0 := 0, 0
	if q == 1 || q == 3 {
		c0 = half
	}
	if q == 2 || q == 3 {
		r0 = half
	}
	for r := r0; r < r0+half; r++ {
		for c := c0; c < c0+half; c++ {
			dst.cells[r*n+c] = src.cells[r*n+c]
		}
	}
}

func applyDraw(dst, src *board, a0, a1 genome.Scalar) {
	dst.copyFrom(src)
	dst.set(int(a1)%src.n, int(a0)%src.n, world.Alive)
}

// applyTest overwrites the canvas with a parity checkerboard, a fixed
// diagnostic pattern with no gene influence.
func applyTest(dst, src *board, _, _ genome.Scalar) {
	n := src.n
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if (r+c)%2 == 0 {
				dst.cells[r*n+c] = world.Alive
			}
		}
	}
}
