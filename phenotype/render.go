// Package phenotype interprets a phenotype program against a genotype,
// producing the initial world frame for simulation. Interpretation is a pure
// function: the same program and genotype always render the same frame.
package phenotype

import (
	"github.com/pthm-cable/petri/genome"
	"github.com/pthm-cable/petri/world"
)

// Render interprets the program against the genotype. The canvas starts
// all-dead; each draw operation shapes its stamp operand on a stamp-sized
// canvas, places and replicates it on a world-sized canvas, and composites
// the result onto the accumulating frame under its compose mode.
//
// Render assumes the program has passed genome.Validate.
func Render(p *genome.PhenotypeProgram, g *genome.Genotype) world.Frame {
	canvas := newBoard(world.Size)
	layer := newBoard(world.Size)
	layerSpare := newBoard(world.Size)
	sb := newBoard(world.StampSize)
	sbSpare := newBoard(world.StampSize)

	for d := range p.DrawOps {
		op := &p.DrawOps[d]
		if op.Compose == genome.ComposeNone {
			continue
		}

		// Shape the stamp on its own bounded canvas.
		stamp := op.Stamp.Resolve(g)
		sb.clear()
		for r := 0; r < world.StampSize; r++ {
			for c := 0; c < world.StampSize; c++ {
				sb.cells[r*world.StampSize+c] = stamp[r][c]
			}
		}
		shaped := runPipeline(sb, sbSpare, op.StampTransforms[:], g)

		// Place it against the full-size canvas.
		layer.clear()
		for r := 0; r < world.StampSize; r++ {
			for c := 0; c < world.StampSize; c++ {
				layer.cells[r*world.Size+c] = shaped.cells[r*world.StampSize+c]
			}
		}
		placed := runPipeline(layer, layerSpare, op.GlobalTransforms[:], g)

		composite(canvas, placed, op.Compose)

		// Pipelines may have swapped the ping-pong buffers.
		sb, sbSpare = shaped, other(shaped, sb, sbSpare)
		layer, layerSpare = placed, other(placed, layer, layerSpare)
	}

	var out world.Frame
	for r := 0; r < world.Size; r++ {
		for c := 0; c < world.Size; c++ {
			out[r][c] = canvas.cells[r*world.Size+c]
		}
	}
	return out
}

// RenderPhenotype renders the program against the zero genotype, showing the
// pattern the program produces on its own.
func RenderPhenotype(p *genome.PhenotypeProgram) world.Frame {
	var g genome.Genotype
	return Render(p, &g)
}

// runPipeline applies the non-NONE transforms in order, ping-ponging between
// b and spare. It returns the board holding the final result.
func runPipeline(b, spare *board, ops []genome.TransformOperation, g *genome.Genotype) *board {
	cur := b
	for i := range ops {
		op := &ops[i]
		if op.Type == genome.TransformNone {
			continue
		}
		fn := transformTable[op.Type]
		a0 := op.Args[0].Resolve(g)
		a1 := op.Args[1].Resolve(g)
		spare.clear()
		fn(spare, cur, a0, a1)
		cur, spare = spare, cur
	}
	return cur
}

// other returns whichever of a, b is not result.
func other(result, a, b *board) *board {
	if result == a {
		return b
	}
	return a
}

func composite(canvas, layer *board, mode genome.ComposeMode) {
	for i := range canvas.cells {
		a := canvas.cells[i] == world.Alive
		b := layer.cells[i] == world.Alive
		var on bool
		switch mode {
		case genome.ComposeOr:
			on = a || b
		case genome.ComposeXor:
			on = a != b
		case genome.ComposeAnd:
			on = a && b
		}
		if on {
			canvas.cells[i] = world.Alive
		} else {
			canvas.cells[i] = world.Dead
		}
	}
}
