package genome

import "github.com/pthm-cable/petri/world"

// geneArg builds an argument that reads the scalar gene at index i.
func geneArg(i uint8) ScalarArgument {
	return ScalarArgument{GeneIndex: i, BiasMode: BiasNone}
}

// fixedArg builds an argument that always yields v.
func fixedArg(v Scalar) ScalarArgument {
	return ScalarArgument{Bias: v, BiasMode: BiasFixedValue}
}

// FreeStamp draws one gene-sourced stamp at a gene-chosen offset. The
// smallest useful program: evolution controls the pattern and its position.
func FreeStamp() PhenotypeProgram {
	var p PhenotypeProgram
	p.DrawOps[0] = DrawOperation{
		Compose: ComposeOr,
		Stamp:   StampArgument{GeneIndex: 0},
	}
	p.DrawOps[0].GlobalTransforms[0] = TransformOperation{
		Type: TransformTranslate,
		Args: [MaxArguments]ScalarArgument{geneArg(0), geneArg(1)},
	}
	return p
}

// TiledStamp repeats one gene-sourced stamp across the whole world.
func TiledStamp() PhenotypeProgram {
	var p PhenotypeProgram
	p.DrawOps[0] = DrawOperation{
		Compose: ComposeOr,
		Stamp:   StampArgument{GeneIndex: 0},
	}
	p.DrawOps[0].GlobalTransforms[0] = TransformOperation{
		Type: TransformTile,
		Args: [MaxArguments]ScalarArgument{fixedArg(world.StampSize)},
	}
	return p
}

// MirroredStamp forces left-right symmetry onto the stamp before placing it
// at a gene-chosen offset. Useful against the symmetry goal.
func MirroredStamp() PhenotypeProgram {
	var p PhenotypeProgram
	p.DrawOps[0] = DrawOperation{
		Compose: ComposeOr,
		Stamp:   StampArgument{GeneIndex: 0},
	}
	p.DrawOps[0].StampTransforms[0] = TransformOperation{
		Type: TransformMirror,
		Args: [MaxArguments]ScalarArgument{fixedArg(0)},
	}
	p.DrawOps[0].GlobalTransforms[0] = TransformOperation{
		Type: TransformTranslate,
		Args: [MaxArguments]ScalarArgument{geneArg(0), geneArg(1)},
	}
	return p
}

// InterferencePair composes a tiled base layer with a second gene-spaced
// replicated layer under XOR, producing sparse interference patterns.
func InterferencePair() PhenotypeProgram {
	var p PhenotypeProgram
	p.DrawOps[0] = DrawOperation{
		Compose: ComposeOr,
		Stamp:   StampArgument{GeneIndex: 0},
	}
	p.DrawOps[0].GlobalTransforms[0] = TransformOperation{
		Type: TransformTile,
		Args: [MaxArguments]ScalarArgument{fixedArg(world.StampSize)},
	}
	p.DrawOps[1] = DrawOperation{
		Compose: ComposeXor,
		Stamp:   StampArgument{GeneIndex: 1},
	}
	p.DrawOps[1].GlobalTransforms[0] = TransformOperation{
		Type: TransformArray2D,
		Args: [MaxArguments]ScalarArgument{geneArg(2), geneArg(3)},
	}
	return p
}

// Library returns the canned programs by name, for drivers and tools.
func Library() map[string]PhenotypeProgram {
	return map[string]PhenotypeProgram{
		"free":         FreeStamp(),
		"tiled":        TiledStamp(),
		"mirrored":     MirroredStamp(),
		"interference": InterferencePair(),
	}
}
