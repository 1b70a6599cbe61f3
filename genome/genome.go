// Package genome defines the fixed-layout gene container and the phenotype
// program types that interpret genes into an initial world pattern.
//
// All collections here are bounded: a program holds at most MaxDraws draw
// operations, each with at most MaxTransforms transforms per pipeline and
// MaxArguments arguments per transform. Unused slots are tagged NONE and
// skipped by the interpreter; nothing grows at runtime.
package genome

import "github.com/pthm-cable/petri/world"

const (
	// NumGenes is the number of scalar genes and, independently, the number
	// of stamp genes in every genotype.
	NumGenes = 4

	// MaxDraws is the maximum number of draw operations in a program.
	MaxDraws = 4

	// MaxTransforms is the maximum pipeline length for both the global and
	// the stamp transform lists of a draw operation.
	MaxTransforms = 3

	// MaxArguments is the maximum number of arguments per transform.
	MaxArguments = 2
)

// Scalar is one numeric gene value.
type Scalar uint32

// Genotype is an individual's gene data: an ordered sequence of scalar genes
// and an ordered sequence of stamp genes. Genotypes are value types and are
// never mutated in place; reproduction produces new instances.
type Genotype struct {
	Scalars [NumGenes]Scalar
	Stamps  [NumGenes]world.Stamp
}

// BiasMode selects how an argument resolves its operand.
type BiasMode uint8

const (
	// BiasNone reads the raw value of the gene at GeneIndex.
	BiasNone BiasMode = iota
	// BiasFixedValue ignores the genotype and always yields the Bias field.
	BiasFixedValue

	numBiasModes
)

// ComposeMode is the boolean rule for merging a drawn layer onto the canvas.
type ComposeMode uint8

const (
	// ComposeNone marks a draw operation slot as unused.
	ComposeNone ComposeMode = iota
	ComposeOr
	ComposeXor
	ComposeAnd

	numComposeModes
)

// TransformType tags one pipeline step from the closed transform vocabulary.
type TransformType uint8

const (
	// TransformNone marks a transform slot as unused.
	TransformNone TransformType = iota
	TransformArray1D
	TransformArray2D
	TransformCopy
	TransformCrop
	TransformDraw
	TransformFlip
	TransformMirror
	TransformQuarter
	TransformRotate
	TransformScale
	TransformTest
	TransformTile
	TransformTranslate

	numTransformTypes
)

var transformNames = [numTransformTypes]string{
	"NONE", "ARRAY_1D", "ARRAY_2D", "COPY", "CROP", "DRAW", "FLIP",
	"MIRROR", "QUARTER", "ROTATE", "SCALE", "TEST", "TILE", "TRANSLATE",
}

func (t TransformType) String() string {
	if t < numTransformTypes {
		return transformNames[t]
	}
	return "INVALID"
}

// ScalarArgument resolves a numeric operand from a gene or a fixed constant.
type ScalarArgument struct {
	GeneIndex uint8
	Bias      Scalar
	BiasMode  BiasMode
}

// Resolve returns the operand value for the given genotype.
func (a ScalarArgument) Resolve(g *Genotype) Scalar {
	if a.BiasMode == BiasFixedValue {
		return a.Bias
	}
	return g.Scalars[a.GeneIndex]
}

// StampArgument resolves a stamp-shaped operand from a gene or a fixed
// literal pattern.
type StampArgument struct {
	GeneIndex uint8
	Bias      world.Stamp
	BiasMode  BiasMode
}

// Resolve returns the operand stamp for the given genotype.
func (a StampArgument) Resolve(g *Genotype) world.Stamp {
	if a.BiasMode == BiasFixedValue {
		return a.Bias
	}
	return g.Stamps[a.GeneIndex]
}

// TransformOperation is one step of a transform pipeline.
type TransformOperation struct {
	Type TransformType
	Args [MaxArguments]ScalarArgument
}

// DrawOperation is one compositional layer of a program: a stamp operand,
// a pipeline shaping the stamp on its own canvas, a pipeline placing and
// replicating the result against the world canvas, and the compose rule.
type DrawOperation struct {
	Compose          ComposeMode
	Stamp            StampArgument
	GlobalTransforms [MaxTransforms]TransformOperation
	StampTransforms  [MaxTransforms]TransformOperation
}

// PhenotypeProgram is a genotype-independent recipe for interpreting any
// genotype into an initial frame. One program is fixed per species for the
// duration of a run.
type PhenotypeProgram struct {
	DrawOps [MaxDraws]DrawOperation
}
