package genome

import (
	"errors"
	"fmt"
)

// ErrConfig reports a malformed phenotype program. Programs are validated
// when they are loaded into a simulator; a bad program is rejected outright
// rather than clamped or truncated at render time.
var ErrConfig = errors.New("invalid phenotype program")

// Validate checks every enum tag and gene index in the program against the
// fixed capacities. It returns nil for a well-formed program and an error
// wrapping ErrConfig otherwise.
func Validate(p *PhenotypeProgram) error {
	for d := range p.DrawOps {
		op := &p.DrawOps[d]
		if op.Compose >= numComposeModes {
			return fmt.Errorf("%w: draw op %d: unknown compose mode %d", ErrConfig, d, op.Compose)
		}
		if op.Compose == ComposeNone {
			continue
		}
		if err := validateStampArg(op.Stamp); err != nil {
			return fmt.Errorf("%w: draw op %d: stamp: %v", ErrConfig, d, err)
		}
		if err := validatePipeline(op.StampTransforms[:]); err != nil {
			return fmt.Errorf("%w: draw op %d: stamp transforms: %v", ErrConfig, d, err)
		}
		if err := validatePipeline(op.GlobalTransforms[:]); err != nil {
			return fmt.Errorf("%w: draw op %d: global transforms: %v", ErrConfig, d, err)
		}
	}
	return nil
}

func validatePipeline(ops []TransformOperation) error {
	for i := range ops {
		t := &ops[i]
		if t.Type >= numTransformTypes {
			return fmt.Errorf("transform %d: unknown type %d", i, t.Type)
		}
		// Arguments are checked even in NONE slots: a bad gene index is a
		// malformed program whether or not the slot is active.
		for a := range t.Args {
			if err := validateScalarArg(t.Args[a]); err != nil {
				return fmt.Errorf("transform %d (%s): arg %d: %v", i, t.Type, a, err)
			}
		}
	}
	return nil
}

func validateScalarArg(a ScalarArgument) error {
	if a.BiasMode >= numBiasModes {
		return fmt.Errorf("unknown bias mode %d", a.BiasMode)
	}
	if int(a.GeneIndex) >= NumGenes {
		return fmt.Errorf("gene index %d out of range [0, %d)", a.GeneIndex, NumGenes)
	}
	return nil
}

func validateStampArg(a StampArgument) error {
	if a.BiasMode >= numBiasModes {
		return fmt.Errorf("unknown bias mode %d", a.BiasMode)
	}
	if int(a.GeneIndex) >= NumGenes {
		return fmt.Errorf("gene index %d out of range [0, %d)", a.GeneIndex, NumGenes)
	}
	return nil
}
