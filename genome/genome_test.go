package genome

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/pthm-cable/petri/world"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *PhenotypeProgram)
		wantErr bool
	}{
		{"empty program", func(p *PhenotypeProgram) {}, false},
		{"library program", func(p *PhenotypeProgram) { *p = TiledStamp() }, false},
		{
			"stamp gene index out of range",
			func(p *PhenotypeProgram) {
				p.DrawOps[0].Compose = ComposeOr
				p.DrawOps[0].Stamp.GeneIndex = NumGenes
			},
			true,
		},
		{
			"transform arg gene index out of range",
			func(p *PhenotypeProgram) {
				*p = FreeStamp()
				p.DrawOps[0].GlobalTransforms[0].Args[1].GeneIndex = NumGenes + 3
			},
			true,
		},
		{
			"unknown compose mode",
			func(p *PhenotypeProgram) { p.DrawOps[1].Compose = ComposeMode(200) },
			true,
		},
		{
			"unknown transform type",
			func(p *PhenotypeProgram) {
				p.DrawOps[0].Compose = ComposeXor
				p.DrawOps[0].StampTransforms[2].Type = TransformType(99)
			},
			true,
		},
		{
			"unknown bias mode",
			func(p *PhenotypeProgram) {
				*p = FreeStamp()
				p.DrawOps[0].GlobalTransforms[0].Args[0].BiasMode = BiasMode(7)
			},
			true,
		},
		{
			"bad gene index behind a NONE compose is ignored",
			func(p *PhenotypeProgram) {
				p.DrawOps[0].Stamp.GeneIndex = NumGenes
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PhenotypeProgram
			tt.mutate(&p)
			err := Validate(&p)
			if tt.wantErr && !errors.Is(err, ErrConfig) {
				t.Errorf("Validate() = %v, want ErrConfig", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestLibraryProgramsValidate(t *testing.T) {
	for name, p := range Library() {
		if err := Validate(&p); err != nil {
			t.Errorf("library program %q fails validation: %v", name, err)
		}
	}
}

func TestScalarArgumentResolve(t *testing.T) {
	var g Genotype
	g.Scalars[2] = 1234

	raw := ScalarArgument{GeneIndex: 2, BiasMode: BiasNone}
	if got := raw.Resolve(&g); got != 1234 {
		t.Errorf("raw resolve = %d, want 1234", got)
	}

	fixed := ScalarArgument{GeneIndex: 2, Bias: 7, BiasMode: BiasFixedValue}
	if got := fixed.Resolve(&g); got != 7 {
		t.Errorf("fixed resolve = %d, want 7 (gene must be ignored)", got)
	}
}

func TestStampArgumentResolve(t *testing.T) {
	var g Genotype
	g.Stamps[1][3][3] = world.Alive

	raw := StampArgument{GeneIndex: 1}
	if got := raw.Resolve(&g); got[3][3] != world.Alive {
		t.Error("raw resolve should read the stamp gene")
	}

	var literal world.Stamp
	literal[0][0] = world.Alive
	fixed := StampArgument{GeneIndex: 1, Bias: literal, BiasMode: BiasFixedValue}
	got := fixed.Resolve(&g)
	if got[0][0] != world.Alive || got[3][3] != world.Dead {
		t.Error("fixed resolve should yield the literal stamp, not the gene")
	}
}

func TestRandomIsDeterministicPerStream(t *testing.T) {
	a := Random(rand.New(rand.NewPCG(7, 0)))
	b := Random(rand.New(rand.NewPCG(7, 0)))
	if a != b {
		t.Error("identical streams must draw identical genotypes")
	}
	c := Random(rand.New(rand.NewPCG(8, 0)))
	if a == c {
		t.Error("different streams should draw different genotypes")
	}
}
