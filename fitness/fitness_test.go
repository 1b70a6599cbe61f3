package fitness

import (
	"testing"

	"github.com/pthm-cable/petri/life"
	"github.com/pthm-cable/petri/world"
)

func glider(r, c int) world.Frame {
	var f world.Frame
	f.Set(r, c+1, world.Alive)
	f.Set(r+1, c+2, world.Alive)
	f.Set(r+2, c, world.Alive)
	f.Set(r+2, c+1, world.Alive)
	f.Set(r+2, c+2, world.Alive)
	return f
}

func block(r, c int) world.Frame {
	var f world.Frame
	f.Set(r, c, world.Alive)
	f.Set(r, c+1, world.Alive)
	f.Set(r+1, c, world.Alive)
	f.Set(r+1, c+1, world.Alive)
	return f
}

func blinker(r, c int) world.Frame {
	var f world.Frame
	f.Set(r, c, world.Alive)
	f.Set(r, c+1, world.Alive)
	f.Set(r, c+2, world.Alive)
	return f
}

// fill returns a frame with count live cells packed row-major from (0, 0).
func fill(count int) world.Frame {
	var f world.Frame
	for i := 0; i < count; i++ {
		f[i/world.Size][i%world.Size] = world.Alive
	}
	return f
}

func TestAllDeadScoresZeroForEveryGoal(t *testing.T) {
	traj := make([]world.Frame, life.NumSteps+1)
	goals := []Goal{Explode, Gliders, LeftToRight, StillLife, Symmetry, ThreeCycle, TwoCycle}
	for _, goal := range goals {
		t.Run(goal.String(), func(t *testing.T) {
			if got := Score(traj, goal); got != 0 {
				t.Errorf("all-dead trajectory scored %d, want 0", got)
			}
		})
	}
}

func TestExplodeMonotonicInFinalCount(t *testing.T) {
	base := make([]world.Frame, life.NumSteps+1)
	base[0] = fill(4)

	grew := make([]world.Frame, life.NumSteps+1)
	copy(grew, base)

	base[life.NumSteps] = fill(40)
	grew[life.NumSteps] = fill(41)

	lo, hi := Score(base, Explode), Score(grew, Explode)
	if hi <= lo {
		t.Errorf("one extra final live cell must score strictly higher: %d vs %d", hi, lo)
	}
}

func TestStillLifePrefersStablePatterns(t *testing.T) {
	blockTraj := life.SimulatePhenotype(block(10, 10))
	blinkerTraj := life.SimulatePhenotype(blinker(5, 5))

	blockScore := Score(blockTraj, StillLife)
	blinkerScore := Score(blinkerTraj, StillLife)

	if blockScore == 0 {
		t.Error("a stable block must score above zero")
	}
	if blockScore <= blinkerScore {
		t.Errorf("block (%d) should beat blinker (%d) on STILL_LIFE", blockScore, blinkerScore)
	}
}

func TestTwoCycleRewardsBlinker(t *testing.T) {
	blinkerTraj := life.SimulatePhenotype(blinker(5, 5))
	blockTraj := life.SimulatePhenotype(block(10, 10))

	if got := Score(blinkerTraj, TwoCycle); got == 0 {
		t.Error("blinker must score above zero on TWO_CYCLE")
	}
	if got := Score(blockTraj, TwoCycle); got != 0 {
		t.Errorf("still block scored %d on TWO_CYCLE, want 0", got)
	}
}

func TestThreeCycleExactPeriod(t *testing.T) {
	// Synthetic period-3 oscillation of one cell over the settling window.
	traj := make([]world.Frame, life.NumSteps+1)
	for i := range traj {
		if i%3 == (life.NumSteps % 3) {
			traj[i][0][0] = world.Alive
		}
	}

	if got := Score(traj, ThreeCycle); got == 0 {
		t.Error("exact period-3 cell must score above zero on THREE_CYCLE")
	}
	if got := Score(traj, TwoCycle); got != 0 {
		t.Errorf("period-3 cell scored %d on TWO_CYCLE, want 0", got)
	}
}

func TestGlidersPreferTranslation(t *testing.T) {
	gliderTraj := life.SimulatePhenotype(glider(10, 10))
	blockTraj := life.SimulatePhenotype(block(10, 10))

	gliderScore := Score(gliderTraj, Gliders)
	blockScore := Score(blockTraj, Gliders)

	if gliderScore == 0 {
		t.Error("glider must score above zero on GLIDERS")
	}
	if gliderScore <= blockScore {
		t.Errorf("glider (%d) should beat block (%d) on GLIDERS", gliderScore, blockScore)
	}
}

func TestLeftToRightRewardsMigration(t *testing.T) {
	migrated := make([]world.Frame, life.NumSteps+1)
	for i := 0; i < 5; i++ {
		migrated[0].Set(10+i, 5, world.Alive)                   // left half at start
		migrated[life.NumSteps].Set(10+i, world.Size-5, world.Alive) // right half at end
	}

	stayed := make([]world.Frame, life.NumSteps+1)
	for i := 0; i < 5; i++ {
		stayed[0].Set(10+i, 5, world.Alive)
		stayed[life.NumSteps].Set(10+i, 5, world.Alive)
	}

	m, s := Score(migrated, LeftToRight), Score(stayed, LeftToRight)
	if m <= s {
		t.Errorf("migration (%d) should beat staying left (%d)", m, s)
	}
}

func TestSymmetryRewardsMirroredMass(t *testing.T) {
	symmetric := make([]world.Frame, life.NumSteps+1)
	final := &symmetric[life.NumSteps]
	final.Set(10, 10, world.Alive)
	final.Set(10, world.Size-11, world.Alive)
	final.Set(world.Size-11, 10, world.Alive)
	final.Set(world.Size-11, world.Size-11, world.Alive)

	lopsided := make([]world.Frame, life.NumSteps+1)
	lopsided[life.NumSteps].Set(1, 2, world.Alive)

	sym, lop := Score(symmetric, Symmetry), Score(lopsided, Symmetry)
	if sym == 0 {
		t.Error("fully mirrored mass must score above zero on SYMMETRY")
	}
	if sym <= lop {
		t.Errorf("mirrored mass (%d) should beat lopsided mass (%d)", sym, lop)
	}
}

func TestParseGoal(t *testing.T) {
	for g := Goal(0); g < numGoals; g++ {
		parsed, err := ParseGoal(g.String())
		if err != nil {
			t.Errorf("ParseGoal(%q) failed: %v", g.String(), err)
		}
		if parsed != g {
			t.Errorf("ParseGoal(%q) = %v, want %v", g.String(), parsed, g)
		}
	}
	if _, err := ParseGoal("SPIRALS"); err == nil {
		t.Error("ParseGoal should reject unknown goal names")
	}
}
