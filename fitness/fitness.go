// Package fitness scores completed simulation trajectories against a chosen
// goal. Scores are integers scaled so that strict dominance in the rewarded
// quantity yields a strictly higher score; the scale is consistent within a
// goal but not comparable across goals. An all-dead trajectory always scores
// zero, never errors.
package fitness

import (
	"fmt"

	"github.com/pthm-cable/petri/world"
)

// Fitness is the score of one organism's trajectory. Higher is better.
type Fitness uint32

// Goal selects the scoring rule applied to a trajectory.
type Goal uint8

const (
	Explode Goal = iota
	Gliders
	LeftToRight
	StillLife
	Symmetry
	ThreeCycle
	TwoCycle

	numGoals
)

var goalNames = [numGoals]string{
	"EXPLODE", "GLIDERS", "LEFT_TO_RIGHT", "STILL_LIFE", "SYMMETRY",
	"THREE_CYCLE", "TWO_CYCLE",
}

func (g Goal) String() string {
	if g < numGoals {
		return goalNames[g]
	}
	return "INVALID"
}

// ParseGoal resolves a goal name as used in config files and CLI flags.
func ParseGoal(s string) (Goal, error) {
	for g, name := range goalNames {
		if s == name {
			return Goal(g), nil
		}
	}
	return 0, fmt.Errorf("unknown fitness goal %q", s)
}

// Score evaluates the trajectory against the goal. The trajectory must hold
// the rendered initial frame followed by every stepped frame.
func Score(traj []world.Frame, goal Goal) Fitness {
	switch goal {
	case Explode:
		return scoreExplode(traj)
	case Gliders:
		return scoreGliders(traj)
	case LeftToRight:
		return scoreLeftToRight(traj)
	case StillLife:
		return scoreStillLife(traj)
	case Symmetry:
		return scoreSymmetry(traj)
	case ThreeCycle:
		return scoreCycle(traj, 3)
	case TwoCycle:
		return scoreCycle(traj, 2)
	}
	return 0
}

// scoreExplode rewards net growth in live-cell count from the initial frame
// to the final one.
func scoreExplode(traj []world.Frame) Fitness {
	first := traj[0].LiveCount()
	last := traj[len(traj)-1].LiveCount()
	return Fitness(10000 * last / (1 + first))
}

// stillWindow is the number of late frames a still life must hold steady.
const stillWindow = 4

// scoreStillLife rewards a stable, nonzero late pattern: live cells that are
// unchanged across the settling window, penalized by any cell still churning.
func scoreStillLife(traj []world.Frame) Fitness {
	last := len(traj) - 1
	final := &traj[last]
	static, churn := 0, 0
	for r := 0; r < world.Size; r++ {
		for c := 0; c < world.Size; c++ {
			same := true
			for k := 1; k < stillWindow; k++ {
				if traj[last-k][r][c] != final[r][c] {
					same = false
					break
				}
			}
			switch {
			case same && final[r][c] == world.Alive:
				static++
			case !same:
				churn++
			}
		}
	}
	return Fitness(100 * static / (1 + churn))
}

// scoreCycle rewards exact periodicity of the given period past a settling
// window: cells that repeat with lag p over the last 3p frames without being
// constant, penalized by live cells that do not participate.
func scoreCycle(traj []world.Frame, p int) Fitness {
	last := len(traj) - 1
	window := 3 * p
	cycling, noise := 0, 0
	for r := 0; r < world.Size; r++ {
		for c := 0; c < world.Size; c++ {
			repeating, constant := true, true
			for k := 0; k < window-p; k++ {
				if traj[last-k][r][c] != traj[last-k-p][r][c] {
					repeating = false
					break
				}
			}
			for k := 1; k < window; k++ {
				if traj[last-k][r][c] != traj[last][r][c] {
					constant = false
					break
				}
			}
			switch {
			case repeating && !constant:
				cycling++
			case !repeating && traj[last][r][c] == world.Alive:
				noise++
			}
		}
	}
	return Fitness(100 * cycling / (1 + noise))
}

// gliderPeriod is the number of steps after which a glider repeats its shape
// translated by one cell diagonally.
const gliderPeriod = 4

// scoreGliders rewards live mass that reappears one diagonal cell away after
// a full glider period with shape and count preserved.
func scoreGliders(traj []world.Frame) Fitness {
	last := len(traj) - 1
	final := &traj[last]
	earlier := &traj[last-gliderPeriod]

	best := 0
	for _, d := range [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}} {
		matched, mismatched := 0, 0
		for r := 0; r < world.Size; r++ {
			for c := 0; c < world.Size; c++ {
				now := final[r][c] == world.Alive
				then := earlier.Get(r-d[0], c-d[1]) == world.Alive
				switch {
				case now && then:
					matched++
				case now != then:
					mismatched++
				}
			}
		}
		if score := 10000 * matched / (1 + mismatched); score > best {
			best = score
		}
	}
	return Fitness(best)
}

// scoreLeftToRight rewards live mass that starts in the left half and ends
// in the right half.
func scoreLeftToRight(traj []world.Frame) Fitness {
	first := &traj[0]
	final := &traj[len(traj)-1]
	half := world.Size / 2

	var leftStart, rightStart, leftEnd, rightEnd int
	for r := 0; r < world.Size; r++ {
		for c := 0; c < world.Size; c++ {
			if first[r][c] == world.Alive {
				if c < half {
					leftStart++
				} else {
					rightStart++
				}
			}
			if final[r][c] == world.Alive {
				if c < half {
					leftEnd++
				} else {
					rightEnd++
				}
			}
		}
	}
	return Fitness(10000 * (leftStart + rightEnd) / (1 + rightStart + leftEnd))
}

// scoreSymmetry rewards invariance of the final live pattern under
// reflection about the vertical and horizontal center lines.
func scoreSymmetry(traj []world.Frame) Fitness {
	final := &traj[len(traj)-1]
	symmetric, asymmetric := 0, 0
	for r := 0; r < world.Size; r++ {
		for c := 0; c < world.Size; c++ {
			if final[r][c] != world.Alive {
				continue
			}
			if final[r][world.Size-1-c] == world.Alive {
				symmetric++
			} else {
				asymmetric++
			}
			if final[world.Size-1-r][c] == world.Alive {
				symmetric++
			} else {
				asymmetric++
			}
		}
	}
	return Fitness(10000 * symmetric / (1 + asymmetric))
}
