// Package life advances world frames under Conway's Game-of-Life rule with
// toroidal wrapping. This is the dominant cost center of a run, so the
// stepper counts neighbors with sliding-window row sums rather than the
// naive 8-neighbor loop, and the recording path never allocates per step.
package life

import "github.com/pthm-cable/petri/world"

// NumSteps is the fixed simulation horizon. A trajectory holds the initial
// frame plus NumSteps stepped frames.
const NumSteps = 100

// Step advances src by one generation into dst. The update is synchronous:
// dst is computed entirely from src, so the two must not alias.
func Step(src, dst *world.Frame) {
	const n = world.Size

	// Horizontal window sums: rowSum[r][c] counts live cells among
	// (r, c-1), (r, c), (r, c+1) with wrap-around.
	var rowSum [n][n]uint8
	for r := 0; r < n; r++ {
		row := &src[r]
		for c := 0; c < n; c++ {
			left := (c + n - 1) % n
			right := (c + 1) % n
			rowSum[r][c] = uint8(row[left])&1 + uint8(row[c])&1 + uint8(row[right])&1
		}
	}

	// Vertical sum of three row windows gives the 3x3 block count; subtract
	// the center to get the 8-neighbor count.
	for r := 0; r < n; r++ {
		up := (r + n - 1) % n
		down := (r + 1) % n
		for c := 0; c < n; c++ {
			neighbors := rowSum[up][c] + rowSum[r][c] + rowSum[down][c] - uint8(src[r][c])&1
			if neighbors == 3 || (neighbors == 2 && src[r][c] == world.Alive) {
				dst[r][c] = world.Alive
			} else {
				dst[r][c] = world.Dead
			}
		}
	}
}

// Simulate advances the initial frame for the full horizon and returns only
// the final frame.
func Simulate(initial world.Frame) world.Frame {
	cur, next := initial, world.Frame{}
	for i := 0; i < NumSteps; i++ {
		Step(&cur, &next)
		cur, next = next, cur
	}
	return cur
}

// NewTrajectory allocates a trajectory buffer for one organism: the initial
// frame plus every stepped frame.
func NewTrajectory() []world.Frame {
	return make([]world.Frame, NumSteps+1)
}

// Record simulates the initial frame with full trajectory retention into
// traj, which must hold NumSteps+1 frames. traj[0] is the initial frame.
func Record(initial world.Frame, traj []world.Frame) {
	traj[0] = initial
	for i := 1; i <= NumSteps; i++ {
		Step(&traj[i-1], &traj[i])
	}
}

// SimulatePhenotype records the full trajectory of an initial frame into a
// fresh buffer.
func SimulatePhenotype(initial world.Frame) []world.Frame {
	traj := NewTrajectory()
	Record(initial, traj)
	return traj
}
