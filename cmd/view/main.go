// Package main provides a trajectory viewer: it renders one organism under a
// library program and plays its simulation back with adjustable speed.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/evolve"
	"github.com/pthm-cable/petri/genome"
	"github.com/pthm-cable/petri/life"
	"github.com/pthm-cable/petri/rng"
	"github.com/pthm-cable/petri/world"
)

const panelHeight = 50

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	programName := flag.String("program", "", "Program library entry (empty = use config)")
	seed := flag.Uint64("seed", 0, "Genotype seed (0 = time-based)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	name := cfg.Run.Program
	if *programName != "" {
		name = *programName
	}
	program, ok := genome.Library()[name]
	if !ok {
		slog.Error("unknown program", "program", name)
		os.Exit(1)
	}

	genotypeSeed := *seed
	if genotypeSeed == 0 {
		genotypeSeed = uint64(time.Now().UnixNano())
	}
	genotype := genome.Random(rng.New(genotypeSeed).Sub(0))
	traj := evolve.SimulateOrganism(&program, &genotype)

	px := int32(cfg.Viewer.CellPixels)
	width := int32(world.Size) * px
	height := int32(world.Size)*px + panelHeight

	rl.InitWindow(width, height, fmt.Sprintf("petri - %s (seed %d)", name, genotypeSeed))
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Viewer.TargetFPS))

	speed := float32(cfg.Viewer.StepsPerSecond)
	playing := true
	var cursor float32

	for !rl.WindowShouldClose() {
		if playing {
			cursor += rl.GetFrameTime() * speed
			for cursor >= float32(len(traj)) {
				cursor -= float32(len(traj))
			}
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			playing = !playing
		}
		if rl.IsKeyPressed(rl.KeyRight) {
			cursor = float32((int(cursor) + 1) % len(traj))
		}
		if rl.IsKeyPressed(rl.KeyLeft) {
			cursor = float32((int(cursor) + len(traj) - 1) % len(traj))
		}

		step := int(cursor)
		frame := &traj[step]

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		for r := 0; r < world.Size; r++ {
			for c := 0; c < world.Size; c++ {
				if frame[r][c] == world.Alive {
					rl.DrawRectangle(int32(c)*px, int32(r)*px, px, px, rl.RayWhite)
				}
			}
		}

		panelY := float32(world.Size) * float32(px)
		rl.DrawText(fmt.Sprintf("step %d/%d  alive %d", step, life.NumSteps, frame.LiveCount()),
			10, int32(panelY)+8, 10, rl.Green)

		speed = gui.SliderBar(
			rl.Rectangle{X: 180, Y: panelY + 10, Width: 160, Height: 20},
			"speed", fmt.Sprintf("%.0f/s", speed), speed, 1, 60)

		if gui.Button(rl.Rectangle{X: 360, Y: panelY + 10, Width: 80, Height: 20},
			pauseLabel(playing)) {
			playing = !playing
		}

		rl.EndDrawing()
	}
}

func pauseLabel(playing bool) string {
	if playing {
		return "Pause"
	}
	return "Play"
}
