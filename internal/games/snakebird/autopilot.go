package snakebird

import (
	"math"

	"github.com/vovakirdan/snakebird/internal/config"
	"github.com/vovakirdan/snakebird/internal/core"
)

// Autopilot returns a steering frame for the given snapshot.
// In the pipe world it lines up with the next gap, aiming for the portal
// window of unused portals. In the bonus world it eats the nearest good frog
// while time allows and otherwise heads for the exit.
// Bonus time is budgeted at autopilotRate ticks per second.
func Autopilot(s State, cfg config.SnakeBirdConfig) core.InputFrame {
	return steer(s.Player.Pos, autopilotTarget(s, cfg), cfg.Player.Step)
}

const autopilotRate = 60

func autopilotTarget(s State, cfg config.SnakeBirdConfig) core.Vec2 {
	pos := s.Player.Pos

	if s.Bonus.Active && s.Bonus.Exit != nil {
		exit := *s.Bonus.Exit
		ticksToExit := pos.Dist(exit) / cfg.Player.Step
		if s.Bonus.Remaining*autopilotRate < 2*ticksToExit+autopilotRate {
			return exit
		}
		if f, ok := nearestGoodFrog(pos, s.Bonus.Frogs); ok {
			return f
		}
		return exit
	}

	half := cfg.Player.Size / 2
	for _, o := range s.Obstacles {
		if o.X+cfg.Obstacles.Width < pos.X-half {
			continue
		}
		y := o.GapCenter()
		if o.Portal && !o.Used {
			top, bottom := o.Window(cfg.Obstacles.WindowLow, cfg.Obstacles.WindowHigh)
			y = (top + bottom) / 2
		}
		return core.V(cfg.Player.StartX, y)
	}

	if f, ok := nearestGoodFrog(pos, s.Frogs); ok {
		return f
	}
	return core.V(cfg.Player.StartX, cfg.Arena.Height/2)
}

func nearestGoodFrog(pos core.Vec2, frogs []Frog) (core.Vec2, bool) {
	best, found := core.Vec2{}, false
	bestDist := math.Inf(1)
	for _, f := range frogs {
		if f.Collected || f.Adverse {
			continue
		}
		if d := pos.Dist(f.Pos); d < bestDist {
			best, bestDist, found = f.Pos, d, true
		}
	}
	return best, found
}

// steer holds each axis toward target until within half a step.
func steer(pos, target core.Vec2, step float64) core.InputFrame {
	var f core.InputFrame
	dead := step / 2
	switch d := target.X - pos.X; {
	case d > dead:
		f.DirX = 1
	case d < -dead:
		f.DirX = -1
	}
	switch d := target.Y - pos.Y; {
	case d > dead:
		f.DirY = 1
	case d < -dead:
		f.DirY = -1
	}
	return f
}
