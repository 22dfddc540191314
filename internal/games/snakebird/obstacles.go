package snakebird

import "github.com/vovakirdan/snakebird/internal/core"

type contact int

const (
	contactNone contact = iota
	contactPortal
	contactCrash
)

// stepObstacles scrolls, culls and spawns pipes, then resolves collisions
// and passage scoring against the moved player.
func (e *Engine) stepObstacles(s *State, events *[]Event) {
	oc := e.cfg.Obstacles

	// Move pipes left
	for i := range s.Obstacles {
		s.Obstacles[i].X -= oc.Speed
	}

	// Remove pipes that have moved off the left side
	valid := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if o.X+oc.Width >= 0 {
			valid = append(valid, o)
		}
	}
	s.Obstacles = valid

	// Spawn new pipe if needed
	if n := len(s.Obstacles); n == 0 || s.Obstacles[n-1].X < e.cfg.Arena.Width-oc.Spacing {
		s.Obstacles = append(s.Obstacles, e.spawnObstacle(s))
	}

	box := e.PlayerBox(s.Player)
	for i := range s.Obstacles {
		switch e.collide(s.Obstacles[i], box, s.Player.Invincible()) {
		case contactPortal:
			e.enterBonus(s, i, events)
			return
		case contactCrash:
			s.Over = EndCollision
			*events = append(*events, Event{Kind: EventGameOver, ObstacleID: s.Obstacles[i].ID, Reason: EndCollision})
			return
		}
	}

	// Check for passed pipes (player's leading edge cleared the pipe)
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		if o.Passed || o.X+oc.Width >= box.Max.X {
			continue
		}
		o.Passed = true
		points := e.cfg.Scoring.PassReward
		if o.Portal {
			points = e.cfg.Scoring.PortalPassReward
		}
		s.Score += points
		*events = append(*events, Event{Kind: EventPassed, Points: points, ObstacleID: o.ID})
	}
}

// spawnObstacle creates a pipe at the right edge of the arena.
func (e *Engine) spawnObstacle(s *State) Obstacle {
	oc := e.cfg.Obstacles
	gap := oc.GapSize(s.Score)
	portal := e.rng.Float64() < oc.PortalChance && e.cfg.Features.BonusWorld

	return Obstacle{
		ID:       s.nextID(),
		X:        e.cfg.Arena.Width,
		GapStart: e.uniform(oc.Margin, e.cfg.Arena.Height-oc.Margin-gap),
		Gap:      gap,
		Portal:   portal,
	}
}

// collide classifies the contact between the player hitbox and one pipe.
// Used portals are inert.
func (e *Engine) collide(o Obstacle, box core.Box, invincible bool) contact {
	if o.Used || !box.OverlapsX(o.X, o.X+e.cfg.Obstacles.Width) {
		return contactNone
	}
	if o.Portal {
		top, bottom := o.Window(e.cfg.Obstacles.WindowLow, e.cfg.Obstacles.WindowHigh)
		if box.WithinY(top, bottom) {
			return contactPortal
		}
	}
	if !invincible && !box.WithinY(o.GapStart, o.GapEnd()) {
		return contactCrash
	}
	return contactNone
}
