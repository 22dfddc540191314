package snakebird

import (
	"github.com/vovakirdan/snakebird/internal/core"
	"github.com/vovakirdan/snakebird/internal/games/snakebird/minigame"
)

// enterBonus switches to the bonus world through obstacle i.
func (e *Engine) enterBonus(s *State, i int, events *[]Event) {
	bc := e.cfg.Bonus

	s.Obstacles[i].Used = true
	portal := s.Obstacles[i]
	exit := e.pickExit(s.Player.Pos)

	s.Bonus = BonusWorld{
		Active:    true,
		Remaining: bc.Duration,
		Exit:      &exit,
		Portal:    &portal,
	}
	s.Bonus.Frogs = e.spawnFrogs(s, bc.FrogCount, bc.AdverseChance)

	points := bc.EntryBonus
	if e.cfg.Features.MiniGames {
		r := minigame.Play(e.rng)
		s.MiniGame = &r
		points += r.Bonus
	}
	s.Score += points
	s.Portals++
	s.Player.InvincibleFor = 0

	*events = append(*events, Event{Kind: EventPortalEntered, Points: points, ObstacleID: portal.ID})
}

// stepBonus runs one tick inside the bonus world. Obstacles stay frozen.
func (e *Engine) stepBonus(s *State, dt float64, events *[]Event) {
	s.Bonus.Remaining = max(0, s.Bonus.Remaining-dt)
	if s.Bonus.Remaining == 0 {
		s.Over = EndTimeout
		*events = append(*events, Event{Kind: EventGameOver, Reason: EndTimeout})
		return
	}

	s.Bonus.Frogs = e.collectFrogs(s, s.Bonus.Frogs, events)

	if s.Player.Pos.Dist(*s.Bonus.Exit) <= e.cfg.Bonus.ExitRadius {
		e.exitBonus(s, events)
	}
}

// exitBonus returns the player to the gap center of the entered pipe.
// The pipe keeps its Used flag and stays on the board.
func (e *Engine) exitBonus(s *State, events *[]Event) {
	portal := *s.Bonus.Portal
	s.Player.Pos = e.ReturnPoint(portal)
	s.Bonus = BonusWorld{}

	if e.cfg.Features.Invincibility {
		s.Player.InvincibleFor = e.cfg.Invincibility.ExitGrace
	}
	*events = append(*events, Event{Kind: EventWorldExited, ObstacleID: portal.ID})
}

// ReturnPoint is where the player lands when leaving through the given pipe.
func (e *Engine) ReturnPoint(o Obstacle) core.Vec2 {
	return e.clampToArena(core.V(o.X+e.cfg.Obstacles.Width/2, o.GapCenter()))
}

// pickExit places the exit in the half of the arena away from the player,
// so a session never ends on the tick it starts.
func (e *Engine) pickExit(player core.Vec2) core.Vec2 {
	w, h := e.cfg.Arena.Width, e.cfg.Arena.Height
	m := e.cfg.Frogs.Margin

	var x float64
	if player.X < w/2 {
		x = e.uniform(w/2, w-m)
	} else {
		x = e.uniform(m, w/2)
	}
	return core.V(x, e.uniform(m, h-m))
}
