package snakebird

import "github.com/vovakirdan/snakebird/internal/core"

// spawnAttempts bounds resampling of frogs that land on the player.
const spawnAttempts = 8

// spawnFrogs creates n frogs at random positions inside the frog margin.
func (e *Engine) spawnFrogs(s *State, n int, adverseChance float64) []Frog {
	frogs := make([]Frog, 0, n)
	for range n {
		frogs = append(frogs, e.spawnFrog(s, adverseChance))
	}
	return frogs
}

func (e *Engine) spawnFrog(s *State, adverseChance float64) Frog {
	m := e.cfg.Frogs.Margin
	var pos core.Vec2
	for range spawnAttempts {
		pos = core.V(
			e.uniform(m, e.cfg.Arena.Width-m),
			e.uniform(m, e.cfg.Arena.Height-m),
		)
		if pos.Dist(s.Player.Pos) > 2*e.cfg.Frogs.CollectRadius {
			break
		}
	}
	return Frog{
		ID:      s.nextID(),
		Pos:     pos,
		Adverse: e.rng.Float64() < adverseChance,
	}
}

// collectFrogs applies every frog within reach and returns the updated slice.
func (e *Engine) collectFrogs(s *State, frogs []Frog, events *[]Event) []Frog {
	sc := e.cfg.Scoring
	for i := range frogs {
		f := &frogs[i]
		if f.Collected || s.Player.Pos.Dist(f.Pos) > e.cfg.Frogs.CollectRadius {
			continue
		}
		f.Collected = true

		if f.Adverse {
			before := s.Score
			s.Score = max(0, s.Score-sc.AdversePenalty)
			s.Player.AdverseUntil = s.Clock + sc.AdverseDisplay
			*events = append(*events, Event{Kind: EventBadFrog, Points: s.Score - before})
			continue
		}

		s.Score += sc.FrogReward
		s.Player.Growth++
		s.Player.EatingUntil = s.Clock + sc.EatingDisplay
		*events = append(*events, Event{Kind: EventFrogEaten, Points: sc.FrogReward})
	}
	return frogs
}

// refillFrogs prunes eaten primary frogs and adds one when the refill timer fires.
func (e *Engine) refillFrogs(s *State) {
	if s.Clock < s.FrogRefillAt {
		return
	}
	s.FrogRefillAt = s.Clock + e.cfg.Frogs.RefillEvery

	live := s.Frogs[:0]
	for _, f := range s.Frogs {
		if !f.Collected {
			live = append(live, f)
		}
	}
	s.Frogs = live

	if len(s.Frogs) < e.cfg.Frogs.Count {
		s.Frogs = append(s.Frogs, e.spawnFrog(s, e.cfg.Frogs.AdverseChance))
	}
}
