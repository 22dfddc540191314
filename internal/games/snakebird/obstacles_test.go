package snakebird

import (
	"testing"

	"github.com/vovakirdan/snakebird/internal/config"
	"github.com/vovakirdan/snakebird/internal/core"
)

var noFeatures = config.Features{}

func TestSpawnOnEmptyBoard(t *testing.T) {
	e := testEngine(11, noFeatures)
	cfg := e.Config()

	s, _ := e.Step(bareState(core.V(120, 300)), core.InputFrame{}, dt)

	if len(s.Obstacles) != 1 {
		t.Fatalf("len(Obstacles) = %d, expected 1", len(s.Obstacles))
	}
	o := s.Obstacles[0]
	if o.X != cfg.Arena.Width {
		t.Errorf("X = %f, expected %f", o.X, cfg.Arena.Width)
	}
	if o.Gap != cfg.Obstacles.InitialGap {
		t.Errorf("Gap = %f, expected %f", o.Gap, cfg.Obstacles.InitialGap)
	}
	lo, hi := cfg.Obstacles.Margin, cfg.Arena.Height-cfg.Obstacles.Margin-o.Gap
	if o.GapStart < lo || o.GapStart > hi {
		t.Errorf("GapStart = %f, expected within [%f,%f]", o.GapStart, lo, hi)
	}
	if o.Portal {
		t.Error("portals must not spawn without the bonus world")
	}
	if o.ID != 100 || s.NextID != 101 {
		t.Errorf("ID = %d NextID = %d, expected 100 and 101", o.ID, s.NextID)
	}
}

func TestSpawnUsesScoreGap(t *testing.T) {
	e := testEngine(11, noFeatures)
	cfg := e.Config()

	s := bareState(core.V(120, 300))
	s.Score = 100
	s, _ = e.Step(s, core.InputFrame{}, dt)

	want := max(cfg.Obstacles.MinGap, cfg.Obstacles.InitialGap-10*cfg.Obstacles.GapStep)
	if got := s.Obstacles[0].Gap; got != want {
		t.Errorf("Gap at score 100 = %f, expected %f", got, want)
	}
}

func TestSpawnThreshold(t *testing.T) {
	e := testEngine(11, noFeatures)
	cfg := e.Config()
	threshold := cfg.Arena.Width - cfg.Obstacles.Spacing

	tests := []struct {
		name  string
		lastX float64 // Position before the tick
		want  int
	}{
		{"not yet", threshold + cfg.Obstacles.Speed + 1, 1},
		{"crossed", threshold + cfg.Obstacles.Speed - 1, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := bareState(core.V(120, 300))
			s.Obstacles = []Obstacle{{ID: 1, X: tc.lastX, GapStart: 100, Gap: 200}}
			s, _ = e.Step(s, core.InputFrame{}, dt)
			if len(s.Obstacles) != tc.want {
				t.Errorf("len(Obstacles) = %d, expected %d", len(s.Obstacles), tc.want)
			}
		})
	}
}

func TestObstacleMotionAndCull(t *testing.T) {
	e := testEngine(11, noFeatures)
	cfg := e.Config()

	s := bareState(core.V(400, 300))
	s.Obstacles = []Obstacle{
		{ID: 1, X: -cfg.Obstacles.Width + 1, GapStart: 100, Gap: 200}, // Leaves this tick
		{ID: 2, X: 600, GapStart: 100, Gap: 200},
	}
	s, _ = e.Step(s, core.InputFrame{}, dt)

	if _, ok := findObstacle(s, 1); ok {
		t.Error("obstacle past the left edge should be removed")
	}
	o, ok := findObstacle(s, 2)
	if !ok {
		t.Fatal("obstacle 2 disappeared")
	}
	if o.X != 600-cfg.Obstacles.Speed {
		t.Errorf("X = %f, expected %f", o.X, 600-cfg.Obstacles.Speed)
	}
}

func TestCollisionEndsRun(t *testing.T) {
	e := testEngine(11, noFeatures)

	tests := []struct {
		name string
		y    float64
		over bool
	}{
		{"inside gap", 300, false},
		{"above gap", 150, true},
		{"straddling bottom", 390, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := bareState(core.V(120, tc.y))
			s.Obstacles = []Obstacle{{ID: 1, X: 110, GapStart: 200, Gap: 200}}
			next, events := e.Step(s, core.InputFrame{}, dt)

			if next.GameOver() != tc.over {
				t.Errorf("GameOver() = %v, expected %v", next.GameOver(), tc.over)
			}
			if tc.over {
				if next.Over != EndCollision {
					t.Errorf("Over = %v, expected collision", next.Over)
				}
				if !hasEvent(events, EventGameOver) {
					t.Error("expected a game over event")
				}
			}
		})
	}
}

func TestNoCollisionWithoutHorizontalOverlap(t *testing.T) {
	e := testEngine(11, noFeatures)
	s := bareState(core.V(120, 50))
	s.Obstacles = []Obstacle{{ID: 1, X: 300, GapStart: 200, Gap: 200}}

	next, _ := e.Step(s, core.InputFrame{}, dt)
	if next.GameOver() {
		t.Error("pipe far to the right should not end the run")
	}
}

func TestPassageAwardedOnce(t *testing.T) {
	e := testEngine(11, noFeatures)
	cfg := e.Config()

	tests := []struct {
		name   string
		portal bool
		y      float64
		want   int
	}{
		{"plain", false, 300, cfg.Scoring.PassReward},
		// Inside the gap but below the portal window [160,240]
		{"portal", true, 270, cfg.Scoring.PortalPassReward},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := bareState(core.V(120, tc.y))
			gapStart := 200.0
			if tc.portal {
				gapStart = 100
			}
			// Right edge lands just left of the player's right edge after one tick
			s.Obstacles = []Obstacle{{ID: 1, X: 75, GapStart: gapStart, Gap: 200, Portal: tc.portal}}

			s, events := e.Step(s, core.InputFrame{}, dt)
			if s.GameOver() || s.Bonus.Active {
				t.Fatalf("unexpected transition: over=%v bonus=%v", s.Over, s.Bonus.Active)
			}
			if s.Score != tc.want {
				t.Errorf("Score = %d, expected %d", s.Score, tc.want)
			}
			if !hasEvent(events, EventPassed) {
				t.Error("expected a passed event")
			}

			for i := 0; i < 30; i++ {
				s, _ = e.Step(s, core.InputFrame{}, dt)
			}
			if s.Score != tc.want {
				t.Errorf("Score after more ticks = %d, expected %d", s.Score, tc.want)
			}
		})
	}
}

func TestInvincibilityScenario(t *testing.T) {
	e := testEngine(11, allFeatures)

	// Player sits in the pipe wall while the pipe scrolls over it
	s := bareState(core.V(120, 100))
	s.Obstacles = []Obstacle{{ID: 1, X: 100, GapStart: 300, Gap: 200}}
	s.Player.InvincibleFor = 0.1

	survived := 0
	for i := 0; i < 20 && !s.GameOver(); i++ {
		var events []Event
		s, events = e.Step(s, core.InputFrame{}, dt)
		if s.GameOver() {
			if s.Player.Invincible() {
				t.Fatalf("run ended while still invincible (%f left)", s.Player.InvincibleFor)
			}
			if s.Over != EndCollision || !hasEvent(events, EventGameOver) {
				t.Errorf("Over = %v, expected collision", s.Over)
			}
			break
		}
		survived++
	}

	if !s.GameOver() {
		t.Fatal("violating crossing after invincibility expired should end the run")
	}
	if survived < 5 {
		t.Errorf("survived %d ticks, expected invincibility to cover at least 5", survived)
	}
}

func TestInvincibilityDoesNotBlockTimeout(t *testing.T) {
	e := testEngine(11, allFeatures)
	s := activeBonusState(e)
	s.Bonus.Remaining = dt / 2
	s.Player.InvincibleFor = 5

	next, _ := e.Step(s, core.InputFrame{}, dt)
	if next.Over != EndTimeout {
		t.Errorf("Over = %v, expected timeout", next.Over)
	}
}

func TestInvincibilityTimerClamped(t *testing.T) {
	e := testEngine(11, noFeatures)
	s := bareState(core.V(400, 300))
	s.Player.InvincibleFor = dt / 3

	next, _ := e.Step(s, core.InputFrame{}, dt)
	if next.Player.InvincibleFor != 0 {
		t.Errorf("InvincibleFor = %f, expected 0", next.Player.InvincibleFor)
	}
}
