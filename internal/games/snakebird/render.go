package snakebird

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/snakebird/internal/core"
)

// Visual characters for rendering
const (
	PipeChar    = '█'
	PipeCapChar = '▀'
	WindowChar  = '░'
	HeadChar    = '@'
	BodyChar    = '●'
	SegmentChar = 'o'
	FrogChar    = 'f'
	ExitChar    = '◎'
)

// hudRows is the number of rows reserved for the score line.
const hudRows = 1

// viewport maps arena coordinates to screen cells.
type viewport struct {
	w, h   int // Playfield size in cells
	sx, sy float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	w, h := dst.Width(), dst.Height()-hudRows
	return viewport{
		w:  w,
		h:  h,
		sx: float64(w) / g.cfg.Arena.Width,
		sy: float64(h) / g.cfg.Arena.Height,
	}
}

func (v viewport) col(x float64) int {
	return int(x * v.sx)
}

func (v viewport) row(y float64) int {
	return hudRows + int(y*v.sy)
}

// arenaY returns the arena y at the middle of a screen row.
func (v viewport) arenaY(row int) float64 {
	return (float64(row-hudRows) + 0.5) / v.sy
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudRows {
		return
	}
	v := g.viewport(dst)
	s := g.state

	if s.Bonus.Active {
		g.drawBonusWorld(dst, v)
	} else {
		for _, o := range s.Obstacles {
			g.drawObstacle(dst, v, o)
		}
	}

	for _, f := range s.ActiveFrogs() {
		if f.Collected {
			continue
		}
		c := core.ColorBrightGreen
		if f.Adverse {
			c = core.ColorBrightRed
		}
		dst.SetColored(v.col(f.Pos.X), v.row(f.Pos.Y), FrogChar, c)
	}

	for _, p := range s.Segments {
		dst.SetColored(v.col(p.X), v.row(p.Y), SegmentChar, core.ColorGreen)
	}
	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	switch {
	case s.GameOver():
		g.drawCenteredMessage(dst, "GAME OVER", s.Over.Message(),
			fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case !g.started:
		g.drawCenteredMessage(dst, g.variant.Title, g.variant.Description,
			"Arrows or WASD to start")
	case s.MiniGame != nil:
		mg := s.MiniGame
		detail := fmt.Sprintf("+%d", mg.Bonus)
		if mg.Payload != nil {
			detail = fmt.Sprintf("%s: +%d", mg.Payload.Describe(), mg.Bonus)
		}
		g.drawCenteredMessage(dst, mg.Kind.Title(), detail, "Enter to dismiss")
	}
}

// drawObstacle renders the pipe pair, tinting portals and marking their window.
func (g *Game) drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	x0 := v.col(o.X)
	x1 := max(v.col(o.X+g.cfg.Obstacles.Width), x0+1)

	color := core.ColorGreen
	switch {
	case o.Portal && o.Used:
		color = core.ColorGray
	case o.Portal:
		color = core.ColorMagenta
	}
	top, bottom := o.Window(g.cfg.Obstacles.WindowLow, g.cfg.Obstacles.WindowHigh)
	capTop := v.row(o.GapEnd())

	for row := hudRows; row < hudRows+v.h; row++ {
		y := v.arenaY(row)
		inGap := y >= o.GapStart && y <= o.GapEnd()
		for x := x0; x < x1; x++ {
			switch {
			case !inGap && row == capTop:
				dst.SetColored(x, row, PipeCapChar, color)
			case !inGap:
				dst.SetColored(x, row, PipeChar, color)
			case o.Portal && !o.Used && y >= top && y <= bottom:
				dst.SetColored(x, row, WindowChar, core.ColorMagenta)
			}
		}
	}
}

// drawBonusWorld frames the arena and marks the exit.
func (g *Game) drawBonusWorld(dst *core.Screen, v viewport) {
	for x := 0; x < v.w; x++ {
		dst.SetColored(x, hudRows, '·', core.ColorYellow)
		dst.SetColored(x, hudRows+v.h-1, '·', core.ColorYellow)
	}
	dst.DrawVLine(0, hudRows, v.h, '·', core.ColorYellow)
	dst.DrawVLine(v.w-1, hudRows, v.h, '·', core.ColorYellow)

	if exit := g.state.Bonus.Exit; exit != nil {
		x, y := v.col(exit.X), v.row(exit.Y)
		dst.SetColored(x, y, ExitChar, core.ColorCyan)
		dst.DrawTextColored(x-2, y+1, "EXIT", core.ColorCyan)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := g.state.Player
	color := core.ColorYellow
	switch {
	case p.Adverse(g.state.Clock):
		color = core.ColorBrightRed
	case p.Eating(g.state.Clock):
		color = core.ColorBrightGreen
	case p.Invincible() && (g.state.Tick/6)%2 == 0:
		color = core.ColorCyan
	}

	box := g.engine.PlayerBox(p)
	x0, x1 := v.col(box.Min.X), max(v.col(box.Max.X), v.col(box.Min.X)+1)
	for x := x0; x < x1; x++ {
		dst.SetColored(x, v.row(p.Pos.Y), BodyChar, color)
	}
	dst.SetColored(v.col(p.Pos.X), v.row(p.Pos.Y), HeadChar, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.state
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Frogs: %d  Portals: %d", s.Score, s.Player.Growth, s.Portals))

	var status string
	color := core.ColorDefault
	switch {
	case s.Bonus.Active:
		status = fmt.Sprintf("BONUS %.1fs", s.Bonus.Remaining)
		color = core.ColorYellow
	case s.Player.Invincible():
		status = fmt.Sprintf("INVINCIBLE %.1fs", s.Player.InvincibleFor)
		color = core.ColorCyan
	}
	if status != "" {
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(status)-1, 0, status, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := 4 + len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)

	// Draw text
	dst.DrawTextColored(boxX+(boxW-utf8.RuneCountInString(title))/2, boxY+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-utf8.RuneCountInString(l))/2, boxY+3+i, l)
	}
}
