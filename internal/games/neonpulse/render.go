package neonpulse

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/neon-pulse/internal/core"
)

// Visual characters for rendering
const (
	BodyCharLevel = '▶'
	BodyCharUp    = '◥'
	BodyCharDown  = '◢'
	BodyTrailChar = '●'
	DisabledChar  = '░'
	GroundChar    = '═'
	BlastChar     = '·'
)

// rotationThreshold is the tilt beyond which the body glyph changes.
const rotationThreshold = 0.3

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	e := g.engine

	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar, core.ColorDim)

	for _, h := range e.Obstacles().Hazards() {
		drawHazard(dst, h)
	}
	for _, p := range e.PowerUps().Pickups() {
		r := toScreen(p.Rect())
		dst.DrawRect(r, ' ', core.ColorDefault)
		dst.SetColored(r.X, r.Y, p.Kind.Glyph(), p.Kind.Color())
	}
	if b, ok := e.Pulse().Blast(); ok {
		drawBlast(dst, b)
	}
	g.drawBody(dst)
	g.drawHUD(dst)

	switch e.Status() {
	case StatusMenu:
		drawCenteredMessage(dst, strings.ToUpper(g.Title()), "SPACE to flap  E to pulse  ENTER to start")
	case StatusPaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StatusGameOver:
		title := "GAME OVER"
		if e.State().IsNewHighScore() {
			title = "NEW HIGH SCORE"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", e.State().Score()))
	}
}

// toScreen maps a world box to screen cells below the HUD row.
func toScreen(b core.Box) core.Rect {
	r := b.Cells()
	r.Y += hudRows
	return r
}

func drawHazard(dst *core.Screen, h Hazard) {
	glyph, color := h.Kind().Glyph(), h.Kind().Color()
	if h.IsDisabled() {
		glyph, color = DisabledChar, core.ColorDim
	}
	for _, r := range h.Rects() {
		cells := toScreen(r)
		if cells.Y < hudRows {
			cells.H -= hudRows - cells.Y
			cells.Y = hudRows
		}
		dst.DrawRect(cells, glyph, color)
	}
}

// drawBlast draws the expanding pulse ring. Cells are twice as tall as
// wide, so the vertical radius is halved.
func drawBlast(dst *core.Screen, b Blast) {
	radius := b.CurrentRadius()
	if radius < 1 {
		return
	}
	steps := int(radius * 8)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Round(b.Center.X + radius*math.Cos(a)))
		y := int(math.Round(b.Center.Y+radius*math.Sin(a)/2)) + hudRows
		if y < hudRows {
			continue
		}
		dst.SetColored(x, y, BlastChar, core.ColorBrightCyan)
	}
}

func (g *Game) drawBody(dst *core.Screen) {
	body := g.engine.Body()
	r := toScreen(body.Rect())

	color := core.ColorBrightYellow
	if g.engine.State().IsInvulnerable() {
		color = core.ColorBrightCyan
	}
	if !body.Alive() {
		color = core.ColorRed
	}

	head := rune(BodyCharLevel)
	switch rot := body.Rotation(); {
	case rot < -rotationThreshold:
		head = BodyCharUp
	case rot > rotationThreshold:
		head = BodyCharDown
	}

	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			ch := rune(BodyTrailChar)
			if dx == r.W-1 && dy == 0 {
				ch = head
			}
			dst.SetColored(r.X+dx, r.Y+dy, ch, color)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.engine.State()
	left := fmt.Sprintf(" Score: %d  Best: %d  Lv %d ", s.Score(), s.HighScore(), s.DifficultyLevel())
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	x := len([]rune(left)) + 1
	pulse := g.engine.Pulse()
	pulseColor := core.ColorGray
	if pulse.IsReady() {
		pulseColor = core.ColorBrightCyan
	}
	label := "[" + pulse.StatusText() + "]"
	dst.DrawTextColored(x, 0, label, pulseColor)
	x += len([]rune(label)) + 1

	for _, eff := range g.engine.PowerUps().ActiveEffects() {
		color := eff.Kind.Color()
		if eff.IsAboutToExpire() {
			color = core.ColorDim
		}
		text := fmt.Sprintf("%c %s %.0fs", eff.Kind.Glyph(), eff.Kind.String(), math.Ceil(eff.Remaining))
		dst.DrawTextColored(x, 0, text, color)
		x += len([]rune(text)) + 2
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorNeonPink)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightMagenta)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorBrightWhite)
}
