package frogger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Visual characters for rendering
const (
	PilotChar    = '@'
	VehicleChar  = '█'
	PlankChar    = '='
	CrocBackChar = '▒'
	CrocJawChar  = 'V'
	TurtleChar   = 'o'
	WaterChar    = '~'
	ZoneChar     = '░'
	OccupiedChar = '@'
	LaneChar     = '·'
)

// hudRows is the number of screen rows reserved above the field.
const hudRows = 1

// viewport maps field coordinates onto screen cells.
type viewport struct {
	sx, sy float64
	top    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	h := max(1, dst.Height()-hudRows)
	return viewport{
		sx:  float64(dst.Width()) / g.cfg.Field.Width,
		sy:  float64(h) / g.cfg.Field.Height,
		top: hudRows,
	}
}

// rect converts a field box into the screen cells it covers. Every box
// covers at least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0+v.top, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.viewport(dst)
	s := g.state

	// Water
	river := core.NewBox(0, 0, g.cfg.Field.Width, g.cfg.Bands.SafeStrip)
	dst.DrawRect(v.rect(river), WaterChar, core.ColorBlue)

	// Lane markings on the road
	for _, l := range g.cfg.Lanes {
		if kindOf(l.Kind) != KindVehicle {
			continue
		}
		r := v.rect(core.NewBox(0, l.Y, g.cfg.Field.Width, 1))
		dst.DrawHLine(0, r.Y, dst.Width(), LaneChar, core.ColorGray)
	}

	for _, z := range s.Zones {
		if z.Occupied {
			dst.DrawRect(v.rect(z.Box()), OccupiedChar, core.ColorBrightGreen)
		} else {
			dst.DrawRect(v.rect(z.Box()), ZoneChar, core.ColorGreen)
		}
	}

	for _, h := range s.Vehicles {
		dst.DrawRect(v.rect(h.Box()), VehicleChar, core.ColorRed)
	}
	for _, h := range s.Planks {
		dst.DrawRect(v.rect(h.Box()), PlankChar, core.ColorOrange)
	}
	for _, h := range s.Crocodiles {
		dst.DrawRect(v.rect(h.Box()), CrocBackChar, core.ColorGreen)
		dst.DrawRect(v.rect(Mouth(g.cfg, h)), CrocJawChar, core.ColorBrightRed)
	}
	for _, h := range s.Turtles {
		if h.Hidden {
			continue
		}
		dst.DrawRect(v.rect(h.Box()), TurtleChar, core.ColorCyan)
	}

	if !s.Pilot.Settled {
		dst.DrawRect(v.rect(s.Pilot.Box(g.cfg.Pilot.Radius)), PilotChar, core.ColorBrightYellow)
	}

	g.drawHUD(dst)

	if g.banner > 0 {
		g.drawCenteredMessage(dst, fmt.Sprintf("ROUND %d", s.Round+1), "Speed up!")
	}
	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.state
	hud := fmt.Sprintf(" Score: %d  Hi: %d  Round: %d  Frog: %d/%d ",
		s.Score, s.HighScore, s.Round+1, min(s.Pilot.ID, g.cfg.Round.Landings), g.cfg.Round.Landings)
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
