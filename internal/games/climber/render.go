package climber

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/hypnos/internal/core"
	"github.com/vovakirdan/hypnos/internal/games/climber/sim"
)

// Visual characters for rendering
const (
	PlayerChar      = '█'
	PlatformChar    = '▀'
	EnemyChar       = '▓'
	CollectibleChar = '◆'
	ShotChar        = '•'
	ParticleChar    = '*'
	HeartFull       = '♥'
	HeartEmpty      = '♡'
)

// scale returns world units per screen cell on each axis.
func (g *Game) scale(cols, rows int) (float64, float64) {
	playRows := rows - hudRows
	if cols < 1 {
		cols = 1
	}
	if playRows < 1 {
		playRows = 1
	}
	return g.cfg.World.Width / float64(cols), g.cfg.World.Height / float64(playRows)
}

// cellToWorld maps a screen cell to the world point at its center, using the
// size of the last rendered screen.
func (g *Game) cellToWorld(x, y int) core.Vec {
	cols, rows := g.cols, g.rows
	if cols == 0 || rows == 0 {
		cols, rows = g.runtime.ScreenW, g.runtime.ScreenH
	}
	sx, sy := g.scale(cols, rows)
	return core.Vec{
		X: (float64(x) + 0.5) * sx,
		Y: (float64(y-hudRows) + 0.5) * sy,
	}
}

// cellSpan returns the cells covered by a world rect. Every visible rect
// covers at least one cell.
func cellSpan(r core.Rect, sx, sy float64) (x0, y0, w, h int) {
	x0 = int(math.Floor(r.Left() / sx))
	y0 = int(math.Floor(r.Top() / sy))
	x1 := int(math.Ceil(r.Right()/sx)) - 1
	y1 := int(math.Ceil(r.Bottom()/sy)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0 + hudRows, x1 - x0 + 1, y1 - y0 + 1
}

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.cols, g.rows = dst.Width(), dst.Height()
	sx, sy := g.scale(g.cols, g.rows)

	for _, s := range g.frame.Sprites {
		r, c := spriteLook(s)
		x, y, w, h := cellSpan(s.Rect, sx, sy)
		if y < hudRows {
			h -= hudRows - y
			y = hudRows
		}
		if h <= 0 {
			continue
		}
		dst.FillArea(x, y, w, h, r, c)
	}

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if st := g.frame.Status; st.Outcome.Terminal() {
		g.drawCenteredMessage(dst, gameOverTitle(st.Outcome),
			fmt.Sprintf("Score: %d  |  Press R to restart", st.Score))
	}
}

// spriteLook returns the rune and color for a sprite.
func spriteLook(s sim.Sprite) (rune, core.Color) {
	switch s.Kind {
	case sim.KindPlayer:
		return PlayerChar, core.ColorBrightGreen
	case sim.KindPlatform:
		return PlatformChar, core.ColorWhite
	case sim.KindEnemy:
		return EnemyChar, core.ColorRed
	case sim.KindCollectible:
		switch s.Tier {
		case sim.TierRare:
			return CollectibleChar, core.ColorBrightCyan
		case sim.TierLegendary:
			return CollectibleChar, core.ColorBrightMagenta
		default:
			return CollectibleChar, core.ColorYellow
		}
	case sim.KindProjectile:
		if s.Owner == sim.OwnerEnemy {
			return ShotChar, core.ColorBrightBlue
		}
		return ShotChar, core.ColorBrightRed
	case sim.KindParticle:
		return ParticleChar, core.ColorBrightYellow
	default:
		return '?', core.ColorDefault
	}
}

// drawHUD renders the status line.
func (g *Game) drawHUD(dst *core.Screen) {
	st := g.frame.Status
	dst.FillArea(0, 0, dst.Width(), hudRows, ' ', core.ColorDefault)

	left := fmt.Sprintf(" Score: %d  Height: %d ", st.Score, g.world.Height())
	dst.DrawText(0, 0, left)

	x := len(left) + 1
	for i := 0; i < st.MaxHealth; i++ {
		if i < st.Health {
			dst.SetColored(x+i, 0, HeartFull, core.ColorBrightRed)
		} else {
			dst.SetColored(x+i, 0, HeartEmpty, core.ColorGray)
		}
	}
	x += st.MaxHealth + 2

	jumps := "Jumps: " + strings.Repeat("^", st.JumpsLeft)
	dst.DrawTextColored(x, 0, jumps, core.ColorCyan)

	if st.Boosted {
		boost := " BOOST x" + fmt.Sprint(g.cfg.Collectible.BoostMultiplier) + " "
		dst.DrawTextColored(dst.Width()-len(boost)-1, 0, boost, core.ColorBrightMagenta)
	}
}

func gameOverTitle(o sim.Outcome) string {
	switch o {
	case sim.OutcomeDiedFall:
		return "YOU FELL"
	case sim.OutcomeDiedCombat:
		return "YOU DIED"
	default:
		return "GAME OVER"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
