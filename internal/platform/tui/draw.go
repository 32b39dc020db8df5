package tui

import (
	"fmt"

	"github.com/nkoreli/skygate/internal/config"
	"github.com/nkoreli/skygate/internal/core"
	"github.com/nkoreli/skygate/internal/sim"
)

// Layout constants for projecting world units onto screen cells.
const (
	flyerCol    = 10  // Fixed column where the flyer is drawn
	gateCells   = 2   // Gate thickness in screen columns
	colsPerUnit = 1.5 // Horizontal cells per world depth unit
)

// Visual characters.
const (
	flyerBodyChar = '●'
	gateChar      = '█'
	gateCapTop    = '▄'
	gateCapBottom = '▀'
	groundChar    = '═'
)

// drawWorld renders the full simulation state into the screen buffer.
func drawWorld(dst *core.Screen, game *sim.Game, cfg config.Config, flash bool) {
	dst.Clear()

	groundRow := dst.Height() - 1
	dst.DrawHLine(0, groundRow, dst.Width(), groundChar)

	for _, g := range game.Gates() {
		drawGate(dst, g, cfg, groundRow)
	}

	drawFlyer(dst, game, cfg, groundRow)
	drawHUD(dst, game, flash)

	switch game.Phase() {
	case sim.PhaseIdle:
		drawCenteredMessage(dst, "S K Y G A T E", "Space or click to fly")
	case sim.PhaseEnded:
		drawCenteredMessage(dst, "RUN OVER",
			fmt.Sprintf("Score: %d  |  Best: %d  |  Space to retry", game.Score(), game.HighScore()))
	}
}

// heightToRow maps a world height onto a screen row. Row 0 is the HUD;
// the ceiling maps just below it and the floor just above the ground line.
func heightToRow(h float64, cfg config.Config, groundRow int) int {
	span := cfg.World.Ceiling - cfg.World.Floor
	if span <= 0 || groundRow < 3 {
		return 1
	}
	frac := (cfg.World.Ceiling - h) / span
	row := 1 + int(frac*float64(groundRow-2))
	return core.Clamp(row, 0, groundRow-1)
}

// depthToCol maps a gate's depth onto a screen column. Gates spawn in front
// of the flyer (to the right) and drift left as they advance past it.
func depthToCol(depth float64, cfg config.Config) int {
	return flyerCol + int((cfg.Flyer.Depth-depth)*colsPerUnit)
}

// drawGate renders one gate as an upper and lower pipe around its gap.
func drawGate(dst *core.Screen, g sim.Gate, cfg config.Config, groundRow int) {
	col := depthToCol(g.Depth, cfg)
	if col+gateCells <= 0 || col >= dst.Width() {
		return
	}

	gapTopRow := heightToRow(g.GapTop(), cfg, groundRow)
	gapBottomRow := heightToRow(g.GapBottom(), cfg, groundRow)

	for dx := 0; dx < gateCells; dx++ {
		// Upper body down to the gap, with a cap on its lowest cell
		for y := 1; y < gapTopRow; y++ {
			dst.SetCell(col+dx, y, gateChar, core.ColorGreen)
		}
		if gapTopRow >= 1 {
			dst.SetCell(col+dx, gapTopRow, gateCapTop, core.ColorBrightGreen)
		}

		// Lower body from the gap to the ground, capped on top
		dst.SetCell(col+dx, gapBottomRow, gateCapBottom, core.ColorBrightGreen)
		for y := gapBottomRow + 1; y < groundRow; y++ {
			dst.SetCell(col+dx, y, gateChar, core.ColorGreen)
		}
	}
}

// drawFlyer renders the flyer at its display height with a tilt-reactive
// nose glyph.
func drawFlyer(dst *core.Screen, game *sim.Game, cfg config.Config, groundRow int) {
	row := heightToRow(game.DisplayHeight(), cfg, groundRow)

	nose := '▶'
	tilt := game.Flyer().Tilt
	switch {
	case tilt > 0.3:
		nose = '▼'
	case tilt < -0.3:
		nose = '▲'
	}

	dst.SetCell(flyerCol-1, row, flyerBodyChar, core.ColorYellow)
	dst.SetCell(flyerCol, row, nose, core.ColorBrightYellow)
}

// drawHUD renders the score line. The score briefly flashes on increments.
func drawHUD(dst *core.Screen, game *sim.Game, flash bool) {
	color := core.ColorWhite
	if flash {
		color = core.ColorBrightYellow
	}
	hud := fmt.Sprintf(" Score: %d   Best: %d ", game.Score(), game.HighScore())
	dst.DrawTextColored(2, 0, hud, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
