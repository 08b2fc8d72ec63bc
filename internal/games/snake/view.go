package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 2 // Status line plus separator

// Theme controls how grid cells map onto terminal characters.
type Theme struct {
	CellWidth int // Terminal columns per grid cell
	Head      rune
	Body      rune
	Food      rune

	HeadColor   core.Color
	BodyColor   core.Color
	FoodColor   core.Color
	BorderColor core.Color
}

// DefaultTheme draws each cell two columns wide so the board looks square.
func DefaultTheme() Theme {
	return Theme{
		CellWidth:   2,
		Head:        '█',
		Body:        '▓',
		Food:        '●',
		HeadColor:   core.ColorBrightGreen,
		BodyColor:   core.ColorGreen,
		FoodColor:   core.ColorBrightRed,
		BorderColor: core.ColorGray,
	}
}

// View renders a Game onto a screen buffer. It only reads the game through
// Snapshot, so it stays valid across restarts of the same *Game.
type View struct {
	game  *Game
	theme Theme
}

// NewView creates a view for g.
func NewView(g *Game, t Theme) *View {
	if t.CellWidth < 1 {
		t.CellWidth = 1
	}
	return &View{game: g, theme: t}
}

// MinSize returns the smallest screen that fits the HUD and the whole board.
func (v *View) MinSize() (w, h int) {
	p := v.game.Params()
	return p.Width*v.theme.CellWidth + 2, hudHeight + p.Height + 2
}

// Render draws the game to the screen.
func (v *View) Render(dst *core.Screen) {
	dst.Clear()
	snap := v.game.Snapshot()

	v.renderHUD(dst, snap)

	minW, minH := v.MinSize()
	if dst.Width() < minW || dst.Height() < minH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	board := v.boardRect(dst)
	dst.DrawBox(board, v.theme.BorderColor)

	if snap.HasFood() {
		v.drawCell(dst, board, snap.Food, v.theme.Food, v.theme.FoodColor)
	}

	// Draw body tail-first so the head always ends on top.
	for i := len(snap.Body) - 1; i > 0; i-- {
		v.drawCell(dst, board, snap.Body[i], v.theme.Body, v.theme.BodyColor)
	}
	v.drawCell(dst, board, snap.Head, v.theme.Head, v.theme.HeadColor)

	if snap.State == StateGameOver {
		switch snap.Reason {
		case EndBoardFull:
			renderOverlay(dst, "Board cleared!", "Press R to restart")
		default:
			renderOverlay(dst, "Game Over", "Press R to restart")
		}
	}
}

// renderHUD draws the top status bar.
func (v *View) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d", snap.Score, snap.Len())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightYellow)
	dst.DrawHLine(0, 1, dst.Width(), '─', v.theme.BorderColor)
}

// boardRect returns the bordered board area, centered horizontally under the HUD.
func (v *View) boardRect(dst *core.Screen) core.Rect {
	w, h := v.MinSize()
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	r := area.Centered(w, h-hudHeight)
	r.Y = hudHeight
	return r
}

func (v *View) drawCell(dst *core.Screen, board core.Rect, c Cell, glyph rune, color core.Color) {
	x := board.X + 1 + c.X*v.theme.CellWidth
	y := board.Y + 1 + c.Y
	for i := range v.theme.CellWidth {
		dst.SetColored(x+i, y, glyph, color)
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().Centered(textW+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	drawCentered(dst, box, box.Y+1, line1)
	drawCentered(dst, box, box.Y+3, line2)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string) {
	x := box.X + (box.W-len([]rune(text)))/2
	dst.DrawTextColored(x, y, text, core.ColorWhite)
}
