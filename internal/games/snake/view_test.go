package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestView(t *testing.T) (*Game, *View) {
	t.Helper()
	g, err := New(DefaultParams(), newScripted(0, 0))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g, NewView(g, DefaultTheme())
}

func TestViewMinSize(t *testing.T) {
	_, v := newTestView(t)

	w, h := v.MinSize()
	if w != 42 || h != 24 {
		t.Errorf("MinSize() = %dx%d, expected 42x24", w, h)
	}
}

func TestViewRenderBoard(t *testing.T) {
	_, v := newTestView(t)
	dst := core.NewScreen(80, 24)

	v.Render(dst)

	if !strings.Contains(dst.Row(0), "Score: 0") || !strings.Contains(dst.Row(0), "Length: 1") {
		t.Errorf("HUD = %q", dst.Row(0))
	}

	// Board is 42 columns wide, centered: left border at x=19, top border at y=2.
	if dst.Get(19, 2) != '┌' || dst.Get(60, 23) != '┘' {
		t.Errorf("board corners not where expected: %q %q", dst.Get(19, 2), dst.Get(60, 23))
	}

	// Head at grid (10, 10) occupies two columns.
	for _, x := range []int{40, 41} {
		c := dst.GetCell(x, 13)
		if c.Rune != '█' || c.Color != core.ColorBrightGreen {
			t.Errorf("head cell at (%d, 13) = %+v", x, c)
		}
	}

	// Food at grid (0, 0).
	if c := dst.GetCell(20, 3); c.Rune != '●' || c.Color != core.ColorBrightRed {
		t.Errorf("food cell = %+v", c)
	}
}

func TestViewRenderBody(t *testing.T) {
	g, v := newTestView(t)
	place(g, []Cell{{X: 3, Y: 3}, {X: 2, Y: 3}}, DirRight, Cell{X: 9, Y: 9})
	dst := core.NewScreen(42, 24)

	v.Render(dst)

	if dst.Get(1+2*2, 2+1+3) != '▓' {
		t.Errorf("body segment missing, row = %q", dst.Row(6))
	}
	if dst.Get(1+3*2, 2+1+3) != '█' {
		t.Errorf("head segment missing, row = %q", dst.Row(6))
	}
}

func TestViewRenderTooSmall(t *testing.T) {
	_, v := newTestView(t)
	dst := core.NewScreen(30, 12)

	v.Render(dst)

	if !strings.Contains(dst.String(), "Window too small") {
		t.Errorf("expected too small overlay, got:\n%s", dst.String())
	}
}

func TestViewRenderGameOver(t *testing.T) {
	g, v := newTestView(t)
	place(g, []Cell{{X: 19, Y: 0}}, DirRight, Cell{X: 0, Y: 0})
	g.Advance()

	dst := core.NewScreen(80, 24)
	v.Render(dst)

	out := dst.String()
	if !strings.Contains(out, "Game Over") || !strings.Contains(out, "Press R to restart") {
		t.Errorf("expected game over overlay, got:\n%s", out)
	}
}

func TestViewFollowsRestart(t *testing.T) {
	g, v := newTestView(t)
	g.score = 7
	g.end(EndSelf)
	g.HandleInput(core.ActionRestart)

	dst := core.NewScreen(80, 24)
	v.Render(dst)

	if !strings.Contains(dst.Row(0), "Score: 0") {
		t.Errorf("view should render the restarted game, HUD = %q", dst.Row(0))
	}
}

func TestViewDoesNotMutateGame(t *testing.T) {
	g, v := newTestView(t)
	before := g.Snapshot()

	v.Render(core.NewScreen(80, 24))

	after := g.Snapshot()
	if before.Head != after.Head || before.Food != after.Food || before.Tick != after.Tick {
		t.Error("Render changed the game")
	}
}
