package snake

import (
	"testing"
	"time"
)

// scriptedRand replays fixed values, reduced modulo n. Once the script runs
// out it keeps returning 0.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) IntN(n int) int {
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i] % n
	r.i++
	return v
}

func newScripted(vals ...int) *scriptedRand {
	return &scriptedRand{vals: vals}
}

// newTestGame builds a w×h game whose initial food comes from rng.
func newTestGame(t *testing.T, w, h int, rng Rand) *Game {
	t.Helper()
	g, err := New(Params{Width: w, Height: h, TickPeriod: 200 * time.Millisecond}, rng)
	if err != nil {
		t.Fatalf("New(%dx%d) failed: %v", w, h, err)
	}
	return g
}

// place overwrites the snake, committed direction and food of g.
func place(g *Game, body []Cell, dir Direction, food Cell) {
	g.snake = append([]Cell(nil), body...)
	g.direction = dir
	g.nextDir = dir
	g.food = food
}

func assertInvariants(t *testing.T, g *Game) {
	t.Helper()
	if g.gameOver {
		return
	}
	if len(g.snake) == 0 {
		t.Fatal("snake is empty")
	}
	seen := make(map[Cell]bool, len(g.snake))
	for _, c := range g.snake {
		if seen[c] {
			t.Fatalf("duplicate cell %v in snake %v", c, g.snake)
		}
		seen[c] = true
		if !g.inBounds(c) {
			t.Fatalf("segment %v out of bounds", c)
		}
	}
	if seen[g.food] {
		t.Fatalf("food %v lies on snake %v", g.food, g.snake)
	}
	if !g.inBounds(g.food) {
		t.Fatalf("food %v out of bounds", g.food)
	}
}
