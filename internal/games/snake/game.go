// Package snake implements the classic snake game: a snake moves on a fixed
// grid, grows by eating food and the session ends when it leaves the grid or
// runs into itself.
package snake

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Reference session parameters.
const (
	DefaultWidth           = 20
	DefaultHeight          = 20
	DefaultTickPeriod      = 200 * time.Millisecond
	DefaultMaxFoodAttempts = 1000
)

// ErrInvalidParams is returned by New for unusable session parameters.
var ErrInvalidParams = errors.New("snake: invalid params")

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Add returns the cell translated one step along d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// noFood marks an unplaced food cell.
var noFood = Cell{X: -1, Y: -1}

// EndReason describes why a session ended.
type EndReason int

const (
	EndNone      EndReason = iota
	EndWall                // Head left the grid
	EndSelf                // Head ran into the body
	EndBoardFull           // No free cell left for food
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndWall:
		return "wall"
	case EndSelf:
		return "self"
	case EndBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Rand is the uniform integer source used for food placement.
// IntN returns a value in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG generator for the given seed.
// A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// Params are fixed for the lifetime of a session and survive restarts.
type Params struct {
	Width           int
	Height          int
	TickPeriod      time.Duration
	MaxFoodAttempts int // Rejection draws before falling back to a free-cell scan, 0 = default
}

// DefaultParams returns the reference 20x20 session at 200ms per move.
func DefaultParams() Params {
	return Params{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		TickPeriod:      DefaultTickPeriod,
		MaxFoodAttempts: DefaultMaxFoodAttempts,
	}
}

// Validate checks that a session can be built from p.
func (p Params) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%w: grid %dx%d must be at least 1x1", ErrInvalidParams, p.Width, p.Height)
	}
	if p.Width*p.Height < 2 {
		return fmt.Errorf("%w: grid %dx%d leaves no room for food", ErrInvalidParams, p.Width, p.Height)
	}
	if p.TickPeriod <= 0 {
		return fmt.Errorf("%w: tick period %s must be positive", ErrInvalidParams, p.TickPeriod)
	}
	if p.MaxFoodAttempts < 0 {
		return fmt.Errorf("%w: max food attempts %d must not be negative", ErrInvalidParams, p.MaxFoodAttempts)
	}
	return nil
}

// Game is the complete state of one snake session.
// It is mutated only by Advance, Update, SetDirection and HandleInput and is
// not safe for concurrent use; the host serializes all calls.
type Game struct {
	params Params
	rng    Rand

	snake     []Cell // Head at index 0
	direction Direction
	nextDir   Direction // Applied at the start of the next move
	food      Cell
	score     int
	tick      uint64 // Moves performed

	acc time.Duration // Time accumulated since the last move

	gameOver bool
	reason   EndReason
}

// New creates a session with the snake on the grid center heading right.
func New(p Params, rng Rand) (*Game, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.MaxFoodAttempts == 0 {
		p.MaxFoodAttempts = DefaultMaxFoodAttempts
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return newGame(p, rng), nil
}

// newGame builds a fresh session from validated params.
func newGame(p Params, rng Rand) *Game {
	g := &Game{
		params:    p,
		rng:       rng,
		snake:     []Cell{{X: p.Width / 2, Y: p.Height / 2}},
		direction: DirRight,
		nextDir:   DirRight,
	}
	// A validated grid has at least one free cell next to the single segment.
	g.food, _ = placeFood(g.rng, p.Width, p.Height, g.snake, p.MaxFoodAttempts)
	return g
}

// Params returns the session parameters.
func (g *Game) Params() Params {
	return g.params
}

// Update feeds elapsed frame time into the move timer. Once the accumulated
// time exceeds the tick period the timer is reset to zero and the snake
// moves once. Surplus time is dropped.
func (g *Game) Update(dt time.Duration) {
	g.acc += dt
	if g.acc > g.params.TickPeriod {
		g.acc = 0
		g.Advance()
	}
}

// Advance performs one discrete move. It is a no-op once the game is over.
func (g *Game) Advance() {
	if g.gameOver {
		return
	}

	g.direction = g.nextDir
	newHead := g.snake[0].Add(g.direction)

	if !g.inBounds(newHead) {
		g.end(EndWall)
		return
	}

	// The tail has not moved yet, so the cell it is about to leave still counts.
	if g.isSnakeAt(newHead) {
		g.end(EndSelf)
		return
	}

	g.tick++
	g.snake = append(g.snake, Cell{})
	copy(g.snake[1:], g.snake)
	g.snake[0] = newHead

	if newHead != g.food {
		g.snake = g.snake[:len(g.snake)-1]
		return
	}

	g.score++
	food, err := placeFood(g.rng, g.params.Width, g.params.Height, g.snake, g.params.MaxFoodAttempts)
	if err != nil {
		g.food = noFood
		g.end(EndBoardFull)
		return
	}
	g.food = food
}

// SetDirection queues d for the next move. A request for the exact opposite
// of the direction the snake is currently moving is dropped; the check is
// against the committed direction, not a queued one.
func (g *Game) SetDirection(d Direction) {
	if d == g.direction.Opposite() {
		return
	}
	g.nextDir = d
}

// HandleInput applies a host action. Restart is honored only after game over
// and replaces the whole session with a fresh one on the same grid.
func (g *Game) HandleInput(a core.Action) {
	switch a {
	case core.ActionUp:
		g.SetDirection(DirUp)
	case core.ActionDown:
		g.SetDirection(DirDown)
	case core.ActionLeft:
		g.SetDirection(DirLeft)
	case core.ActionRight:
		g.SetDirection(DirRight)
	case core.ActionRestart:
		if g.gameOver {
			*g = *newGame(g.params, g.rng)
		}
	}
}

// State returns the status read by the host after each frame.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
	if g.gameOver {
		st.Reason = g.reason.String()
	}
	return st
}

// Reason returns why the game ended, or EndNone while it is running.
func (g *Game) Reason() EndReason {
	return g.reason
}

func (g *Game) end(r EndReason) {
	g.gameOver = true
	g.reason = r
}

func (g *Game) inBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.params.Width && c.Y >= 0 && c.Y < g.params.Height
}

// isSnakeAt checks if the snake occupies the given cell.
func (g *Game) isSnakeAt(c Cell) bool {
	return occupied(g.snake, c)
}
