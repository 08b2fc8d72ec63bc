package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a read-only copy of the session for renderers, replay checks
// and determinism tests. Changing it never affects the Game.
type Snapshot struct {
	Tick    uint64
	Width   int
	Height  int
	Score   int
	Body    []Cell // Head first
	Head    Cell
	Dir     Direction
	NextDir Direction
	Food    Cell
	State   GameStateType
	Reason  EndReason
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Body)
}

// HasFood reports whether a food cell is on the board.
func (s Snapshot) HasFood() bool {
	return s.Food != noFood
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.gameOver {
		state = StateGameOver
	}

	body := make([]Cell, len(g.snake))
	copy(body, g.snake)

	return Snapshot{
		Tick:    g.tick,
		Width:   g.params.Width,
		Height:  g.params.Height,
		Score:   g.score,
		Body:    body,
		Head:    body[0],
		Dir:     g.direction,
		NextDir: g.nextDir,
		Food:    g.food,
		State:   state,
		Reason:  g.reason,
	}
}
