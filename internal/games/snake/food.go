package snake

import "errors"

// ErrFoodPlacementExhausted is returned when every cell is covered by the snake.
var ErrFoodPlacementExhausted = errors.New("snake: no free cell for food")

// placeFood picks a uniformly random cell not covered by body.
//
// It draws x in [0, width) and y in [0, height) until a free cell comes up.
// After maxAttempts rejected draws it switches to picking from an explicit
// list of free cells, which keeps the distribution uniform and terminates on
// a nearly full grid.
func placeFood(rng Rand, width, height int, body []Cell, maxAttempts int) (Cell, error) {
	for range maxAttempts {
		c := Cell{X: rng.IntN(width), Y: rng.IntN(height)}
		if !occupied(body, c) {
			return c, nil
		}
	}

	free := freeCells(width, height, body)
	if len(free) == 0 {
		return noFood, ErrFoodPlacementExhausted
	}
	return free[rng.IntN(len(free))], nil
}

// freeCells lists the cells not covered by body in row-major order.
func freeCells(width, height int, body []Cell) []Cell {
	taken := make(map[Cell]struct{}, len(body))
	for _, c := range body {
		taken[c] = struct{}{}
	}

	free := make([]Cell, 0, max(width*height-len(taken), 0))
	for y := range height {
		for x := range width {
			c := Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}

func occupied(body []Cell, c Cell) bool {
	for _, seg := range body {
		if seg == c {
			return true
		}
	}
	return false
}
