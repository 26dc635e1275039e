package main

import (
	"errors"
	"math/rand"
)

// ErrNoSpace is returned when no free cell could be found for food.
var ErrNoSpace = errors.New("no free cell for food")

// placeFood picks a uniformly random cell not occupied by the snake.
// It samples up to FoodMaxAttempts times rather than looping forever;
// exhausting the cap means the board is (effectively) full and the caller
// gets ErrNoSpace instead of a spin.
func placeFood(rng *rand.Rand, occupied []Point) (Point, error) {
	for i := 0; i < FoodMaxAttempts; i++ {
		p := Point{X: rng.Intn(GridSize), Y: rng.Intn(GridSize)}
		free := true
		for _, seg := range occupied {
			if p == seg {
				free = false
				break
			}
		}
		if free {
			return p, nil
		}
	}
	return Point{}, ErrNoSpace
}
