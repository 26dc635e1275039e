package main

import (
	"math/rand"
	"time"
)

// Point is a grid cell or a unit direction vector
type Point struct {
	X int
	Y int
}

// Phase is the lifecycle state of a game
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game holds the full state of one snake game. It is not safe for concurrent
// use; the owning session serializes all calls (ticks and commands run to
// completion on a single goroutine).
type Game struct {
	Body  []Point // index 0 = head
	Dir   Point
	Food  Point
	Score int
	Phase Phase

	rng *rand.Rand
}

// NewGame creates a game in its initial state: a one-cell snake at the fixed
// start position, heading right, food at the fixed start cell, not started.
func NewGame() *Game {
	return NewGameWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGameWithRand creates a game using the given randomness source for food
// placement. Tests pass a seeded source for deterministic runs.
func NewGameWithRand(rng *rand.Rand) *Game {
	g := &Game{rng: rng}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.Body = []Point{{X: InitialHeadX, Y: InitialHeadY}}
	g.Dir = Point{X: InitialDirX, Y: InitialDirY}
	g.Food = Point{X: InitialFoodX, Y: InitialFoodY}
	g.Score = 0
	g.Phase = PhaseNotStarted
}

// Start begins play. Only valid from the not-started phase; calls in any
// other phase have no effect.
func (g *Game) Start() {
	if g.Phase != PhaseNotStarted {
		return
	}
	g.Phase = PhaseRunning
}

// TogglePause flips between running and paused. Has no effect before the
// game starts or after it ends.
func (g *Game) TogglePause() {
	switch g.Phase {
	case PhaseRunning:
		g.Phase = PhasePaused
	case PhasePaused:
		g.Phase = PhaseRunning
	}
}

// Restart reinitializes all state from any phase.
func (g *Game) Restart() {
	g.reset()
}

// SetDirection updates the snake's heading for the next tick. Ignored unless
// the game is running, and ignored when d would reverse the current heading
// on the same axis (a 180° turn into the body).
func (g *Game) SetDirection(d Point) {
	if g.Phase != PhaseRunning {
		return
	}
	if d.X == -g.Dir.X && d.Y == -g.Dir.Y {
		return
	}
	g.Dir = d
}

// Tick advances the game by one step. No-op unless running.
//
// The self-collision check runs against the pre-move body, tail included:
// moving into the cell the tail is about to vacate still ends the game.
func (g *Game) Tick() {
	if g.Phase != PhaseRunning {
		return
	}

	head := g.Body[0]
	newHead := Point{X: head.X + g.Dir.X, Y: head.Y + g.Dir.Y}

	if isCollision(newHead, g.Body) {
		g.Phase = PhaseGameOver
		return
	}

	g.Body = append([]Point{newHead}, g.Body...)

	if newHead == g.Food {
		g.Score += FoodScore
		food, err := placeFood(g.rng, g.Body)
		if err != nil {
			// Board full — nowhere left to go, so the run is over.
			g.Phase = PhaseGameOver
			return
		}
		g.Food = food
	} else {
		g.Body = g.Body[:len(g.Body)-1]
	}
}

// Snapshot is a read-only copy of the renderable state.
type Snapshot struct {
	Snake []Point
	Food  Point
	Score int
	Phase Phase
}

// Snapshot returns a deep copy of the current state for the renderer.
// Mutating the returned value never touches the game.
func (g *Game) Snapshot() Snapshot {
	body := make([]Point, len(g.Body))
	copy(body, g.Body)
	return Snapshot{
		Snake: body,
		Food:  g.Food,
		Score: g.Score,
		Phase: g.Phase,
	}
}
