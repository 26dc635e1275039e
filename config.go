package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Game configuration constants
const (
	// Server
	ServerPort    = ":8080"
	StaticDir     = "./client"
	WebSocketPath = "/ws"

	// Board — square grid of GridSize x GridSize cells, 0-indexed.
	// Leaving the grid is death (not wrap).
	GridSize = 15
	// CellPixels is the canvas cell size hint sent to the client on welcome.
	CellPixels = 24

	// Game loop
	TickInterval = 150 * time.Millisecond

	// Snake — starts as a single cell heading right
	InitialHeadX = 7
	InitialHeadY = 7
	InitialDirX  = 1
	InitialDirY  = 0

	// Food
	InitialFoodX = 10
	InitialFoodY = 10
	FoodScore    = 10

	// FoodMaxAttempts bounds the random placement loop. On a 225-cell grid
	// with any realistic snake length a free cell turns up within a handful
	// of draws; the cap only matters on a nearly full board.
	FoodMaxAttempts = 100000

	// Connections
	MaxSessions   = 64
	IPCooldownSec = 2
)

// Settings holds process-level options resolved from the environment.
// Everything gameplay-related stays in the constants above.
type Settings struct {
	Addr      string
	StaticDir string
}

// LoadSettings reads optional overrides from a .env file or the process
// environment. Missing values fall back to the compiled defaults.
func LoadSettings() Settings {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using defaults and process environment")
	}

	s := Settings{
		Addr:      ServerPort,
		StaticDir: StaticDir,
	}
	if v := os.Getenv("SNAKE_ADDR"); v != "" {
		s.Addr = v
	}
	if v := os.Getenv("SNAKE_STATIC_DIR"); v != "" {
		s.StaticDir = v
	}
	return s
}
