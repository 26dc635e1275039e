package main

import "strings"

// directionForKey maps a browser key name to a unit direction. Arrow keys
// and WASD are recognized; anything else reports ok=false and the key is
// dropped. Reversal rejection is the engine's job, not the mapping's.
var directionForKey = map[string]Point{
	"ArrowUp":    {X: 0, Y: -1},
	"ArrowDown":  {X: 0, Y: 1},
	"ArrowLeft":  {X: -1, Y: 0},
	"ArrowRight": {X: 1, Y: 0},
	"w":          {X: 0, Y: -1},
	"s":          {X: 0, Y: 1},
	"a":          {X: -1, Y: 0},
	"d":          {X: 1, Y: 0},
}

// mapKey translates a key event into a direction. Single-character keys are
// lowercased first, so WASD still steers with Shift or CapsLock held.
func mapKey(key string) (Point, bool) {
	if len(key) == 1 {
		key = strings.ToLower(key)
	}
	d, ok := directionForKey[key]
	return d, ok
}
