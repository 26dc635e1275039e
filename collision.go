package main

// inBounds reports whether p lies on the grid.
func inBounds(p Point) bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

// isCollision reports whether moving the head to p ends the game: p is off
// the grid, or p overlaps any cell of body. The caller passes the pre-move
// body, so the current tail cell counts as occupied.
func isCollision(p Point, body []Point) bool {
	if !inBounds(p) {
		return true
	}
	for _, seg := range body {
		if p == seg {
			return true
		}
	}
	return false
}
