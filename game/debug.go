package game

import "fmt"

// DebugState holds debug overlay flags; it survives restarts
type DebugState struct {
	ShowCounts bool // Show live asteroid and projectile counts
}

// Debug returns the current debug flags
func (g *Game) Debug() DebugState {
	return g.debug
}

func (g *Game) drawDebugOverlay() {
	label := fmt.Sprintf("A%d P%d", len(g.asteroids), len(g.projectiles))
	y := float64(g.config.WorldHeight) - 14
	g.canvas.DrawText(label, g.config.HUDX, y, g.config.TextColor)
}
