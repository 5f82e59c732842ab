// Package climb implements the split-screen climbing race: two players
// ascend a shared, procedurally extended ladder of platforms, knock each other
// sideways with a cooldown-gated attack, and race to a goal height.
//
// The package is pure simulation. It consumes Input snapshots and exposes a
// RenderState; terminal handling lives in the platform layer.
package climb

import (
	"math"

	"github.com/vovakirdan/tui-climb/internal/core"
)

// Platform is an immutable collision surface.
type Platform struct {
	X, Y float64 // Top-left corner in world units
	W, H float64
}

// Box returns the platform's bounding box.
func (p Platform) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// World is the ordered, append-only set of platforms plus the floor.
// Collision resolution walks platforms in insertion order.
type World struct {
	platforms    []Platform
	height       float64 // Y of the floor
	groundHeight float64
	highest      float64 // Cached minimum platform Y
}

// NewWorld creates an empty world whose floor is at y = height.
func NewWorld(height, groundHeight float64) *World {
	return &World{
		height:       height,
		groundHeight: groundHeight,
		highest:      math.Inf(1),
	}
}

// Height returns the Y coordinate of the floor.
func (w *World) Height() float64 {
	return w.height
}

// GroundHeight returns the thickness of the drawn ground strip.
func (w *World) GroundHeight() float64 {
	return w.groundHeight
}

// Platforms returns the platforms in insertion order.
// Callers must not modify the returned slice.
func (w *World) Platforms() []Platform {
	return w.platforms
}

// Len returns the number of platforms.
func (w *World) Len() int {
	return len(w.platforms)
}

// Append adds a platform at the end of the collection.
func (w *World) Append(p Platform) {
	w.platforms = append(w.platforms, p)
	if p.Y < w.highest {
		w.highest = p.Y
	}
}

// HighestY returns the smallest platform Y (the highest point).
// Reports false for an empty world.
func (w *World) HighestY() (float64, bool) {
	if len(w.platforms) == 0 {
		return 0, false
	}
	return w.highest, true
}

// LowestY returns the largest platform Y (the lowest point).
// Reports false for an empty world.
func (w *World) LowestY() (float64, bool) {
	if len(w.platforms) == 0 {
		return 0, false
	}
	lowest := math.Inf(-1)
	for _, p := range w.platforms {
		lowest = math.Max(lowest, p.Y)
	}
	return lowest, true
}

// PruneBelow drops every platform whose top is below y and returns how many
// were removed. Relative order of the remaining platforms is kept.
func (w *World) PruneBelow(y float64) int {
	kept := w.platforms[:0]
	for _, p := range w.platforms {
		if p.Y <= y {
			kept = append(kept, p)
		}
	}
	removed := len(w.platforms) - len(kept)
	if removed == 0 {
		return 0
	}
	// Release references held past the new length
	clear(w.platforms[len(kept):])
	w.platforms = kept

	w.highest = math.Inf(1)
	for _, p := range w.platforms {
		w.highest = math.Min(w.highest, p.Y)
	}
	return removed
}
