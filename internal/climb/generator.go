package climb

import (
	"github.com/vovakirdan/tui-climb/internal/config"
)

// Generator builds the starting ladder and extends it as players climb.
type Generator struct {
	width        float64
	height       float64
	spacing      float64
	margin       float64
	firstOffset  float64
	halfWidth    float64
	initialCount int
	rng          Rand
}

// NewGenerator derives generator parameters from a config.
func NewGenerator(cfg config.ClimbConfig, rng Rand) *Generator {
	return &Generator{
		width:        cfg.Platforms.Width,
		height:       cfg.Platforms.Height,
		spacing:      cfg.Platforms.Spacing,
		margin:       cfg.Platforms.Margin,
		firstOffset:  cfg.Platforms.FirstOffset,
		halfWidth:    cfg.HalfWidth(),
		initialCount: cfg.Platforms.InitialCount,
		rng:          rng,
	}
}

// Initial appends the starting ladder: evenly spaced platforms going up from
// firstOffset above the floor.
func (g *Generator) Initial(w *World) {
	y := w.Height() - g.firstOffset
	for range g.initialCount {
		w.Append(g.platformAt(y))
		y -= g.spacing
	}
}

// Extend appends one platform above the current highest one when that
// platform is about to scroll into either player's view.
// Reports whether a platform was added.
func (g *Generator) Extend(w *World, players []*Player, viewportHeight float64) bool {
	highest, ok := w.HighestY()
	if !ok {
		w.Append(g.platformAt(w.Height() - g.firstOffset))
		return true
	}

	for _, p := range players {
		if p == nil {
			continue
		}
		if highest > p.Y-viewportHeight {
			w.Append(g.platformAt(highest - g.spacing))
			return true
		}
	}
	return false
}

// Backfill rebuilds the ladder under the lowest platform, one rung per call,
// while some player's feet are more than one spacing below it. Rungs go back
// on the initial grid down to firstOffset above the floor. A rung that would
// overlap a player vertically waits for a later call.
// Reports whether a platform was added.
func (g *Generator) Backfill(w *World, players []*Player) bool {
	lowest, ok := w.LowestY()
	if !ok {
		return false
	}

	y := lowest + g.spacing
	if y > w.Height()-g.firstOffset {
		return false
	}

	stranded := false
	for _, p := range players {
		if p == nil {
			continue
		}
		if p.Y < y+g.height && p.Bottom() > y {
			return false
		}
		if p.Bottom() > y {
			stranded = true
		}
	}
	if !stranded {
		return false
	}

	w.Append(g.platformAt(y))
	return true
}

func (g *Generator) platformAt(y float64) Platform {
	return Platform{X: g.randomX(), Y: y, W: g.width, H: g.height}
}

// randomX is uniform over [margin, halfWidth - width - margin].
func (g *Generator) randomX() float64 {
	lo := g.margin
	hi := g.halfWidth - g.width - g.margin
	if hi < lo {
		hi = lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}
