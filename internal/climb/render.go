package climb

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-climb/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	GroundChar   = '▓'
	GoalChar     = '┄'
	DividerChar  = '┃'
)

// Layout constants, in cells
const (
	dividerCols = 1
	hudTopRows  = 1
	hudBotRows  = 1
)

// Render draws both players' views side by side into dst.
// Each view shows the shared world scrolled so that its own player sits in the
// vertical middle, as the two halves of one canvas.
func Render(rs RenderState, dst *core.Screen) {
	dst.Clear()

	if rs.State == StateMenu || len(rs.Players) < 2 {
		drawCenteredMessage(dst, "SPLIT CLIMB", "Enter names to start")
		return
	}

	w, h := dst.Width(), dst.Height()
	paneW := (w - dividerCols) / 2
	rows := h - hudTopRows - hudBotRows
	if paneW < 1 || rows < 1 {
		drawCenteredMessage(dst, "Terminal too small")
		return
	}

	for x := paneW; x < paneW+dividerCols; x++ {
		dst.DrawVLine(x, 0, h, DividerChar, core.ColorGray)
	}

	for i, id := range []core.PlayerID{Player1, Player2} {
		p, ok := rs.Player(id)
		if !ok {
			continue
		}
		x0 := i * (paneW + dividerCols)
		v := newViewport(rs, p, x0, hudTopRows, paneW, rows)
		drawPane(dst, rs, p, v)
		drawHUD(dst, rs, p, x0, paneW, h)
	}

	if rs.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if rs.State == StateEndgame {
		drawCenteredMessage(dst,
			fmt.Sprintf("%s Wins!", rs.WinnerName()),
			fmt.Sprintf("%s %d - %d %s", rs.Names[0], rs.Wins[0], rs.Wins[1], rs.Names[1]),
			"R: rematch  X: reset tally  Q: quit",
		)
	}
}

// viewport maps world coordinates into one pane of cells.
type viewport struct {
	x0, y0     int
	cols, rows int
	scaleX     float64 // World units per column
	scaleY     float64 // World units per row
	top        float64 // World Y at the first row
}

func newViewport(rs RenderState, p PlayerView, x0, y0, cols, rows int) viewport {
	return viewport{
		x0:     x0,
		y0:     y0,
		cols:   cols,
		rows:   rows,
		scaleX: rs.HalfWidth / float64(cols),
		scaleY: rs.ViewportHeight / float64(rows),
		top:    p.Y - rs.ViewportHeight/2,
	}
}

// row returns the pane row of a world Y.
func (v viewport) row(y float64) int {
	return int(math.Floor((y - v.top) / v.scaleY))
}

// fill paints every cell a world box touches, clipped to the pane.
// Boxes thinner than a cell still occupy one cell.
func (v viewport) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	c0 := int(math.Floor(b.X / v.scaleX))
	c1 := max(int(math.Ceil(b.Right()/v.scaleX))-1, c0)
	r0 := v.row(b.Y)
	r1 := max(int(math.Ceil((b.Bottom()-v.top)/v.scaleY))-1, r0)

	c0, c1 = max(c0, 0), min(c1, v.cols-1)
	r0, r1 = max(r0, 0), min(r1, v.rows-1)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			dst.SetColored(v.x0+col, v.y0+row, r, c)
		}
	}
}

func drawPane(dst *core.Screen, rs RenderState, p PlayerView, v viewport) {
	if row := v.row(rs.GoalHeight); row >= 0 && row < v.rows {
		for col := 0; col < v.cols; col++ {
			dst.SetColored(v.x0+col, v.y0+row, GoalChar, core.ColorYellow)
		}
		dst.DrawTextColored(v.x0, v.y0+row, "GOAL", core.ColorYellow)
	}

	bottom := v.top + rs.ViewportHeight
	for _, pl := range rs.Platforms {
		if pl.Y+pl.H < v.top || pl.Y > bottom {
			continue
		}
		v.fill(dst, pl.Box(), PlatformChar, core.ColorGreen)
	}

	ground := core.Box{X: 0, Y: rs.WorldHeight - rs.GroundHeight, W: rs.HalfWidth, H: rs.GroundHeight}
	v.fill(dst, ground, GroundChar, core.ColorGray)

	v.fill(dst, core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}, PlayerChar, p.Color)
}

func drawHUD(dst *core.Screen, rs RenderState, p PlayerView, x0, width, screenH int) {
	wins := 0
	if i := p.ID.Index(); i >= 0 {
		wins = rs.Wins[i]
	}
	top := fmt.Sprintf("%s %s  wins %d  alt %d", p.Label, p.Name, wins, int(math.Max(p.Altitude, 0)))
	dst.DrawTextColored(x0, 0, truncate(top, width), p.Color)

	status := "Ready to attack"
	if p.Cooldown > 0 {
		status = fmt.Sprintf("Cooldown: %.2fs", p.Cooldown.Seconds())
	}
	if p.Frozen {
		status += "  FROZEN"
	}
	dst.DrawText(x0, screenH-1, truncate(status, width))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	w, h := dst.Width(), dst.Height()

	longest := 0
	for _, l := range lines {
		longest = max(longest, len([]rune(l)))
	}
	boxW := min(longest+4, w)
	boxH := min(len(lines)+2, h)
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextCentered(box.X, box.W, box.Y+1+i, truncate(l, max(boxW-2, 0)), core.ColorWhite)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
