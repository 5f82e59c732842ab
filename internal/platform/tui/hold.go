package tui

import (
	"time"

	"github.com/vovakirdan/tui-climb/internal/core"
)

// Terminals report no key releases, only the auto-repeat of a held key.
// The first press has to bridge the auto-repeat delay (usually 250-500ms);
// once repeats arrive a short window lets the key go soon after release.
const (
	initialHoldWindow = 500 * time.Millisecond
	repeatHoldWindow  = 150 * time.Millisecond
)

type control struct {
	seat   core.PlayerID
	action core.Action
}

type keyState struct {
	last      time.Time
	repeating bool
}

// holdTracker turns repeated key presses into held state.
type holdTracker struct {
	initial time.Duration
	repeat  time.Duration
	keys    map[control]keyState
}

func newHoldTracker(initial, repeat time.Duration) *holdTracker {
	if initial <= 0 {
		initial = initialHoldWindow
	}
	if repeat <= 0 {
		repeat = repeatHoldWindow
	}
	return &holdTracker{
		initial: initial,
		repeat:  repeat,
		keys:    make(map[control]keyState),
	}
}

// press records a key press. Pressing one direction releases the opposite one.
func (h *holdTracker) press(seat core.PlayerID, action core.Action, now time.Time) {
	switch action {
	case core.ActionLeft:
		delete(h.keys, control{seat, core.ActionRight})
	case core.ActionRight:
		delete(h.keys, control{seat, core.ActionLeft})
	}

	c := control{seat, action}
	st, ok := h.keys[c]
	h.keys[c] = keyState{
		last:      now,
		repeating: ok && now.Sub(st.last) < h.window(st),
	}
}

// held reports whether the key was seen within its hold window.
func (h *holdTracker) held(seat core.PlayerID, action core.Action, now time.Time) bool {
	c := control{seat, action}
	st, ok := h.keys[c]
	if !ok {
		return false
	}
	if now.Sub(st.last) >= h.window(st) {
		delete(h.keys, c)
		return false
	}
	return true
}

func (h *holdTracker) window(st keyState) time.Duration {
	if st.repeating {
		return h.repeat
	}
	return h.initial
}

// releaseAll forgets every held key.
func (h *holdTracker) releaseAll() {
	clear(h.keys)
}
