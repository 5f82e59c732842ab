package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-climb/internal/core"
)

func TestHoldTracker(t *testing.T) {
	h := newHoldTracker(100*time.Millisecond, 40*time.Millisecond)
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if h.held(core.Player1, core.ActionLeft, t0) {
		t.Error("nothing pressed yet")
	}

	h.press(core.Player1, core.ActionLeft, t0)

	if !h.held(core.Player1, core.ActionLeft, t0.Add(50*time.Millisecond)) {
		t.Error("key should be held within the window")
	}
	if h.held(core.Player2, core.ActionLeft, t0.Add(50*time.Millisecond)) {
		t.Error("seats are tracked separately")
	}
	if h.held(core.Player1, core.ActionLeft, t0.Add(100*time.Millisecond)) {
		t.Error("key should be released after the window")
	}
}

func TestHoldTrackerBridgesRepeatDelay(t *testing.T) {
	h := newHoldTracker(0, 0)
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

	h.press(core.Player2, core.ActionRight, at(0))
	if !h.held(core.Player2, core.ActionRight, at(400)) {
		t.Error("key should stay held until auto-repeat starts")
	}

	// Auto-repeat kicks in after 450ms and fires every 33ms
	last := 0
	for ms := 450; ms <= 615; ms += 33 {
		h.press(core.Player2, core.ActionRight, at(ms))
		last = ms
	}
	if !h.held(core.Player2, core.ActionRight, at(last+100)) {
		t.Error("auto-repeat should keep the key held")
	}
	if h.held(core.Player2, core.ActionRight, at(last+int(repeatHoldWindow/time.Millisecond))) {
		t.Error("key should be released shortly after the repeats stop")
	}
}

func TestHoldTrackerTapReleases(t *testing.T) {
	h := newHoldTracker(0, 0)
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	h.press(core.Player1, core.ActionLeft, t0)
	if h.held(core.Player1, core.ActionLeft, t0.Add(initialHoldWindow)) {
		t.Error("a single tap should be released after the initial window")
	}

	// A press after the release starts over with the initial window
	h.press(core.Player1, core.ActionLeft, t0.Add(time.Second))
	if !h.held(core.Player1, core.ActionLeft, t0.Add(time.Second+repeatHoldWindow+time.Millisecond)) {
		t.Error("a fresh press should use the initial window")
	}
}

func TestHoldTrackerOppositeDirection(t *testing.T) {
	h := newHoldTracker(100*time.Millisecond, 40*time.Millisecond)
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	h.press(core.Player1, core.ActionLeft, t0)
	h.press(core.Player1, core.ActionRight, t0.Add(10*time.Millisecond))

	now := t0.Add(20 * time.Millisecond)
	if h.held(core.Player1, core.ActionLeft, now) {
		t.Error("pressing right should release left")
	}
	if !h.held(core.Player1, core.ActionRight, now) {
		t.Error("right should be held")
	}

	h.releaseAll()
	if h.held(core.Player1, core.ActionRight, now) {
		t.Error("releaseAll should forget every key")
	}
}

func TestHoldTrackerDefaultWindows(t *testing.T) {
	h := newHoldTracker(0, 0)
	if h.initial != initialHoldWindow || h.repeat != repeatHoldWindow {
		t.Errorf("windows = %v/%v, expected %v/%v", h.initial, h.repeat, initialHoldWindow, repeatHoldWindow)
	}
}
