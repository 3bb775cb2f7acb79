package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/abertram/Invisiboga/internal/game"
	"github.com/abertram/Invisiboga/internal/gamedata"
)

// Toast durations by priority.
const (
	ShortToast = 2 * time.Second
	LongToast  = 3500 * time.Millisecond
)

type toast struct {
	text     string
	duration time.Duration
	shownAt  time.Time // Zero until the toast reaches the front of the queue
}

// Overlay keeps what the session asked to show. Toasts are queued and shown
// one after another.
type Overlay struct {
	now      func() time.Time
	queue    []toast
	controls map[string]bool

	player      string
	playerKind  string
	playerColor tcell.Color
}

// NewOverlay creates an empty overlay. A nil clock uses time.Now.
func NewOverlay(now func() time.Time) *Overlay {
	if now == nil {
		now = time.Now
	}
	return &Overlay{now: now, controls: make(map[string]bool)}
}

// Notify queues a toast.
func (o *Overlay) Notify(text string, priority game.Priority) {
	d := ShortToast
	if priority == game.PriorityLong {
		d = LongToast
	}
	o.queue = append(o.queue, toast{text: text, duration: d})
}

// SetControlVisible shows or hides a control.
func (o *Overlay) SetControlVisible(name string, visible bool) {
	o.controls[name] = visible
}

// ActivePlayerChanged updates the active player banner.
func (o *Overlay) ActivePlayerChanged(name, kindLabel, colorTag string) {
	o.player = name
	o.playerKind = kindLabel
	o.playerColor = gamedata.ParseHexColorOr(colorTag, tcell.ColorWhite)
}

// Toast returns the toast on screen, dropping the ones that have expired.
func (o *Overlay) Toast() (string, bool) {
	now := o.now()
	for len(o.queue) > 0 {
		t := &o.queue[0]
		if t.shownAt.IsZero() {
			t.shownAt = now
		}
		if now.Sub(t.shownAt) < t.duration {
			return t.text, true
		}
		o.queue = o.queue[1:]
	}
	return "", false
}

// Pending returns the number of queued toasts, including the one on screen.
func (o *Overlay) Pending() int {
	return len(o.queue)
}

// ControlVisible reports whether a control is shown.
func (o *Overlay) ControlVisible(name string) bool {
	return o.controls[name]
}

// ActivePlayer returns the banner contents. ok is false while the banner is hidden.
func (o *Overlay) ActivePlayer() (name, kind string, color tcell.Color, ok bool) {
	if !o.controls[game.ControlCurrentPlayer] || o.player == "" {
		return "", "", tcell.ColorDefault, false
	}
	return o.player, o.playerKind, o.playerColor, true
}
