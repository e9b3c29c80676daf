// Package input handles SDL2 input events: per-frame event polling,
// the held-key set, and pointer-drag look state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for game use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyPress
	EventLook
	EventFocusLost
)

// Event represents a processed input event. EventKeyPress fires on the
// key-down edge only; auto-repeat does not re-fire it, so it is safe
// for toggle keys. EventLook carries a pointer-drag delta in window
// points.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	DX     int
	DY     int
}

// Input handles all input processing.
type Input struct {
	events   []Event
	held     map[sdl.Scancode]bool
	dragging bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events, maintains the held-key and drag state, and
// converts edges into game events. Returns true if the game should
// quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED:
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				// A key released while unfocused would otherwise stay
				// stuck in the held set.
				i.Reset()
				i.events = append(i.events, Event{Type: EventFocusLost})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				i.held[e.Keysym.Scancode] = true
				if e.Repeat == 0 {
					i.events = append(i.events, Event{
						Type: EventKeyPress,
						Key:  e.Keysym.Scancode,
					})
				}
			} else if e.Type == sdl.KEYUP {
				delete(i.held, e.Keysym.Scancode)
			}

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_LEFT {
				if e.Type == sdl.MOUSEBUTTONDOWN {
					i.dragging = true
				} else if e.Type == sdl.MOUSEBUTTONUP {
					i.dragging = false
				}
			}

		case *sdl.MouseMotionEvent:
			if i.dragging {
				i.events = append(i.events, Event{
					Type: EventLook,
					DX:   int(e.XRel),
					DY:   int(e.YRel),
				})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// AnyHeld reports whether any of the given keys is held.
func (i *Input) AnyHeld(scancodes ...sdl.Scancode) bool {
	for _, sc := range scancodes {
		if i.held[sc] {
			return true
		}
	}
	return false
}

// Reset clears the held-key set and cancels any active drag.
func (i *Input) Reset() {
	for k := range i.held {
		delete(i.held, k)
	}
	i.dragging = false
}
