package engine

import (
	"slices"

	"github.com/vovakirdan/hopper/internal/core"
)

// PointerFunc handles a pointer-down. pos is the world position for mouse
// input and nil for keyboard taps.
type PointerFunc func(pos *core.Vec)

// Button is an interactive screen area.
type Button struct {
	Rect    core.Rect
	onClick func()
	input   *Input
}

// Off removes the button's click handler. The button stays on screen.
func (b *Button) Off() {
	b.onClick = nil
}

// Destroy removes the button from its input dispatcher.
func (b *Button) Destroy() {
	if b.input == nil {
		return
	}
	b.input.buttons = slices.DeleteFunc(b.input.buttons, func(o *Button) bool { return o == b })
	b.input = nil
}

// Alive reports whether the button has not been destroyed.
func (b *Button) Alive() bool {
	return b.input != nil
}

// Input dispatches a tick's input frame to scene handlers.
type Input struct {
	buttons  []*Button
	handlers []PointerFunc
}

// NewInput creates an empty dispatcher.
func NewInput() *Input {
	return &Input{}
}

// OnPointerDown registers a handler for every pointer-down.
func (in *Input) OnPointerDown(fn PointerFunc) {
	in.handlers = append(in.handlers, fn)
}

// AddButton registers a button covering rect.
func (in *Input) AddButton(rect core.Rect, onClick func()) *Button {
	b := &Button{Rect: rect, onClick: onClick, input: in}
	in.buttons = append(in.buttons, b)
	return b
}

// Buttons returns the live buttons in registration order.
func (in *Input) Buttons() []*Button {
	return in.buttons
}

// Dispatch runs the handlers for one frame. Buttons go first: a
// pointer-down activates every button under the pointer and Confirm
// activates every button. Pointer-down handlers run after.
func (in *Input) Dispatch(f core.InputFrame) {
	pointer := f.Has(core.ActionPointerDown)
	confirm := f.Has(core.ActionConfirm)

	if pointer || confirm {
		for _, b := range slices.Clone(in.buttons) {
			hit := confirm || (f.Pointer != nil && b.Rect.Contains(f.Pointer.X, f.Pointer.Y))
			if hit && b.onClick != nil {
				b.onClick()
			}
		}
	}

	if pointer {
		for _, fn := range slices.Clone(in.handlers) {
			fn(f.Pointer)
		}
	}
}
