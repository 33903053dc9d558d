package tracker

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"

	"github.com/sandeepkv93/routined/internal/model"
)

// Day-picker states for the add flow. Untyped string constants for
// statekit.StateID compatibility.
const (
	PickerCollapsed = "collapsed"
	PickerOpen      = "open"
	PickerConfirmed = "confirmed"
)

// Picker events.
const (
	pickerEventOpen    = "open"
	pickerEventConfirm = "confirm"
	pickerEventCancel  = "cancel"
	pickerEventReopen  = "reopen"
)

type pickerContext struct {
	HasDay func() bool
}

// DayPicker drives the add-form day selection: COLLAPSED (draft = selected
// day only, unconfirmed) -> OPEN (chips and presets mutate the draft) ->
// CONFIRMED (draft frozen). Confirming an empty draft is guarded off, and
// the whole machine resets whenever the selected day or week changes.
type DayPicker struct {
	selectedIndex int
	draft         model.Schedule
	interpreter   *statekit.Interpreter[pickerContext]
}

func NewDayPicker(selectedIndex int) (*DayPicker, error) {
	p := &DayPicker{
		selectedIndex: selectedIndex,
		draft:         model.SingleDay(selectedIndex),
	}
	interpreter, err := newPickerInterpreter(p)
	if err != nil {
		return nil, err
	}
	p.interpreter = interpreter
	return p, nil
}

func newPickerInterpreter(p *DayPicker) (*statekit.Interpreter[pickerContext], error) {
	builder := statekit.NewMachine[pickerContext]("day-picker").
		WithInitial(statekit.StateID(PickerCollapsed)).
		WithContext(pickerContext{
			HasDay: func() bool { return !p.draft.IsEmpty() },
		}).
		WithGuard("hasDay", func(ctx pickerContext, e statekit.Event) bool {
			return ctx.HasDay()
		})

	builder.State(PickerCollapsed).
		On(pickerEventOpen).Target(PickerOpen).
		Done()

	builder.State(PickerOpen).
		On(pickerEventConfirm).Target(PickerConfirmed).Guard("hasDay").
		On(pickerEventCancel).Target(PickerCollapsed).
		Done()

	builder.State(PickerConfirmed).
		On(pickerEventReopen).Target(PickerOpen).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("tracker: build day picker machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()
	return interpreter, nil
}

func (p *DayPicker) State() string {
	return string(p.interpreter.State().Value)
}

func (p *DayPicker) Draft() model.Schedule {
	return p.draft
}

func (p *DayPicker) Confirmed() bool {
	return p.State() == PickerConfirmed
}

// Open shows the picker. From CONFIRMED this reopens for further edits.
func (p *DayPicker) Open() {
	switch p.State() {
	case PickerCollapsed:
		p.send(pickerEventOpen)
	case PickerConfirmed:
		p.send(pickerEventReopen)
	}
}

// Cancel collapses the picker and re-derives the draft from the selected
// day, dropping unconfirmed edits.
func (p *DayPicker) Cancel() {
	if p.State() == PickerOpen {
		p.send(pickerEventCancel)
		p.draft = model.SingleDay(p.selectedIndex)
	}
}

// Confirm freezes the draft. An empty draft is rejected.
func (p *DayPicker) Confirm() error {
	before := p.State()
	p.send(pickerEventConfirm)
	if p.State() == before {
		return model.ErrEmptySchedule
	}
	return nil
}

// ToggleDay flips one chip. Only meaningful while the picker is open.
func (p *DayPicker) ToggleDay(index int) {
	if p.State() != PickerOpen {
		return
	}
	p.draft = p.draft.Toggle(index)
}

// ApplyPreset replaces the draft while the picker is open.
func (p *DayPicker) ApplyPreset(preset model.Schedule) {
	if p.State() != PickerOpen {
		return
	}
	p.draft = preset
}

// Reset returns to COLLAPSED with the draft re-derived from the (possibly
// new) selected day. Called after a successful add and whenever the
// selected day or week changes.
func (p *DayPicker) Reset(selectedIndex int) {
	p.selectedIndex = selectedIndex
	p.draft = model.SingleDay(selectedIndex)
	interpreter, err := newPickerInterpreter(p)
	if err != nil {
		// The machine definition is static; a build failure would have
		// already surfaced in NewDayPicker at startup.
		return
	}
	p.interpreter = interpreter
}

func (p *DayPicker) send(event string) {
	p.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
}
