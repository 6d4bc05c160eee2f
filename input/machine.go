package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine parses tcell events into semantic Intents for the current mode
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
	buttons  tcell.ButtonMask
}

// NewMachine creates an input machine with the default bindings and an optional override
func NewMachine(override *KeyTable) *Machine {
	kt := DefaultKeyTable()
	kt.Merge(override)
	return &Machine{
		mode:     ModeMenu,
		keyTable: kt,
	}
}

// SetMode updates the parser's mode context
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the parser's mode context
func (m *Machine) Mode() InputMode {
	return m.mode
}

// Process parses a terminal event and returns an Intent
// Returns nil if the event means nothing in the current mode
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() != tcell.KeyRune {
		if t, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
			return m.filter(&Intent{Type: t})
		}
		return nil
	}

	r := ev.Rune()
	if r >= '1' && r <= '9' {
		idx := int(r - '1')
		switch m.mode {
		case ModeDecision:
			return &Intent{Type: IntentChoose, Index: idx}
		case ModeDesigner:
			return &Intent{Type: IntentMarkCorrect, Index: idx}
		}
		return nil
	}

	if t, ok := m.keyTable.Runes[r]; ok {
		return m.filter(&Intent{Type: t})
	}
	return nil
}

// processMouse reports a click only on the press edge of the primary button
func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	prev := m.buttons
	m.buttons = ev.Buttons()

	if m.mode != ModeDesigner {
		return nil
	}
	if m.buttons&tcell.Button1 == 0 || prev&tcell.Button1 != 0 {
		return nil
	}

	col, row := ev.Position()
	return &Intent{
		Type:     IntentPitchClick,
		Col:      col,
		Row:      row,
		Decision: ev.Modifiers()&(tcell.ModShift|tcell.ModCtrl) != 0,
	}
}

// filter drops intents that have no meaning in the current mode
func (m *Machine) filter(in *Intent) *Intent {
	switch in.Type {
	case IntentQuit, IntentEscape, IntentToggleSound, IntentReset:
		return in
	case IntentStartPractice, IntentOpenDesigner:
		if m.mode == ModeMenu {
			return in
		}
	case IntentPreview, IntentClearPath, IntentSavePlay, IntentSetCarrier, IntentAddTransfer:
		if m.mode == ModeDesigner {
			return in
		}
	}
	return nil
}
