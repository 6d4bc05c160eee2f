package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Ctrl+C
	IntentEscape      // ESC key (context-dependent)
	IntentToggleSound // m
	IntentResize      // Terminal resize event

	// Menu
	IntentStartPractice // s
	IntentOpenDesigner  // d
	IntentReset         // r

	// Decision prompt
	IntentChoose // 1-9 while a decision is pending

	// Designer
	IntentPreview     // p
	IntentClearPath   // Delete, Backspace
	IntentSavePlay    // w
	IntentSetCarrier  // c
	IntentAddTransfer // t
	IntentMarkCorrect // 1-9 in the designer
	IntentPitchClick  // left click on the pitch
)

var intentNames = [...]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentEscape:        "escape",
	IntentToggleSound:   "toggle_sound",
	IntentResize:        "resize",
	IntentStartPractice: "start_practice",
	IntentOpenDesigner:  "open_designer",
	IntentReset:         "reset",
	IntentChoose:        "choose",
	IntentPreview:       "preview",
	IntentClearPath:     "clear_path",
	IntentSavePlay:      "save_play",
	IntentSetCarrier:    "set_carrier",
	IntentAddTransfer:   "add_transfer",
	IntentMarkCorrect:   "mark_correct",
	IntentPitchClick:    "pitch_click",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type     IntentType
	Index    int  // zero-based option for IntentChoose and IntentMarkCorrect
	Col, Row int  // screen cell for IntentPitchClick
	Decision bool // modifier held on IntentPitchClick
}
