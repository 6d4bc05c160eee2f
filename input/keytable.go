package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents. Digits and the mouse are handled by the machine
type KeyTable struct {
	// Special keys (Ctrl+*, Esc, Delete)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:      IntentQuit,
			tcell.KeyEscape:     IntentEscape,
			tcell.KeyDelete:     IntentClearPath,
			tcell.KeyBackspace:  IntentClearPath,
			tcell.KeyBackspace2: IntentClearPath,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			's': IntentStartPractice,
			'd': IntentOpenDesigner,
			'r': IntentReset,
			'm': IntentToggleSound,
			'p': IntentPreview,
			'w': IntentSavePlay,
			'c': IntentSetCarrier,
			't': IntentAddTransfer,
		},
	}
}

// Merge applies a sparse override table. IntentNone in the override unbinds the key
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	mergeInto(kt.SpecialKeys, override.SpecialKeys)
	mergeInto(kt.Runes, override.Runes)
}

func mergeInto[K comparable](dst, src map[K]IntentType) {
	maps.Copy(dst, src)
	for k, v := range dst {
		if v == IntentNone {
			delete(dst, k)
		}
	}
}
