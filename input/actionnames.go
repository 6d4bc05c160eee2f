package input

// actionRegistry maps canonical action names to intents
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry map[string]IntentType

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]IntentType {
	reg := make(map[string]IntentType, len(intentNames))
	for t, name := range intentNames {
		switch IntentType(t) {
		case IntentResize, IntentChoose, IntentMarkCorrect, IntentPitchClick:
			// Bound to events, digits or the mouse, never to a single key
			continue
		}
		reg[name] = IntentType(t)
	}
	return reg
}
