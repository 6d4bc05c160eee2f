package input

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyByName resolves lowercased tcell key names ("ctrl-q", "esc", "delete")
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

type keyConfigFile struct {
	Keys        map[string]string `toml:"keys"`
	SpecialKeys map[string]string `toml:"special_keys"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keyConfigFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType, len(raw.SpecialKeys)),
		Runes:       make(map[rune]IntentType, len(raw.Keys)),
	}

	for keyStr, action := range raw.Keys {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		t, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		if r >= '1' && r <= '9' {
			return nil, fmt.Errorf("[keys] key %q: digits are reserved for options", keyStr)
		}
		kt.Runes[r] = t
	}

	for keyStr, action := range raw.SpecialKeys {
		k, ok := keyByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("[special_keys] unknown key name %q", keyStr)
		}
		t, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("[special_keys] key %q: %w", keyStr, err)
		}
		kt.SpecialKeys[k] = t
	}

	return kt, nil
}

// LoadKeyFile reads a keymap file; an empty path yields a nil override
func LoadKeyFile(path string) (*KeyTable, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("keymap: %w", err)
	}
	kt, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return kt, nil
}

func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("expected single character or alias, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func resolveAction(name string) (IntentType, error) {
	t, ok := actionRegistry[name]
	if !ok {
		return IntentNone, fmt.Errorf("unknown action %q", name)
	}
	return t, nil
}
