package play

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LabelFromAction derives a display label from an action tag: cut_right becomes "Cut Right"
func LabelFromAction(action string) string {
	words := strings.Join(strings.FieldsFunc(action, func(r rune) bool {
		return r == '_' || r == '-'
	}), " ")
	return cases.Title(language.English).String(words)
}

// Normalize fills empty option labels from their action tags
func (p *Play) Normalize() {
	for i := range p.Players {
		for j := range p.Players[i].Path {
			opts := p.Players[i].Path[j].Options
			for k := range opts {
				if opts[k].Label == "" {
					opts[k].Label = LabelFromAction(opts[k].Action)
				}
			}
		}
	}
}
