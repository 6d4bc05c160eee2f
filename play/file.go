package play

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Decode reads a TOML play, fills derived labels and validates it
func Decode(r io.Reader) (*Play, error) {
	var p Play
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode play: %w", err)
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadFile decodes the play at path
func LoadFile(path string) (*Play, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open play: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Encode writes p as TOML
func Encode(w io.Writer, p *Play) error {
	if err := toml.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("encode play: %w", err)
	}
	return nil
}

// Load resolves the configured play source: a file when path is set, the built-in example otherwise
func Load(path string) (*Play, error) {
	if path == "" {
		return Example(), nil
	}
	return LoadFile(path)
}
