package pattern

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/san-kum/lifesim/internal/life"
)

const (
	Empty = "empty"
	Soup  = "random"
)

// Fill seeds f from a plaintext file when file is set, otherwise from name:
// a built-in pattern, Soup for a seeded random fill, or Empty (or "") for
// nothing. It returns the name of what was placed.
func Fill(f *life.Field, name, file string, seed int64, density float64) (string, error) {
	switch {
	case file != "":
		r, err := os.Open(file)
		if err != nil {
			return "", err
		}
		defer r.Close()

		p, err := Parse(r)
		if err != nil {
			return "", fmt.Errorf("%s: %w", file, err)
		}
		if p.Name == "" {
			p.Name = filepath.Base(file)
		}
		return p.Name, PlaceCentered(f, p)

	case name == "" || name == Empty:
		return Empty, nil

	case name == Soup:
		Random(f, seed, density)
		return Soup, nil

	default:
		p, err := Get(name)
		if err != nil {
			return "", err
		}
		return p.Name, PlaceCentered(f, p)
	}
}
