package pattern

import (
	"fmt"
	"sort"
	"strings"
)

var sources = map[string]struct{ desc, cells string }{
	"block":   {"still life", "OO\nOO"},
	"beehive": {"still life", ".OO.\nO..O\n.OO."},
	"blinker": {"period 2 oscillator", "OOO"},
	"toad":    {"period 2 oscillator", ".OOO\nOOO."},
	"beacon":  {"period 2 oscillator", "OO..\nOO..\n..OO\n..OO"},
	"pulsar": {"period 3 oscillator", strings.Join([]string{
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..",
	}, "\n")},
	"glider":      {"spaceship, c/4 diagonal", ".O.\n..O\nOOO"},
	"lwss":        {"lightweight spaceship, c/2", ".O..O\nO....\nO...O\nOOOO."},
	"r-pentomino": {"methuselah, stabilises after 1103 generations", ".OO\nOO.\n.O."},
	"acorn":       {"methuselah, stabilises after 5206 generations", ".O.....\n...O...\nOO..OOO"},
	"diehard":     {"methuselah, vanishes after 130 generations", "......O.\nOO......\n.O...OOO"},
}

var builtins = func() map[string]Pattern {
	m := make(map[string]Pattern, len(sources))
	for name, src := range sources {
		p, err := Parse(strings.NewReader(src.cells))
		if err != nil {
			panic(fmt.Sprintf("builtin pattern %s: %v", name, err))
		}
		p.Name = name
		p.Description = src.desc
		m[name] = p
	}
	return m
}()

// Get returns a built-in pattern by name.
func Get(name string) (Pattern, error) {
	p, ok := builtins[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknown, name, Names())
	}
	return p, nil
}

// Names lists the built-in patterns in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
