package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/lifesim/internal/life"
)

// Parse reads a pattern in plaintext (.cells) form. Lines starting with '!'
// are comments, "!Name:" sets the pattern name. '.' is a dead cell, 'O' or
// '*' a live one.
func Parse(r io.Reader) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(r)
	y, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			} else if p.Description == "" && len(line) > 1 {
				p.Description = strings.TrimSpace(line[1:])
			}
			continue
		}
		for x, ch := range line {
			switch ch {
			case '.':
			case 'O', '*':
				p.Cells = append(p.Cells, Point{X: x, Y: y})
			default:
				return Pattern{}, fmt.Errorf("line %d col %d: unexpected %q: %w", lineNo, x+1, ch, ErrSyntax)
			}
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, err
	}
	return p, nil
}

// Encode writes the field in plaintext form, preceded by a name line when
// name is set.
func Encode(w io.Writer, name string, f *life.Field) error {
	bw := bufio.NewWriter(w)
	if name != "" {
		if _, err := fmt.Fprintf(bw, "!Name: %s\n", name); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString(f.String()); err != nil {
		return err
	}
	return bw.Flush()
}
