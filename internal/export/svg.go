package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/lifesim/internal/life"
)

// FieldToSVG draws each live cell as a square of side scale on a dead-colored
// background.
func FieldToSVG(f *life.Field, scale int, alive, dead string) string {
	if f == nil || scale <= 0 {
		return ""
	}

	width := f.Width() * scale
	height := f.Height() * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, dead, alive))

	f.ForEachCell(func(c *life.Cell, x, y int) {
		if c.Alive {
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d"/>
`, x*scale, y*scale, scale, scale))
		}
	})

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PopulationToSVG plots a population series as a polyline.
func PopulationToSVG(population []int, width, height int, strokeColor string) string {
	if len(population) < 2 {
		return ""
	}

	maxPop := population[0]
	minPop := population[0]
	for _, p := range population {
		if p > maxPop {
			maxPop = p
		}
		if p < minPop {
			minPop = p
		}
	}

	rangeY := float64(maxPop - minPop)
	if rangeY == 0 {
		rangeY = 1
	}
	minY := float64(minPop) - rangeY*0.1
	rangeY *= 1.2
	stepX := float64(width) / float64(len(population)-1)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range population {
		x := float64(i) * stepX
		y := float64(height) - (float64(p)-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
