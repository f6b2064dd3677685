package main

import (
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridkit/grid"
)

var (
	answerStyle    = color.Style{color.FgGreen, color.OpBold}
	highlightStyle = color.Style{color.FgYellow, color.OpBold}
	wallStyle      = color.Style{color.FgGray}
)

// overlay renders g with cells in marked highlighted. A non-zero mark
// replaces the glyph of highlighted open cells.
func overlay(g *grid.Grid[rune], marked mapset.Set[grid.Coord], mark rune) string {
	var sb strings.Builder
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range g.Row(r) {
			at := grid.C(r, c)
			switch {
			case marked.Has(at):
				glyph := v
				if mark != 0 && v == '.' {
					glyph = mark
				}
				sb.WriteString(highlightStyle.Sprint(string(glyph)))
			case v == '#':
				sb.WriteString(wallStyle.Sprint(string(v)))
			default:
				sb.WriteRune(v)
			}
		}
	}
	return sb.String()
}
