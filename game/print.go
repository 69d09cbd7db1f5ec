package game

import (
	"strings"

	"github.com/logrusorgru/aurora"
)

// Render draws the board with one colored glyph per cell. Pass
// aurora.NewAurora(false) for plain output.
func (b *Board) Render(au aurora.Aurora) string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			switch b.cells[r*b.size+c] {
			case Player0:
				sb.WriteString(au.Green(" X ").String())
			case Player1:
				sb.WriteString(au.Red(" O ").String())
			default:
				sb.WriteString(au.Faint(" . ").String())
			}
			if c < b.size-1 {
				sb.WriteString(au.White("|").String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
