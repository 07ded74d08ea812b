// Package render pretty-prints boards.
package render

import (
	"strconv"
	"strings"

	"svw.info/calcudoku/internal/domain"
)

// Board formats a board as Size lines of space-separated digits, empty cells
// as dots, with a trailing newline.
func Board(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			v := b.Cells[r*b.Size+c]
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(int(v)))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
