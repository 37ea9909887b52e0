package ratings

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// NameFunc renders a single classified choice as a short diagnostic
// string (e.g. a unichar name), standing in for the external unicharset
// consulted by matrix.h's print().
type NameFunc[T any] func(T) string

// Print writes a diagnostic dump of every non-empty cell above the
// diagonal, showing up to the top 3 choices per cell, matching
// matrix.h's print(unicharset) developer aid.
func Print[T any](w io.Writer, m *Matrix[T], name NameFunc[T]) {
	total := 0
	for col := 0; col < m.dimension; col++ {
		for row := col; row < m.dimension; row++ {
			cell := m.cells[m.index(col, row)]
			if cell == nil || len(cell.Choices) == 0 {
				continue
			}
			total++
			top := cell.Choices
			if len(top) > 3 {
				top = top[:3]
			}
			names := make([]string, len(top))
			for i, c := range top {
				names[i] = name(c)
			}
			fmt.Fprintf(w, "(%d,%d): %v\n", col, row, names)
		}
	}
	fmt.Fprintf(w, "%s classified cells\n", humanize.Comma(int64(total)))
}
