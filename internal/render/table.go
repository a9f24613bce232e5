package render

import (
	"fmt"
	"strconv"

	"github.com/alnah/go-gdoc2html/internal/gdoc"
	"github.com/alnah/go-gdoc2html/internal/htmlwriter"
)

// table writes a table. The source lists every grid position, including
// those covered by a merged cell; skips counts, per column, the positions
// still to be dropped.
func (r *renderer) table(t *gdoc.Table) error {
	r.w.Newline()
	r.w.StartTag("table")
	r.w.Newline()

	var skips []int
	for i, row := range t.TableRows {
		if skips == nil {
			skips = make([]int, max(len(row.TableCells), t.Columns))
		}
		r.w.StartTag("tr")
		r.w.Newline()
		for col := range row.TableCells {
			skips = grow(skips, col+1)
			if skips[col] > 0 {
				skips[col]--
				continue
			}
			grid := gridSize{
				columns: max(len(skips), len(row.TableCells)),
				rows:    len(t.TableRows) - i,
			}
			if err := r.tableCell(&row.TableCells[col], col, grid, &skips); err != nil {
				return err
			}
		}
		if err := r.endLine("tr"); err != nil {
			return err
		}
	}
	return r.endLine("table")
}

// gridSize is the part of the table a cell starting on the current row can
// cover: every column, and the rows from the current one down.
type gridSize struct {
	columns, rows int
}

func (r *renderer) tableCell(cell *gdoc.TableCell, col int, grid gridSize, skips *[]int) error {
	colspan, rowspan := cell.Spans()
	if colspan > grid.columns-col || rowspan > grid.rows {
		return fmt.Errorf("%w: cell at column %d spans %dx%d, table has %d columns and %d rows left",
			ErrInvalidSpan, col, colspan, rowspan, grid.columns, grid.rows)
	}
	*skips = grow(*skips, col+colspan)
	// Positions to the right on this row, then the whole block on the rows
	// below.
	for i := col + 1; i < col+colspan; i++ {
		(*skips)[i]++
	}
	for i := col; i < col+colspan; i++ {
		(*skips)[i] += rowspan - 1
	}

	var attrs []htmlwriter.Attr
	if colspan > 1 {
		attrs = append(attrs, htmlwriter.Attr{Key: "colspan", Val: strconv.Itoa(colspan)})
	}
	if rowspan > 1 {
		attrs = append(attrs, htmlwriter.Attr{Key: "rowspan", Val: strconv.Itoa(rowspan)})
	}

	r.w.StartTag("td", attrs...)
	r.w.Newline()
	if err := r.structuralElements(cell.Content); err != nil {
		return err
	}
	return r.endLine("td")
}

func grow(s []int, n int) []int {
	if len(s) >= n {
		return s
	}
	return append(s, make([]int, n-len(s))...)
}
