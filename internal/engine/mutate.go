package engine

import (
	"fmt"

	"minisql/internal/sql"
)

// applyUpdate returns a new image where every data row matching where
// (all rows when where is nil) has the assigned columns overwritten,
// plus the count of affected rows. The input image is not mutated.
func applyUpdate(rows [][]string, assigns []sql.Assignment, where *sql.WhereExpr) ([][]string, int, error) {
	idx := columnIndex(rows[0])

	assignIdx := make([]int, len(assigns))
	for i, a := range assigns {
		pos, ok := idx[a.Column]
		if !ok {
			return nil, 0, fmt.Errorf("unknown column %q in SET", a.Column)
		}
		assignIdx[i] = pos
	}

	whereIdx := -1
	if where != nil {
		pos, ok := idx[where.Column]
		if !ok {
			return nil, 0, fmt.Errorf("unknown column %q in WHERE", where.Column)
		}
		whereIdx = pos
	}

	out := make([][]string, len(rows))
	out[0] = rows[0]
	affected := 0
	for r := 1; r < len(rows); r++ {
		row := rows[r]
		if whereIdx != -1 && !(whereIdx < len(row) && row[whereIdx] == where.Value) {
			out[r] = row
			continue
		}
		newRow := make([]string, len(row))
		copy(newRow, row)
		for i, pos := range assignIdx {
			if pos < len(newRow) {
				newRow[pos] = assigns[i].Value
			}
		}
		out[r] = newRow
		affected++
	}
	return out, affected, nil
}

// applyDelete returns a new image with every data row matching where
// removed, keeping the header, plus the count of deleted rows.
func applyDelete(rows [][]string, where *sql.WhereExpr) ([][]string, int, error) {
	idx := columnIndex(rows[0])
	pos, ok := idx[where.Column]
	if !ok {
		return nil, 0, fmt.Errorf("unknown column %q in WHERE", where.Column)
	}

	out := [][]string{rows[0]}
	deleted := 0
	for _, row := range rows[1:] {
		if pos < len(row) && row[pos] == where.Value {
			deleted++
			continue
		}
		out = append(out, row)
	}
	return out, deleted, nil
}
