package engine

import (
	"fmt"

	"minisql/internal/sql"
)

// execSelect produces a projected, optionally filtered row set for
// display. It never writes.
func (e *Engine) execSelect(s *sql.SelectStmt) (*Result, error) {
	rows, err := e.loadExisting(s.TableName)
	if err != nil {
		return nil, err
	}

	header := rows[0]
	idx := columnIndex(header)

	selected := s.Columns
	if s.Star {
		selected = header
	}
	positions := make([]int, len(selected))
	for i, col := range selected {
		pos, ok := idx[col]
		if !ok {
			return nil, fmt.Errorf("unknown column %q in SELECT list", col)
		}
		positions[i] = pos
	}

	whereIdx := -1
	if s.Where != nil {
		pos, ok := idx[s.Where.Column]
		if !ok {
			return nil, fmt.Errorf("unknown column %q in WHERE", s.Where.Column)
		}
		whereIdx = pos
	}

	var out [][]string
	for _, row := range rows[1:] {
		// malformed stored rows are skipped, not errors
		if len(row) != len(header) {
			continue
		}
		if whereIdx != -1 && row[whereIdx] != s.Where.Value {
			continue
		}
		proj := make([]string, len(positions))
		for i, pos := range positions {
			proj[i] = row[pos]
		}
		out = append(out, proj)
	}

	outHeader := make([]string, len(selected))
	copy(outHeader, selected)
	return &Result{Header: outHeader, Rows: out}, nil
}
