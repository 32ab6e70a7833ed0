package sql

import (
	"fmt"
	"strings"
)

// parseSelect parses:
//
//	SELECT * FROM name [WHERE col = literal];
//	SELECT col1, col2 FROM name [WHERE col = literal];
func parseSelect(q string) (Statement, error) {
	selPos := findKeyword(q, "SELECT")
	fromPos := findKeyword(q, "FROM")
	if selPos == -1 || fromPos == -1 || fromPos < selPos {
		return nil, fmt.Errorf("SELECT: malformed statement")
	}

	selectPart := strings.TrimSpace(q[selPos+len("SELECT") : fromPos])
	afterFrom := strings.TrimSpace(q[fromPos+len("FROM"):])

	name := nameAfterKeyword(afterFrom, "")
	if name == "" {
		return nil, fmt.Errorf("SELECT: missing table name")
	}

	where := parseWhereEquals(q)

	if selectPart == "*" {
		return &SelectStmt{TableName: name, Star: true, Where: where}, nil
	}

	cols := parseParenList("(" + selectPart + ")")
	for _, c := range cols {
		if c == "" {
			return nil, fmt.Errorf("SELECT: empty column name in select list")
		}
	}

	return &SelectStmt{TableName: name, Columns: cols, Where: where}, nil
}
