package sql

import (
	"fmt"
	"strings"
)

// parseInsert parses:
//
//	INSERT INTO name VALUES (v1, v2, ...);
func parseInsert(q string) (Statement, error) {
	name := nameAfterKeyword(q, "INTO")
	if name == "" {
		return nil, fmt.Errorf("INSERT: missing table name")
	}

	valPos := findKeyword(q, "VALUES")
	if valPos == -1 {
		return nil, fmt.Errorf("INSERT: missing VALUES")
	}

	rest := strings.TrimSpace(q[valPos+len("VALUES"):])
	if !strings.HasPrefix(rest, "(") {
		return nil, fmt.Errorf("INSERT: expected '(' after VALUES")
	}
	closeIdx := strings.LastIndex(rest, ")")
	if closeIdx == -1 {
		return nil, fmt.Errorf("INSERT: missing closing ')'")
	}

	vals := parseParenList(rest[:closeIdx+1])

	return &InsertStmt{TableName: name, Values: vals}, nil
}
