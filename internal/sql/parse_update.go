package sql

import (
	"fmt"
	"strings"
)

// parseUpdate parses:
//
//	UPDATE name SET col1 = v1, col2 = v2 [WHERE col = literal];
//
// Without WHERE the statement applies to every data row.
func parseUpdate(q string) (Statement, error) {
	name := nameAfterKeyword(q, "UPDATE")
	if name == "" {
		return nil, fmt.Errorf("UPDATE: missing table name")
	}

	setPos := findKeyword(q, "SET")
	if setPos == -1 {
		return nil, fmt.Errorf("UPDATE: missing SET")
	}

	// The SET clause runs from SET to WHERE (or to the end).
	rest := strings.TrimSpace(q[setPos:])
	setPart := rest
	if wherePos := findKeyword(rest, "WHERE"); wherePos != -1 {
		setPart = strings.TrimSpace(rest[:wherePos])
	}

	assigns := parseAssignments(setPart)
	if len(assigns) == 0 {
		return nil, fmt.Errorf("UPDATE: no valid assignments after SET")
	}

	return &UpdateStmt{
		TableName:   name,
		Assignments: assigns,
		Where:       parseWhereEquals(q),
	}, nil
}
