package sql

import "fmt"

// parseDelete parses:
//
//	DELETE FROM name [WHERE col = literal];
//
// Without WHERE the parsed statement carries a nil Where; the engine
// treats that as a full truncation requiring confirmation.
func parseDelete(q string) (Statement, error) {
	name := nameAfterKeyword(q, "FROM")
	if name == "" {
		return nil, fmt.Errorf("DELETE: missing table name")
	}

	return &DeleteStmt{TableName: name, Where: parseWhereEquals(q)}, nil
}
