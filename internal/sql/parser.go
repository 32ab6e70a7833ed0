package sql

import (
	"fmt"
	"strings"
)

// Parse parses a single SQL statement string into an AST Statement.
// The dispatch looks only at the leading keyword(s); each statement kind
// has its own parser in a parse_*.go file.
func Parse(query string) (Statement, error) {
	q := stripTerminator(query)
	if q == "" {
		return nil, fmt.Errorf("empty statement")
	}

	tokens := strings.Fields(strings.ToUpper(q))

	switch tokens[0] {
	case "CREATE":
		if len(tokens) >= 2 && tokens[1] == "TABLE" {
			return parseCreateTable(q)
		}
		return nil, fmt.Errorf("CREATE: expected TABLE")
	case "INSERT":
		if len(tokens) >= 2 && tokens[1] == "INTO" {
			return parseInsert(q)
		}
		return nil, fmt.Errorf("INSERT: expected INTO")
	case "UPDATE":
		return parseUpdate(q)
	case "DELETE":
		if len(tokens) >= 2 && tokens[1] == "FROM" {
			return parseDelete(q)
		}
		return nil, fmt.Errorf("DELETE: expected FROM")
	case "ALTER":
		if len(tokens) >= 2 && tokens[1] == "TABLE" {
			return parseAlterTable(q)
		}
		return nil, fmt.Errorf("ALTER: expected TABLE")
	case "DROP":
		if len(tokens) >= 2 && tokens[1] == "TABLE" {
			return parseDropTable(q)
		}
		return nil, fmt.Errorf("DROP: expected TABLE")
	case "SELECT":
		return parseSelect(q)
	case "SHOW":
		return parseShow(q)
	default:
		return nil, fmt.Errorf("unsupported statement (supported: CREATE TABLE, INSERT, UPDATE, DELETE, ALTER TABLE, DROP TABLE, SELECT, SHOW)")
	}
}
