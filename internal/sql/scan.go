package sql

import "strings"

// Clause scanning helpers shared by the per-statement parsers. Statements
// are scanned by position, not tokenized: keywords are located
// case-insensitively inside the raw text and clauses are cut out around
// them, with quote state tracked so separators inside string literals
// never split a clause.

// findKeyword returns the byte position of the first case-insensitive
// occurrence of keyword in s, or -1. Only ASCII letters fold, so the
// returned position is valid in s even when earlier literals contain
// multi-byte runes. An empty keyword matches at 0.
func findKeyword(s, keyword string) int {
	if keyword == "" {
		return 0
	}
	for i := 0; i+len(keyword) <= len(s); i++ {
		j := 0
		for j < len(keyword) && upperASCII(s[i+j]) == upperASCII(keyword[j]) {
			j++
		}
		if j == len(keyword) {
			return i
		}
	}
	return -1
}

func upperASCII(c byte) byte {
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// stripTerminator trims surrounding whitespace and removes one trailing
// statement terminator if present.
func stripTerminator(s string) string {
	t := strings.TrimSpace(s)
	t = strings.TrimSuffix(t, ";")
	return strings.TrimSpace(t)
}

// parseLiteral cleans a raw literal: trim, strip terminator, then remove
// one matching pair of outer quotes (single or double) if both ends carry
// the same quote. Unquoted text comes back trimmed and otherwise
// unchanged.
func parseLiteral(raw string) string {
	t := stripTerminator(raw)
	if len(t) >= 2 {
		first, last := t[0], t[len(t)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			t = t[1 : len(t)-1]
		}
	}
	return strings.TrimSpace(t)
}

// splitOutsideQuotes splits s on commas that sit outside any quoted span.
// Each quote style toggles its own state, so a quote of the other style
// inside an active span does not end it. Fragments are trimmed; interior
// empty fragments are kept, a trailing empty fragment is dropped.
func splitOutsideQuotes(s string) []string {
	var out []string
	var token strings.Builder
	inSingle, inDouble := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' && !inSingle:
			inDouble = !inDouble
			token.WriteByte(c)
		case c == '\'' && !inDouble:
			inSingle = !inSingle
			token.WriteByte(c)
		case c == ',' && !inSingle && !inDouble:
			out = append(out, strings.TrimSpace(token.String()))
			token.Reset()
		default:
			token.WriteByte(c)
		}
	}
	if token.Len() > 0 {
		out = append(out, strings.TrimSpace(token.String()))
	}
	return out
}

// parseParenList strips one pair of surrounding parentheses if both are
// present, splits on unquoted commas and cleans every fragment with
// parseLiteral. An empty list "()" yields a single empty literal.
func parseParenList(s string) []string {
	work := strings.TrimSpace(s)
	if len(work) >= 2 && work[0] == '(' && work[len(work)-1] == ')' {
		work = work[1 : len(work)-1]
	}
	var out []string
	var token strings.Builder
	inSingle, inDouble := false, false
	for i := 0; i < len(work); i++ {
		c := work[i]
		switch {
		case c == '"' && !inSingle:
			inDouble = !inDouble
			token.WriteByte(c)
		case c == '\'' && !inDouble:
			inSingle = !inSingle
			token.WriteByte(c)
		case c == ',' && !inSingle && !inDouble:
			out = append(out, parseLiteral(token.String()))
			token.Reset()
		default:
			token.WriteByte(c)
		}
	}
	if token.Len() > 0 || work == "" {
		out = append(out, parseLiteral(token.String()))
	}
	return out
}

// indexUnquotedEquals returns the position of the first '=' outside any
// quoted span, or -1.
func indexUnquotedEquals(s string) int {
	inSingle, inDouble := false, false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '=' && !inSingle && !inDouble:
			return i
		}
	}
	return -1
}

// parseWhereEquals extracts a single-equality WHERE condition from a
// statement. Absent WHERE or an absent unquoted '=' both yield nil, not
// an error.
func parseWhereEquals(stmt string) *WhereExpr {
	pos := findKeyword(stmt, "WHERE")
	if pos == -1 {
		return nil
	}
	rest := stripTerminator(stmt[pos+len("WHERE"):])
	eq := indexUnquotedEquals(rest)
	if eq == -1 {
		return nil
	}
	return &WhereExpr{
		Column: strings.TrimSpace(rest[:eq]),
		Value:  parseLiteral(rest[eq+1:]),
	}
}

// parseAssignments extracts "col = literal" pairs from a SET clause. A
// leading SET keyword is dropped if present. Fragments without an
// unquoted '=' or with an empty column name are skipped silently; the
// UPDATE parser rejects the statement when nothing survives.
func parseAssignments(setClause string) []Assignment {
	part := setClause
	if pos := findKeyword(part, "SET"); pos != -1 {
		part = part[pos+len("SET"):]
	}
	part = stripTerminator(part)

	var out []Assignment
	for _, piece := range splitOutsideQuotes(part) {
		eq := indexUnquotedEquals(piece)
		if eq == -1 {
			continue
		}
		col := strings.TrimSpace(piece[:eq])
		if col == "" {
			continue
		}
		out = append(out, Assignment{Column: col, Value: parseLiteral(piece[eq+1:])})
	}
	return out
}

// nameAfterKeyword extracts the identifier immediately following keyword,
// cut at the first whitespace, parenthesis, comma or terminator. An empty
// keyword starts the scan at position 0 (the caller already trimmed a
// known prefix).
func nameAfterKeyword(s, keyword string) string {
	pos := 0
	if keyword != "" {
		pos = findKeyword(s, keyword)
		if pos == -1 {
			return ""
		}
		pos += len(keyword)
	}
	rest := strings.TrimSpace(s[pos:])
	end := strings.IndexAny(rest, " \t\n\r(),;")
	if end == -1 {
		return stripTerminator(rest)
	}
	return stripTerminator(rest[:end])
}
