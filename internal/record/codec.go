// Package record encodes and decodes table images as delimited text.
// One line per row; a field is quoted only when it contains the field
// separator or the quote character, with embedded quotes doubled. For
// any row set whose cells contain no line breaks,
// Decode(Encode(rows)) == rows, with one exception: a row holding a
// single empty field encodes to a blank line, which decodes back as a
// zero-length row.
package record

import "strings"

const (
	separator = ','
	quote     = '"'
)

// Decode splits raw text into rows at line boundaries and each line into
// fields. A field starting with a quote runs to the matching closing
// quote, with a doubled quote meaning one literal quote character; any
// other field runs to the next unquoted separator and is taken verbatim.
// A trailing separator yields one additional empty field.
func Decode(text string) [][]string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, decodeLine(line))
	}
	return rows
}

func decodeLine(line string) []string {
	// tolerate CRLF files
	line = strings.TrimSuffix(line, "\r")

	var row []string
	i := 0
	for i < len(line) {
		if line[i] == quote {
			var cell strings.Builder
			i++
			for i < len(line) {
				if line[i] == quote {
					if i+1 < len(line) && line[i+1] == quote {
						cell.WriteByte(quote)
						i += 2
						continue
					}
					i++
					break
				}
				cell.WriteByte(line[i])
				i++
			}
			row = append(row, cell.String())
			if i < len(line) && line[i] == separator {
				i++
			}
		} else {
			j := i
			for j < len(line) && line[j] != separator {
				j++
			}
			row = append(row, line[i:j])
			if j < len(line) {
				i = j + 1
			} else {
				i = j
			}
		}
	}
	if line != "" && line[len(line)-1] == separator {
		row = append(row, "")
	}
	return row
}

// Encode renders rows as separator-joined lines, each terminated by a
// line break, with no trailing separator.
func Encode(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(separator)
			}
			b.WriteString(encodeCell(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func encodeCell(cell string) string {
	if !strings.ContainsAny(cell, `,"`) {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
