package core

import "strings"

// ParseCSVLine splits a single CSV line into trimmed fields.
//
// A '"' toggles quoted mode and is not copied into the field; inside quotes
// a doubled '""' yields one literal '"'. Commas split fields only outside
// quotes. An unterminated quote keeps the rest of the line in the last
// field. The result always has at least one element.
func ParseCSVLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' && inQuotes && i+1 < len(line) && line[i+1] == '"':
			current.WriteByte('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}

	return append(fields, strings.TrimSpace(current.String()))
}
