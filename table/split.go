package table

import "strings"

const byteOrderMark = "\ufeff"

// SplitLine splits one delimited line into trimmed fields. Quote characters toggle
// quoting and are dropped; a delimiter inside quotes is kept as field content.
// A leading byte order mark is removed first.
func SplitLine(line string, delimiter, quote byte) []string {
	line = strings.TrimPrefix(line, byteOrderMark)

	fields := make([]string, 0, 4)
	inQuotes := false
	start := 0

	var current strings.Builder

	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == quote:
			current.WriteString(line[start:i])
			start = i + 1
			inQuotes = !inQuotes
		case c == delimiter && !inQuotes:
			current.WriteString(line[start:i])
			start = i + 1
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	current.WriteString(line[start:])

	return append(fields, strings.TrimSpace(current.String()))
}
