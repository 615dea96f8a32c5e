// Package bank loads, validates and flattens the assessment question bank.
//
// The bank comes from a row-oriented tabular source (CSV): either a file on
// disk, the shared remote store document, or the embedded dataset that ships
// with the binary. Whatever the source, the same parse path produces the same
// flattened Model, and the loader records which source actually served the
// data so failover is observable rather than silent.
package bank

import "strings"

// splitRecords splits tabular text into records of trimmed fields.
//
// Quoting follows the common CSV convention: a field wrapped in double
// quotes may contain separators and newlines, and an embedded double quote
// is escaped by doubling (""). Line terminators are normalized (CRLF and
// bare CR become LF) before splitting, and records/fields split only on
// unquoted newlines/commas. Fields are trimmed of surrounding whitespace.
func splitRecords(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var (
		records  [][]string
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	runes := []rune(text)

	endField := func() {
		fields = append(fields, strings.TrimSpace(current.String()))
		current.Reset()
	}
	endRecord := func() {
		endField()
		records = append(records, fields)
		fields = nil
	}

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				// Escaped quote inside a quoted field.
				current.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			endField()
		case c == '\n' && !inQuotes:
			endRecord()
		default:
			current.WriteRune(c)
		}
	}
	// Flush the final record unless the text ended cleanly on a newline.
	if current.Len() > 0 || len(fields) > 0 {
		endRecord()
	}

	// Drop records that are entirely empty (blank lines).
	out := records[:0]
	for _, rec := range records {
		if len(rec) == 1 && rec[0] == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// splitMultiValue splits a pipe-delimited text column into trimmed items,
// dropping empty entries. Used for the educational content lists.
func splitMultiValue(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
