package tradeoff

import "strings"

// This file contains the row tokenizer: raw export text in, clean rows of
// cells out. It has no opinion on what the cells mean.

// normalizeRaw strips a UTF-8 byte-order marker and normalizes line endings
// to '\n'. Excel on Windows loves to emit both.
func normalizeRaw(raw string) string {
	raw = strings.TrimPrefix(raw, "\uFEFF")
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	return raw
}

// detectDelimiter picks the cell delimiter from the first line: a tab wins
// outright, a semicolon wins if no comma is present (European exports), and
// comma is the default.
func detectDelimiter(firstLine string) rune {
	switch {
	case strings.ContainsRune(firstLine, '\t'):
		return '\t'
	case strings.ContainsRune(firstLine, ';') && !strings.ContainsRune(firstLine, ','):
		return ';'
	default:
		return ','
	}
}

// splitRow splits one line on the delimiter, honoring double-quote-escaped
// fields ("Alphabet, Inc." stays one cell, "" inside quotes is a literal
// quote). Each cell is stripped of surrounding quotes and whitespace.
func splitRow(line string, delim rune) []string {
	var cells []string
	var cell strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cell.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case r == delim && !inQuotes:
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}
	cells = append(cells, strings.TrimSpace(cell.String()))
	return cells
}

// tokenize turns normalized raw text into rows of cells, skipping lines that
// are empty or whitespace-only.
func tokenize(raw string) ([][]string, rune) {
	lines := strings.Split(raw, "\n")
	delim := ','
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			delim = detectDelimiter(line)
			break
		}
	}

	var rows [][]string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, splitRow(line, delim))
	}
	return rows, delim
}
