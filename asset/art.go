// Package asset holds immutable glyph art and its measured footprint.
// Tables are supplied by the caller and only ever read by index.
package asset

import (
	"strings"
	"unicode/utf8"
)

// Art is a multi-line glyph block with its footprint in cells
type Art struct {
	Text   string
	Width  int
	Height int
}

// Table is an ordered, read-only sequence of art records
type Table []Art

// New measures text and wraps it as Art
func New(text string) Art {
	w, h := Measure(text)
	return Art{Text: text, Width: w, Height: h}
}

// FromTexts builds a table in the given order
func FromTexts(texts ...string) Table {
	t := make(Table, 0, len(texts))
	for _, text := range texts {
		t = append(t, New(text))
	}
	return t
}

// Concat joins tables in caller-defined order into a new table
func Concat(tables ...Table) Table {
	n := 0
	for _, t := range tables {
		n += len(t)
	}
	out := make(Table, 0, n)
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

// Get returns the art at index i, ok=false when out of range
func (t Table) Get(i int) (Art, bool) {
	if i < 0 || i >= len(t) {
		return Art{}, false
	}
	return t[i], true
}

// Footprint returns the physics footprint of art i
// A bad index degrades to 1x1 so callers never branch on it
func (t Table) Footprint(i int) (w, h int, ok bool) {
	a, ok := t.Get(i)
	if !ok {
		return 1, 1, false
	}
	return a.Width, a.Height, true
}

// Lines splits text on newlines
// A trailing CR is dropped from each line and a final newline does not open an empty line
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Measure returns (width, height) in cells: widest line in runes, line count, both at least 1
func Measure(text string) (int, int) {
	maxW, h := 0, 0
	for _, line := range Lines(text) {
		if w := utf8.RuneCountInString(line); w > maxW {
			maxW = w
		}
		h++
	}
	return max(maxW, 1), max(h, 1)
}
