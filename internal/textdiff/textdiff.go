// Package textdiff computes line-level diffs for human-readable reports.
package textdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the marker of a diff line.
type Op int

const (
	// Context lines are present on both sides.
	Context Op = iota
	// Removed lines exist only on the old side.
	Removed
	// Added lines exist only on the new side.
	Added
)

// Marker returns the single-character prefix used in unified-style output.
func (o Op) Marker() string {
	switch o {
	case Removed:
		return "-"
	case Added:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff.
type Line struct {
	Op   Op
	Text string
}

// String renders the line with its marker.
func (l Line) String() string {
	return l.Op.Marker() + l.Text
}

// Lines returns the line diff turning oldText into newText.
func Lines(oldText, newText string) []Line {
	dmp := diffmatchpatch.New()
	// No deadline: the result must not depend on machine speed.
	dmp.DiffTimeout = 0

	a, b, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []Line
	for _, d := range diffs {
		op := Context
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = Removed
		case diffmatchpatch.DiffInsert:
			op = Added
		}
		for _, text := range splitLines(d.Text) {
			lines = append(lines, Line{Op: op, Text: text})
		}
	}
	return lines
}

// Format renders the diff of oldText and newText, one marked line per row.
func Format(oldText, newText string) string {
	return FormatLines(Lines(oldText, newText))
}

// FormatLines renders lines, one per row, each prefixed by its marker.
func FormatLines(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
