// Package diff compares rendered stylesheets line by line.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Lines returns a unified-style diff of before and after, or "" when they are
// identical. Output past maxDiffLines is truncated with a marker.
func Lines(before, after, beforeLabel, afterLabel string) (string, Stats) {
	if before == after {
		return "", Stats{}
	}

	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(beforeChars, afterChars, false), lineArray)

	var b strings.Builder
	var stats Stats
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", beforeLabel, afterLabel)

	written := 2
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			}
			if written >= maxDiffLines {
				continue
			}
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteString("\n")
			written++
		}
	}

	if written >= maxDiffLines {
		b.WriteString(truncateMessage)
		b.WriteString("\n")
	}
	return b.String(), stats
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
