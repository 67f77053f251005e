// Package listing turns the tabular output of `sdk list <candidate>` into an
// ordered list of version identifiers.
//
// The order returned is the order sdk displays versions in (newest first within
// each lane), which rule matching relies on: the first identifier a rule accepts
// wins.
package listing

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Layout identifies how sdk lays out the versions of a candidate.
type Layout int

const (
	// LayoutGrid is the multi-lane grid used by most candidates.
	LayoutGrid Layout = iota
	// LayoutDetailed is the one-identifier-per-row vendor table.
	LayoutDetailed
)

// DetailedCandidate is the only candidate sdk renders as a vendor table.
const DetailedCandidate = "java"

var (
	equalsLine = regexp.MustCompile(`^=+$`)
	dashesLine = regexp.MustCompile(`^-+$`)
)

// LayoutFor returns the layout sdk uses when listing candidate.
func LayoutFor(candidate string) Layout {
	if candidate == DetailedCandidate {
		return LayoutDetailed
	}
	return LayoutGrid
}

// Parse extracts the version identifiers of candidate from raw sdk list output.
// Malformed or empty output yields an empty list.
func Parse(candidate string, output string) []string {
	switch LayoutFor(candidate) {
	case LayoutDetailed:
		return ParseDetailed(output)
	default:
		return ParseGrid(output)
	}
}

// ParseGrid reads the body between the second and third all-'=' lines. Every
// column of the body is a lane; lanes are concatenated in column order so the
// result runs down the first lane before moving to the next.
func ParseGrid(output string) []string {
	equals := 0
	var lanes [][]string
	for _, line := range lines(output) {
		if equalsLine.MatchString(line) {
			equals++
			continue
		}
		if equals != 2 {
			continue
		}
		for i, token := range tokens(line) {
			for len(lanes) <= i {
				lanes = append(lanes, nil)
			}
			lanes[i] = append(lanes[i], token)
		}
	}

	versions := []string{}
	for _, lane := range lanes {
		versions = append(versions, lane...)
	}
	return versions
}

// ParseDetailed reads the rows after the second all-'=' line and the first
// all-'-' line. The identifier is the last token of each row.
func ParseDetailed(output string) []string {
	equals := 0
	dashes := 0
	versions := []string{}
	for _, line := range lines(output) {
		switch {
		case equalsLine.MatchString(line):
			equals++
		case dashesLine.MatchString(line):
			dashes++
		case equals == 2 && dashes == 1:
			row := tokens(line)
			if len(row) == 0 {
				continue
			}
			versions = append(versions, row[len(row)-1])
		}
	}
	return versions
}

// lines splits output on newlines, dropping the carriage return of CRLF endings.
func lines(output string) []string {
	if output == "" {
		return nil
	}
	split := strings.Split(output, "\n")
	for i, line := range split {
		split[i] = strings.TrimSuffix(line, "\r")
	}
	return split
}

// tokens splits a body line on whitespace and drops the installed ("*") and
// in-use (">") markers. Tokens are NFC-normalized so they compare equal to
// directory names read back from the filesystem.
func tokens(line string) []string {
	fields := strings.Fields(line)
	out := fields[:0]
	for _, field := range fields {
		if isMarker(field) {
			continue
		}
		out = append(out, norm.NFC.String(field))
	}
	return out
}

func isMarker(token string) bool {
	return token == "*" || token == ">"
}
