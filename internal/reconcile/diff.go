package reconcile

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/sdkpin/internal/messages"
)

// RenderDiff returns a unified diff from the installed versions to the desired
// versions, one identifier per line. Versions present on both sides are
// context lines. It is empty when nothing changes.
func RenderDiff(plan Plan) string {
	installed := plan.Installed
	desired := plan.Desired()
	from := joinLines(installed)
	if from == joinLines(desired) {
		return ""
	}
	fromName := fmt.Sprintf(messages.ReconcileDiffInstalledFmt, plan.Candidate)
	toName := fmt.Sprintf(messages.ReconcileDiffDesiredFmt, plan.Candidate)
	diff, err := udiff.ToUnified(fromName, toName, from, lineEdits(installed, desired), udiff.DefaultContextLines)
	if err != nil {
		return udiff.Unified(fromName, toName, from, joinLines(desired))
	}
	return diff
}

// lineEdits walks two sorted, duplicate-free lists and returns one edit per
// removed or added identifier, positioned at line offsets of joinLines(from).
func lineEdits(from []string, to []string) []udiff.Edit {
	offsets := make([]int, len(from)+1)
	for i, version := range from {
		offsets[i+1] = offsets[i] + len(version) + 1
	}

	var edits []udiff.Edit
	i, j := 0, 0
	for i < len(from) || j < len(to) {
		switch {
		case j == len(to) || (i < len(from) && from[i] < to[j]):
			edits = append(edits, udiff.Edit{Start: offsets[i], End: offsets[i+1]})
			i++
		case i == len(from) || to[j] < from[i]:
			edits = append(edits, udiff.Edit{Start: offsets[i], End: offsets[i], New: to[j] + "\n"})
			j++
		default:
			i++
			j++
		}
	}
	return edits
}

func joinLines(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return strings.Join(values, "\n") + "\n"
}
