package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString renders the character differences from one string to
// another, marking deletions as [-text-] and insertions as {+text+}. It
// returns "" when the strings are equal.
func DiffString(from, to string) string {
	if from == to {
		return ""
	}
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	sb := &strings.Builder{}
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffInsert:
			sb.WriteString("{+" + diff.Text + "+}")
		case diffpatch.DiffDelete:
			sb.WriteString("[-" + diff.Text + "-]")
		case diffpatch.DiffEqual:
			sb.WriteString(diff.Text)
		}
	}
	return sb.String()
}
