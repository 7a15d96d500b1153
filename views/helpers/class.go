package helpers

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Class merges tailwind classes, later classes winning over conflicting
// earlier ones. The surviving classes keep their input order.
func Class(classes ...string) string {
	joined := strings.Join(classes, " ")
	kept := make(map[string]bool)
	for _, c := range strings.Fields(twmerge.Merge(joined)) {
		kept[c] = true
	}
	out := make([]string, 0, len(kept))
	for _, c := range strings.Fields(joined) {
		if kept[c] {
			out = append(out, c)
			delete(kept, c)
		}
	}
	return strings.Join(out, " ")
}
