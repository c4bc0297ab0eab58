package vanguard

import "strings"

// decorations are removed from the reassembled export: the em-dash placeholder,
// currency signs and the "Free" commission label.
var decorations = strings.NewReplacer("—", "", "$", "", "Free", "")

// Normalize deletes every decoration from s. Deleted, not replaced: adjacent
// tokens are concatenated.
//
// Deletion is repeated until nothing changes, so Normalize is idempotent even
// when a deletion forms a new decoration (e.g. "Fr$ee").
func Normalize(s string) string {
	for {
		next := decorations.Replace(s)
		if next == s {
			return s
		}
		s = next
	}
}
