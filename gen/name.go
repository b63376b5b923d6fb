package gen

import (
	"strings"
	"unicode"
)

// Snake converts a schema identifier from the mixed case convention to the
// lower case underscore convention. An identifier ending in the literal
// suffix ID maps that suffix to _id before general case splitting, so
// FrameID becomes frame_id and not frame_i_d. Runs of capitals form a
// single token: DOM becomes dom. The transform is idempotent.
func Snake(name string) string {
	if strings.HasSuffix(name, "ID") {
		name = name[:len(name)-2] + "_id"
	}
	rs := []rune(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range rs {
		if unicode.IsUpper(r) {
			split := i > 0 && rs[i-1] != '_'
			if split {
				prev := rs[i-1]
				next := i+1 < len(rs) && unicode.IsUpper(prev) && unicode.IsLower(rs[i+1])
				split = unicode.IsLower(prev) || unicode.IsDigit(prev) || next
			}
			if split {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return strings.TrimPrefix(b.String(), "_")
}
