package dynschema

import (
	"strconv"
	"strings"
)

// field describes how a schema field renders into an error path.
//
// A plain field carries only path, used verbatim. Once the field's validator
// chain reaches into an array, the field is converted to the placeholder
// shape: parts holds literal fragments interleaved with empty strings, one
// empty string per level of array nesting. For items[].fav[] the parts are
// ["items", "", "fav", ""].
//
// Fields are created by object construction and mutated in place while the
// schema is built (nesting prefixes, placeholder slots). After the schema is
// complete they are read-only and safe to share across validation runs.
type field struct {
	path  string
	parts []string
}

// render produces the final dotted path for the currently recorded array
// indexes. Placeholder fragments consume indexes left to right; a placeholder
// with no remaining index is skipped (the failure happened at the array
// itself, before any element was visited); indexes recorded deeper than the
// declared placeholders are appended as trailing segments.
func (f *field) render(indexes []int) string {
	if f.parts == nil && len(indexes) == 0 {
		return f.path
	}

	var b strings.Builder
	next := 0

	if f.parts == nil {
		b.WriteString(f.path)
	} else {
		for _, part := range f.parts {
			seg := part
			if part == "" {
				if next >= len(indexes) {
					continue
				}
				seg = strconv.Itoa(indexes[next])
				next++
			}
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(seg)
		}
	}

	for ; next < len(indexes); next++ {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(indexes[next]))
	}

	return b.String()
}

// applyPrefix prepends a parent field to this field's path. If either side
// carries the placeholder shape the result does too: a plain field under an
// array-shaped parent inherits the parent's index slots, so its errors render
// as items.3.name rather than items.name.3.
func (f *field) applyPrefix(parent *field) {
	tail := f.parts
	if tail == nil && parent.parts != nil {
		tail = []string{f.path}
	}
	f.path = parent.path + "." + f.path
	if tail == nil {
		return
	}

	prefix := parent.parts
	if prefix == nil {
		prefix = []string{parent.path}
	}
	merged := make([]string, 0, len(prefix)+len(tail))
	merged = append(merged, prefix...)
	merged = append(merged, tail...)
	f.parts = merged
}
