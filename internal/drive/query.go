package drive

import (
	"fmt"
	"sort"
	"strings"
)

// FilterKeyFolder is the special filter key that constrains results to the
// children of a folder. Its value is the folder ID.
const FilterKeyFolder = "folder"

// Filters is a set of keyword filters translated into the Drive query
// grammar. Keys are snake_case and become camelCase query terms:
//
//	Filters{"name": "report"}            -> "name contains 'report'"
//	Filters{"name__contains": "report"}  -> "name contains 'report'"
//	Filters{"mime_type": "text/plain"}   -> "mimeType contains 'text/plain'"
//	Filters{"starred": true}             -> "starred = true"
//	Filters{"folder": "abc123"}          -> "'abc123' in parents"
//
// Boolean values render as equality checks, everything else as a contains
// match. The folder value may be a plain ID or any wrapper with a
// FileID() string method. Conditions are joined with " and " in sorted key
// order so the resulting query is deterministic.
type Filters map[string]interface{}

// WithMimeType returns a copy of the filters with the mime_type filter set.
// An existing mime_type filter is left untouched.
func (f Filters) WithMimeType(mimeType string) Filters {
	out := make(Filters, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	if _, ok := out["mime_type"]; !ok && mimeType != "" {
		out["mime_type"] = mimeType
	}
	return out
}

// Query renders the filters as a Drive query string.
func (f Filters) Query() string {
	if len(f) == 0 {
		return ""
	}

	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	terms := make([]string, 0, len(keys))
	for _, key := range keys {
		terms = append(terms, renderFilterTerm(key, f[key]))
	}

	return strings.Join(terms, " and ")
}

// containsSuffix marks an explicit contains match on a filter key
// ("name__contains"). String values are contains matches anyway, so the
// marker is stripped before the key is translated.
const containsSuffix = "__contains"

// renderFilterTerm renders a single key/value pair as a query condition.
func renderFilterTerm(key string, value interface{}) string {
	if key == FilterKeyFolder {
		return fmt.Sprintf("'%s' in parents", escapeQueryValue(folderID(value)))
	}

	term := snakeToCamel(strings.TrimSuffix(key, containsSuffix))

	if b, ok := value.(bool); ok {
		return fmt.Sprintf("%s = %t", term, b)
	}

	return fmt.Sprintf("%s contains '%s'", term, escapeQueryValue(fmt.Sprintf("%v", value)))
}

// folderID extracts the folder ID from a folder filter value, which is
// either a plain ID string or a wrapper exposing its Drive file ID.
func folderID(value interface{}) string {
	if f, ok := value.(interface{ FileID() string }); ok {
		return f.FileID()
	}
	return fmt.Sprintf("%v", value)
}

// snakeToCamel converts a snake_case identifier to the camelCase form used
// by the Drive query grammar (mime_type -> mimeType).
func snakeToCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	upperNext := false
	for _, r := range s {
		switch {
		case r == '_':
			upperNext = true
		case upperNext && r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
			upperNext = false
		default:
			b.WriteRune(r)
			upperNext = false
		}
	}

	return b.String()
}

// escapeQueryValue escapes backslashes and single quotes so user-supplied
// values cannot break out of the quoted query literal.
func escapeQueryValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
