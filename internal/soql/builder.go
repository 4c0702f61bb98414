// Package soql builds query strings for the remote store's bounded query
// facility. The facility has an implementation-defined maximum query length,
// so callers are expected to bound the id sets they pass to [In].
package soql

import (
	"fmt"
	"strings"
)

// Builder assembles one query string field-by-field. The zero value is not
// usable; start with [Select].
type Builder struct {
	fields []string
	from   string
	where  string
	limit  int
}

// Select starts a query returning the given fields.
func Select(fields ...string) *Builder {
	return &Builder{fields: fields}
}

// From sets the source record type.
func (b *Builder) From(recordType string) *Builder {
	b.from = recordType
	return b
}

// Where sets the predicate string.
func (b *Builder) Where(predicate string) *Builder {
	b.where = predicate
	return b
}

// Limit caps the number of returned records. Zero means no limit clause.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// Build renders the query string.
func (b *Builder) Build() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.fields, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.from)
	if b.where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(b.where)
	}
	if b.limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", b.limit)
	}
	return sb.String()
}

// In renders a "field IN ('v1', 'v2')" predicate with each value quoted and
// escaped.
func In(field string, values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, "'"+escape(v)+"'")
	}
	return field + " IN (" + strings.Join(quoted, ", ") + ")"
}

// escape guards quoted string literals: the query language uses backslash
// escapes inside single-quoted strings.
func escape(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return v
}
