package igdb

import (
	"fmt"
	"strings"
)

// Query holds the structured parameters for one catalog request. Build turns
// them into the query-language string the catalog service expects, with
// clauses in a fixed order: fields, where, sort, limit, offset, search.
type Query struct {
	Fields string
	Where  string
	Sort   string
	Limit  int
	Offset int
	Search string
}

func (q Query) Build() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("fields %s;", q.Fields))

	if q.Where != "" {
		b.WriteString(fmt.Sprintf(" where %s;", q.Where))
	}
	if q.Sort != "" {
		b.WriteString(fmt.Sprintf(" sort %s;", q.Sort))
	}
	if q.Limit > 0 {
		b.WriteString(fmt.Sprintf(" limit %d;", q.Limit))
	}
	if q.Offset > 0 {
		b.WriteString(fmt.Sprintf(" offset %d;", q.Offset))
	}
	if q.Search != "" {
		b.WriteString(fmt.Sprintf(" search %q;", q.Search))
	}

	return b.String()
}
