// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Condition is one filter of an Or group.
type Condition interface {
	render() string
}

type condition struct {
	column, operator, value string
}

func (c condition) render() string {
	return c.column + "." + c.operator + "." + c.value
}

type andGroup []Condition

func (g andGroup) render() string {
	parts := make([]string, 0, len(g))
	for _, c := range g {
		parts = append(parts, c.render())
	}
	return "and(" + strings.Join(parts, ",") + ")"
}

// EqCond matches rows whose column equals value.
func EqCond(column string, value any) Condition {
	return condition{column: column, operator: "eq", value: quoteValue(fmt.Sprint(value))}
}

// AndCond groups conditions that must all hold.
func AndCond(conds ...Condition) Condition {
	return andGroup(conds)
}

type filter struct {
	column, expr string
}

// Query describes the rows and columns of a table read, update or delete.
// It is an immutable value; every builder method returns a modified copy.
//
// Columns may embed related rows the way the REST layer expects, e.g.
// "*, requester:profiles!requester_id(id, username)".
type Query struct {
	columns string
	filters []filter
	ors     []string
	order   []string
	limit   int
}

// NewQuery selects columns, "*" when empty.
func NewQuery(columns string) Query {
	if strings.TrimSpace(columns) == "" {
		columns = "*"
	}
	return Query{columns: columns}
}

func (q Query) with(f filter) Query {
	q.filters = append(append([]filter(nil), q.filters...), f)
	return q
}

// Eq keeps rows where column equals value.
func (q Query) Eq(column string, value any) Query {
	return q.with(filter{column: column, expr: "eq." + fmt.Sprint(value)})
}

// Neq keeps rows where column differs from value.
func (q Query) Neq(column string, value any) Query {
	return q.with(filter{column: column, expr: "neq." + fmt.Sprint(value)})
}

// ILike keeps rows where column matches pattern case-insensitively. "%"
// wildcards are written as "*".
func (q Query) ILike(column, pattern string) Query {
	return q.with(filter{column: column, expr: "ilike." + strings.ReplaceAll(pattern, "%", "*")})
}

// In keeps rows where column is one of values.
func (q Query) In(column string, values ...string) Query {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, quoteValue(v))
	}
	return q.with(filter{column: column, expr: "in.(" + strings.Join(quoted, ",") + ")"})
}

// Or keeps rows matching any of conds. Several Or groups are combined with AND.
func (q Query) Or(conds ...Condition) Query {
	parts := make([]string, 0, len(conds))
	for _, c := range conds {
		parts = append(parts, c.render())
	}
	q.ors = append(append([]string(nil), q.ors...), "("+strings.Join(parts, ",")+")")
	return q
}

// Order sorts by column; calls accumulate.
func (q Query) Order(column string, ascending bool) Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.order = append(append([]string(nil), q.order...), column+"."+dir)
	return q
}

// Limit caps the number of rows returned. Zero means no limit.
func (q Query) Limit(n int) Query {
	q.limit = n
	return q
}

// Columns returns the select list.
func (q Query) Columns() string {
	if q.columns == "" {
		return "*"
	}
	return q.columns
}

// Filters returns the row filters only, as used by update and delete.
func (q Query) Filters() url.Values {
	v := url.Values{}
	for _, f := range q.filters {
		v.Add(f.column, f.expr)
	}
	for _, o := range q.ors {
		v.Add("or", o)
	}
	return v
}

// Params returns the full query string of a read.
func (q Query) Params() url.Values {
	v := q.Filters()
	v.Set("select", q.Columns())
	if len(q.order) > 0 {
		v.Set("order", strings.Join(q.order, ","))
	}
	if q.limit > 0 {
		v.Set("limit", strconv.Itoa(q.limit))
	}
	return v
}

// quoteValue wraps values containing reserved characters in double quotes.
func quoteValue(v string) string {
	if !strings.ContainsAny(v, `,.:()" `) {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
}
