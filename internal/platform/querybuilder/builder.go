// Package querybuilder assembles the small set of PostgreSQL statements the
// repositories need. Fragments are written with "?" placeholders and rebound
// to "$n" once the statement is complete.
package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Condition is one AND-ed predicate of a WHERE clause.
type Condition interface {
	writeTo(w *writer)
}

type writer struct {
	sql  strings.Builder
	args []any
}

func (w *writer) raw(parts ...string) {
	for _, p := range parts {
		w.sql.WriteString(p)
	}
}

func (w *writer) bind(values ...any) {
	for i, v := range values {
		if i > 0 {
			w.sql.WriteString(", ")
		}
		w.sql.WriteByte('?')
		w.args = append(w.args, v)
	}
}

func (w *writer) where(conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.raw(" WHERE ")
		} else {
			w.raw(" AND ")
		}
		c.writeTo(w)
	}
}

func (w *writer) list(keyword string, items []string) {
	if len(items) > 0 {
		w.raw(" ", keyword, " ", strings.Join(items, ", "))
	}
}

func (w *writer) suffix(s string) {
	if s != "" {
		w.raw(" ", s)
	}
}

// finish expands slice arguments and rewrites placeholders for lib/pq.
func (w *writer) finish() (string, []any, error) {
	query, args, err := sqlx.In(w.sql.String(), w.args...)
	if err != nil {
		return "", nil, fmt.Errorf("expand query args: %w", err)
	}
	return sqlx.Rebind(sqlx.DOLLAR, query), args, nil
}

type conditionFunc func(w *writer)

func (f conditionFunc) writeTo(w *writer) { f(w) }

func Eq(column string, value any) Condition {
	return conditionFunc(func(w *writer) {
		w.raw(column, " = ")
		w.bind(value)
	})
}

// In matches column against values. An empty list matches nothing.
func In[T any](column string, values []T) Condition {
	return conditionFunc(func(w *writer) {
		if len(values) == 0 {
			w.raw("1=0")
			return
		}
		w.raw(column, " IN (")
		w.bind(values)
		w.raw(")")
	})
}

// Expr embeds a raw predicate. Each "?" in expr consumes one of args.
func Expr(expr string, args ...any) Condition {
	return conditionFunc(func(w *writer) {
		w.raw(expr)
		w.args = append(w.args, args...)
	})
}

type SelectBuilder struct {
	columns   []string
	table     string
	where     []Condition
	orderBy   []string
	limit     int
	forUpdate bool
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

// ForUpdate locks the selected rows until the surrounding transaction ends.
func (b *SelectBuilder) ForUpdate() *SelectBuilder {
	b.forUpdate = true
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(b.columns) == 0:
		return "", nil, errors.New("select: no columns")
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("select: no table")
	}

	var w writer
	w.raw("SELECT ", strings.Join(b.columns, ", "), " FROM ", b.table)
	w.where(b.where)
	w.list("ORDER BY", b.orderBy)
	if b.limit > 0 {
		w.raw(" LIMIT ", strconv.Itoa(b.limit))
	}
	if b.forUpdate {
		w.raw(" FOR UPDATE")
	}
	return w.finish()
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = columns
	return b
}

// Values appends one row. Call it repeatedly for a multi-row insert.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, values)
	return b
}

// Suffix is appended verbatim, typically ON CONFLICT or RETURNING.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("insert: no table")
	case len(b.columns) == 0:
		return "", nil, errors.New("insert: no columns")
	case len(b.rows) == 0:
		return "", nil, errors.New("insert: no rows")
	}

	var w writer
	w.raw("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES ")
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert: row %d has %d values for %d columns", i, len(row), len(b.columns))
		}
		if i > 0 {
			w.raw(", ")
		}
		w.raw("(")
		w.bind(row...)
		w.raw(")")
	}
	w.suffix(b.suffix)
	return w.finish()
}

type assignment struct {
	column string
	write  func(w *writer)
}

type UpdateBuilder struct {
	table  string
	sets   []assignment
	where  []Condition
	suffix string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, write: func(w *writer) { w.bind(value) }})
	return b
}

// SetExpr assigns a raw expression such as "points + ?".
func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, write: Expr(expr, args...).writeTo})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, errors.New("update: no table")
	case len(b.sets) == 0:
		return "", nil, errors.New("update: nothing to set")
	}

	var w writer
	w.raw("UPDATE ", b.table, " SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.raw(", ")
		}
		w.raw(s.column, " = ")
		s.write(&w)
	}
	w.where(b.where)
	w.suffix(b.suffix)
	return w.finish()
}
