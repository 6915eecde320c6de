// Package form holds the editable course rows and turns them into a
// validated course list.
package form

import (
	"strconv"

	"github.com/akyairhashvil/resultpro/internal/models"
)

// Field names a column of a row.
type Field int

const (
	FieldName Field = iota
	FieldScore
	FieldCredit
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldScore:
		return "score"
	case FieldCredit:
		return "credit"
	}
	return "unknown"
}

// Row is the raw text of one course entry as typed.
type Row struct {
	Name   string
	Score  string
	Credit string
}

// Get returns the text of a field.
func (r Row) Get(f Field) string {
	switch f {
	case FieldScore:
		return r.Score
	case FieldCredit:
		return r.Credit
	default:
		return r.Name
	}
}

// With returns a copy of r with one field replaced.
func (r Row) With(f Field, value string) Row {
	switch f {
	case FieldScore:
		r.Score = value
	case FieldCredit:
		r.Credit = value
	default:
		r.Name = value
	}
	return r
}

// RowFromCourse pre-fills a row with a saved course.
func RowFromCourse(c models.Course) Row {
	return Row{
		Name:   c.Name,
		Score:  strconv.FormatFloat(c.Score, 'f', -1, 64),
		Credit: strconv.Itoa(c.Credit),
	}
}

// Rows is the ordered list of course entries. Order is insertion order and
// matches the order courses are saved in.
type Rows struct {
	rows []Row
}

// NewRows returns a list holding the given rows.
func NewRows(rows ...Row) *Rows {
	return &Rows{rows: append([]Row(nil), rows...)}
}

// AddRow appends one empty row.
func (r *Rows) AddRow() {
	r.rows = append(r.rows, Row{})
}

// Clear removes every row.
func (r *Rows) Clear() {
	r.rows = nil
}

// Replace drops the current rows and adds one pre-filled row per course.
func (r *Rows) Replace(courses []models.Course) {
	r.rows = make([]Row, 0, len(courses))
	for _, c := range courses {
		r.rows = append(r.rows, RowFromCourse(c))
	}
}

// Set updates a single field. Out of range indexes are ignored.
func (r *Rows) Set(i int, f Field, value string) {
	if i < 0 || i >= len(r.rows) {
		return
	}
	r.rows[i] = r.rows[i].With(f, value)
}

// Len returns the number of rows.
func (r *Rows) Len() int {
	return len(r.rows)
}

// Rows returns a copy of the rows in display order.
func (r *Rows) Rows() []Row {
	return append([]Row(nil), r.rows...)
}
