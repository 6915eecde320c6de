package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/akyairhashvil/resultpro/internal/config"
	"github.com/akyairhashvil/resultpro/internal/models"
)

// ErrNoCourses is returned when there is nothing to submit.
var ErrNoCourses = errors.New("no courses entered")

// FieldError describes why one field of one row is unusable. Row is 1-based.
type FieldError struct {
	Row    int
	Field  Field
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("row %d %s: %s", e.Row, e.Field, e.Reason)
}

// Options tune validation.
type Options struct {
	// StrictScoreRange rejects scores outside [ScoreMin, ScoreMax]. Off by
	// default: the range is otherwise left to the remote service.
	StrictScoreRange bool
}

// Collect validates every row and returns the courses in display order. The
// submission is all or nothing: one bad row rejects the whole list, and the
// returned error aggregates every FieldError found.
func Collect(rows []Row, opts Options) ([]models.Course, error) {
	if len(rows) == 0 {
		return nil, ErrNoCourses
	}

	var merr *multierror.Error
	courses := make([]models.Course, 0, len(rows))
	for i, row := range rows {
		c, errs := parseRow(i+1, row, opts)
		if len(errs) > 0 {
			merr = multierror.Append(merr, errs...)
			continue
		}
		courses = append(courses, c)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return courses, nil
}

// FieldErrors extracts the per-field problems from a Collect error.
func FieldErrors(err error) []*FieldError {
	var out []*FieldError
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		var fe *FieldError
		if errors.As(err, &fe) {
			out = append(out, fe)
		}
		return out
	}
	for _, e := range merr.Errors {
		var fe *FieldError
		if errors.As(e, &fe) {
			out = append(out, fe)
		}
	}
	return out
}

func parseRow(n int, row Row, opts Options) (models.Course, []error) {
	var errs []error

	name := strings.TrimSpace(row.Name)
	if name == "" {
		errs = append(errs, &FieldError{Row: n, Field: FieldName, Reason: "required"})
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(row.Score), 64)
	switch {
	case err != nil:
		errs = append(errs, &FieldError{Row: n, Field: FieldScore, Reason: "not a number"})
	case math.IsNaN(score) || math.IsInf(score, 0):
		errs = append(errs, &FieldError{Row: n, Field: FieldScore, Reason: "not a finite number"})
	case opts.StrictScoreRange && (score < config.ScoreMin || score > config.ScoreMax):
		errs = append(errs, &FieldError{
			Row:    n,
			Field:  FieldScore,
			Reason: fmt.Sprintf("must be between %d and %d", config.ScoreMin, config.ScoreMax),
		})
	}

	credit, err := strconv.Atoi(strings.TrimSpace(row.Credit))
	switch {
	case err != nil:
		errs = append(errs, &FieldError{Row: n, Field: FieldCredit, Reason: "not a whole number"})
	case credit < config.CreditMin:
		errs = append(errs, &FieldError{Row: n, Field: FieldCredit, Reason: "must be positive"})
	}

	if len(errs) > 0 {
		return models.Course{}, errs
	}
	return models.Course{Name: name, Score: score, Credit: credit}, nil
}
