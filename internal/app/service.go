// Package app runs the user-facing flows: start-up restore, GPA computation,
// PDF export and clear-all. It owns no presentation; callers pass in the
// current rows and render what comes back.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/akyairhashvil/resultpro/internal/client"
	"github.com/akyairhashvil/resultpro/internal/config"
	"github.com/akyairhashvil/resultpro/internal/export"
	"github.com/akyairhashvil/resultpro/internal/form"
	"github.com/akyairhashvil/resultpro/internal/markup"
	"github.com/akyairhashvil/resultpro/internal/models"
	"github.com/akyairhashvil/resultpro/internal/util"
)

var (
	// ErrInFlight rejects a flow that is already running.
	ErrInFlight = errors.New("request already in progress")
	// ErrDeclined is returned when clear-all is not confirmed.
	ErrDeclined = errors.New("clear declined")
)

// State is what the form shows.
type State struct {
	Name   string
	Rows   []form.Row
	Result string
}

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) bool

// Service wires the store, the remote service and the saver together.
type Service struct {
	store  Store
	remote Remote
	saver  Saver
	opts   form.Options
	log    *slog.Logger

	calc guard
	pdf  guard
}

// Option configures a Service.
type Option func(*Service)

// WithFormOptions sets validation options.
func WithFormOptions(o form.Options) Option {
	return func(s *Service) { s.opts = o }
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService builds a Service.
func NewService(store Store, remote Remote, saver Saver, opts ...Option) *Service {
	s := &Service{
		store:  store,
		remote: remote,
		saver:  saver,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bootstrap restores the saved snapshot. The returned state always has at
// least one row.
func (s *Service) Bootstrap(ctx context.Context) (State, error) {
	snap, err := s.store.LoadSnapshot(ctx)
	if err != nil {
		s.log.Error("load snapshot", "err", err)
	}
	st := State{
		Name:   util.Deref(snap.Name),
		Result: util.Deref(snap.Result),
	}
	rows := form.NewRows()
	if len(snap.Courses) > 0 {
		rows.Replace(snap.Courses)
	}
	if rows.Len() == 0 {
		rows.AddRow()
	}
	st.Rows = rows.Rows()
	return st, err
}

// Calculate validates rows, asks the service for the GPA and saves the
// snapshot on success. The returned markup is what the result area should
// show in every case except ErrInFlight, where it is empty and the result
// area should be left alone.
func (s *Service) Calculate(ctx context.Context, name string, rows []form.Row) (string, error) {
	token, ok := s.calc.acquire()
	if !ok {
		return "", ErrInFlight
	}
	defer s.calc.release(token)

	name = studentName(name)
	courses, err := form.Collect(rows, s.opts)
	if err != nil {
		return markup.Error(config.MsgInvalidForm), err
	}

	ctx = client.WithRequestID(ctx, token)
	res, err := s.remote.CalculateGPA(ctx, models.StudentData{Name: name, Courses: courses})
	if err != nil {
		s.log.Error("calculate gpa", "err", err, "request_id", token)
		return markup.Error(config.MsgConnectionError), err
	}

	result := markup.Result(name, res)
	if err := s.store.SaveSnapshot(ctx, name, courses, result); err != nil {
		s.log.Error("save snapshot", "err", err, "request_id", token)
		return result, fmt.Errorf("save snapshot: %w", err)
	}
	s.log.Info("gpa calculated", "courses", len(courses), "gpa", res.GPA, "request_id", token)
	return result, nil
}

// ExportPDF validates rows again, fetches the document and saves it. It does
// not touch the snapshot.
func (s *Service) ExportPDF(ctx context.Context, name string, rows []form.Row) (string, error) {
	token, ok := s.pdf.acquire()
	if !ok {
		return "", ErrInFlight
	}
	defer s.pdf.release(token)

	name = studentName(name)
	courses, err := form.Collect(rows, s.opts)
	if err != nil {
		return "", err
	}

	ctx = client.WithRequestID(ctx, token)
	doc, err := s.remote.GeneratePDF(ctx, models.StudentData{Name: name, Courses: courses})
	if err != nil {
		s.log.Error("generate pdf", "err", err, "request_id", token)
		return "", err
	}
	if len(doc) == 0 {
		return "", client.ErrEmptyDocument
	}

	path, err := s.saver.Save(export.FileName(name), doc)
	if err != nil {
		s.log.Error("save pdf", "err", err, "request_id", token)
		return "", fmt.Errorf("save pdf: %w", err)
	}
	s.log.Info("pdf saved", "path", path, "bytes", len(doc), "request_id", token)
	return path, nil
}

// ClearAll asks for confirmation, then drops the snapshot and returns a
// fresh state with one empty row.
func (s *Service) ClearAll(ctx context.Context, confirm ConfirmFunc) (State, error) {
	if confirm == nil || !confirm(config.MsgConfirmClear) {
		return State{}, ErrDeclined
	}
	if err := s.store.ClearSnapshot(ctx); err != nil {
		s.log.Error("clear snapshot", "err", err)
		return State{}, err
	}
	rows := form.NewRows()
	rows.AddRow()
	return State{Rows: rows.Rows()}, nil
}

// Busy reports whether either remote flow is running.
func (s *Service) Busy() bool {
	return s.calc.busy() || s.pdf.busy()
}

func studentName(name string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return config.DefaultStudentName
}
