package tui

import (
	"context"
	"sync"

	"github.com/akyairhashvil/resultpro/internal/app"
	"github.com/akyairhashvil/resultpro/internal/form"
)

type calcCall struct {
	name string
	rows []form.Row
}

type fakeFlows struct {
	mu sync.Mutex

	bootState app.State
	bootErr   error

	calcMarkup string
	calcErr    error
	calcCalls  []calcCall

	pdfPath  string
	pdfErr   error
	pdfCalls []calcCall

	clearState app.State
	clearErr   error
	clears     int
}

func newFakeFlows() *fakeFlows {
	return &fakeFlows{
		bootState:  app.State{Rows: []form.Row{{}}},
		clearState: app.State{Rows: []form.Row{{}}},
	}
}

func (f *fakeFlows) Bootstrap(context.Context) (app.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bootState, f.bootErr
}

func (f *fakeFlows) Calculate(_ context.Context, name string, rows []form.Row) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calcCalls = append(f.calcCalls, calcCall{name: name, rows: rows})
	return f.calcMarkup, f.calcErr
}

func (f *fakeFlows) ExportPDF(_ context.Context, name string, rows []form.Row) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pdfCalls = append(f.pdfCalls, calcCall{name: name, rows: rows})
	return f.pdfPath, f.pdfErr
}

func (f *fakeFlows) ClearAll(_ context.Context, confirm app.ConfirmFunc) (app.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !confirm("") {
		return app.State{}, app.ErrDeclined
	}
	f.clears++
	return f.clearState, f.clearErr
}

func (f *fakeFlows) calcCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calcCalls)
}
