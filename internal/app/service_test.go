package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/resultpro/internal/client"
	"github.com/akyairhashvil/resultpro/internal/config"
	"github.com/akyairhashvil/resultpro/internal/form"
	"github.com/akyairhashvil/resultpro/internal/markup"
	"github.com/akyairhashvil/resultpro/internal/models"
	"github.com/akyairhashvil/resultpro/internal/testutil"
)

type mocks struct {
	store  *MockStore
	remote *MockRemote
	saver  *MockSaver
}

func newTestService(t *testing.T, opts ...Option) (*Service, mocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		store:  NewMockStore(ctrl),
		remote: NewMockRemote(ctrl),
		saver:  NewMockSaver(ctrl),
	}
	return NewService(m.store, m.remote, m.saver, opts...), m
}

func validRows() []form.Row {
	return []form.Row{testutil.NewCourse().Row()}
}

func TestBootstrapEmptyStoreSeedsOneRow(t *testing.T) {
	svc, m := newTestService(t)
	m.store.EXPECT().LoadSnapshot(gomock.Any()).Return(models.Snapshot{}, nil)

	st, err := svc.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	if len(st.Rows) != 1 || st.Rows[0] != (form.Row{}) {
		t.Fatalf("expected exactly one empty row, got %+v", st.Rows)
	}
	if st.Name != "" || st.Result != "" {
		t.Fatalf("expected empty name and result, got %+v", st)
	}
}

func TestBootstrapRestoresSnapshot(t *testing.T) {
	svc, m := newTestService(t)
	snap := testutil.NewSnapshot().
		WithName("Ada").
		WithCourses(
			testutil.NewCourse().Build(),
			testutil.NewCourse().WithName("PHY102").WithScore(55.5).WithCredit(2).Build(),
		).
		WithResult("<strong>GPA:</strong> 4.00").
		Build()
	m.store.EXPECT().LoadSnapshot(gomock.Any()).Return(snap, nil)

	st, err := svc.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	if st.Name != "Ada" || st.Result != "<strong>GPA:</strong> 4.00" {
		t.Fatalf("unexpected state: %+v", st)
	}
	want := []form.Row{
		{Name: "MATH101", Score: "85", Credit: "3"},
		{Name: "PHY102", Score: "55.5", Credit: "2"},
	}
	if len(st.Rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(st.Rows))
	}
	for i := range want {
		if st.Rows[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, st.Rows[i], want[i])
		}
	}
}

func TestBootstrapLoadErrorStillSeedsRow(t *testing.T) {
	svc, m := newTestService(t)
	m.store.EXPECT().LoadSnapshot(gomock.Any()).Return(models.Snapshot{}, errors.New("disk gone"))

	st, err := svc.Bootstrap(context.Background())
	if err == nil {
		t.Fatalf("expected load error to be reported")
	}
	if len(st.Rows) != 1 {
		t.Fatalf("expected one row even on error, got %d", len(st.Rows))
	}
}

func TestCalculateSuccessPersistsSnapshot(t *testing.T) {
	svc, m := newTestService(t)
	course := testutil.NewCourse().Build()

	m.remote.EXPECT().
		CalculateGPA(gomock.Any(), models.StudentData{Name: "Ada", Courses: []models.Course{course}}).
		Return(models.GPAResult{GPA: 4.0, ClassOfDegree: "First Class"}, nil)
	var saved string
	m.store.EXPECT().
		SaveSnapshot(gomock.Any(), "Ada", []models.Course{course}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []models.Course, result string) error {
			saved = result
			return nil
		})

	out, err := svc.Calculate(context.Background(), "  Ada ", validRows())
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if !strings.Contains(out, "4.00") || !strings.Contains(out, "First Class") {
		t.Fatalf("unexpected result markup: %q", out)
	}
	if saved != out {
		t.Fatalf("saved markup %q differs from shown markup %q", saved, out)
	}
}

func TestCalculateDefaultsStudentName(t *testing.T) {
	svc, m := newTestService(t)
	m.remote.EXPECT().
		CalculateGPA(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data models.StudentData) (models.GPAResult, error) {
			if data.Name != config.DefaultStudentName {
				t.Errorf("expected default name, got %q", data.Name)
			}
			return models.GPAResult{GPA: 1.2, ClassOfDegree: "Pass"}, nil
		})
	m.store.EXPECT().SaveSnapshot(gomock.Any(), config.DefaultStudentName, gomock.Any(), gomock.Any()).Return(nil)

	if _, err := svc.Calculate(context.Background(), "   ", validRows()); err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
}

func TestCalculateValidationErrorSkipsRemote(t *testing.T) {
	svc, _ := newTestService(t)

	rows := append(validRows(), form.Row{Name: "BAD", Score: "x", Credit: "1"})
	out, err := svc.Calculate(context.Background(), "Ada", rows)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if out != markup.Error(config.MsgInvalidForm) {
		t.Fatalf("unexpected markup: %q", out)
	}
}

func TestCalculateRemoteFailureLeavesStoreAlone(t *testing.T) {
	svc, m := newTestService(t)
	m.remote.EXPECT().CalculateGPA(gomock.Any(), gomock.Any()).
		Return(models.GPAResult{}, &client.StatusError{Op: "calculate gpa", Status: 500})

	out, err := svc.Calculate(context.Background(), "Ada", validRows())
	var statusErr *client.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected status error, got %v", err)
	}
	if out != markup.Error(config.MsgConnectionError) {
		t.Fatalf("unexpected markup: %q", out)
	}
}

func TestCalculateRejectsOverlappingCall(t *testing.T) {
	svc, m := newTestService(t)
	started := make(chan struct{})
	release := make(chan struct{})

	m.remote.EXPECT().CalculateGPA(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.StudentData) (models.GPAResult, error) {
			close(started)
			<-release
			return models.GPAResult{GPA: 3, ClassOfDegree: "Second Class Lower"}, nil
		}).Times(1)
	m.store.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Calculate(context.Background(), "Ada", validRows())
		done <- err
	}()
	<-started

	if !svc.Busy() {
		t.Fatalf("expected service to report busy")
	}
	out, err := svc.Calculate(context.Background(), "Ada", validRows())
	if !errors.Is(err, ErrInFlight) || out != "" {
		t.Fatalf("expected ErrInFlight with no markup, got %q, %v", out, err)
	}

	close(release)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("first Calculate failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("first Calculate did not finish")
	}
	if svc.Busy() {
		t.Fatalf("guard should be released")
	}
}

func TestCalculateReleasesGuardAfterFailure(t *testing.T) {
	svc, m := newTestService(t)
	m.remote.EXPECT().CalculateGPA(gomock.Any(), gomock.Any()).
		Return(models.GPAResult{}, errors.New("unreachable"))
	if _, err := svc.Calculate(context.Background(), "Ada", validRows()); err == nil {
		t.Fatalf("expected error")
	}
	if svc.Busy() {
		t.Fatalf("guard leaked after failure")
	}
}

func TestExportPDFSavesDocument(t *testing.T) {
	svc, m := newTestService(t)
	doc := []byte("%PDF-1.3 test")
	m.remote.EXPECT().GeneratePDF(gomock.Any(), gomock.Any()).Return(doc, nil)
	m.saver.EXPECT().Save("Ada_Obi_result.pdf", doc).Return("/tmp/Ada_Obi_result.pdf", nil)

	path, err := svc.ExportPDF(context.Background(), "Ada  Obi", validRows())
	if err != nil {
		t.Fatalf("ExportPDF failed: %v", err)
	}
	if path != "/tmp/Ada_Obi_result.pdf" {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestExportPDFEmptyDocumentSkipsSave(t *testing.T) {
	svc, m := newTestService(t)
	m.remote.EXPECT().GeneratePDF(gomock.Any(), gomock.Any()).Return([]byte{}, nil)

	_, err := svc.ExportPDF(context.Background(), "Ada", validRows())
	if !errors.Is(err, client.ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
	if AlertFor("", err) != config.MsgEmptyPDF {
		t.Fatalf("unexpected alert: %q", AlertFor("", err))
	}
}

func TestExportPDFValidationSkipsRemote(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.ExportPDF(context.Background(), "Ada", nil)
	if !errors.Is(err, form.ErrNoCourses) {
		t.Fatalf("expected ErrNoCourses, got %v", err)
	}
	if AlertFor("", err) != config.MsgInvalidPDFForm {
		t.Fatalf("unexpected alert: %q", AlertFor("", err))
	}
}

func TestClearAllDeclined(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.ClearAll(context.Background(), func(string) bool { return false })
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
}

func TestClearAllConfirmed(t *testing.T) {
	svc, m := newTestService(t)
	m.store.EXPECT().ClearSnapshot(gomock.Any()).Return(nil)

	var asked string
	st, err := svc.ClearAll(context.Background(), func(prompt string) bool {
		asked = prompt
		return true
	})
	if err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}
	if asked != config.MsgConfirmClear {
		t.Fatalf("unexpected prompt %q", asked)
	}
	if st.Name != "" || st.Result != "" || len(st.Rows) != 1 || st.Rows[0] != (form.Row{}) {
		t.Fatalf("expected fresh state, got %+v", st)
	}
}

func TestAlertFor(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInFlight, config.MsgBusy},
		{&form.FieldError{Row: 1, Field: form.FieldName, Reason: "required"}, config.MsgInvalidPDFForm},
		{&client.StatusError{Status: 502}, config.MsgPDFFailed},
		{errors.New("dial tcp: refused"), config.MsgPDFFailed},
	}
	for _, tt := range tests {
		if got := AlertFor("", tt.err); got != tt.want {
			t.Fatalf("AlertFor(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
	if got := AlertFor("/dl/a.pdf", nil); !strings.Contains(got, "/dl/a.pdf") {
		t.Fatalf("success alert should name the path, got %q", got)
	}
}
