package testutil

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/resultpro/internal/config"
	"github.com/akyairhashvil/resultpro/internal/models"
)

// PDFMode selects how the fake answers /generate_pdf.
type PDFMode int

const (
	PDFBinary  PDFMode = iota // application/pdf body
	PDFHexJSON                // {"pdf_content": "<hex>"}
	PDFEmpty                  // 200 with no body
)

// FakeService stands in for the remote GPA service. Responses are fixed by
// the test; PDF bodies are real documents rendered with fpdf.
type FakeService struct {
	Server *httptest.Server

	mu           sync.Mutex
	result       models.GPAResult
	calcStatus   int
	calcBody     string
	pdfStatus    int
	pdfMode      PDFMode
	calcRequests []models.StudentData
	pdfRequests  []models.StudentData
	requestIDs   []string
	block        chan struct{}
}

// NewFakeService starts a server that is closed when the test ends.
func NewFakeService(t testing.TB) *FakeService {
	t.Helper()
	f := &FakeService{
		result:     models.GPAResult{GPA: 4.0, ClassOfDegree: "First Class"},
		calcStatus: http.StatusOK,
		pdfStatus:  http.StatusOK,
	}

	r := chi.NewRouter()
	r.Post(config.CalculatePath, f.handleCalculate)
	r.Post(config.GeneratePDFPath, f.handleGeneratePDF)

	f.Server = httptest.NewServer(r)
	t.Cleanup(func() {
		f.Unblock()
		f.Server.Close()
	})
	return f
}

// URL is the base URL to hand to the client.
func (f *FakeService) URL() string {
	return f.Server.URL
}

// SetResult fixes the compute answer.
func (f *FakeService) SetResult(r models.GPAResult) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.result = r
}

// SetCalculateStatus makes /calculate_gpa answer with status and a raw body.
// An empty body keeps the JSON result.
func (f *FakeService) SetCalculateStatus(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calcStatus = status
	f.calcBody = body
}

// SetPDFStatus makes /generate_pdf answer with status.
func (f *FakeService) SetPDFStatus(status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pdfStatus = status
}

// SetPDFMode selects the PDF body shape.
func (f *FakeService) SetPDFMode(m PDFMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pdfMode = m
}

// Block holds every request until Unblock is called.
func (f *FakeService) Block() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.block = make(chan struct{})
}

// Unblock releases held requests.
func (f *FakeService) Unblock() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.block != nil {
		close(f.block)
		f.block = nil
	}
}

// CalculateRequests returns the bodies received by /calculate_gpa.
func (f *FakeService) CalculateRequests() []models.StudentData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.StudentData(nil), f.calcRequests...)
}

// PDFRequests returns the bodies received by /generate_pdf.
func (f *FakeService) PDFRequests() []models.StudentData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.StudentData(nil), f.pdfRequests...)
}

// RequestIDs returns every X-Request-ID header seen.
func (f *FakeService) RequestIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requestIDs...)
}

func (f *FakeService) wait(r *http.Request) {
	f.mu.Lock()
	block := f.block
	f.mu.Unlock()
	if block == nil {
		return
	}
	select {
	case <-block:
	case <-r.Context().Done():
	}
}

func (f *FakeService) decode(w http.ResponseWriter, r *http.Request) (models.StudentData, bool) {
	var data models.StudentData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "invalid body: "+err.Error(), http.StatusUnprocessableEntity)
		return data, false
	}
	f.mu.Lock()
	f.requestIDs = append(f.requestIDs, r.Header.Get(config.RequestIDHeader))
	f.mu.Unlock()
	return data, true
}

func (f *FakeService) handleCalculate(w http.ResponseWriter, r *http.Request) {
	data, ok := f.decode(w, r)
	if !ok {
		return
	}
	f.wait(r)

	f.mu.Lock()
	f.calcRequests = append(f.calcRequests, data)
	status, body, result := f.calcStatus, f.calcBody, f.result
	f.mu.Unlock()

	if body != "" {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(result)
}

func (f *FakeService) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	data, ok := f.decode(w, r)
	if !ok {
		return
	}
	f.wait(r)

	f.mu.Lock()
	f.pdfRequests = append(f.pdfRequests, data)
	status, mode, result := f.pdfStatus, f.pdfMode, f.result
	f.mu.Unlock()

	if status < 200 || status > 299 {
		http.Error(w, "pdf generation failed", status)
		return
	}

	switch mode {
	case PDFEmpty:
		w.Header().Set("Content-Type", "application/pdf")
		w.WriteHeader(status)
	case PDFHexJSON:
		doc, err := RenderPDF(data, result)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"pdf_content": hex.EncodeToString(doc)})
	default:
		doc, err := RenderPDF(data, result)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.WriteHeader(status)
		_, _ = w.Write(doc)
	}
}

// RenderPDF draws a one-page result sheet like the real service returns.
func RenderPDF(data models.StudentData, result models.GPAResult) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Student: %s", data.Name))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("GPA: %.2f", result.GPA))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Class: %s", result.ClassOfDegree))
	pdf.Ln(8)
	for _, c := range data.Courses {
		pdf.Cell(0, 8, fmt.Sprintf("%s: Score %g, Credit %d", c.Name, c.Score, c.Credit))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
