// Package client talks to the remote GPA service.
package client

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/akyairhashvil/resultpro/internal/config"
	"github.com/akyairhashvil/resultpro/internal/models"
)

// Client issues the compute and PDF requests. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type requestIDKey struct{}

// WithRequestID attaches an id sent as the X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// gpaResponse uses pointers so missing fields are detectable.
type gpaResponse struct {
	GPA           *float64 `json:"gpa"`
	ClassOfDegree *string  `json:"class_of_degree"`
}

// pdfEnvelope is the JSON shape some deployments wrap the document in.
type pdfEnvelope struct {
	PDFContent string `json:"pdf_content"`
}

// CalculateGPA posts the courses to the compute endpoint.
func (c *Client) CalculateGPA(ctx context.Context, data models.StudentData) (models.GPAResult, error) {
	const op = "calculate gpa"

	resp, err := c.post(ctx, config.CalculatePath, data)
	if err != nil {
		return models.GPAResult{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.GPAResult{}, &StatusError{Op: op, Status: resp.StatusCode, Body: readErrorBody(resp.Body)}
	}

	var out gpaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.GPAResult{}, fmt.Errorf("%s: %w: %v", op, ErrMalformedResponse, err)
	}
	if out.GPA == nil || out.ClassOfDegree == nil {
		return models.GPAResult{}, fmt.Errorf("%s: %w: missing gpa or class_of_degree", op, ErrMalformedResponse)
	}
	return models.GPAResult{GPA: *out.GPA, ClassOfDegree: *out.ClassOfDegree}, nil
}

// GeneratePDF posts the courses to the PDF endpoint and returns the document.
// The body is treated as opaque bytes unless the service labels it JSON, in
// which case a hex "pdf_content" envelope is unwrapped.
func (c *Client) GeneratePDF(ctx context.Context, data models.StudentData) ([]byte, error) {
	const op = "generate pdf"

	resp, err := c.post(ctx, config.GeneratePDFPath, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := readErrorBody(resp.Body)
		c.log.Error("pdf request rejected", "status", resp.StatusCode, "body", body, "request_id", requestID(ctx))
		return nil, &StatusError{Op: op, Status: resp.StatusCode, Body: body}
	}

	doc, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}
	if isJSON(resp.Header.Get("Content-Type")) && len(doc) > 0 {
		doc, err = unwrapEnvelope(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyDocument)
	}
	return doc, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if id := requestID(ctx); id != "" {
		req.Header.Set(config.RequestIDHeader, id)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP POST %s: %w", url, err)
	}
	c.log.Debug("remote call", "path", path, "status", resp.StatusCode,
		"elapsed", time.Since(start), "request_id", requestID(ctx))
	return resp, nil
}

func readErrorBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, config.MaxErrorBodySize))
	return strings.TrimSpace(string(b))
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

func unwrapEnvelope(body []byte) ([]byte, error) {
	var env pdfEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	doc, err := hex.DecodeString(env.PDFContent)
	if err != nil {
		return nil, fmt.Errorf("%w: pdf_content is not hex: %v", ErrMalformedResponse, err)
	}
	return doc, nil
}
