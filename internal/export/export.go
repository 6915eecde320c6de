// Package export writes downloaded documents to disk.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/akyairhashvil/resultpro/internal/config"
)

// ErrNoData is returned when asked to save zero bytes.
var ErrNoData = errors.New("nothing to save")

var whitespace = regexp.MustCompile(`\s+`)

// FileName derives the download name from the student name: whitespace runs
// become underscores, path separators are dropped, and a blank name falls
// back to "student".
func FileName(studentName string) string {
	stem := whitespace.ReplaceAllString(strings.TrimSpace(studentName), "_")
	stem = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return -1
		}
		return r
	}, stem)
	stem = strings.Trim(stem, ".")
	if stem == "" {
		stem = config.DefaultFileStem
	}
	return stem + config.PDFFileSuffix
}

// Saver stores documents in a directory.
type Saver struct {
	Dir    string
	Verify bool
	Log    *slog.Logger
}

// NewSaver returns a Saver for dir. When verify is set, saved documents are
// parsed with pdfcpu and problems are logged; the file is kept either way.
func NewSaver(dir string, verify bool, logger *slog.Logger) *Saver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Saver{Dir: dir, Verify: verify, Log: logger}
}

// Save writes data to Dir/name through a temporary file, closing the
// temporary handle before the final rename. It returns the final path.
func (s *Saver) Save(name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNoData
	}
	if err := os.MkdirAll(s.Dir, config.DefaultDirPerm); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, config.DefaultDownloadPerm); err != nil {
		cleanup()
		return "", fmt.Errorf("chmod temp file: %w", err)
	}

	final := filepath.Join(s.Dir, name)
	if err := os.Rename(tmpName, final); err != nil {
		cleanup()
		return "", fmt.Errorf("move into place: %w", err)
	}

	if s.Verify {
		if err := ValidatePDF(data); err != nil {
			s.Log.Warn("downloaded document did not validate", "path", final, "err", err)
		}
	}
	return final, nil
}

// ValidatePDF runs pdfcpu's relaxed structural validation.
func ValidatePDF(data []byte) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.Validate(bytes.NewReader(data), conf)
}
