package app

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/resultpro/internal/client"
	"github.com/akyairhashvil/resultpro/internal/config"
	"github.com/akyairhashvil/resultpro/internal/form"
)

// AlertFor maps an ExportPDF outcome to the message shown to the user.
func AlertFor(path string, err error) string {
	var fieldErr *form.FieldError
	switch {
	case err == nil:
		return fmt.Sprintf(config.MsgPDFSaved, path)
	case errors.Is(err, ErrInFlight):
		return config.MsgBusy
	case errors.Is(err, form.ErrNoCourses), errors.As(err, &fieldErr):
		return config.MsgInvalidPDFForm
	case errors.Is(err, client.ErrEmptyDocument):
		return config.MsgEmptyPDF
	default:
		return config.MsgPDFFailed
	}
}
