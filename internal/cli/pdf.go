package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/resultpro/internal/app"
	"github.com/akyairhashvil/resultpro/internal/util"
)

// NewPDFCmd returns the pdf command.
func NewPDFCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Generate the result PDF into the download directory",
		Example: `  resultpro pdf
  resultpro pdf --name "Ada Obi" --course MATH101:85:3 --download_dir .`,
		Args: cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			ctx := cc.Context()
			svc, db, err := s.open(ctx)
			if err != nil {
				return err
			}
			defer func() {
				util.LogError(s.log, "close snapshot store", db.Close())
			}()

			name, rows, err := formInput(ctx, cc, svc)
			if err != nil {
				return err
			}

			path, err := svc.ExportPDF(ctx, name, rows)
			if err != nil {
				return errors.New(app.AlertFor(path, err))
			}
			fmt.Fprintln(cc.OutOrStdout(), app.AlertFor(path, nil))
			return nil
		},
	}
	addFormFlags(cmd)

	return cmd
}
