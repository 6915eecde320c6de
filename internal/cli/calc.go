package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/resultpro/internal/markup"
	"github.com/akyairhashvil/resultpro/internal/util"
)

const calcExample = `  # Calculate from the saved form
  resultpro calc

  # Calculate for new input; the result is saved like in the form
  resultpro calc --name "Ada Obi" --course MATH101:85:3 --course PHY102:62:2
`

// NewCalcCmd returns the calc command.
func NewCalcCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calc",
		Short:   "Calculate the GPA and save the form",
		Example: calcExample,
		Args:    cobra.NoArgs,
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

			out, calcErr := svc.Calculate(ctx, name, rows)
			if out != "" {
				text, err := markup.Text(out)
				if err != nil {
					return err
				}
				fmt.Fprintln(cc.OutOrStdout(), text)
			}
			return calcErr
		},
	}
	addFormFlags(cmd)

	return cmd
}
