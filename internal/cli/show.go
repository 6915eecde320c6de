package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/akyairhashvil/resultpro/internal/markup"
	"github.com/akyairhashvil/resultpro/internal/util"
)

// NewShowCmd returns the show command.
func NewShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved form",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			ctx := cc.Context()
			svc, db, err := s.open(ctx)
			if err != nil {
				return err
			}
			defer func() {
				util.LogError(s.log, "close snapshot store", db.Close())
			}()

			st, err := svc.Bootstrap(ctx)
			if err != nil {
				return fmt.Errorf("restore saved form: %w", err)
			}

			out := cc.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n\n", st.Name)

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("COURSE", "SCORE", "CREDIT")
			for _, r := range st.Rows {
				t.Row(r.Name, r.Score, r.Credit)
			}
			fmt.Fprintln(out, t.String())

			if st.Result != "" {
				text, err := markup.Text(st.Result)
				if err != nil {
					text = markup.Strip(st.Result)
				}
				fmt.Fprintf(out, "\n%s\n", text)
			}
			return nil
		},
	}
}
