package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akyairhashvil/resultpro/internal/app"
	"github.com/akyairhashvil/resultpro/internal/util"
)

// NewClearCmd returns the clear command.
func NewClearCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved form",
		Args:  cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			yes, err := cc.Flags().GetBool("yes")
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}
			confirm := func(string) bool { return true }
			if !yes {
				if !isTerminal(cc.InOrStdin()) {
					return fmt.Errorf("%w: refusing to clear without a terminal, pass --yes", ErrInvalidArgument)
				}
				confirm = promptConfirm(cc.InOrStdin(), cc.ErrOrStderr())
			}

			ctx := cc.Context()
			svc, db, err := s.open(ctx)
			if err != nil {
				return err
			}
			defer func() {
				util.LogError(s.log, "close snapshot store", db.Close())
			}()

			if _, err := svc.ClearAll(ctx, confirm); err != nil {
				if errors.Is(err, app.ErrDeclined) {
					fmt.Fprintln(cc.OutOrStdout(), "Nothing cleared.")
					return nil
				}
				return err
			}
			fmt.Fprintln(cc.OutOrStdout(), "Saved data cleared.")
			return nil
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Clear without asking")

	return cmd
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func promptConfirm(in io.Reader, out io.Writer) app.ConfirmFunc {
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}
