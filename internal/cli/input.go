package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/akyairhashvil/resultpro/internal/app"
	"github.com/akyairhashvil/resultpro/internal/form"
)

func addFormFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "Student name (defaults to the saved name)")
	cmd.Flags().StringArrayP("course", "c", nil, "Course as NAME:SCORE:CREDIT, repeatable (defaults to the saved courses)")
}

// parseCourse splits NAME:SCORE:CREDIT from the right, so course names may
// contain colons. Values are left as typed; validation happens on submit.
func parseCourse(s string) (form.Row, error) {
	credit := strings.LastIndex(s, ":")
	if credit < 0 {
		return form.Row{}, fmt.Errorf("course %q: expected NAME:SCORE:CREDIT", s)
	}
	score := strings.LastIndex(s[:credit], ":")
	if score < 0 {
		return form.Row{}, fmt.Errorf("course %q: expected NAME:SCORE:CREDIT", s)
	}
	return form.Row{
		Name:   s[:score],
		Score:  s[score+1 : credit],
		Credit: s[credit+1:],
	}, nil
}

// formInput resolves the name and rows for a headless flow. Flags win; what
// they leave out comes from the saved snapshot.
func formInput(ctx context.Context, cc *cobra.Command, svc *app.Service) (string, []form.Row, error) {
	flags := cc.Flags()

	var merr error

	name, err := flags.GetString("name")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	specs, err := flags.GetStringArray("course")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	rows := make([]form.Row, 0, len(specs))
	for _, raw := range specs {
		row, err := parseCourse(raw)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		rows = append(rows, row)
	}

	if merr != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	if flags.Changed("name") && len(rows) > 0 {
		return name, rows, nil
	}

	st, err := svc.Bootstrap(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("restore saved form: %w", err)
	}
	if !flags.Changed("name") {
		name = st.Name
	}
	if len(rows) == 0 {
		rows = st.Rows
	}
	return name, rows, nil
}
