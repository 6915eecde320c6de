// Package cli holds the cobra command tree. The root command runs the
// interactive form; subcommands drive the same flows without a UI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/akyairhashvil/resultpro/internal/app"
	"github.com/akyairhashvil/resultpro/internal/client"
	"github.com/akyairhashvil/resultpro/internal/config"
	"github.com/akyairhashvil/resultpro/internal/database"
	"github.com/akyairhashvil/resultpro/internal/export"
	"github.com/akyairhashvil/resultpro/internal/form"
	"github.com/akyairhashvil/resultpro/internal/tui"
	"github.com/akyairhashvil/resultpro/internal/util"
)

var ErrInvalidArgument = errors.New("invalid argument")

// session is filled in by the root pre-run and shared with subcommands.
type session struct {
	cfg     config.Config
	log     *slog.Logger
	logFile io.Closer
}

// open connects the store and builds the flows for this session. The caller
// closes the returned database.
func (s *session) open(ctx context.Context) (*app.Service, *database.Database, error) {
	db, err := database.Open(ctx, s.cfg.DBPath(), database.WithLogger(s.log))
	if err != nil {
		return nil, nil, fmt.Errorf("open snapshot store: %w", err)
	}
	remote := client.New(s.cfg.BaseURL,
		client.WithTimeout(s.cfg.RequestTimeout),
		client.WithLogger(s.log),
	)
	saver := export.NewSaver(s.cfg.DownloadDir, s.cfg.VerifyPDF, s.log)
	svc := app.NewService(db, remote, saver,
		app.WithFormOptions(form.Options{StrictScoreRange: s.cfg.StrictScoreRange}),
		app.WithLogger(s.log),
	)
	return svc, db, nil
}

func (s *session) close() {
	if s.logFile != nil {
		_ = s.logFile.Close()
		s.logFile = nil
	}
}

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	s := &session{}

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
		Args:          cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			return runInteractive(cc.Context(), s)
		},
	}

	cmd.PersistentFlags().String("config", "", "Path to the config file")
	cmd.PersistentFlags().String("log_level", "", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().String("base_url", "", "Base URL of the GPA service")
	cmd.PersistentFlags().String("data_dir", "", "Directory holding the saved form and logs")
	cmd.PersistentFlags().String("download_dir", "", "Directory PDF documents are saved to")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cc)
		if err != nil {
			return err
		}
		s.cfg = cfg

		// The interactive form owns the terminal, so its log goes to a file.
		out := cc.ErrOrStderr()
		if !cc.HasParent() {
			f, err := util.OpenLogFile(cfg.LogPath())
			if err != nil {
				return fmt.Errorf("failed opening log file: %w", err)
			}
			s.logFile = f
			out = f
		}

		h, err := util.NewLogHandler(out, cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			s.close()
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		s.log = slog.New(h)
		slog.SetDefault(s.log)

		return nil
	}
	cmd.PersistentPostRun = func(*cobra.Command, []string) {
		s.close()
	}

	cmd.AddCommand(NewCalcCmd(s))
	cmd.AddCommand(NewPDFCmd(s))
	cmd.AddCommand(NewShowCmd(s))
	cmd.AddCommand(NewClearCmd(s))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// loadConfig reads the config file and environment, then applies any flags
// that were set explicitly.
func loadConfig(cc *cobra.Command) (config.Config, error) {
	flags := cc.Flags()

	var merr error

	path, err := flags.GetString("config")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	cfg, loadErr := config.Load(path)
	for flagName, field := range map[string]*string{
		"log_level":    &cfg.LogLevel,
		"log_format":   &cfg.LogFormat,
		"base_url":     &cfg.BaseURL,
		"data_dir":     &cfg.DataDir,
		"download_dir": &cfg.DownloadDir,
	} {
		v, err := flags.GetString(flagName)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		if flags.Changed(flagName) {
			*field = v
		}
	}

	if merr != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}
	if loadErr != nil {
		return config.Config{}, loadErr
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return cfg, nil
}

func runInteractive(ctx context.Context, s *session) error {
	tui.SetTheme(s.cfg.Theme)

	svc, db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		util.LogError(s.log, "close snapshot store", db.Close())
	}()

	p := tea.NewProgram(tui.NewModel(ctx, svc, tui.WithLogger(s.log)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive form: %w", err)
	}
	return nil
}
