package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/santgross/BIOFIT-EXPERT/internal/account"
	"github.com/santgross/BIOFIT-EXPERT/internal/app"
	"github.com/santgross/BIOFIT-EXPERT/internal/coach"
	"github.com/santgross/BIOFIT-EXPERT/internal/config"
	"github.com/santgross/BIOFIT-EXPERT/internal/content"
	"github.com/santgross/BIOFIT-EXPERT/internal/llm"
	"github.com/santgross/BIOFIT-EXPERT/internal/logging"
	"github.com/santgross/BIOFIT-EXPERT/internal/player"
	"github.com/santgross/BIOFIT-EXPERT/internal/progress"
	"github.com/santgross/BIOFIT-EXPERT/internal/store"
)

// deps are the services every command shares.
type deps struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *store.Store
	pack     *content.Pack
	progress *progress.Service
	accounts *account.Service

	closers []io.Closer
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i].Close()
	}
}

// loadConfig resolves the configuration, applying the --db flag on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	return cfg, nil
}

// openDeps loads config, opens the log file and the store, and builds the
// domain services. logTo overrides the log file when non-nil.
func openDeps(cmd *cobra.Command, logTo io.Writer) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	d := &deps{cfg: cfg}

	if logTo != nil {
		d.logger = logging.New(logTo, cfg.LogLevel)
	} else {
		logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		d.logger = logger
		d.closers = append(d.closers, closer)
	}

	d.pack = content.Builtin()
	if cfg.ContentPath != "" {
		if d.pack, err = content.LoadFile(cfg.ContentPath, version); err != nil {
			d.Close()
			return nil, fmt.Errorf("load content pack: %w", err)
		}
		d.logger.Info("content pack loaded", "path", cfg.ContentPath, "version", d.pack.Version)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	d.store = st
	d.closers = append(d.closers, st)

	d.progress = progress.NewService(st.ProgressRepo(), d.pack, d.logger)
	d.accounts = account.NewService(st, cfg.AdminEmail, d.logger)
	return d, nil
}

// newCoach builds the sales coach, or nil when no LLM provider is set up.
func newCoach(ctx context.Context, d *deps) *coach.Coach {
	provider, err := llm.NewProvider(ctx, d.cfg.LLM, d.store.EventRepo(), d.logger)
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "The sales coach will be unavailable.")
		}
		return nil
	}
	return coach.New(provider, coach.DefaultConfig(), d.logger)
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	d, err := openDeps(cmd, nil)
	if err != nil {
		return err
	}
	defer d.Close()

	certDir, _ := cmd.Flags().GetString("cert-dir")
	env := &player.Env{
		Pack:           d.pack,
		Progress:       d.progress,
		Accounts:       d.accounts,
		Sessions:       d.store.EventRepo(),
		Coach:          newCoach(ctx, d),
		Logger:         d.logger,
		TriviaBudget:   d.cfg.TriviaBudget,
		CertificateDir: certDir,
	}
	d.logger.Info("tui starting", "version", version, "db", d.cfg.DBPath, "coach", env.Coach.Enabled())
	return app.Run(ctx, env)
}

// userByEmail looks up a registered trainee for the support commands.
func userByEmail(ctx context.Context, d *deps, email string) (*store.User, error) {
	if email == "" {
		return nil, errors.New("--email is required")
	}
	u, err := d.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", email, err)
	}
	return u, nil
}
