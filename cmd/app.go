package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"bucket-manager/core/config"
	"bucket-manager/core/database"
	"bucket-manager/core/logger"
	"bucket-manager/core/storage"
	"bucket-manager/feature/journal"
	"bucket-manager/feature/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app bundles what every command needs. It is built once per invocation
// and handed to the command; nothing is kept in package state.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *store.Service
	journal *journal.Repository
}

// newApp loads the configuration, resolves the credentials and builds the
// storage facade. extra options are applied first, so configured settings
// such as strict bucket names take precedence.
func newApp(cmd *cobra.Command, extra ...store.Option) (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	creds, err := storage.ResolveCredentials(cfg.Storage)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(cfg.Storage, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Website hosting is optional; bucket and object calls work without it
	website, err := storage.NewWebsiteClient(cmd.Context(), cfg.Storage, creds)
	if err != nil {
		logg.Warn("Website configuration unavailable", zap.Error(err))
		website = nil
	}

	opts := append([]store.Option{}, extra...)
	opts = append(opts, store.WithRegion(cfg.Storage.Region))
	if cfg.Storage.StrictBucketNames {
		opts = append(opts, store.WithNamePolicy(store.StrictNames))
	}

	var repo *journal.Repository
	if cfg.Database.Enabled {
		repo = openJournal(cfg.Database, logg)
		if repo != nil {
			opts = append(opts, store.WithRecorder(repo))
		}
	}

	return &app{
		cfg:     cfg,
		logger:  logg,
		service: store.NewService(client, website, logg, opts...),
		journal: repo,
	}, nil
}

// openJournal connects the transfer journal. Transfers go on without it, so
// failures are only logged.
func openJournal(cfg database.Config, logg *zap.Logger) *journal.Repository {
	db, err := database.Connect(cfg)
	if err != nil {
		logg.Warn("Optional journal database connection failed", zap.Error(err))
		return nil
	}

	repo := journal.NewRepository(db)
	if err := repo.Migrate(); err != nil {
		logg.Warn("Journal migration failed", zap.Error(err))
		return nil
	}
	logg.Debug("Connected to journal database", zap.String("driver", cfg.Driver))
	return repo
}

// bucketName returns the --bucket flag value, falling back to storage.bucket.
func (a *app) bucketName(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if a.cfg.Storage.Bucket != "" {
		return a.cfg.Storage.Bucket, nil
	}
	return "", fmt.Errorf("no bucket given: use --bucket or set STORAGE_BUCKET")
}

// confirmName asks on the command's input before a sanitized bucket name is
// used. yes skips the question.
func confirmName(cmd *cobra.Command, yes bool) store.NamePolicy {
	return func(original, sanitized string) error {
		if yes {
			return nil
		}

		prompt := fmt.Sprintf("Bucket name %q contains invalid characters.\nType 'yes' to create %q instead: ", original, sanitized)
		if !confirmYes(cmd, prompt) {
			return fmt.Errorf("%w: %q not confirmed", store.ErrInvalidBucketName, sanitized)
		}
		return nil
	}
}

// confirmYes prints prompt and reports whether the answer was "yes".
func confirmYes(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

// progressDots prints one dot per tenth of the transfer.
func progressDots(cmd *cobra.Command) store.ProgressFunc {
	printed := int64(0)
	done := false
	return func(transferred, total int64) {
		if total <= 0 || done {
			return
		}
		for step := transferred * 10 / total; printed < step; printed++ {
			fmt.Fprint(cmd.ErrOrStderr(), ".")
		}
		if transferred >= total {
			done = true
			fmt.Fprintln(cmd.ErrOrStderr())
		}
	}
}
