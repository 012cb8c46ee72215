package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"toolindex/internal/app"
	"toolindex/internal/domain"
	"toolindex/internal/infra/config"
)

type cliOptions struct {
	dir          string
	configPath   string
	indexFile    string
	templateFile string
	logLevel     string
	logger       *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := cliOptions{
		dir:      ".",
		logLevel: "warn",
		logger:   zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "toolindex",
		Short:         "Index generator for a directory of single-file HTML tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level, err := zapcore.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
			}
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(level)
			logger, err := cfg.Build()
			if err != nil {
				return err
			}
			opts.logger = logger.With(zap.String("run_id", uuid.NewString()))
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.dir, "dir", opts.dir, "tools directory to scan")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to toolindex config file (default <dir>/toolindex.yaml when present)")
	root.PersistentFlags().StringVar(&opts.indexFile, "index", domain.DefaultIndexFileName, "index file name")
	root.PersistentFlags().StringVar(&opts.templateFile, "template", domain.DefaultTemplateFileName, "template file name")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		newGenerateCmd(&opts),
		newCheckCmd(&opts),
		newListCmd(&opts),
		newWatchCmd(&opts),
	)

	return root
}

func buildService(cmd *cobra.Command, opts *cliOptions) (*app.IndexService, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	return app.NewIndexService(cfg, opts.logger), nil
}

// resolveConfig layers flags over the optional config file over the
// defaults. An explicit --config must exist; the conventional
// <dir>/toolindex.yaml is only loaded when present.
func resolveConfig(cmd *cobra.Command, opts *cliOptions) (config.Config, error) {
	loader := config.NewLoader(opts.logger)

	var cfg config.Config
	switch {
	case opts.configPath != "":
		loaded, err := loader.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	default:
		path := filepath.Join(opts.dir, domain.DefaultConfigFileName)
		if _, err := os.Stat(path); err == nil {
			loaded, err := loader.Load(path)
			if err != nil {
				return config.Config{}, err
			}
			cfg = loaded
		} else {
			cfg = config.Default()
		}
	}
	cfg.Dir = opts.dir

	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "index":
			cfg.IndexFile = opts.indexFile
		case "template":
			cfg.TemplateFile = opts.templateFile
		}
	})

	if cfg.IndexFile == cfg.TemplateFile {
		return config.Config{}, fmt.Errorf("--index and --template must differ, both are %q", cfg.IndexFile)
	}
	return cfg, nil
}
