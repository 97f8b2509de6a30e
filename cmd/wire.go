package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	reportadapter "github.com/bnema/lesson-appearance/internal/adapters/render/report"
	tomlrepo "github.com/bnema/lesson-appearance/internal/adapters/repo/toml"
	"github.com/bnema/lesson-appearance/internal/application"
	"github.com/bnema/lesson-appearance/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	envPrefix       = "APPEAR"
	logLevelKey     = "log.level"
	reportSecsKey   = "report.seconds"
	reportWidthKey  = "report.bar_width"
	defaultLogLevel = "warn"
)

type app struct {
	service        *application.Service
	reportRenderer func([]application.Report, reportadapter.RenderOptions) (string, error)
	renderOptions  func() reportadapter.RenderOptions
	logger         zerolog.Logger
}

func newConfig() *viper.Viper {
	cfg := viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault(logLevelKey, defaultLogLevel)
	cfg.SetDefault(reportSecsKey, true)
	cfg.SetDefault(reportWidthKey, 24)

	return cfg
}

func wireApp(cfg *viper.Viper) (*app, error) {
	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire lesson repository: %w", err)
	}

	logger := newLogger(os.Stderr)

	return &app{
		service:        application.NewService(repo, ports.SystemClock{}, logger),
		reportRenderer: reportadapter.Render,
		renderOptions: func() reportadapter.RenderOptions {
			return reportadapter.RenderOptions{
				Seconds:  cfg.GetBool(reportSecsKey),
				BarWidth: cfg.GetInt(reportWidthKey),
			}
		},
		logger: logger,
	}, nil
}

func newLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
}
