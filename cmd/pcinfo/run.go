package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/go-tangra/go-tangra-pcinfo/internal/collector"
	"github.com/go-tangra/go-tangra-pcinfo/internal/config"
	"github.com/go-tangra/go-tangra-pcinfo/internal/render"
	"github.com/go-tangra/go-tangra-pcinfo/internal/report"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// CLI flag overrides.
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Format = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		cfg.Output = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

func newLogger(w io.Writer, level, runID string) log.Logger {
	logger := log.With(log.NewStdLogger(w),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"run", runID,
	)
	return log.NewFilter(logger, log.FilterLevel(log.ParseLevel(level)))
}

func runCollect(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Resolve the renderer before collecting so a bad format fails fast.
	r, err := render.New(cfg.Format)
	if err != nil {
		return fmt.Errorf("select renderer: %w", err)
	}

	runID := uuid.NewString()
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, runID)
	helper := log.NewHelper(logger)

	host := collector.NewLocalHost(collector.LocalOptions{
		CommandTimeout: cfg.CommandTimeout,
		AllPartitions:  cfg.Disk.AllPartitions,
	})
	rep := collector.New(host, collector.OpenInstrumentation, logger).CollectAs(runID)
	model := report.NewNormalizer(logger).Normalize(rep)

	if cfg.Output == "" {
		return r.Render(cmd.OutOrStdout(), model)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := r.Render(f, model); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	helper.Infof("report written to %s", cfg.Output)
	return nil
}

func runAbout(cmd *cobra.Command, _ []string) error {
	return render.About(cmd.OutOrStdout(), version)
}
