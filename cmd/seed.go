package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/Rana718/saleor-seed/internal/config"
	"github.com/Rana718/saleor-seed/internal/dataset"
	"github.com/Rana718/saleor-seed/internal/saleor"
	"github.com/Rana718/saleor-seed/internal/seeder"
)

func runSeed(parent context.Context, sel seeder.Selection) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := dataset.Load(cfg.SeedFile)
	if err != nil {
		return err
	}
	if cfg.SeedFile != "" {
		color.Cyan("📄 Dataset: %s", cfg.SeedFile)
	}

	client := saleor.NewClient(saleor.Options{
		Endpoint: cfg.APIURL,
		Timeout:  cfg.Timeout,
	})
	color.Cyan("🔗 Endpoint: %s (run %s)", cfg.APIURL, client.RunID())

	s, err := seeder.NewSeeder(seeder.Options{
		Client:      client,
		Data:        data,
		Credentials: cfg.Credentials(),
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	})
	if err != nil {
		return err
	}

	report, err := s.Run(ctx, sel)
	if err != nil {
		return err
	}

	if failed := report.Failed(); len(failed) > 0 {
		color.Yellow("⚠️  %d section(s) stopped early: %v", len(failed), failed)
	}
	return nil
}

