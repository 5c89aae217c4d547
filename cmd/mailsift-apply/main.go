package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mailsift/mailsift/internal/config"
	"github.com/mailsift/mailsift/internal/gmail"
	"github.com/mailsift/mailsift/internal/rate"
	"github.com/mailsift/mailsift/internal/rules"
	"github.com/mailsift/mailsift/internal/runtime"
	"github.com/mailsift/mailsift/internal/sift"
	"github.com/mailsift/mailsift/internal/store"
)

type applyConfig struct {
	configPath string
	rulesPath  string
	dryRun     bool
}

func main() {
	cfg := parseApplyFlags()
	if err := run(cfg); err != nil {
		runtime.DefaultLogger().Error("mailsift-apply failed", "error", err)
		os.Exit(1)
	}
}

func parseApplyFlags() applyConfig {
	configPath := flag.String("config", "mailsift.toml", "path to the run configuration")
	rulesPath := flag.String("rules", "", "ruleset file, overrides the configured path")
	dryRun := flag.Bool("dry-run", false, "report matches; skip remote mutations")
	flag.Parse()

	return applyConfig{
		configPath: *configPath,
		rulesPath:  *rulesPath,
		dryRun:     *dryRun,
	}
}

func run(cfg applyConfig) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rc, err := config.Load(cfg.configPath)
	if err != nil {
		return err
	}
	rulesPath := cfg.rulesPath
	if rulesPath == "" {
		rulesPath = rc.Rules
	}
	logger := runtime.DefaultLogger()

	st, err := store.NewPostgres(ctx, store.Options{
		Host:     rc.Database.Host,
		Port:     rc.Database.Port,
		User:     rc.Database.User,
		Password: rc.Database.Password,
		Database: rc.Database.Name,
		TLS:      rc.Database.TLS,
		Table:    rc.Database.Table,
	})
	if err != nil {
		return fmt.Errorf("open record store: %w", err)
	}
	defer st.Close()

	base, err := runtime.NewGmailClient(ctx, rc.CredentialsDir, runtime.ScopeModify)
	if err != nil {
		return fmt.Errorf("create gmail client: %w", err)
	}
	client := gmail.Paced{
		Inner:   base,
		Limiter: rate.NewPacer(rc.Gmail.RPS),
		Timeout: rc.Gmail.CallTimeout.Duration,
	}

	svc := sift.NewService(client, st, rules.FileSource{Path: rulesPath}, logger)
	svc.DryRun = cfg.dryRun

	rep, err := svc.Apply(ctx)
	if err != nil {
		return fmt.Errorf("run apply: %w", err)
	}
	if summary := rep.Summary(); summary != "" {
		fmt.Println(summary)
	}
	return nil
}
