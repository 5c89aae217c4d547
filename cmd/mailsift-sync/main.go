package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/mailsift/mailsift/internal/config"
	"github.com/mailsift/mailsift/internal/gmail"
	"github.com/mailsift/mailsift/internal/rate"
	"github.com/mailsift/mailsift/internal/rules"
	"github.com/mailsift/mailsift/internal/runtime"
	"github.com/mailsift/mailsift/internal/sift"
	"github.com/mailsift/mailsift/internal/store"
)

const defaultCount = 50

type syncConfig struct {
	configPath string
	count      int
	newerThan  string
	fetch      string
}

func main() {
	cfg := parseSyncFlags()
	if err := run(cfg); err != nil {
		runtime.DefaultLogger().Error("mailsift-sync failed", "error", err)
		os.Exit(1)
	}
}

func parseSyncFlags() syncConfig {
	configPath := flag.String("config", "mailsift.toml", "path to the run configuration")
	count := flag.Int("count", 0, "fetch this many of the newest messages")
	newerThan := flag.String("newer-than", "", "fetch messages newer than N days/months, e.g. 7d or 2m")
	fetch := flag.String("fetch", "", "raw count-or-query argument; digits mean a count")
	flag.Parse()

	return syncConfig{
		configPath: *configPath,
		count:      *count,
		newerThan:  *newerThan,
		fetch:      *fetch,
	}
}

func run(cfg syncConfig) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sel, err := chooseSelector(cfg)
	if err != nil {
		return err
	}

	rc, err := config.Load(cfg.configPath)
	if err != nil {
		return err
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

	base, err := runtime.NewGmailClient(ctx, rc.CredentialsDir, runtime.ScopeReadonly)
	if err != nil {
		return fmt.Errorf("create gmail client: %w", err)
	}
	client := gmail.Paced{
		Inner:   base,
		Limiter: rate.NewPacer(rc.Gmail.RPS),
		Timeout: rc.Gmail.CallTimeout.Duration,
	}

	svc := sift.NewService(client, st, nil, logger)
	svc.PageSize = rc.Gmail.PageSize

	rep, err := svc.Sync(ctx, sel)
	if err != nil {
		return fmt.Errorf("run sync: %w", err)
	}
	fmt.Println(rep.Summary())
	return nil
}

// chooseSelector enforces that exactly one selector form is active per
// invocation, defaulting to a bounded count of the newest messages.
func chooseSelector(cfg syncConfig) (sift.Selector, error) {
	given := 0
	for _, set := range []bool{cfg.count > 0, cfg.newerThan != "", cfg.fetch != ""} {
		if set {
			given++
		}
	}
	if given > 1 {
		return sift.Selector{}, fmt.Errorf("choose one of -count, -newer-than, -fetch")
	}
	switch {
	case cfg.count > 0:
		return sift.Selector{Count: cfg.count}, nil
	case cfg.newerThan != "":
		return parseNewerThan(cfg.newerThan)
	case cfg.fetch != "":
		return sift.ParseSelector(cfg.fetch), nil
	default:
		return sift.Selector{Count: defaultCount}, nil
	}
}

func parseNewerThan(arg string) (sift.Selector, error) {
	arg = strings.TrimSpace(strings.ToLower(arg))
	if len(arg) < 2 {
		return sift.Selector{}, fmt.Errorf("invalid -newer-than %q, expected e.g. 7d or 2m", arg)
	}
	n, err := strconv.Atoi(arg[:len(arg)-1])
	if err != nil || n <= 0 {
		return sift.Selector{}, fmt.Errorf("invalid -newer-than %q, expected e.g. 7d or 2m", arg)
	}
	switch arg[len(arg)-1] {
	case 'd':
		return sift.NewerThan(n, rules.UnitDays), nil
	case 'm':
		return sift.NewerThan(n, rules.UnitMonths), nil
	default:
		return sift.Selector{}, fmt.Errorf("invalid -newer-than unit in %q, expected d or m", arg)
	}
}
