package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/communityportal/notifier/pkg/chat"
	"github.com/communityportal/notifier/pkg/config"
	"github.com/communityportal/notifier/pkg/mailer"
	"github.com/communityportal/notifier/pkg/notify"
	"github.com/communityportal/notifier/pkg/repository"
	"github.com/communityportal/notifier/pkg/scheduler"
	"github.com/communityportal/notifier/pkg/service"
	"github.com/communityportal/notifier/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	RunOnce bool   `long:"run-once" description:"run a single periodic dispatch and exit"`
	Force   bool   `long:"force" description:"ignore the digest frequency in run-once mode"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	SetupLog(opts.Debug)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	lgr.Printf("[INFO] shutdown complete")
}

// run wires the application and blocks until ctx is canceled, or until the single dispatch
// finishes in run-once mode
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	SetupLog(opts.Debug, cfg.SMTP.Password, cfg.Chat.APIKey, cfg.Server.AdminPassword)
	lgr.Printf("[INFO] starting portal notifier version %s", revision)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	loc, err := cfg.Portal.Location()
	if err != nil {
		return fmt.Errorf("failed to resolve portal timezone: %w", err)
	}
	composer, err := notify.NewComposer(notify.ComposerConfig{
		PortalName: cfg.Portal.Name,
		BaseURL:    cfg.Portal.BaseURL,
		Location:   loc,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize composer: %w", err)
	}

	// mail transport is optional, runs report it as not configured
	var mailTransport notify.Mailer
	if cfg.SMTP.Enabled() {
		smtp := mailer.New(mailer.Params{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			To:       cfg.SMTP.To,
			TLS:      cfg.SMTP.TLS,
			Timeout:  cfg.SMTP.Timeout,
		})
		lgr.Printf("[INFO] mail transport %s", smtp)
		mailTransport = smtp
	} else {
		lgr.Printf("[WARN] smtp.host is not set, notifications will not be sent")
	}

	store := service.NewNotifyService(repos)
	dispatcher := notify.NewDispatcher(notify.DispatcherParams{
		Store:    store,
		Mailer:   mailTransport,
		Composer: composer,
		Location: loc,
	})
	trigger := scheduler.NewScheduler(scheduler.Params{
		Dispatcher: dispatcher,
		Interval:   cfg.Schedule.Interval,
		RunOnStart: cfg.Schedule.RunOnStart,
	})

	if opts.RunOnce {
		res, err := trigger.RunNow(ctx, opts.Force)
		if err != nil {
			return fmt.Errorf("dispatch failed: %w", err)
		}
		lgr.Printf("[INFO] dispatch %s: %s", res.RunID, res.Status())
		return nil
	}

	var chatProxy server.ChatProxy
	if cfg.Chat.Enabled() {
		chatProxy = chat.NewProxy(cfg.Chat)
		lgr.Printf("[INFO] chat proxy enabled, model %s", cfg.Chat.Model)
	}

	srv := server.New(server.Params{
		Dispatcher:      trigger,
		InstantNotifier: notify.NewInstantNotifier(store, mailTransport, composer),
		Chat:            chatProxy,
		Settings:        store,
		Listen:          cfg.Server.Listen,
		Timeout:         cfg.Server.Timeout,
		AdminPassword:   cfg.Server.AdminPassword,
		Version:         revision,
		Debug:           opts.Debug,
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		trigger.Start(ctx)
		<-ctx.Done()
		trigger.Stop()
		return nil
	})
	g.Go(func() error {
		return srv.Run(ctx)
	})
	return g.Wait()
}

// SetupLog configures the global and standard loggers, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	nonEmpty := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) > 0 {
		logOpts = append(logOpts, lgr.Secret(nonEmpty...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
