package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/nwebcraft/reghawk/pkg/config"
	"github.com/nwebcraft/reghawk/pkg/content"
	"github.com/nwebcraft/reghawk/pkg/feed"
	"github.com/nwebcraft/reghawk/pkg/llm"
	"github.com/nwebcraft/reghawk/pkg/notify"
	"github.com/nwebcraft/reghawk/pkg/pipeline"
	"github.com/nwebcraft/reghawk/pkg/repository"
	"github.com/nwebcraft/reghawk/pkg/scheduler"
)

// Opts with all CLI options
type Opts struct {
	Config   string `short:"c" long:"config" env:"REGHAWK_CONFIG" default:"config.yml" description:"config file path"`
	Interval bool   `short:"i" long:"interval" description:"keep running, triggering the pipeline on the configured interval"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	setupLog(opts.Debug, cfg.LLM.APIKey, cfg.Notify.ChannelToken)

	log.Printf("[INFO] starting reghawk version %s", revision)

	pipe := pipeline.New(pipeline.Config{
		OpenStore: storeOpener(repository.Config{
			DSN:             cfg.Database.DSN,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		}),
		Fetcher:    feed.NewFetcher(cfg.Feed.Timeout, cfg.Feed.UserAgent),
		Extractor:  content.NewExtractor(cfg.Extraction),
		Judge:      llm.NewClassifier(cfg.LLM),
		Analyzer:   llm.NewAnalyzer(cfg.LLM),
		Broadcast:  notify.NewLineClient(cfg.Notify),
		MaxWorkers: cfg.Schedule.MaxWorkers,
		Pacing:     cfg.Notify.Pacing,
	})

	if opts.Interval {
		scheduler.New(pipe, cfg.Schedule.Interval).Start(ctx)
		log.Print("[INFO] shutdown complete")
		return nil
	}

	summary, err := pipe.Run(ctx)
	if err != nil {
		return fmt.Errorf("pipeline run failed: %w", err)
	}
	log.Printf("[INFO] run complete: new=%d relevant=%d notified=%d",
		summary.NewCount, summary.RelevantCount, summary.NotifiedCount)
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stdout), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
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
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
