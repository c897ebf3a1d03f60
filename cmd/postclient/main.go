package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/2beens/postclient/internal/config"
	"github.com/2beens/postclient/internal/dialog"
	"github.com/2beens/postclient/internal/logging"
	"github.com/2beens/postclient/internal/post"
	"github.com/2beens/postclient/internal/telemetry/metrics"
	"github.com/2beens/postclient/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	assumeYes := flag.Bool("yes", false, "confirm deletes without asking")
	lang := flag.String(
		"lang",
		"",
		fmt.Sprintf("dialog language [%s], overrides the config", strings.Join(dialog.SupportedLangs(), " | ")),
	)
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "load config: %s\n", err)
			return 1
		}
		cfg = config.Default()
	}
	if *lang != "" {
		if err := checkLang(*lang); err != nil {
			fmt.Fprintln(os.Stderr, err)
			flag.Usage()
			return 2
		}
		cfg.Lang = *lang
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled && cfg.SentryDSN != "",
		SentryDSN:        cfg.SentryDSN,
		SentryServerName: "postclient",
	})

	log.Debugf("using posts api: %s", cfg.APIBaseURL)

	otelShutdown, err := tracing.Setup(cfg.TracingEnabled, os.Stderr)
	if err != nil {
		log.Errorf("tracing setup: %s", err)
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("postclient", "cli", promRegistry)

	texts := dialog.TextsFor(cfg.Lang)
	var presenter dialog.Presenter
	if *assumeYes {
		presenter = dialog.NewScriptedPresenter(true)
	} else {
		presenter = dialog.NewTerminalPresenter(os.Stdin, os.Stderr, texts)
	}

	client := post.NewClient(
		post.NewConfig(cfg.APIBaseURL),
		tracing.NewHTTPClient(cfg.RequestTimeout.Duration),
		presenter,
		texts,
		metricsManager,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	exitCode := 0
	if err := run(ctx, client, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			flag.Usage()
			exitCode = 2
		} else {
			exitCode = 1
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()
	if err := otelShutdown(shutdownCtx); err != nil {
		log.Errorf("tracing shutdown: %s", err)
	}

	if cfg.MetricsTextfilePath != "" {
		if err := metrics.WriteTextfile(promRegistry, cfg.MetricsTextfilePath); err != nil {
			log.Errorf("%s", err)
		}
	}

	return exitCode
}
