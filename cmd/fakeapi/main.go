package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/2beens/postclient/internal/config"
	"github.com/2beens/postclient/internal/fakeapi"
	"github.com/2beens/postclient/internal/logging"
	"github.com/2beens/postclient/internal/telemetry/metrics"
	"github.com/2beens/postclient/internal/telemetry/tracing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting fake posts api ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	seed := flag.Int("seed", 100, "number of posts to start with")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Warnf("load config: %s; using defaults", err)
		cfg = config.Default()
	}

	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    cfg.LogLevel,
		LogToStdout: true,
		Environment: cfg.Environment,
		Stdout:      os.Stdout,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	otelShutdown, err := tracing.Setup(cfg.TracingEnabled, os.Stderr)
	if err != nil {
		log.Errorf("tracing setup: %s", err)
	}

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("fakeapi", "server", promRegistry)

	server := fakeapi.NewServer(fakeapi.NewSeededStore(*seed), metricsManager)
	server.Serve(ctx, cfg.FakeAPIHost, cfg.FakeAPIPort)

	var metricsServer *http.Server
	if cfg.FakeAPIMetricsPort != 0 {
		metricsRouter := mux.NewRouter()
		metricsRouter.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
		metricsServer = &http.Server{
			Addr:              net.JoinHostPort(cfg.FakeAPIHost, strconv.Itoa(cfg.FakeAPIMetricsPort)),
			Handler:           metricsRouter,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Debugf(" > metrics listening on: [%s]", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("metrics server: %s", err)
			}
		}()
	}

	<-ctx.Done()
	log.Warnln("signal received, shutting down ...")

	if err := server.GracefulShutdown(); err != nil {
		log.Errorf("%s", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.Errorf("shutdown metrics server: %s", err)
		}
	}
	if err := otelShutdown(shutdownCtx); err != nil {
		log.Errorf("tracing shutdown: %s", err)
	}
}
