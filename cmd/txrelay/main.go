package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	cmd "github.com/btcrelay/txrelay/cmd/txrelay/services"
	"github.com/btcrelay/txrelay/config"
	relay_logger "github.com/btcrelay/txrelay/internal/logger"
	"github.com/btcrelay/txrelay/internal/version"
)

func main() {
	err := run()
	if err != nil {
		log.Fatalf("failed to run txrelay: %v", err)
	}

	os.Exit(0)
}

func run() error {
	configDir, dumpConfigFile := parseFlags()

	appConfig, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	if dumpConfigFile != "" {
		return config.DumpConfig(dumpConfigFile)
	}

	logger, err := relay_logger.NewLogger(appConfig.LogLevel, appConfig.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("failed to get host name: %v", err)
	}

	logger = logger.With(slog.String("host", hostname))

	logger.Info("Starting txrelay", slog.String("version", version.Version), slog.String("commit", version.Commit))

	shutdownFns := make([]func(), 0)

	shutdownCh := make(chan string, 1)

	if appConfig.ProfilerAddr != "" {
		logger.Info(fmt.Sprintf("Profiler available on http://%s/debug/pprof", appConfig.ProfilerAddr))

		go func() {
			profErr := http.ListenAndServe(appConfig.ProfilerAddr, nil)
			if profErr != nil {
				logger.Error("failed to start profiler server", slog.String("err", profErr.Error()))
			}
		}()
	}

	if appConfig.Prometheus.IsEnabled() {
		logger.Info("Serving prometheus metrics", slog.String("endpoint", appConfig.Prometheus.Endpoint))
		http.Handle(appConfig.Prometheus.Endpoint, promhttp.Handler())

		go func() {
			promErr := http.ListenAndServe(appConfig.Prometheus.Addr, nil)
			if promErr != nil {
				logger.Error("failed to start prometheus server", slog.String("err", promErr.Error()))
			}
		}()
	}

	logger.Info("Starting API")
	shutdown, err := cmd.StartAPIServer(logger, appConfig, shutdownCh)
	if err != nil {
		return fmt.Errorf("failed to start api: %v", err)
	}
	shutdownFns = append(shutdownFns, shutdown)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)

	select {
	case reason := <-shutdownCh:
		logger.Info("Received shutdown signal", slog.String("reason", reason))
	case sig := <-signalChan:
		logger.Info("Received shutdown signal", slog.String("reason", sig.String()))
	}
	appCleanup(logger, shutdownFns)

	return nil
}

func appCleanup(logger *slog.Logger, shutdownFns []func()) {
	logger.Info("cleaning up")
	for _, fn := range shutdownFns {
		fn()
	}
}

func parseFlags() (string, string) {
	help := flag.Bool("help", false, "Show help")
	dumpConfigFile := flag.String("dump_config", "", "dump config to specified file and exit")
	configDir := flag.String("config", "", "path to configuration file")

	flag.Parse()

	if *help {
		fmt.Println("usage: txrelay [options]")
		fmt.Println()
		fmt.Println("    -config=/dir")
		fmt.Println("          directory to look for a config file in (default='')")
		fmt.Println()
		fmt.Println("    -dump_config=/file.yaml")
		fmt.Println("          write the effective config to the given file and exit")
		fmt.Println()
		os.Exit(0)
	}

	return *configDir, *dumpConfigFile
}
