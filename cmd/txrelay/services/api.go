package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/ordishs/go-bitcoin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel/attribute"

	"github.com/btcrelay/txrelay/config"
	apiHandler "github.com/btcrelay/txrelay/internal/api/handler"
	relay_logger "github.com/btcrelay/txrelay/internal/logger"
	"github.com/btcrelay/txrelay/internal/node_client"
	"github.com/btcrelay/txrelay/internal/tracing"
	"github.com/btcrelay/txrelay/pkg/api"
)

const (
	nodeConnectionRetries = 3
	nodeConnectionBackoff = 2 * time.Second
)

func StartAPIServer(logger *slog.Logger, appConfig *config.AppConfig, shutdownCh chan<- string) (func(), error) {
	logger = logger.With(slog.String("service", "api"))
	logger.Info("Starting")

	network, err := config.GetNetwork(appConfig.Network)
	if err != nil {
		return nil, err
	}

	echoServer := setAPIEcho(logger)

	shutdownFns := make([]func(), 0)
	stopFn := func() {
		logger.Info("Shutting down api")
		disposeAPI(logger, echoServer, shutdownFns)
		logger.Info("Shutdown complete")
	}

	apiOpts := make([]apiHandler.Option, 0)

	if appConfig.Prometheus.IsEnabled() {
		handlerStats, err := apiHandler.NewStats()
		if err != nil {
			stopFn()
			return nil, err
		}

		apiOpts = append(apiOpts, apiHandler.WithStats(handlerStats))
		shutdownFns = append(shutdownFns, handlerStats.UnregisterStats)
	}

	var nodeClientOpts []func(client *node_client.RPCClient)

	if appConfig.IsTracingEnabled() {
		cleanup, err := tracing.Enable(logger, "api", appConfig.Tracing.DialAddr, appConfig.Tracing.Sample)
		if err != nil {
			logger.Error("failed to enable tracing", slog.String("err", err.Error()))
		} else {
			shutdownFns = append(shutdownFns, cleanup)
		}

		attributes := appConfig.Tracing.KeyValueAttributes
		hostname, err := os.Hostname()
		if err == nil {
			hostnameAttr := attribute.String("hostname", hostname)
			attributes = append(attributes, hostnameAttr)
		}

		apiOpts = append(apiOpts, apiHandler.WithTracer(attributes...))
		nodeClientOpts = append(nodeClientOpts, node_client.WithTracer(attributes...))
	}

	checkNodeConnection(logger, appConfig.Node, network)

	rpcPort, err := appConfig.Node.GetRPCPort(network)
	if err != nil {
		stopFn()
		return nil, err
	}

	rpcClient, err := node_client.NewRPCClient(appConfig.Node.Host, rpcPort, appConfig.Node.User, appConfig.Node.Password, nodeClientOpts...)
	if err != nil {
		stopFn()
		return nil, errors.Errorf("failed to create node client: %v", err)
	}

	defaultAPIHandler, err := apiHandler.NewDefault(logger, rpcClient, apiOpts...)
	if err != nil {
		stopFn()
		return nil, err
	}

	api.RegisterHandlers(echoServer, defaultAPIHandler)

	// Serve HTTP until the world ends.
	go func() {
		logger.Info("Starting API server", slog.String("address", appConfig.API.Address), slog.String("network", network.Name))
		err := echoServer.Start(appConfig.API.Address)
		if err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				logger.Info("API http server closed")
				return
			}

			logger.Error("Failed to start API server", slog.String("err", err.Error()))
			shutdownCh <- "api server failed"
			return
		}
	}()

	return stopFn, nil
}

func setAPIEcho(logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// a panicking broadcast must not take the server down
	e.Use(echomiddleware.Recover())

	// all request origins are allowed
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
	}))

	// every request gets an event ID; the logger picks it up from the context
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			//nolint:staticcheck // use string key on purpose
			reqCtx := context.WithValue(req.Context(), relay_logger.EventIDField, uuid.New().String()) //lint:ignore SA1029 use string key on purpose
			c.SetRequest(req.WithContext(reqCtx))

			return next(c)
		}
	})

	e.Use(otelecho.Middleware("api-server"))

	e.Use(echomiddleware.RequestLoggerWithConfig(requestLogConfig(logger)))

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem: "api",
		HistogramOptsFunc: func(opts prometheus.HistogramOpts) prometheus.HistogramOpts {
			if opts.Name == "request_duration_seconds" {
				opts.Buckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15, 30, 60}
			}
			return opts
		},
	}))

	return e
}

func disposeAPI(logger *slog.Logger, echoServer *echo.Echo, shutdownFns []func()) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := echoServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to close API echo server", slog.String("err", err.Error()))
	}

	for _, fn := range shutdownFns {
		fn()
	}
}

func requestLogConfig(logger *slog.Logger) echomiddleware.RequestLoggerConfig {
	return echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		HandleError: true, // forwards error to the global error handler, so it can decide appropriate status code
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ctx := c.Request().Context()

			if v.Error == nil {
				logger.InfoContext(ctx, "REQUEST",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
				)
			} else {
				logger.ErrorContext(ctx, "REQUEST_ERROR",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String("err", v.Error.Error()),
				)
			}
			return nil
		},
	}
}

// checkNodeConnection probes the node once at startup so that a misconfigured
// or unreachable node shows up in the logs right away. The API starts either
// way, broadcasts are simply attempted against the node as they come in.
func checkNodeConnection(logger *slog.Logger, nodeCfg *config.NodeConfig, network *chaincfg.Params) {
	rpcURL, err := nodeCfg.GetRPCUrl(network)
	if err != nil {
		logger.Warn("Failed to build node rpc URL", slog.String("err", err.Error()))
		return
	}

	node, err := bitcoin.NewFromURL(rpcURL, false)
	if err != nil {
		logger.Warn("Failed to create node connection", slog.String("err", err.Error()))
		return
	}

	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(nodeConnectionBackoff), nodeConnectionRetries)

	operation := func() (string, error) {
		return node.GetBestBlockHash()
	}

	notify := func(err error, nextTry time.Duration) {
		logger.Warn("Bitcoin node not reachable", slog.String("next try", nextTry.String()), slog.String("err", err.Error()))
	}

	bestBlockHash, err := backoff.RetryNotifyWithData(operation, policy, notify)
	if err != nil {
		logger.Warn("Bitcoin node not reachable, broadcasts will fail until it is up", slog.String("host", nodeCfg.Host), slog.String("err", err.Error()))
		return
	}

	logger.Info("Connected to bitcoin node", slog.String("network", network.Name), slog.String("bestBlock", bestBlockHash))
}
