package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/btcrelay/txrelay/internal/node_client"
	"github.com/btcrelay/txrelay/internal/tracing"
	"github.com/btcrelay/txrelay/internal/version"
	"github.com/btcrelay/txrelay/pkg/api"
)

// nodeUnreachableInfo is the only detail callers get about a transport
// failure. Addresses and credentials stay in the log.
const nodeUnreachableInfo = "cannot reach bitcoin node"

// BitcoinClient covers the node RPC calls the handlers rely on.
type BitcoinClient interface {
	SendRawTransaction(ctx context.Context, txHex string) (string, error)
	GetBlockCount(ctx context.Context) (uint64, error)
}

type DefaultHandler struct {
	NodeClient BitcoinClient

	logger            *slog.Logger
	stats             *Stats
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithStats(stats *Stats) func(*DefaultHandler) {
	return func(h *DefaultHandler) {
		h.stats = stats
	}
}

func WithTracer(attr ...attribute.KeyValue) func(*DefaultHandler) {
	return func(h *DefaultHandler) {
		h.tracingEnabled = true
		if len(attr) > 0 {
			h.tracingAttributes = append(h.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			h.tracingAttributes = append(h.tracingAttributes, attribute.String("file", file))
		}
	}
}

type Option func(h *DefaultHandler)

func NewDefault(logger *slog.Logger, nodeClient BitcoinClient, opts ...Option) (*DefaultHandler, error) {
	handler := &DefaultHandler{
		NodeClient: nodeClient,
		logger:     logger,
	}

	// apply options
	for _, opt := range opts {
		opt(handler)
	}

	return handler, nil
}

// POSTBroadcast relays the transaction from the request body to the node.
// The transaction hex is handed over as received, the node is the authority
// on whether it is valid.
func (m DefaultHandler) POSTBroadcast(ctx echo.Context) (err error) {
	reqCtx := ctx.Request().Context()

	reqCtx, span := tracing.StartTracing(reqCtx, "POSTBroadcast", m.tracingEnabled, m.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	m.stats.AddSubmitted(1)

	rawTx, err := parseBroadcastRequest(ctx.Request())
	if err != nil {
		e := api.NewErrorResponse(err.Error())
		return ctx.JSON(int(api.ErrStatusBadRequest), e)
	}

	txID, err := m.NodeClient.SendRawTransaction(reqCtx, rawTx)
	if err != nil {
		status, e := m.handleSubmitError(reqCtx, err)
		if span != nil {
			span.SetAttributes(attribute.String("error", e.Error))
		}

		return ctx.JSON(int(status), e)
	}

	m.stats.AddRelayed(1)

	response := &api.BroadcastResponse{
		Status: api.StatusSuccess,
		Txid:   txID,
	}

	currentBlock, heightErr := m.NodeClient.GetBlockCount(reqCtx)
	if heightErr != nil {
		// best effort: a relayed transaction stays a success without a height
		m.logger.WarnContext(reqCtx, "Failed to get current block height", slog.String("txid", txID), slog.String("err", heightErr.Error()))
	} else {
		response.CurrentBlock = PtrTo(currentBlock)
	}

	if span != nil {
		span.SetAttributes(attribute.String("txid", txID))
	}

	return ctx.JSON(int(api.StatusOK), response)
}

func (m DefaultHandler) GETHealth(ctx echo.Context) (err error) {
	reqCtx := ctx.Request().Context()
	reqCtx, span := tracing.StartTracing(reqCtx, "GETHealth", m.tracingEnabled, m.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	_, err = m.NodeClient.GetBlockCount(reqCtx)
	if err != nil {
		reason := err.Error()
		return ctx.JSON(http.StatusOK, api.HealthResponse{
			Healthy: PtrTo(false),
			Version: &version.Version,
			Reason:  &reason,
		})
	}

	return ctx.JSON(http.StatusOK, api.HealthResponse{
		Healthy: PtrTo(true),
		Version: &version.Version,
		Reason:  nil,
	})
}

func (m DefaultHandler) handleSubmitError(reqCtx context.Context, submitErr error) (api.StatusCode, *api.ErrorResponse) {
	var rpcErr *node_client.RPCError
	if errors.As(submitErr, &rpcErr) {
		// the node evaluated the transaction and refused to relay it
		m.stats.AddRejected(1)
		m.logger.InfoContext(reqCtx, "Transaction rejected by node", slog.Int("code", rpcErr.Code), slog.String("reason", rpcErr.Message))

		return api.ErrStatusTxRejected, api.NewErrorResponse(rpcErr.Message)
	}

	m.stats.AddNodeFailure(1)
	m.logger.ErrorContext(reqCtx, "Failed to submit transaction to node", slog.String("err", submitErr.Error()))

	return api.ErrStatusNodeUnreachable, api.NewErrorResponse(nodeUnreachableInfo)
}

func PtrTo[T any](v T) *T {
	return &v
}
