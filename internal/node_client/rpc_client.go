package node_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/ccoveille/go-safecast"
	"go.opentelemetry.io/otel/attribute"

	"github.com/btcrelay/txrelay/internal/tracing"
)

var (
	ErrNodeRequestFailed     = errors.New("request to bitcoin node failed")
	ErrNodeResponseMalformed = errors.New("malformed response from bitcoin node")
)

type RPCRequest struct {
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      int64       `json:"id"`
	JSONRpc string      `json:"jsonrpc"`
}

type RPCResponse struct {
	ID     int64           `json:"id"`
	Result json.RawMessage `json:"result"`
	Err    *RPCError       `json:"error"`
}

// RPCError is the error object of a JSON-RPC response. It is only returned
// when the node itself evaluated the call and refused it; transport failures
// surface as ordinary wrapped errors. Message carries the node's reason
// verbatim.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return e.Message
}

func sendJSONRPCCall[T any](ctx context.Context, c *RPCClient, method string, params []interface{}) (*T, error) {
	rpcRequest := RPCRequest{method, params, time.Now().UnixNano(), "1.0"}
	payloadBuffer := &bytes.Buffer{}
	jsonEncoder := json.NewEncoder(payloadBuffer)

	err := jsonEncoder.Encode(rpcRequest)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx,
		"POST",
		fmt.Sprintf("%s://%s:%d", "http", c.host, c.port),
		payloadBuffer,
	)
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(c.user, c.password)
	req.Header.Add("Content-Type", "application/json;charset=utf-8")
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrNodeRequestFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrNodeRequestFailed, err)
	}

	var rpcResponse RPCResponse

	// The node answers failed calls with a non-200 status and the error object
	// in the body. A non-200 status without a parseable error object, e.g. a
	// 401 from wrong credentials, is a transport failure.
	if resp.StatusCode != http.StatusOK {
		err = json.Unmarshal(data, &rpcResponse)
		if err == nil && rpcResponse.Err != nil {
			return nil, rpcResponse.Err
		}

		return nil, errors.Join(ErrNodeRequestFailed, fmt.Errorf("HTTP status: %s", resp.Status))
	}

	err = json.Unmarshal(data, &rpcResponse)
	if err != nil {
		return nil, errors.Join(ErrNodeResponseMalformed, err)
	}

	if rpcResponse.Err != nil {
		return nil, rpcResponse.Err
	}

	var responseResult T

	err = json.Unmarshal(rpcResponse.Result, &responseResult)
	if err != nil {
		return nil, errors.Join(ErrNodeResponseMalformed, err)
	}

	return &responseResult, nil
}

type RPCClient struct {
	httpClient *http.Client

	host     string
	port     int
	user     string
	password string

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithHTTPClient(client *http.Client) func(*RPCClient) {
	return func(c *RPCClient) {
		c.httpClient = client
	}
}

func WithTracer(attr ...attribute.KeyValue) func(*RPCClient) {
	return func(c *RPCClient) {
		c.tracingEnabled = true
		if len(attr) > 0 {
			c.tracingAttributes = append(c.tracingAttributes, attr...)
		}
		_, file, _, ok := runtime.Caller(1)
		if ok {
			c.tracingAttributes = append(c.tracingAttributes, attribute.String("file", file))
		}
	}
}

func NewRPCClient(host string, port int, user, password string, opts ...func(*RPCClient)) (*RPCClient, error) {
	c := &RPCClient{
		httpClient: &http.Client{},
		host:       host,
		port:       port,
		user:       user,
		password:   password,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SendRawTransaction submits a hex encoded transaction to the node. The
// returned txid is the node's answer, passed through verbatim.
func (c *RPCClient) SendRawTransaction(ctx context.Context, txHex string) (txID string, err error) {
	ctx, span := tracing.StartTracing(ctx, "SendRawTransaction", c.tracingEnabled, c.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	res, err := sendJSONRPCCall[string](ctx, c, "sendrawtransaction", []interface{}{txHex})
	if err != nil {
		return "", err
	}

	return *res, nil
}

// GetBlockCount returns the height of the longest chain the node knows about.
func (c *RPCClient) GetBlockCount(ctx context.Context) (height uint64, err error) {
	ctx, span := tracing.StartTracing(ctx, "GetBlockCount", c.tracingEnabled, c.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	res, err := sendJSONRPCCall[int64](ctx, c, "getblockcount", []interface{}{})
	if err != nil {
		return 0, err
	}

	return safecast.ToUint64(*res)
}
