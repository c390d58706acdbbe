package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/btcrelay/txrelay/pkg/api"
)

var (
	ErrEmptyBody    = errors.New("no transaction found - empty request body")
	ErrBodyNotJSON  = errors.New("request body is not valid JSON")
	ErrRawTxMissing = errors.New("no raw_tx found in the request body")
	ErrRawTxEmpty   = errors.New("raw_tx must not be empty")
)

// parseBroadcastRequest pulls the transaction hex out of the request body.
// The hex itself is not validated here, the node decides what it accepts.
func parseBroadcastRequest(request *http.Request) (string, error) {
	body, err := io.ReadAll(request.Body)
	if err != nil {
		return "", err
	}

	if len(body) == 0 {
		return "", ErrEmptyBody
	}

	var broadcastBody api.BroadcastRequest
	err = json.Unmarshal(body, &broadcastBody)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBodyNotJSON, err)
	}

	if broadcastBody.RawTx == nil {
		return "", ErrRawTxMissing
	}

	if *broadcastBody.RawTx == "" {
		return "", ErrRawTxEmpty
	}

	return *broadcastBody.RawTx, nil
}
