// Package api defines the request and response types of the transaction
// relay HTTP interface.
package api

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// BroadcastRequest is the body of a POST /broadcast request. RawTx is a
// pointer so an absent or mistyped field can be told apart from an empty one.
type BroadcastRequest struct {
	RawTx *string `json:"raw_tx"`
}

// BroadcastResponse is returned after a transaction was accepted by the node.
// CurrentBlock is left out when the height lookup failed.
type BroadcastResponse struct {
	Status       string  `json:"status"`
	Txid         string  `json:"txid"`
	CurrentBlock *uint64 `json:"current_block,omitempty"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func NewErrorResponse(extraInfo string) *ErrorResponse {
	return &ErrorResponse{
		Status: StatusError,
		Error:  extraInfo,
	}
}

type HealthResponse struct {
	Healthy *bool   `json:"healthy,omitempty"`
	Version *string `json:"version,omitempty"`
	Reason  *string `json:"reason,omitempty"`
}
