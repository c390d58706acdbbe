package api

type StatusCode int

const (
	StatusOK StatusCode = 200

	// ErrStatusBadRequest is returned when the request body could not be
	// parsed. The node is not contacted in that case.
	ErrStatusBadRequest StatusCode = 400
	// ErrStatusTxRejected is returned when the node evaluated the transaction
	// and refused to relay it.
	ErrStatusTxRejected StatusCode = 422
	// ErrStatusNodeUnreachable is returned when the node could not be reached
	// or did not answer with a valid RPC response.
	ErrStatusNodeUnreachable StatusCode = 502
)
