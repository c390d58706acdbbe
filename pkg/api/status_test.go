package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewErrorResponse(t *testing.T) {
	tt := []struct {
		name      string
		extraInfo string
	}{
		{
			name:      "node rejection message",
			extraInfo: "bad-txns-inputs-missingorspent",
		},
		{
			name:      "generic transport message",
			extraInfo: "cannot reach bitcoin node",
		},
		{
			name:      "empty message",
			extraInfo: "",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			errResponse := NewErrorResponse(tc.extraInfo)

			require.Equal(t, StatusError, errResponse.Status)
			require.Equal(t, tc.extraInfo, errResponse.Error)
		})
	}
}
