package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawTxHex = "0100000001358eb38f1f910e76b33788ff9395a5d2af87721e950ebd3d60cf64bb43e77485010000006a47304402203be8a3ba74e7b770afa2addeff1bbc1eaeb0cedf6b4096c8eb7ec29f1278752602205dc1d1bedf2cab46096bb328463980679d4ce2126cdd6ed191d6224add9910884121021358f252895263cd7a85009fcc615b57393daf6f976662319f7d0c640e6189fcffffffff02bf010000000000001976a91449f066fccf8d392ff6a0a33bc766c9f3436c038a88acfc080000000000001976a914a7dcbd14f83c564e0025a57f79b0b8b591331ae288ac00000000"

func TestParseBroadcastRequest(t *testing.T) {
	testCases := []struct {
		name string
		body string

		expectedTxHex string
		expectedError error
	}{
		{
			name: "valid raw transaction",
			body: fmt.Sprintf(`{"raw_tx":%q}`, rawTxHex),

			expectedTxHex: rawTxHex,
		},
		{
			name: "unknown fields are ignored",
			body: fmt.Sprintf(`{"raw_tx":%q,"network":"regtest"}`, rawTxHex),

			expectedTxHex: rawTxHex,
		},
		{
			name: "hex is not validated here",
			body: `{"raw_tx":"not-even-hex"}`,

			expectedTxHex: "not-even-hex",
		},
		{
			name: "empty body",
			body: "",

			expectedError: ErrEmptyBody,
		},
		{
			name: "body not json",
			body: "raw tx as plain text",

			expectedError: ErrBodyNotJSON,
		},
		{
			name: "truncated json",
			body: `{"raw_tx":"0100`,

			expectedError: ErrBodyNotJSON,
		},
		{
			name: "raw_tx missing",
			body: `{"rawTx":"0100"}`,

			expectedError: ErrRawTxMissing,
		},
		{
			name: "raw_tx null",
			body: `{"raw_tx":null}`,

			expectedError: ErrRawTxMissing,
		},
		{
			name: "raw_tx wrong type",
			body: `{"raw_tx":42}`,

			expectedError: ErrBodyNotJSON,
		},
		{
			name: "raw_tx empty string",
			body: `{"raw_tx":""}`,

			expectedError: ErrRawTxEmpty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			req, err := http.NewRequest("POST", "/broadcast", bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			// when
			txHex, actualErr := parseBroadcastRequest(req)

			// then
			if tc.expectedError != nil {
				require.ErrorIs(t, actualErr, tc.expectedError)
				assert.Empty(t, txHex)
				return
			}

			require.NoError(t, actualErr)
			assert.Equal(t, tc.expectedTxHex, txHex)
		})
	}
}
