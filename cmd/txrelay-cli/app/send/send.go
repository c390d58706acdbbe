package send

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/btcrelay/txrelay/pkg/api"
)

var Cmd = &cobra.Command{
	Use:   "send [raw tx hex]",
	Short: "Broadcast a raw transaction through the txrelay API",
	RunE: func(_ *cobra.Command, args []string) error {
		apiURL := viper.GetString("api")
		txFile := viper.GetString("txFile")

		rawTx, err := readRawTx(args, txFile)
		if err != nil {
			return err
		}

		body, err := json.Marshal(api.BroadcastRequest{RawTx: &rawTx})
		if err != nil {
			return fmt.Errorf("failed to marshal request: %v", err)
		}

		httpClient := &http.Client{Timeout: 30 * time.Second}

		resp, err := httpClient.Post(apiURL+"/broadcast", "application/json", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to call txrelay api: %v", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %v", err)
		}

		if resp.StatusCode != http.StatusOK {
			var errResponse api.ErrorResponse
			if err := json.Unmarshal(respBody, &errResponse); err == nil && errResponse.Error != "" {
				return fmt.Errorf("broadcast failed (HTTP %d): %s", resp.StatusCode, errResponse.Error)
			}

			return fmt.Errorf("broadcast failed (HTTP %d): %s", resp.StatusCode, string(respBody))
		}

		var response api.BroadcastResponse
		err = json.Unmarshal(respBody, &response)
		if err != nil {
			return fmt.Errorf("failed to decode response: %v", err)
		}

		t := table.NewWriter()
		t.AppendRow(table.Row{"Status", response.Status})
		t.AppendRow(table.Row{"TxID", response.Txid})
		if response.CurrentBlock != nil {
			t.AppendRow(table.Row{"Current block", *response.CurrentBlock})
		}

		fmt.Println(t.Render())

		return nil
	},
}

func init() {
	var err error

	Cmd.Flags().String("file", "", "read the raw transaction hex from a file instead of the command line")
	err = viper.BindPFlag("txFile", Cmd.Flags().Lookup("file"))
	if err != nil {
		log.Fatal(err)
	}
}

func readRawTx(args []string, txFile string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	if txFile != "" {
		content, err := os.ReadFile(txFile)
		if err != nil {
			return "", fmt.Errorf("failed to read tx file: %v", err)
		}

		return strings.TrimSpace(string(content)), nil
	}

	fmt.Print("Enter raw tx hex: ")
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %v", err)
	}

	return strings.TrimSpace(input), nil
}
