package networks

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/btcrelay/txrelay/config"
)

var Cmd = &cobra.Command{
	Use:   "networks",
	Short: "List the supported bitcoin networks and their canonical RPC ports",
	RunE: func(_ *cobra.Command, _ []string) error {
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Network", "RPC port"})

		for _, name := range []string{"mainnet", "testnet", "regtest", "signet"} {
			network, err := config.GetNetwork(name)
			if err != nil {
				return err
			}

			port, err := config.GetRPCPort(network)
			if err != nil {
				return err
			}

			t.AppendRow(table.Row{name, port})
		}

		fmt.Println(t.Render())

		return nil
	},
}
