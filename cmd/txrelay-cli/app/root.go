package app

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/btcrelay/txrelay/cmd/txrelay-cli/app/networks"
	"github.com/btcrelay/txrelay/cmd/txrelay-cli/app/send"
)

var RootCmd = &cobra.Command{
	Use:   "txrelay-cli",
	Short: "cli tool to broadcast transactions through txrelay",
}

func init() {
	var err error

	RootCmd.PersistentFlags().String("api", "http://127.0.0.1:5558", "Address of the txrelay API")
	err = viper.BindPFlag("api", RootCmd.PersistentFlags().Lookup("api"))
	if err != nil {
		log.Fatal(err)
	}

	RootCmd.AddCommand(send.Cmd)
	RootCmd.AddCommand(networks.Cmd)
}

func Execute() error {
	return RootCmd.Execute()
}
