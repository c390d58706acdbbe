package main

import (
	"log"
	"os"

	"github.com/btcrelay/txrelay/cmd/txrelay-cli/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		log.Fatalf("failed to run txrelay-cli: %v", err)
	}

	os.Exit(0)
}
