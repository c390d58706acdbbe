package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/wire"
)

var ErrConfigInvalidNetwork = errors.New("unknown bitcoin network")

// Canonical JSON-RPC ports of the bitcoind network variants.
const (
	MainNetRPCPort = 8332
	TestNetRPCPort = 18332
	RegTestRPCPort = 18443
	SigNetRPCPort  = 38332
)

// GetNetwork resolves a network identifier to its chain parameters. The
// identifier "bitcoin" is accepted as an alias of "mainnet".
func GetNetwork(networkStr string) (*chaincfg.Params, error) {
	switch networkStr {
	case "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	}

	return nil, errors.Join(ErrConfigInvalidNetwork, fmt.Errorf("network: %s", networkStr))
}

// GetRPCPort returns the canonical JSON-RPC port of the given network.
func GetRPCPort(network *chaincfg.Params) (int, error) {
	switch network.Net {
	case wire.MainNet:
		return MainNetRPCPort, nil
	case wire.TestNet3:
		return TestNetRPCPort, nil
	case wire.TestNet: // regtest
		return RegTestRPCPort, nil
	case wire.SigNet:
		return SigNetRPCPort, nil
	}

	return 0, errors.Join(ErrConfigInvalidNetwork, fmt.Errorf("net: %s", network.Net))
}

// GetRPCPort returns the node port to connect to: the configured port if set,
// the canonical port of the network otherwise.
func (n *NodeConfig) GetRPCPort(network *chaincfg.Params) (int, error) {
	if n.Port != 0 {
		return n.Port, nil
	}

	return GetRPCPort(network)
}

func (n *NodeConfig) GetRPCUrl(network *chaincfg.Params) (*url.URL, error) {
	port, err := n.GetRPCPort(network)
	if err != nil {
		return nil, err
	}

	rpcURLString := fmt.Sprintf("rpc://%s:%s@%s:%d", n.User, n.Password, n.Host, port)

	return url.Parse(rpcURLString)
}
