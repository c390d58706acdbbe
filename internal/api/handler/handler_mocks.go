package handler

// from default.go
//go:generate moq -pkg mocks -out ./mocks/bitcoin_client_mock.go . BitcoinClient
