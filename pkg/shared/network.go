package shared

import (
	"fmt"
	"strings"
)

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

const (
	ChainIDMainnet = "phoenix-1"
	ChainIDTestnet = "pisco-1"

	DefaultLCDMainnet = "https://phoenix-lcd.terra.dev"
	DefaultLCDTestnet = "https://pisco-lcd.terra.dev"
)

// NormalizeNetwork lowercases and validates a network name. An empty value
// defaults to testnet.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkTestnet, nil
	}

	switch normalized {
	case NetworkMainnet, NetworkTestnet:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// ChainID returns the chain ID for a normalized network name.
func ChainID(network string) string {
	if network == NetworkMainnet {
		return ChainIDMainnet
	}
	return ChainIDTestnet
}

// DefaultLCDBaseURL returns the default LCD endpoint for a normalized
// network name.
func DefaultLCDBaseURL(network string) string {
	if network == NetworkMainnet {
		return DefaultLCDMainnet
	}
	return DefaultLCDTestnet
}
