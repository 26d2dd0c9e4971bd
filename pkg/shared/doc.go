// Package shared provides helpers used across the Alliance SDK packages:
// network normalization and chain defaults, bech32 address validation,
// denomination validation, and node configuration loading from the
// environment.
//
// # Example
//
//	network, err := shared.NormalizeNetwork("mainnet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(shared.ChainID(network))
package shared
