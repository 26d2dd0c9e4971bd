// The Alliance SDK for Go provides typed bindings for the Alliance staking
// module: message and query construction for CosmWasm contracts running on
// Alliance-enabled chains, an LCD query client, and an in-memory asset
// indexer.
//
// # Packages
//
// The SDK is organized into the following packages:
//
//   - pkg/alliance: message/query envelopes, response types, builders,
//     validation, the Querier interface, and the asset indexer
//   - pkg/lcd: a REST client for querying the Alliance module through a
//     chain's LCD endpoint
//   - pkg/shared: network selection, bech32 address validation, and node
//     configuration helpers
//
// # Installation
//
//	go get github.com/terra-money/alliance-sdk-go@latest
package alliance_sdk_go
