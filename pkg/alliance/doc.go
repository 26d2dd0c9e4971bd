// Package alliance implements typed bindings for the Alliance staking
// module as exposed to CosmWasm contracts.
//
// Messages and queries are single-variant envelopes whose JSON encoding
// matches the chain's custom-message schema: exactly one variant field is
// set, and it is serialized under its snake_case name. Builders construct
// well-formed envelopes, ValidateMsg and ValidateQuery enforce the
// one-variant rule plus per-variant field checks, and EncodeMsg/EncodeQuery
// produce the {"custom": ...} payloads a contract embeds in its responses.
//
// The Querier interface mirrors the module's query surface; pkg/lcd provides
// an HTTP implementation, and AssetIndexer maintains a polled in-memory view
// of alliances and validators on top of any Querier.
package alliance
