// Package lcd implements the alliance.Querier interface over a chain's LCD
// (light client daemon) REST endpoint.
//
// The client validates inputs before issuing requests, follows the Cosmos
// SDK pagination conventions, and can rate-limit outgoing requests.
//
// # Example
//
//	client, err := lcd.NewClient(lcd.Config{Network: "mainnet"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	params, err := client.Params(context.Background())
package lcd
