// Package subchain provides types, interfaces, and helpers for working with
// the SubChain crypto-subscription billing API.
//
// # Overview
//
// The subchain package defines the domain types (e.g., Plan, Subscription,
// Invoice, X402PricingRule) and the interfaces for resource-oriented clients
// (e.g., PlansClient, InvoicesClient). A concrete implementation is provided
// by the sbclient package, which wires configuration, transport,
// authentication, and token persistence. Most consumers should import
// sbclient to construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/subchain-io/subchain-go/pkg/sbclient"
//	  "github.com/subchain-io/subchain-go/pkg/subchain"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := sbclient.New(&subchain.Config{BaseURL: "https://api.subchain.example"})
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of plans
//	  plans, err := cli.Plans().List(ctx, subchain.NewListParams().WithPageSize(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = plans
//	}
//
// # Queries and pagination
//
// Use ListParams to express common list options (page, page_size, ordering,
// search, filters). The package also provides helpers for iterating or
// collecting paginated results:
//
//	it := subchain.NewPageIterator(ctx, cli.Plans().List, subchain.NewListParams())
//	for it.HasNext() {
//	  plan, err := it.Next()
//	  if err != nil { break }
//	  _ = plan
//	}
//
// # Errors
//
// API failures are represented by APIError, which carries the HTTP status
// (0 for network-level failures) and the message the server reported in its
// detail/message/error body fields. Helpers such as IsNotFound,
// IsUnauthorized, and IsNetworkError make it easy to branch on common cases.
// Client methods never panic on HTTP or network failures.
//
// # State stores
//
// The state subpackage binds remote collections to local snapshots with
// loading/error/mutating flags and optimistic mutations, mirroring how the
// dashboard UI consumes this API.
//
// # Events
//
// PaymentEventBus distributes payment-completed signals. The in-process
// LocalPaymentEvents is the default; NATSPaymentEvents bridges the signal
// across processes.
package subchain
