// Package phplist provides types, interfaces, and helpers for working with
// the phpList REST API.
//
// # Overview
//
// The phplist package defines the domain types (e.g., Subscriber,
// SubscriberList, Campaign, Template) and the interfaces for
// resource-oriented clients (e.g., SubscribersClient, CampaignsClient). A
// concrete implementation of these clients is provided by the listclient
// package, which wires configuration, transport, and session handling. Most
// consumers should import listclient to construct a client and then interact
// with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/phplist/go-client/pkg/listclient"
//	  "github.com/phplist/go-client/pkg/phplist"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := listclient.New(&phplist.Config{BaseURL: "https://lists.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  if _, err := cli.Login(ctx, "admin", "secret"); err != nil { log.Fatal(err) }
//
//	  // List the first page of subscribers
//	  subscribers, err := cli.Subscribers().List(ctx, phplist.NewListOptions().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = subscribers
//	}
//
// # Pagination
//
// List operations take ListOptions (after_id cursor plus limit) and return a
// Collection, which carries the decoded items together with the server's
// CursorPagination envelope. Pass Pagination.NextCursor back via WithAfterID
// to fetch the next page.
//
// # Requests and payloads
//
// Create and update calls take typed request structs whose optional fields
// are pointers: a nil pointer is omitted from the JSON body entirely, while
// an explicitly set false, zero, or empty string is serialized. Field names
// are translated from Go-style camelCase to the API's snake_case on the way
// out by Payload.
//
// # Errors
//
// API failures are represented by APIError and its specializations
// AuthenticationError, NotFoundError, and ValidationError. Helpers such as
// IsAuthentication, IsNotFound, and IsValidation make it easy to branch on
// common cases; ValidationError additionally carries the server's
// field-level messages.
package phplist
