// Package listclient provides the primary entry point for constructing a
// phpList REST API client that implements the phplist.Client interface.
//
// It layers configuration, HTTP transport, and session handling on top of the
// resource interfaces and types defined in the phplist package. Most
// applications should import listclient to build a client, then use the
// returned phplist.Client to access resource-specific clients, for example
// Subscribers(), Lists(), Campaigns(), etc.
//
// Quick start
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
//
//	  // With administrator credentials; Connect logs in immediately.
//	  cli, err := listclient.Connect(ctx, &phplist.Config{
//	    BaseURL:   "https://lists.example.com",
//	    LoginName: "admin",
//	    Password:  "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  defer func() { _ = cli.Logout(ctx) }()
//
//	  // Or with a session key you already have:
//	  cli, err = listclient.NewWithSession("https://lists.example.com", "3jk1...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the phplist.Client interface
//	  subscribers, err := cli.Subscribers().List(ctx, phplist.NewListOptions().WithLimit(100))
//	  if err != nil { log.Fatal(err) }
//	  _ = subscribers
//	}
//
// # Sessions
//
// Login stores the session key on the client and sends it on every
// subsequent request. Logout invalidates a session obtained through Login on
// the server; a session key installed via SetSession or NewWithSession is
// only cleared locally.
//
// # Helpers
//
// The package also provides convenience constructors NewWithSession and
// NewWithCredentials, and the Connect function that wraps New plus Login
// with the appropriate configuration.
package listclient
