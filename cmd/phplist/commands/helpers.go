package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/phplist/go-client/pkg/listclient"
	"github.com/phplist/go-client/pkg/phplist"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	Yes = "yes"
	No  = "no"

	displayTimeLayout = "2006-01-02 15:04"
)

// Common static errors used throughout the commands package.
var (
	ErrServerRequired    = errors.New("server URL is required (use --server or 'phplist config set server')")
	ErrNotLoggedIn       = errors.New("not logged in (use 'phplist login' or --session)")
	ErrLoginNameRequired = errors.New("login name is required")
	ErrEmailRequired     = errors.New("email address is required")
)

// createClient builds a phplist client from the active configuration.
// A session key is required: every API operation except login itself is
// authenticated.
func createClient() (phplist.Client, error) {
	server := viper.GetString("server")
	if server == "" {
		return nil, ErrServerRequired
	}

	session := viper.GetString("session")
	if session == "" {
		return nil, ErrNotLoggedIn
	}

	return listclient.NewWithSession(server, session)
}

// outputObject renders v as indented JSON or YAML on stdout. It returns
// false when the configured output format is neither, leaving table
// rendering to the caller.
func outputObject(v any) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(v)
	case OutputFormatYAML:
		return true, yaml.NewEncoder(os.Stdout).Encode(v)
	default:
		return false, nil
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format(displayTimeLayout)
}

func formatBool(b bool) string {
	if b {
		return Yes
	}

	return No
}

func formatOptString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// printPaginationHint tells the user how to continue a cursor walk.
func printPaginationHint(pagination phplist.CursorPagination) {
	if pagination.HasMore && pagination.NextCursor != nil {
		fmt.Printf("\nMore results available. Continue with --after-id %d.\n", *pagination.NextCursor)
	}
}

// listOptionsFromFlags builds ListOptions from the common --after-id and
// --limit flags.
func listOptionsFromFlags(afterID, limit int) *phplist.ListOptions {
	opts := phplist.NewListOptions()
	if afterID > 0 {
		opts = opts.WithAfterID(afterID)
	}

	if limit > 0 {
		opts = opts.WithLimit(limit)
	}

	return opts
}
