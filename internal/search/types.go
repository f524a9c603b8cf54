// Package search is the client side of the file-search backend.
package search

import (
	"context"
	"strings"
)

// Mode selects the backend endpoint and the search strategy behind it.
type Mode string

const (
	ModeSearch Mode = "search"
	ModeFind   Mode = "find"
	ModeCmd    Mode = "cmd"
)

// Modes lists every supported mode in prefix-matching order.
var Modes = []Mode{ModeSearch, ModeFind, ModeCmd}

// Endpoint returns the request path for the mode.
func (m Mode) Endpoint() (string, error) {
	switch m {
	case ModeSearch:
		return "/search", nil
	case ModeFind:
		return "/find", nil
	case ModeCmd:
		return "/cmd", nil
	default:
		return "", &UnsupportedModeError{Mode: string(m)}
	}
}

// Request is the JSON body posted to the backend.
type Request struct {
	Query    string   `json:"query"`
	BasePath string   `json:"base_path"`
	Filters  []string `json:"filters"`

	// Token is sent as a bearer credential when non-empty.
	Token string `json:"-"`
}

// Response is a decoded backend reply.
type Response struct {
	Results  []FileResult
	Keywords []string
}

// Searcher is the network boundary used by the session dispatcher.
type Searcher interface {
	Search(ctx context.Context, mode Mode, req Request) (*Response, error)
}

// EscapeBasePath doubles every backslash so Windows roots survive the backend's
// string handling.
func EscapeBasePath(root string) string {
	return strings.ReplaceAll(root, `\`, `\\`)
}
