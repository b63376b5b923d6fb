// Package rt declares the runtime contract between generated protocol
// bindings and a transport session. Generated callables carry no state of
// their own, every call is a pure composition of its inputs handed to the
// session, and is therefore safe to invoke concurrently.
package rt

import (
	"fmt"
	"time"
)

// Params holds the named parameters of a command call keyed by their wire
// names. Values must encode to JSON.
type Params = map[string]interface{}

// Result holds the named return values of a command keyed by their wire
// names.
type Result = map[string]interface{}

// Opts carries per call overrides forwarded to the session.
type Opts struct {
	// Timeout overrides the session default for this call if positive.
	Timeout time.Duration
}

// Session is the single operation generated bindings depend on. The method
// string is the fully qualified wire identifier 'Domain.command'. How the
// session is obtained and synchronized is entirely the transport's concern.
type Session interface {
	ExecuteCommand(method string, params Params, opts Opts) (Result, error)
}

// Error is a structured command failure reported by the remote target.
// Sessions return it in place of a result so callers can match on the code
// and payload with errors.As instead of parsing message strings.
type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

func (e *Error) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("cdp error %d: %s (%s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("cdp error %d: %s", e.Code, e.Message)
}
