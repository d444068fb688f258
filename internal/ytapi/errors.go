package ytapi

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Kind buckets an API failure by how the pipeline must react to it.
type Kind int

const (
	// KindUnexpected covers everything not recognized below: quota and rate
	// limits, 5xx, transport and decode failures. Callers log once and keep
	// whatever they already collected.
	KindUnexpected Kind = iota
	// KindSoft marks expected-empty conditions (comments disabled, playlist
	// or video gone). Callers continue with no data and no error noise.
	KindSoft
	// KindFatal marks credential failures. The run must stop before anything
	// is written.
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindSoft:
		return "soft"
	case KindFatal:
		return "fatal"
	default:
		return "unexpected"
	}
}

// ErrChannelNotFound is returned when a channels.list call succeeds but
// carries no item for the requested ID.
var ErrChannelNotFound = errors.New("ytapi: channel not found")

// Classification keys on the API reason codes carried in the error body,
// never on rendered message text.
var (
	fatalReasons = map[string]bool{
		"keyInvalid":          true,
		"keyExpired":          true,
		"accessNotConfigured": true,
	}
	softReasons = map[string]bool{
		"commentsDisabled":           true,
		"playlistNotFound":           true,
		"playlistItemsNotAccessible": true,
		"videoNotFound":              true,
		"channelNotFound":            true,
	}
)

// CallError wraps a failed gateway call with its classification.
type CallError struct {
	Op     string // API operation, e.g. "channels.list"
	Kind   Kind
	Reason string // API reason code when one was present
	Err    error
}

func (e *CallError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// classify wraps err in a CallError whose Kind is decided from the transport
// status and API reason codes.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	ce := &CallError{Op: op, Kind: KindUnexpected, Err: err}
	if errors.Is(err, ErrChannelNotFound) {
		ce.Kind = KindSoft
		return ce
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		for _, item := range gerr.Errors {
			if fatalReasons[item.Reason] {
				ce.Kind = KindFatal
				ce.Reason = item.Reason
				return ce
			}
			if softReasons[item.Reason] {
				ce.Kind = KindSoft
				ce.Reason = item.Reason
				return ce
			}
			if ce.Reason == "" {
				ce.Reason = item.Reason
			}
		}
		// A 404 without a recognized reason still means the resource is
		// gone, not that the run is broken.
		if gerr.Code == http.StatusNotFound {
			ce.Kind = KindSoft
		}
	}
	return ce
}

// IsFatal reports whether err carries a credential failure that must abort
// the run.
func IsFatal(err error) bool {
	var ce *CallError
	return errors.As(err, &ce) && ce.Kind == KindFatal
}

// IsSoft reports whether err is an expected-empty condition.
func IsSoft(err error) bool {
	var ce *CallError
	return errors.As(err, &ce) && ce.Kind == KindSoft
}
