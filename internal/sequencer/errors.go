package sequencer

import (
	"errors"
	"fmt"
)

// Kind classifies a failed run.
type Kind string

const (
	KindEmptyQuery Kind = "empty_query"
	KindNetwork    Kind = "network"
	KindNotFound   Kind = "not_found"
)

// Sentinels matched by *Error through errors.Is.
var (
	ErrEmptyQuery = errors.New("empty query")
	ErrNetwork    = errors.New("network failure")
	ErrNotFound   = errors.New("team not found")
)

// Error is the failure of one run. Err holds the transport cause for Network failures.
type Error struct {
	Kind  Kind
	Query string
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyQuery:
		return "Enter a team name"
	case KindNotFound:
		return fmt.Sprintf("No team found for \"%s\"", e.Query)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return MsgLoadFailure
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrEmptyQuery:
		return e.Kind == KindEmptyQuery
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

// KindOf returns the Kind carried by err, or "" when err is not a run failure.
func KindOf(err error) Kind {
	var runErr *Error
	if errors.As(err, &runErr) {
		return runErr.Kind
	}
	return ""
}
