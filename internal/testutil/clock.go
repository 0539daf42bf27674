package testutil

import "time"

// NowAt returns a clock pinned to t, for providers that stamp requests
// (squad nonces) or derive fixture dates from the current time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses an RFC3339 timestamp, fractional seconds allowed,
// and panics on malformed input.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		panic(err)
	}
	return t
}
