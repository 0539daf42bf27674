package server

import (
	"fmt"
	"strings"
)

type namedProvider interface {
	Name() string
}

// normalizeProviderName returns a lower-cased provider name, deriving from the
// instance when not explicitly configured. Shared by provider selection and
// instrumentation so logs and metrics agree.
func normalizeProviderName(raw string, provider any) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if named, ok := provider.(namedProvider); ok && named.Name() != "" {
		return strings.ToLower(named.Name())
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return ""
}
