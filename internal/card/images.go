package card

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/preston-bernstein/football-team-service/internal/domain/players"
	"github.com/preston-bernstein/football-team-service/internal/domain/teams"
)

var (
	insecureScheme = regexp.MustCompile(`(?i)^http://`)
	anyScheme      = regexp.MustCompile(`^https?://`)
)

// Images rewrites artwork URLs for display.
type Images struct {
	ProxyURL       string
	PlaceholderURL string
}

// URL upgrades raw to https and routes it through the image proxy.
// It returns "" for an empty source.
func (i Images) URL(raw string) string {
	if raw == "" {
		return ""
	}
	return ViaProxy(i.ProxyURL, ToHTTPS(raw))
}

// Background picks the first non-empty artwork in preference order.
func (i Images) Background(imgs teams.Images) string {
	return i.URL(firstNonEmpty(imgs.BackgroundCandidates()...))
}

// PlayerPhoto returns the proxied photo or the placeholder image.
func (i Images) PlayerPhoto(p players.Player) string {
	if photo := i.URL(p.Photo()); photo != "" {
		return photo
	}
	return i.PlaceholderURL
}

// ToHTTPS replaces a leading http:// scheme with https://.
func ToHTTPS(raw string) string {
	return insecureScheme.ReplaceAllString(raw, "https://")
}

// ViaProxy rewrites raw as a query parameter of the proxy endpoint, without
// its scheme. An empty proxy leaves raw untouched.
func ViaProxy(proxy, raw string) string {
	if raw == "" || proxy == "" {
		return raw
	}
	sep := "?"
	if strings.Contains(proxy, "?") {
		sep = "&"
	}
	return proxy + sep + "url=" + url.QueryEscape(anyScheme.ReplaceAllString(raw, ""))
}
