package punkapi

import (
	"net/url"
	"strconv"
	"strings"
)

// Query holds the request settings chosen on the command line.
type Query struct {
	Random       bool
	Page         uint
	ItemsPerPage uint
	Insecure     bool
	// Credential is embedded as URL userinfo when non-empty.
	Credential string
}

// BuildURL returns the absolute request URL for host (host[/base/path], no scheme).
// Page values are passed through unchecked; the API decides what is valid.
func BuildURL(host string, q Query) string {
	hostPart, path := splitHost(host)

	u := url.URL{
		Scheme: "https",
		Host:   hostPart,
		Path:   path,
	}
	if q.Credential != "" {
		u.User = url.User(q.Credential)
	}

	if q.Random {
		u.Path += "/random"
		return u.String()
	}

	// Encode sorts keys, which keeps page ahead of per_page.
	u.RawQuery = url.Values{
		"page":     {strconv.FormatUint(uint64(q.Page), 10)},
		"per_page": {strconv.FormatUint(uint64(q.ItemsPerPage), 10)},
	}.Encode()
	return u.String()
}

func splitHost(host string) (string, string) {
	host = strings.TrimSpace(host)
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimRight(host, "/")

	if i := strings.IndexByte(host, '/'); i >= 0 {
		return host[:i], host[i:]
	}
	return host, ""
}
