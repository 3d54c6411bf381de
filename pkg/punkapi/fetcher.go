package punkapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/samvad-hq/punkapi/pkg/httpclient"
)

// ClientFactory builds the HTTP client used for a single fetch.
type ClientFactory func(insecure bool) httpclient.Client

// DefaultClientFactory returns a factory producing resty clients with transport
// default timeouts. log may be nil.
func DefaultClientFactory(log resty.Logger) ClientFactory {
	return func(insecure bool) httpclient.Client {
		return httpclient.NewRestyClient(httpclient.Options{
			Insecure: insecure,
			Logger:   log,
		})
	}
}

// Fetcher issues one GET and accumulates the response body in a Buffer.
type Fetcher struct {
	clients   ClientFactory
	userAgent string
	log       Logger
}

// NewFetcher builds a fetcher. A nil factory uses DefaultClientFactory(nil).
func NewFetcher(clients ClientFactory, userAgent string, log Logger) *Fetcher {
	if clients == nil {
		clients = DefaultClientFactory(nil)
	}
	return &Fetcher{
		clients:   clients,
		userAgent: strings.TrimSpace(userAgent),
		log:       ensureLogger(log),
	}
}

// Fetch performs the request and returns the complete body.
// Transport failures and non-2xx statuses are reported as *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, insecure bool) ([]byte, error) {
	safeURL := redactURL(rawURL)
	if insecure {
		f.log.WarnObj("TLS verification disabled", "url", safeURL)
	}

	var buf Buffer
	resp, err := f.clients(insecure).Stream(ctx, rawURL, f.headers(), &buf)
	if err != nil {
		return nil, transportError(safeURL, err)
	}

	status := resp.StatusCode()
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &FetchError{URL: safeURL, Status: status, Msg: responseSnippet(buf.Bytes())}
	}

	f.log.DebugObj("fetch completed", "fetch_meta", map[string]any{
		"url":    safeURL,
		"status": status,
		"bytes":  buf.Len(),
	})
	return buf.Bytes(), nil
}

func (f *Fetcher) headers() map[string]string {
	headers := map[string]string{"Accept": "application/json"}
	if f.userAgent != "" {
		headers["User-Agent"] = f.userAgent
	}
	return headers
}

// transportError drops the *url.Error wrapper, whose text repeats the raw URL.
func transportError(safeURL string, err error) *FetchError {
	msg := err.Error()
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		msg = uerr.Err.Error()
	}
	return &FetchError{URL: safeURL, Msg: msg, Err: err}
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.User("xxxxx")
	return u.String()
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
