package httpclient

import (
	"context"
	"io"
)

// Response is a minimal HTTP response contract for streamed requests.
type Response interface {
	StatusCode() int
	// Size reports the number of body bytes written to the destination.
	Size() int64
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	// Stream performs a GET and copies the response body into dst as it arrives.
	Stream(ctx context.Context, url string, headers map[string]string, dst io.Writer) (Response, error)
}
