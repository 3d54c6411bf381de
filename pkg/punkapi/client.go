package punkapi

import (
	"context"
	"fmt"
	"strings"
)

// Client runs the request/response pipeline against one API host.
type Client struct {
	host    string
	fetcher *Fetcher
	log     Logger
}

// NewClient wires a pipeline for host (host[/base/path], no scheme).
func NewClient(host string, fetcher *Fetcher, log Logger) (*Client, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return nil, errEmptyHost
	}
	if fetcher == nil {
		fetcher = NewFetcher(nil, "", log)
	}
	return &Client{
		host:    host,
		fetcher: fetcher,
		log:     ensureLogger(log),
	}, nil
}

// Names builds the request URL, fetches it and extracts the beer names.
// Errors from each stage are returned as their typed values.
func (c *Client) Names(ctx context.Context, q Query) ([]string, error) {
	if c == nil || c.fetcher == nil {
		return nil, fmt.Errorf("punkapi client is not initialized")
	}

	target := BuildURL(c.host, q)
	c.log.DebugObj("request url built", "request", map[string]any{
		"url":      redactURL(target),
		"random":   q.Random,
		"page":     q.Page,
		"per_page": q.ItemsPerPage,
		"insecure": q.Insecure,
	})

	body, err := c.fetcher.Fetch(ctx, target, q.Insecure)
	if err != nil {
		return nil, err
	}

	names, err := Extract(body)
	if err != nil {
		return nil, err
	}

	c.log.DebugObj("names extracted", "extract_meta", map[string]any{
		"body_bytes": len(body),
		"records":    len(names),
	})
	return names, nil
}
