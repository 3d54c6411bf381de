package app

import (
	"context"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"

	"github.com/samvad-hq/punkapi/internal/config"
	"github.com/samvad-hq/punkapi/internal/logger"
	"github.com/samvad-hq/punkapi/pkg/endpoints"
	"github.com/samvad-hq/punkapi/pkg/punkapi"
)

// Options are the per-invocation settings taken from the command line.
type Options struct {
	Random   bool
	Page     uint
	Items    uint
	Insecure bool
}

// Lookup represents one CLI invocation. It resolves the configured endpoint,
// runs the punkapi pipeline once and prints the resulting beer names.
type Lookup struct {
	cfg      *config.Config
	endpoint endpoints.Endpoint
	client   *punkapi.Client
	log      logger.Logger
}

// NewLookup builds a lookup runtime from config. clients may be nil to use
// resty with the package-level zap logger.
func NewLookup(cfg *config.Config, log logger.Logger, clients punkapi.ClientFactory, userAgent string) (*Lookup, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	reg := endpoints.Default()
	if cfg.EndpointsFile != "" {
		loaded, err := endpoints.Load(cfg.EndpointsFile)
		if err != nil {
			return nil, fmt.Errorf("load endpoints registry: %w", err)
		}
		reg = loaded
	}

	endpoint, err := reg.Lookup(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("select endpoint: %w", err)
	}
	log.DebugObj("endpoint selected", "endpoint", map[string]any{
		"id":                  endpoint.ID,
		"host":                endpoint.Host,
		"credential_required": endpoint.CredentialRequired,
		"credential_env":      endpoint.CredentialEnv,
	})

	if clients == nil {
		var restyLog resty.Logger
		if logger.S != nil {
			restyLog = logger.S
		}
		clients = punkapi.DefaultClientFactory(restyLog)
	}

	client, err := punkapi.NewClient(endpoint.Host, punkapi.NewFetcher(clients, userAgent, log), log)
	if err != nil {
		return nil, fmt.Errorf("init punkapi client: %w", err)
	}

	return &Lookup{
		cfg:      cfg,
		endpoint: endpoint,
		client:   client,
		log:      log,
	}, nil
}

// Run performs the single fetch and writes one name per line to out.
// Nothing is written to out unless the whole pipeline succeeds.
func (l *Lookup) Run(ctx context.Context, opts Options, getenv func(string) string, out io.Writer) error {
	if l == nil || l.client == nil {
		return fmt.Errorf("lookup is not initialized")
	}

	credential, err := l.endpoint.Credential(getenv)
	if err != nil {
		return err
	}

	names, err := l.client.Names(ctx, punkapi.Query{
		Random:       opts.Random,
		Page:         opts.Page,
		ItemsPerPage: opts.Items,
		Insecure:     opts.Insecure,
		Credential:   credential,
	})
	if err != nil {
		return err
	}

	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	l.log.InfoObj("lookup completed", "lookup_meta", map[string]any{
		"endpoint": l.endpoint.ID,
		"records":  len(names),
	})
	return nil
}
