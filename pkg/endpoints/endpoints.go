package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Package endpoints describes the beer-catalog API variants the CLI can query.

const (
	// DefaultID is the endpoint used when none is configured.
	DefaultID = "punkapi"
	// DefaultHost is the public PunkAPI beers collection.
	DefaultHost = "api.punkapi.com/v2/beers"
	// DefaultCredentialEnv is the variable holding the API key.
	DefaultCredentialEnv = "PUNKAPI_API_KEY"
)

// Endpoint is one API variant: where it lives and whether it needs a key.
type Endpoint struct {
	ID                 string `json:"id" yaml:"id"`
	Name               string `json:"name" yaml:"name"`
	Host               string `json:"host" yaml:"host"`
	CredentialRequired bool   `json:"credential_required" yaml:"credential_required"`
	CredentialEnv      string `json:"credential_env" yaml:"credential_env"`
}

type registryFile struct {
	Endpoints []Endpoint `json:"endpoints" yaml:"endpoints"`
}

// Registry is an immutable, id-indexed set of endpoints.
type Registry struct {
	endpoints []Endpoint
	idx       map[string]Endpoint
}

// Default returns the built-in registry holding the public PunkAPI endpoint.
func Default() *Registry {
	reg, _ := newRegistry([]Endpoint{{
		ID:   DefaultID,
		Name: "PunkAPI",
		Host: DefaultHost,
	}})
	return reg
}

// Load reads an endpoint registry from a YAML or JSON file.
func Load(path string) (*Registry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("endpoints file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open endpoints file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read endpoints file: %w", err)
	}

	parsed, err := parseRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(parsed.Endpoints) == 0 {
		return nil, errors.New("endpoints file contains no endpoints entries")
	}

	return newRegistry(parsed.Endpoints)
}

func newRegistry(list []Endpoint) (*Registry, error) {
	reg := &Registry{
		endpoints: make([]Endpoint, 0, len(list)),
		idx:       make(map[string]Endpoint, len(list)),
	}
	for i := range list {
		e := sanitizeEndpoint(list[i])
		if err := validateEndpoint(e); err != nil {
			return nil, fmt.Errorf("endpoint[%d]: %w", i, err)
		}
		key := strings.ToLower(e.ID)
		if _, exists := reg.idx[key]; exists {
			return nil, fmt.Errorf("duplicate endpoint id %q", e.ID)
		}
		reg.endpoints = append(reg.endpoints, e)
		reg.idx[key] = e
	}
	return reg, nil
}

// All returns a copy of the registered endpoints in file order.
func (r *Registry) All() []Endpoint {
	if r == nil || len(r.endpoints) == 0 {
		return nil
	}
	out := make([]Endpoint, len(r.endpoints))
	copy(out, r.endpoints)
	return out
}

// Lookup returns the endpoint with the given id (case-insensitive).
func (r *Registry) Lookup(id string) (Endpoint, error) {
	if r == nil {
		return Endpoint{}, errors.New("endpoint registry is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Endpoint{}, errors.New("endpoint id is empty")
	}
	e, ok := r.idx[strings.ToLower(id)]
	if !ok {
		return Endpoint{}, fmt.Errorf("no endpoint registered with id %q", id)
	}
	return e, nil
}

func parseRegistry(data []byte, ext string) (registryFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		name string
		ext  string
		fn   unmarshalFn
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		if reg, err := unmarshalRegistry(d.name, data, d.fn); err == nil {
			return reg, nil
		}
	}

	return registryFile{}, errors.New("endpoints file format not recognized (expected YAML or JSON)")
}

type unmarshalFn func([]byte, any) error

func unmarshalRegistry(name string, data []byte, fn unmarshalFn) (registryFile, error) {
	var reg registryFile
	if err := fn(data, &reg); err != nil {
		return registryFile{}, fmt.Errorf("decode %s endpoints: %w", name, err)
	}
	return reg, nil
}

func sanitizeEndpoint(e Endpoint) Endpoint {
	e.ID = strings.TrimSpace(e.ID)
	e.Name = strings.TrimSpace(e.Name)
	e.Host = strings.TrimRight(strings.TrimSpace(e.Host), "/")
	e.CredentialEnv = strings.TrimSpace(e.CredentialEnv)

	if e.Name == "" {
		e.Name = e.ID
	}
	if e.CredentialEnv == "" {
		e.CredentialEnv = DefaultCredentialEnv
	}
	return e
}

func validateEndpoint(e Endpoint) error {
	if e.ID == "" {
		return errors.New("id is required")
	}
	if e.Host == "" {
		return fmt.Errorf("host is required for endpoint %q", e.ID)
	}
	if strings.Contains(e.Host, "://") {
		return fmt.Errorf("host for endpoint %q must not include a scheme", e.ID)
	}
	return nil
}
