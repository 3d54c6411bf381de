package endpoints

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/samvad-hq/punkapi/pkg/punkapi"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write endpoints file: %v", err)
	}
	return file
}

func TestLoadEndpointsYAML(t *testing.T) {
	file := writeFile(t, "endpoints.yaml", `
endpoints:
  - id: punkapi
    name: PunkAPI
    host: api.punkapi.com/v2/beers/
  - id: Brewdog
    host: api.brewdog.example/v3/beers
    credential_required: true
    credential_env: BREWDOG_API_KEY
`)

	reg, err := Load(file)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := len(reg.All()); got != 2 {
		t.Fatalf("expected 2 endpoints, got %d", got)
	}

	p, err := reg.Lookup("punkapi")
	if err != nil {
		t.Fatalf("Lookup punkapi: %v", err)
	}
	if p.Host != "api.punkapi.com/v2/beers" {
		t.Fatalf("unexpected host: %s", p.Host)
	}
	if p.CredentialEnv != DefaultCredentialEnv {
		t.Fatalf("expected default credential env, got %s", p.CredentialEnv)
	}

	b, err := reg.Lookup("brewdog")
	if err != nil {
		t.Fatalf("Lookup is case-insensitive, got %v", err)
	}
	if !b.CredentialRequired || b.CredentialEnv != "BREWDOG_API_KEY" || b.Name != "Brewdog" {
		t.Fatalf("unexpected endpoint %+v", b)
	}
}

func TestLoadEndpointsJSON(t *testing.T) {
	file := writeFile(t, "endpoints.json", `{"endpoints":[{"id":"local","host":"127.0.0.1:8443/v2/beers"}]}`)

	reg, err := Load(file)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if _, err := reg.Lookup("local"); err != nil {
		t.Fatalf("Lookup local: %v", err)
	}
}

func TestLoadEndpointsRejectsBadFiles(t *testing.T) {
	tests := map[string]struct {
		name    string
		content string
	}{
		"duplicate id": {name: "e.yaml", content: `
endpoints:
  - id: dup
    host: a.example
  - id: DUP
    host: b.example
`},
		"missing host":   {name: "e.yaml", content: "endpoints:\n  - id: x\n"},
		"scheme in host": {name: "e.yaml", content: "endpoints:\n  - id: x\n    host: https://a.example\n"},
		"empty list":     {name: "e.yaml", content: "endpoints: []\n"},
		"bad json":       {name: "e.json", content: `{"endpoints":`},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeFile(t, tc.name, tc.content)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestDefaultRegistry(t *testing.T) {
	e, err := Default().Lookup(DefaultID)
	if err != nil {
		t.Fatalf("Lookup default: %v", err)
	}
	if e.Host != DefaultHost || e.CredentialRequired {
		t.Fatalf("unexpected default endpoint %+v", e)
	}
	if _, err := Default().Lookup("nope"); err == nil {
		t.Fatalf("expected unknown id error")
	}
}

func TestEndpointCredential(t *testing.T) {
	env := map[string]string{"BREWDOG_API_KEY": " abc "}
	getenv := func(k string) string { return env[k] }

	optional := Endpoint{ID: "punkapi", CredentialEnv: DefaultCredentialEnv}
	key, err := optional.Credential(getenv)
	if err != nil || key != "" {
		t.Fatalf("optional credential = %q, %v; want empty, nil", key, err)
	}

	required := Endpoint{ID: "brewdog", CredentialRequired: true, CredentialEnv: "BREWDOG_API_KEY"}
	key, err = required.Credential(getenv)
	if err != nil || key != "abc" {
		t.Fatalf("required credential = %q, %v; want abc, nil", key, err)
	}

	delete(env, "BREWDOG_API_KEY")
	_, err = required.Credential(getenv)
	var merr *punkapi.MissingCredentialError
	if !errors.As(err, &merr) {
		t.Fatalf("error = %v, want *MissingCredentialError", err)
	}
	if merr.EnvVar != "BREWDOG_API_KEY" {
		t.Fatalf("EnvVar = %q", merr.EnvVar)
	}
}

func TestShippedEndpointsFileLoads(t *testing.T) {
	reg, err := Load(filepath.Join("..", "..", "configs", "endpoints.yaml"))
	if err != nil {
		t.Fatalf("Load shipped file: %v", err)
	}
	keyed, err := reg.Lookup("punkapi-keyed")
	if err != nil {
		t.Fatalf("Lookup punkapi-keyed: %v", err)
	}
	if !keyed.CredentialRequired {
		t.Fatalf("expected punkapi-keyed to require a credential")
	}
}
