package endpoints

import (
	"strings"

	"github.com/samvad-hq/punkapi/pkg/punkapi"
)

// Credential resolves the endpoint's API key through getenv. An absent key is
// only an error when the endpoint requires one.
func (e Endpoint) Credential(getenv func(string) string) (string, error) {
	envVar := e.CredentialEnv
	if envVar == "" {
		envVar = DefaultCredentialEnv
	}

	var key string
	if getenv != nil {
		key = strings.TrimSpace(getenv(envVar))
	}
	if key == "" && e.CredentialRequired {
		return "", &punkapi.MissingCredentialError{Endpoint: e.ID, EnvVar: envVar}
	}
	return key, nil
}
