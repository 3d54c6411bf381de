package punkapi

import (
	"errors"
	"fmt"
)

// ParseErrorMessage is reported when a response body is not valid JSON.
const ParseErrorMessage = "JSON data could not get parsed"

// ConfigError reports an invalid or unrecognized command-line setting.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// MissingCredentialError reports that an endpoint requires a credential that is not set.
type MissingCredentialError struct {
	Endpoint string
	EnvVar   string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("endpoint %q requires an API key; export %s=<key> and try again", e.Endpoint, e.EnvVar)
}

// FetchError carries the transport diagnostic for a failed request.
// URL never contains the credential.
type FetchError struct {
	URL    string
	Status int
	Msg    string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("GET %s returned status %d: %s", e.URL, e.Status, e.Msg)
	}
	return fmt.Sprintf("GET %s: %s", e.URL, e.Msg)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a response body that could not be decoded as JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return ParseErrorMessage }

func (e *ParseError) Unwrap() error { return e.Err }

// RecordError reports a record whose name field is missing or not a string.
type RecordError struct {
	Index int
	Msg   string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Index, e.Msg)
}

var errEmptyHost = errors.New("endpoint host is empty")
