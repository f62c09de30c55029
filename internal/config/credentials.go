package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var ErrCredentialsNotFound = errors.New("credentials file not found")

// CredentialsError reports a credentials file that could not be used.
type CredentialsError struct {
	Path string
	Err  error
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("credentials %s: %v", e.Path, e.Err)
}

func (e *CredentialsError) Unwrap() error { return e.Err }

type Credentials struct {
	Password string `json:"password"`
	// Pass is the key older credential files used.
	Pass string `json:"pass,omitempty"`
}

// CredentialsPath is {dir}/{protocol}/users/{user}.json.
func CredentialsPath(dir string, t Target) string {
	return filepath.Join(dir, t.Protocol, "users", t.User+".json")
}

func ReadCredentials(dir string, t Target) (*Credentials, error) {
	path := CredentialsPath(dir, t)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &CredentialsError{Path: path, Err: ErrCredentialsNotFound}
		}
		return nil, &CredentialsError{Path: path, Err: err}
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, &CredentialsError{Path: path, Err: fmt.Errorf("malformed JSON: %w", err)}
	}
	if creds.Password == "" {
		creds.Password = creds.Pass
	}
	if creds.Password == "" {
		return nil, &CredentialsError{Path: path, Err: errors.New("password field is missing")}
	}
	return &creds, nil
}
