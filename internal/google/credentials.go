package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	drive "google.golang.org/api/drive/v3"
	sheets "google.golang.org/api/sheets/v4"
)

// EnvKeyFile is the environment variable holding the service-account key
// file path for the default account.
const EnvKeyFile = "GOOGLE_DOCUMENT_SERVICE_JSON"

// DefaultAccount is the account name used when none is specified.
const DefaultAccount = "default"

// ErrKeyFileNotFound indicates that no service-account key file could be
// resolved for the requested account.
var ErrKeyFileNotFound = errors.New("service account key file not found")

// Scopes are the OAuth scopes requested for the service-account token.
// Full Drive access covers file metadata and content; the spreadsheets
// scope is required for the Sheets values and batchUpdate endpoints.
var Scopes = []string{
	drive.DriveScope,
	sheets.SpreadsheetsScope,
}

// envVarForAccount returns the environment variable that holds the key file
// path for the given account name.
func envVarForAccount(account string) string {
	if account == "" || account == DefaultAccount {
		return EnvKeyFile
	}

	// Account names map to env var suffixes: upper-cased, with characters
	// that are invalid in env var names replaced by underscores.
	suffix := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, account)

	return EnvKeyFile + "_" + suffix
}

// KeyFileForAccount resolves the service-account key file path for the given
// account. It returns ErrKeyFileNotFound (wrapped) if the environment
// variable is unset or the file does not exist.
func KeyFileForAccount(account string) (string, error) {
	envVar := envVarForAccount(account)

	path := os.Getenv(envVar)
	if path == "" {
		return "", fmt.Errorf("%w for account %q: %s is not set", ErrKeyFileNotFound, accountName(account), envVar)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w for account %q: %s points to %q: %v", ErrKeyFileNotFound, accountName(account), envVar, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w for account %q: %q is a directory, not a key file", ErrKeyFileNotFound, accountName(account), path)
	}

	return path, nil
}

// HasKeyFileForAccount reports whether a key file can be resolved for the
// given account.
func HasKeyFileForAccount(account string) bool {
	_, err := KeyFileForAccount(account)
	return err == nil
}

// HasKeyFile reports whether a key file can be resolved for the default
// account.
func HasKeyFile() bool {
	return HasKeyFileForAccount(DefaultAccount)
}

// AuthenticationErrorMessage returns a user-facing message explaining how to
// configure credentials for the given account.
func AuthenticationErrorMessage(account string) string {
	envVar := envVarForAccount(account)
	return fmt.Sprintf(
		"No service account key configured for account %q. "+
			"Create a service account with Drive and Sheets access, download its JSON key, "+
			"and set %s to the key file path.",
		accountName(account), envVar)
}

// CredentialsFromFile loads service-account credentials from a JSON key file.
func CredentialsFromFile(ctx context.Context, path string) (*google.Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account key %q: %w", path, err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key %q: %w", path, err)
	}

	return creds, nil
}

// HTTPClientForKeyFile returns an HTTP client whose requests are authorized
// by the service account in the given key file.
func HTTPClientForKeyFile(ctx context.Context, path string) (*http.Client, error) {
	creds, err := CredentialsFromFile(ctx, path)
	if err != nil {
		return nil, err
	}

	return oauth2.NewClient(ctx, creds.TokenSource), nil
}

// HTTPClientForAccount resolves the key file for the given account and
// returns an authorized HTTP client.
func HTTPClientForAccount(ctx context.Context, account string) (*http.Client, error) {
	path, err := KeyFileForAccount(account)
	if err != nil {
		return nil, err
	}

	return HTTPClientForKeyFile(ctx, path)
}

func accountName(account string) string {
	if account == "" {
		return DefaultAccount
	}
	return account
}
