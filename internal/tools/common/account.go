package common

import (
	"github.com/teemow/gdocuments/internal/google"
)

// GetAccountFromArgs extracts the account name from request arguments.
// Each account maps to its own service account key file, resolved through
// the environment (GOOGLE_DOCUMENT_SERVICE_JSON_<ACCOUNT>).
func GetAccountFromArgs(args map[string]interface{}) string {
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	return google.DefaultAccount
}
