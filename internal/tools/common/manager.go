package common

import (
	"fmt"

	"github.com/teemow/gdocuments/internal/documents"
	"github.com/teemow/gdocuments/internal/google"
	"github.com/teemow/gdocuments/internal/server"
)

// GetManager retrieves or creates a document manager for the specified account.
// Returns a user-facing error message when no service account key is configured
// for the account.
func GetManager(account string, sc *server.ServerContext) (*documents.Manager, error) {
	if manager := sc.ManagerForAccount(account); manager != nil {
		return manager, nil
	}

	if !google.HasKeyFileForAccount(account) {
		return nil, fmt.Errorf("%s", google.AuthenticationErrorMessage(account))
	}

	return nil, fmt.Errorf("failed to create document manager for account %s", account)
}
