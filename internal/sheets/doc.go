// Package sheets provides a client for interacting with the Google Sheets API.
//
// This package covers the Sheets operations used by the spreadsheet wrappers:
//   - Reading, writing and clearing ranges in A1 notation
//   - Creating spreadsheets
//   - Listing, adding and deleting sheets (tabs) via batchUpdate
//   - Converting tab colors and grid dimensions to and from the API shapes
//
// Authentication uses a service-account key file resolved by the google
// package. Each client instance is bound to a specific account name.
package sheets
