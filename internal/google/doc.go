// Package google resolves service-account credentials for the Google APIs
// used by gdocuments.
//
// Credentials come from a service-account key file in JSON format. The key
// file is located either by an explicit path or through environment
// variables, keyed by account name:
//
//   - "default" account: GOOGLE_DOCUMENT_SERVICE_JSON
//   - any other account: GOOGLE_DOCUMENT_SERVICE_JSON_<ACCOUNT> (upper-cased)
//
// The resulting *http.Client carries an oauth2 token source derived from the
// key and is handed to the Drive and Sheets service constructors.
package google
