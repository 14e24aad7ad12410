// Package drive provides a client for interacting with the Google Drive API.
//
// This package covers the Drive operations used by the document wrappers:
//   - Getting file metadata and parent folders
//   - Listing and searching files with the Drive query grammar
//   - Translating snake_case keyword filters into query strings
//   - Uploading, updating, downloading and exporting content
//   - Copying, moving, renaming and deleting files
//   - Creating folders
//   - Managing file sharing and permissions
//
// Authentication uses a service-account key file resolved by the google
// package. Each client instance is bound to a specific account name.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := drive.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Find spreadsheets in a folder
//	query := drive.Filters{
//	    "name":   "budget",
//	    "folder": "folderID",
//	}.WithMimeType(drive.MimeTypeSpreadsheet).Query()
//
//	files, _, err := client.ListFiles(ctx, &drive.ListOptions{Query: query})
package drive
