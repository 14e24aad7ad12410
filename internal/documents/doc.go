// Package documents maps Google Drive and Sheets resources to typed wrapper
// objects.
//
// The hierarchy mirrors the Drive resource model through embedding:
//
//	File
//	├── Folder       (container, lazy child listing)
//	├── Document     (export/update via media upload)
//	│   └── Spreadsheet  (range read/write/clear, sheet collection)
//
// A Manager resolves the underlying Drive and Sheets clients for one
// account, executes get/filter/create operations, and converts raw API
// responses into wrappers. A factory dispatch table picks the wrapper type
// from the resource's MIME type; unknown types fall back to plain File.
//
// Wrappers hold no cached state: parent and child listings and sheet
// collections are re-fetched on every call. Identity is the remote ID, not
// object identity.
//
// Example usage:
//
//	mgr, err := documents.NewManager(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sheet, err := mgr.Spreadsheet(ctx, "spreadsheetID")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	values, err := sheet.Read(ctx, "Sheet1!A1:B2")
package documents
