// Package sheets_tools provides MCP (Model Context Protocol) tools for Google Sheets operations.
//
// This package exposes Sheets functionality to MCP clients through tools that
// handle spreadsheet creation, cell range access, and sheet (tab) management.
//
// Available tools:
//   - sheets_create_spreadsheet: Create a new spreadsheet
//   - sheets_get_spreadsheet: Get spreadsheet metadata including its sheets
//   - sheets_read_range: Read a range of cells in A1 notation
//   - sheets_write_range: Write values to a range of cells
//   - sheets_clear_range: Clear a range of cells
//   - sheets_list_sheets: List the sheets (tabs) of a spreadsheet
//   - sheets_add_sheet: Add a new sheet to a spreadsheet
//   - sheets_delete_sheet: Delete a sheet by title
//
// Range tools accept an optional 'sheet' parameter that scopes the range to a
// tab by title, handling A1 quoting for titles with spaces or quotes.
//
// Example tool usage:
//
//	sheets_write_range({
//	  spreadsheetId: "spreadsheet_id",
//	  sheet: "Q3 Report",
//	  range: "A1:B2",
//	  values: [["name", "count"], ["widgets", 42]]
//	})
package sheets_tools
