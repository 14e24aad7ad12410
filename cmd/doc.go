// Package cmd implements the command-line interface for gdocuments.
//
// This package provides the following commands:
//   - get, ls, cp, rm, mkdir, mv: Drive file and folder operations
//   - create, export, update: Google Doc and spreadsheet content operations
//   - read, write, clear, sheets: Google Sheets range and tab operations
//   - serve: Start the MCP server to provide tools for AI assistants
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
package cmd
