// Package docs_tools provides MCP (Model Context Protocol) tools for Google Docs operations.
//
// This package exposes document content access to MCP clients. Google Docs
// have no direct content API here; content flows through Drive export and
// import conversion, defaulting to the docx format.
//
// Available tools:
//   - docs_export_document: Export a Google Doc to docx, PDF, or plain text
//   - docs_create_document: Create a new Google Doc from docx or plain text content
//   - docs_update_document: Replace the content of an existing Google Doc
//
// All tools support multi-account functionality through an optional 'account'
// parameter that selects the service account key to authenticate with.
package docs_tools
