// Package drive_tools provides MCP (Model Context Protocol) tools for Google Drive operations.
//
// This package exposes Drive functionality to MCP clients (like AI assistants) through
// a set of tools that handle file management, folder operations, and permission sharing.
//
// Available tools:
//   - drive_upload_file: Upload files to Google Drive with metadata
//   - drive_list_files: List and search files using raw Drive query syntax
//   - drive_find_files: Find files using snake_case keyword filters
//   - drive_get_files: Get metadata for one or more files
//   - drive_download_files: Download file content
//   - drive_copy_file: Create a copy of a file
//   - drive_delete_files: Delete files from Drive
//   - drive_create_folder: Create new folders
//   - drive_list_folder_contents: List the direct children of a folder
//   - drive_move_file: Move or rename files
//   - drive_share_files: Share files with specific permissions
//   - drive_list_permissions: List all permissions for a file
//   - drive_remove_permission: Remove a permission from a file
//
// All tools support multi-account functionality through an optional 'account'
// parameter that selects the service account key to authenticate with.
//
// Example tool usage:
//
//	drive_upload_file({
//	  account: "work",
//	  name: "report.pdf",
//	  content: "<base64-encoded-content>",
//	  mimeType: "application/pdf",
//	  parentFolders: ["folder_id"]
//	})
//
//	drive_find_files({
//	  account: "personal",
//	  filters: {"name__contains": "invoice", "mime_type": "application/pdf"},
//	  type: "document"
//	})
package drive_tools
