package drive_tools

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/gdocuments/internal/drive"
	"github.com/teemow/gdocuments/internal/instrumentation"
	"github.com/teemow/gdocuments/internal/server"
	"github.com/teemow/gdocuments/internal/tools/batch"
	"github.com/teemow/gdocuments/internal/tools/common"
)

// registerFileTools registers file management tools
func registerFileTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Register write tools only if not in read-only mode
	if !readOnly {
		// Upload file tool
		uploadFileTool := mcp.NewTool("drive_upload_file",
			mcp.WithDescription("Upload a file to Google Drive"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The name of the file"),
			),
			mcp.WithString("content",
				mcp.Required(),
				mcp.Description("The file content (base64-encoded for binary files, or plain text)"),
			),
			mcp.WithString("mimeType",
				mcp.Description("The MIME type of the file (e.g., 'application/pdf', 'text/plain', 'image/png')"),
			),
			mcp.WithString("convertTo",
				mcp.Description("Google-native MIME type to convert the upload to (e.g., 'application/vnd.google-apps.document' to import a docx as a Google Doc)"),
			),
			mcp.WithString("parentFolders",
				mcp.Description("Comma-separated list of parent folder IDs where the file should be placed"),
			),
			mcp.WithString("description",
				mcp.Description("A short description of the file"),
			),
			mcp.WithBoolean("isBase64",
				mcp.Description("Whether the content is base64-encoded (default: true for binary files, false for text)"),
			),
		)

		s.AddTool(uploadFileTool, common.InstrumentedToolHandlerWithService(
			"drive_upload_file", instrumentation.ServiceDrive, instrumentation.OperationCreate, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args := request.GetArguments()
				account := common.GetAccountFromArgs(args)

				name, ok := args["name"].(string)
				if !ok || name == "" {
					return mcp.NewToolResultError("name is required"), nil
				}

				contentStr, ok := args["content"].(string)
				if !ok || contentStr == "" {
					return mcp.NewToolResultError("content is required"), nil
				}

				manager, err := common.GetManager(account, sc)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				options := &drive.UploadOptions{}

				if mimeType, ok := args["mimeType"].(string); ok && mimeType != "" {
					options.MimeType = mimeType
				}

				if convertTo, ok := args["convertTo"].(string); ok && convertTo != "" {
					options.ConvertTo = convertTo
				}

				if description, ok := args["description"].(string); ok && description != "" {
					options.Description = description
				}

				if parentFoldersStr, ok := args["parentFolders"].(string); ok && parentFoldersStr != "" {
					options.ParentFolders = parseCommaList(parentFoldersStr)
				}

				// Decode content if base64
				isBase64 := true
				if isB64, ok := args["isBase64"].(bool); ok {
					isBase64 = isB64
				}

				var content io.Reader
				if isBase64 {
					decoded, err := base64.StdEncoding.DecodeString(contentStr)
					if err != nil {
						return mcp.NewToolResultError(fmt.Sprintf("Failed to decode base64 content: %v", err)), nil
					}
					content = strings.NewReader(string(decoded))
				} else {
					content = strings.NewReader(contentStr)
				}

				fileInfo, err := manager.UploadFile(ctx, name, content, options)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to upload file: %v", err)), nil
				}

				result, _ := json.MarshalIndent(fileInfo, "", "  ")
				return mcp.NewToolResultText(fmt.Sprintf("File uploaded successfully:\n%s", string(result))), nil
			}))
	}

	// List files tool (read-only, always available)
	listFilesTool := mcp.NewTool("drive_list_files",
		mcp.WithDescription("List files in Google Drive with optional filtering"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
		),
		mcp.WithString("query",
			mcp.Description("Query for filtering files using Google Drive's query language (e.g., \"name contains 'report'\", \"mimeType='application/pdf'\")"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of files to return (default: 100, max: 1000)"),
		),
		mcp.WithString("orderBy",
			mcp.Description("Sort order (e.g., 'folder,modifiedTime desc,name')"),
		),
		mcp.WithBoolean("includeTrashed",
			mcp.Description("Include trashed files in results (default: false)"),
		),
		mcp.WithString("pageToken",
			mcp.Description("Page token for retrieving the next page of results"),
		),
	)

	s.AddTool(listFilesTool, common.InstrumentedToolHandlerWithService(
		"drive_list_files", instrumentation.ServiceDrive, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			manager, err := common.GetManager(account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			options := &drive.ListOptions{
				MaxResults: 100, // default
			}

			if query, ok := args["query"].(string); ok && query != "" {
				options.Query = query
			}

			if maxResults, ok := args["maxResults"].(float64); ok && maxResults > 0 {
				options.MaxResults = int(maxResults)
			}

			if orderBy, ok := args["orderBy"].(string); ok && orderBy != "" {
				options.OrderBy = orderBy
			}

			if includeTrashed, ok := args["includeTrashed"].(bool); ok {
				options.IncludeTrashed = includeTrashed
			}

			if pageToken, ok := args["pageToken"].(string); ok && pageToken != "" {
				options.PageToken = pageToken
			}

			files, nextPageToken, err := manager.ListFiles(ctx, options)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list files: %v", err)), nil
			}

			response := map[string]interface{}{
				"files":         files,
				"nextPageToken": nextPageToken,
			}

			result, _ := json.MarshalIndent(response, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	// Get files tool
	getFilesTool := mcp.NewTool("drive_get_files",
		mcp.WithDescription("Get metadata for one or more files in Google Drive"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
		),
		mcp.WithString("fileIds",
			mcp.Required(),
			mcp.Description("File ID (string) or array of file IDs to retrieve"),
		),
	)

	s.AddTool(getFilesTool, common.InstrumentedToolHandlerWithService(
		"drive_get_files", instrumentation.ServiceDrive, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			fileIDs, err := batch.ParseFileIDs(args["fileIds"])
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			manager, err := common.GetManager(account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			results := batch.Process(fileIDs, func(fileID string) (string, error) {
				item, err := manager.Get(ctx, fileID)
				if err != nil {
					return "", err
				}
				response := map[string]interface{}{
					"file": item.Info(),
					"url":  item.URL(),
				}
				jsonBytes, _ := json.Marshal(response)
				return string(jsonBytes), nil
			})

			return mcp.NewToolResultText(batch.FormatResults(results)), nil
		}))

	// Download files tool
	downloadFilesTool := mcp.NewTool("drive_download_files",
		mcp.WithDescription("Download the content of one or more files from Google Drive"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
		),
		mcp.WithString("fileIds",
			mcp.Required(),
			mcp.Description("File ID (string) or array of file IDs to download"),
		),
		mcp.WithBoolean("asBase64",
			mcp.Description("Return content as base64-encoded string (default: false for text)"),
		),
	)

	s.AddTool(downloadFilesTool, common.InstrumentedToolHandlerWithService(
		"drive_download_files", instrumentation.ServiceDrive, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			fileIDs, err := batch.ParseFileIDs(args["fileIds"])
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			asBase64 := false
			if asB64, ok := args["asBase64"].(bool); ok {
				asBase64 = asB64
			}

			manager, err := common.GetManager(account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			results := batch.Process(fileIDs, func(fileID string) (string, error) {
				reader, err := manager.DownloadFile(ctx, fileID)
				if err != nil {
					return "", err
				}
				defer reader.Close()

				content, err := io.ReadAll(reader)
				if err != nil {
					return "", fmt.Errorf("failed to read content: %w", err)
				}

				if asBase64 {
					encoded := base64.StdEncoding.EncodeToString(content)
					return fmt.Sprintf("File content (base64, %d bytes):\n%s", len(content), encoded), nil
				}

				return fmt.Sprintf("File content (text, %d bytes):\n%s", len(content), string(content)), nil
			})

			return mcp.NewToolResultText(batch.FormatResults(results)), nil
		}))

	// Write tools for copying and deleting
	if !readOnly {
		// Copy file tool
		copyFileTool := mcp.NewTool("drive_copy_file",
			mcp.WithDescription("Create a copy of a file in Google Drive"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
			),
			mcp.WithString("fileId",
				mcp.Required(),
				mcp.Description("The ID of the file to copy"),
			),
			mcp.WithString("name",
				mcp.Description("The name for the copy (defaults to 'Copy of <original name>')"),
			),
		)

		s.AddTool(copyFileTool, common.InstrumentedToolHandlerWithService(
			"drive_copy_file", instrumentation.ServiceDrive, instrumentation.OperationCopy, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args := request.GetArguments()
				account := common.GetAccountFromArgs(args)

				fileID, ok := args["fileId"].(string)
				if !ok || fileID == "" {
					return mcp.NewToolResultError("fileId is required"), nil
				}

				name, _ := args["name"].(string)

				manager, err := common.GetManager(account, sc)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				fileInfo, err := manager.CopyFile(ctx, fileID, name)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to copy file: %v", err)), nil
				}

				result, _ := json.MarshalIndent(fileInfo, "", "  ")
				return mcp.NewToolResultText(fmt.Sprintf("File copied successfully:\n%s", string(result))), nil
			}))

		// Delete files tool
		deleteFilesTool := mcp.NewTool("drive_delete_files",
			mcp.WithDescription("Delete one or more files from Google Drive"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
			),
			mcp.WithString("fileIds",
				mcp.Required(),
				mcp.Description("File ID (string) or array of file IDs to delete"),
			),
		)

		s.AddTool(deleteFilesTool, common.InstrumentedToolHandlerWithService(
			"drive_delete_files", instrumentation.ServiceDrive, instrumentation.OperationDelete, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args := request.GetArguments()
				account := common.GetAccountFromArgs(args)

				fileIDs, err := batch.ParseFileIDs(args["fileIds"])
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				manager, err := common.GetManager(account, sc)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				results := batch.Process(fileIDs, func(fileID string) (string, error) {
					if err := manager.DeleteFile(ctx, fileID); err != nil {
						return "", err
					}
					return fmt.Sprintf("File %s deleted successfully", fileID), nil
				})

				return mcp.NewToolResultText(batch.FormatResults(results)), nil
			}))
	}

	return nil
}

// parseCommaList parses a comma-separated list of strings
func parseCommaList(s string) []string {
	if s == "" {
		return nil
	}

	var result []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
