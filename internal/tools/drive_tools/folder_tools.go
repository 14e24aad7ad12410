package drive_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/gdocuments/internal/documents"
	"github.com/teemow/gdocuments/internal/drive"
	"github.com/teemow/gdocuments/internal/instrumentation"
	"github.com/teemow/gdocuments/internal/server"
	"github.com/teemow/gdocuments/internal/tools/common"
)

// registerFolderTools registers folder management tools
func registerFolderTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if !readOnly {
		// Create folder tool
		createFolderTool := mcp.NewTool("drive_create_folder",
			mcp.WithDescription("Create a new folder in Google Drive"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The name of the folder"),
			),
			mcp.WithString("parentId",
				mcp.Description("ID of the parent folder the new folder should be created in (default: Drive root)"),
			),
		)

		s.AddTool(createFolderTool, common.InstrumentedToolHandlerWithService(
			"drive_create_folder", instrumentation.ServiceDrive, instrumentation.OperationCreate, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args := request.GetArguments()
				account := common.GetAccountFromArgs(args)

				name, ok := args["name"].(string)
				if !ok || name == "" {
					return mcp.NewToolResultError("name is required"), nil
				}

				manager, err := common.GetManager(account, sc)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				var parent *documents.Folder
				if parentID, ok := args["parentId"].(string); ok && parentID != "" {
					parent, err = manager.Folder(ctx, parentID)
					if err != nil {
						return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve parent folder: %v", err)), nil
					}
				}

				folder, err := manager.CreateFolder(ctx, name, parent)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to create folder: %v", err)), nil
				}

				result, _ := json.MarshalIndent(map[string]interface{}{
					"folder": folder.Info(),
					"url":    folder.URL(),
				}, "", "  ")
				return mcp.NewToolResultText(fmt.Sprintf("Folder created successfully:\n%s", string(result))), nil
			}))

		// Move/rename file tool
		moveFileTool := mcp.NewTool("drive_move_file",
			mcp.WithDescription("Move or rename a file in Google Drive"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
			),
			mcp.WithString("fileId",
				mcp.Required(),
				mcp.Description("The ID of the file to move or rename"),
			),
			mcp.WithString("newName",
				mcp.Description("The new name for the file (leave empty to keep current name)"),
			),
			mcp.WithString("addParents",
				mcp.Description("Comma-separated list of folder IDs to add as parents"),
			),
			mcp.WithString("removeParents",
				mcp.Description("Comma-separated list of folder IDs to remove as parents"),
			),
		)

		s.AddTool(moveFileTool, common.InstrumentedToolHandlerWithService(
			"drive_move_file", instrumentation.ServiceDrive, instrumentation.OperationMove, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args := request.GetArguments()
				account := common.GetAccountFromArgs(args)

				fileID, ok := args["fileId"].(string)
				if !ok || fileID == "" {
					return mcp.NewToolResultError("fileId is required"), nil
				}

				manager, err := common.GetManager(account, sc)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				options := &drive.MoveOptions{}

				if newName, ok := args["newName"].(string); ok && newName != "" {
					options.NewName = newName
				}

				if addParents, ok := args["addParents"].(string); ok && addParents != "" {
					options.AddParents = parseCommaList(addParents)
				}

				if removeParents, ok := args["removeParents"].(string); ok && removeParents != "" {
					options.RemoveParents = parseCommaList(removeParents)
				}

				// Check if at least one operation is specified
				if options.NewName == "" && len(options.AddParents) == 0 && len(options.RemoveParents) == 0 {
					return mcp.NewToolResultError("At least one of newName, addParents, or removeParents must be specified"), nil
				}

				fileInfo, err := manager.MoveFile(ctx, fileID, options)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to move file: %v", err)), nil
				}

				result, _ := json.MarshalIndent(fileInfo, "", "  ")
				return mcp.NewToolResultText(fmt.Sprintf("File moved/renamed successfully:\n%s", string(result))), nil
			}))
	}

	// List folder contents tool (read-only, always available)
	listContentsTool := mcp.NewTool("drive_list_folder_contents",
		mcp.WithDescription("List the direct children of a folder in Google Drive"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
		),
		mcp.WithString("folderId",
			mcp.Required(),
			mcp.Description("The ID of the folder"),
		),
	)

	s.AddTool(listContentsTool, common.InstrumentedToolHandlerWithService(
		"drive_list_folder_contents", instrumentation.ServiceDrive, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			folderID, ok := args["folderId"].(string)
			if !ok || folderID == "" {
				return mcp.NewToolResultError("folderId is required"), nil
			}

			manager, err := common.GetManager(account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			folder, err := manager.Folder(ctx, folderID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve folder: %v", err)), nil
			}

			items, err := folder.Children(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list folder contents: %v", err)), nil
			}

			files := make([]map[string]interface{}, 0, len(items))
			for _, item := range items {
				info := item.Info()
				files = append(files, map[string]interface{}{
					"id":       info.ID,
					"name":     info.Name,
					"mimeType": info.MIMEType,
					"url":      item.URL(),
				})
			}

			result, _ := json.MarshalIndent(map[string]interface{}{"files": files}, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	return nil
}
