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

// registerFindTools registers keyword-filter search tools
func registerFindTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Find files tool (read-only, always available)
	findFilesTool := mcp.NewTool("drive_find_files",
		mcp.WithDescription("Find files in Google Drive using keyword filters instead of raw query syntax. "+
			"Filter keys use snake_case field names (e.g., 'name', 'mime_type', 'starred') and are ANDed together. "+
			"A key with the '__contains' suffix matches substrings (e.g., 'name__contains')."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
		),
		mcp.WithObject("filters",
			mcp.Required(),
			mcp.Description("Keyword filters, e.g. {\"name__contains\": \"report\", \"starred\": true}"),
		),
		mcp.WithString("type",
			mcp.Description("Restrict results to a resource type: 'folder', 'document', or 'spreadsheet'"),
		),
	)

	s.AddTool(findFilesTool, common.InstrumentedToolHandlerWithService(
		"drive_find_files", instrumentation.ServiceDrive, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			filtersArg, ok := args["filters"].(map[string]interface{})
			if !ok {
				return mcp.NewToolResultError("filters is required and must be an object"), nil
			}

			manager, err := common.GetManager(account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			filters := drive.Filters(filtersArg)

			var items []documents.Item
			switch resourceType, _ := args["type"].(string); resourceType {
			case "":
				items, err = manager.Filter(ctx, filters)
			case "folder":
				var folders []*documents.Folder
				folders, err = manager.FilterFolders(ctx, filters)
				for _, f := range folders {
					items = append(items, f)
				}
			case "document":
				var docs []*documents.Document
				docs, err = manager.FilterDocuments(ctx, filters)
				for _, d := range docs {
					items = append(items, d)
				}
			case "spreadsheet":
				var spreadsheets []*documents.Spreadsheet
				spreadsheets, err = manager.FilterSpreadsheets(ctx, filters)
				for _, ss := range spreadsheets {
					items = append(items, ss)
				}
			default:
				return mcp.NewToolResultError(fmt.Sprintf("unknown type %q: must be 'folder', 'document', or 'spreadsheet'", resourceType)), nil
			}
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to find files: %v", err)), nil
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
