package sheets_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/gdocuments/internal/instrumentation"
	"github.com/teemow/gdocuments/internal/server"
	"github.com/teemow/gdocuments/internal/tools/common"
)

// registerSpreadsheetTools registers spreadsheet creation and metadata tools
func registerSpreadsheetTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if !readOnly {
		// Create spreadsheet tool
		createSpreadsheetTool := mcp.NewTool("sheets_create_spreadsheet",
			mcp.WithDescription("Create a new Google Sheets spreadsheet"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
			),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("The title of the new spreadsheet"),
			),
		)

		s.AddTool(createSpreadsheetTool, common.InstrumentedToolHandlerWithService(
			"sheets_create_spreadsheet", instrumentation.ServiceSheets, instrumentation.OperationCreate, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args := request.GetArguments()
				account := common.GetAccountFromArgs(args)

				title, ok := args["title"].(string)
				if !ok || title == "" {
					return mcp.NewToolResultError("title is required"), nil
				}

				manager, err := common.GetManager(account, sc)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				spreadsheet, err := manager.CreateSpreadsheet(ctx, title)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to create spreadsheet: %v", err)), nil
				}

				result, _ := json.MarshalIndent(map[string]interface{}{
					"spreadsheet": spreadsheet.Info(),
					"url":         spreadsheet.URL(),
				}, "", "  ")
				return mcp.NewToolResultText(fmt.Sprintf("Spreadsheet created successfully:\n%s", string(result))), nil
			}))
	}

	// Get spreadsheet tool (read-only, always available)
	getSpreadsheetTool := mcp.NewTool("sheets_get_spreadsheet",
		mcp.WithDescription("Get metadata for a Google Sheets spreadsheet, including its sheets (tabs)"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
		),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
	)

	s.AddTool(getSpreadsheetTool, common.InstrumentedToolHandlerWithService(
		"sheets_get_spreadsheet", instrumentation.ServiceSheets, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			spreadsheetID, ok := args["spreadsheetId"].(string)
			if !ok || spreadsheetID == "" {
				return mcp.NewToolResultError("spreadsheetId is required"), nil
			}

			manager, err := common.GetManager(account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			info, err := manager.GetSpreadsheet(ctx, spreadsheetID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to get spreadsheet: %v", err)), nil
			}

			result, _ := json.MarshalIndent(info, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	return nil
}
