package sheets_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/gdocuments/internal/instrumentation"
	"github.com/teemow/gdocuments/internal/server"
	"github.com/teemow/gdocuments/internal/sheets"
	"github.com/teemow/gdocuments/internal/tools/common"
)

// registerSheetTools registers sheet (tab) management tools
func registerSheetTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List sheets tool (read-only, always available)
	listSheetsTool := mcp.NewTool("sheets_list_sheets",
		mcp.WithDescription("List the sheets (tabs) of a Google Sheets spreadsheet"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
		),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
	)

	s.AddTool(listSheetsTool, common.InstrumentedToolHandlerWithService(
		"sheets_list_sheets", instrumentation.ServiceSheets, instrumentation.OperationList, sc,
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

			spreadsheet, err := manager.Spreadsheet(ctx, spreadsheetID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve spreadsheet: %v", err)), nil
			}

			tabs, err := spreadsheet.Sheets(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list sheets: %v", err)), nil
			}

			listing := make([]map[string]interface{}, 0, len(tabs))
			for _, tab := range tabs {
				listing = append(listing, map[string]interface{}{
					"sheetId": tab.ID,
					"index":   tab.Index,
					"title":   tab.Title,
				})
			}

			result, _ := json.MarshalIndent(map[string]interface{}{"sheets": listing}, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	// Write tools for tab management
	if !readOnly {
		addSheetTool := mcp.NewTool("sheets_add_sheet",
			mcp.WithDescription("Add a new sheet (tab) to a Google Sheets spreadsheet"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
			),
			mcp.WithString("spreadsheetId",
				mcp.Required(),
				mcp.Description("The ID of the spreadsheet"),
			),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("The title of the new sheet"),
			),
			mcp.WithNumber("rows",
				mcp.Description("Number of rows for the new sheet (default: 1000)"),
			),
			mcp.WithNumber("columns",
				mcp.Description("Number of columns for the new sheet (default: 26)"),
			),
		)

		s.AddTool(addSheetTool, common.InstrumentedToolHandlerWithService(
			"sheets_add_sheet", instrumentation.ServiceSheets, instrumentation.OperationUpdate, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args := request.GetArguments()
				account := common.GetAccountFromArgs(args)

				spreadsheetID, ok := args["spreadsheetId"].(string)
				if !ok || spreadsheetID == "" {
					return mcp.NewToolResultError("spreadsheetId is required"), nil
				}

				title, ok := args["title"].(string)
				if !ok || title == "" {
					return mcp.NewToolResultError("title is required"), nil
				}

				properties := &sheets.SheetProperties{Title: title}

				if rows, ok := args["rows"].(float64); ok && rows > 0 {
					if properties.Grid == nil {
						properties.Grid = &sheets.GridProperties{}
					}
					properties.Grid.RowCount = int64(rows)
				}

				if columns, ok := args["columns"].(float64); ok && columns > 0 {
					if properties.Grid == nil {
						properties.Grid = &sheets.GridProperties{}
					}
					properties.Grid.ColumnCount = int64(columns)
				}

				manager, err := common.GetManager(account, sc)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				spreadsheet, err := manager.Spreadsheet(ctx, spreadsheetID)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve spreadsheet: %v", err)), nil
				}

				sheet, err := spreadsheet.AddSheet(ctx, properties)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to add sheet: %v", err)), nil
				}

				result, _ := json.MarshalIndent(map[string]interface{}{
					"sheetId": sheet.ID,
					"index":   sheet.Index,
					"title":   sheet.Title,
				}, "", "  ")
				return mcp.NewToolResultText(fmt.Sprintf("Sheet added successfully:\n%s", string(result))), nil
			}))

		deleteSheetTool := mcp.NewTool("sheets_delete_sheet",
			mcp.WithDescription("Delete a sheet (tab) from a Google Sheets spreadsheet"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
			),
			mcp.WithString("spreadsheetId",
				mcp.Required(),
				mcp.Description("The ID of the spreadsheet"),
			),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("The title of the sheet to delete"),
			),
		)

		s.AddTool(deleteSheetTool, common.InstrumentedToolHandlerWithService(
			"sheets_delete_sheet", instrumentation.ServiceSheets, instrumentation.OperationUpdate, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args := request.GetArguments()
				account := common.GetAccountFromArgs(args)

				spreadsheetID, ok := args["spreadsheetId"].(string)
				if !ok || spreadsheetID == "" {
					return mcp.NewToolResultError("spreadsheetId is required"), nil
				}

				title, ok := args["title"].(string)
				if !ok || title == "" {
					return mcp.NewToolResultError("title is required"), nil
				}

				manager, err := common.GetManager(account, sc)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				spreadsheet, err := manager.Spreadsheet(ctx, spreadsheetID)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve spreadsheet: %v", err)), nil
				}

				sheet, err := spreadsheet.Sheet(ctx, title)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				if err := sheet.Delete(ctx); err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to delete sheet: %v", err)), nil
				}

				return mcp.NewToolResultText(fmt.Sprintf("Sheet %q deleted from spreadsheet %s", title, spreadsheetID)), nil
			}))
	}

	return nil
}
