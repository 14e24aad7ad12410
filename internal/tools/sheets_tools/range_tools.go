package sheets_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/gdocuments/internal/documents"
	"github.com/teemow/gdocuments/internal/instrumentation"
	"github.com/teemow/gdocuments/internal/server"
	"github.com/teemow/gdocuments/internal/tools/common"
)

// resolveRange scopes rangeName to a sheet title when one is given, so
// callers can address "A1:B2" on a specific tab without knowing the A1
// quoting rules for sheet titles.
func resolveRange(ctx context.Context, spreadsheet *documents.Spreadsheet, sheetTitle, rangeName string) (string, error) {
	if sheetTitle == "" {
		return rangeName, nil
	}

	sheet, err := spreadsheet.Sheet(ctx, sheetTitle)
	if err != nil {
		return "", err
	}

	return sheet.RangeName(rangeName), nil
}

// registerRangeTools registers cell range read/write tools
func registerRangeTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Read range tool (read-only, always available)
	readRangeTool := mcp.NewTool("sheets_read_range",
		mcp.WithDescription("Read a range of cells from a Google Sheets spreadsheet"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
		),
		mcp.WithString("spreadsheetId",
			mcp.Required(),
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("The range to read in A1 notation (e.g., 'A1:C10' or 'Sheet1!A1:C10')"),
		),
		mcp.WithString("sheet",
			mcp.Description("Sheet (tab) title to scope the range to. Leave empty if the range already names a sheet."),
		),
	)

	s.AddTool(readRangeTool, common.InstrumentedToolHandlerWithService(
		"sheets_read_range", instrumentation.ServiceSheets, instrumentation.OperationRead, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(args)

			spreadsheetID, ok := args["spreadsheetId"].(string)
			if !ok || spreadsheetID == "" {
				return mcp.NewToolResultError("spreadsheetId is required"), nil
			}

			rangeName, ok := args["range"].(string)
			if !ok || rangeName == "" {
				return mcp.NewToolResultError("range is required"), nil
			}

			manager, err := common.GetManager(account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			spreadsheet, err := manager.Spreadsheet(ctx, spreadsheetID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve spreadsheet: %v", err)), nil
			}

			sheetTitle, _ := args["sheet"].(string)
			rangeName, err = resolveRange(ctx, spreadsheet, sheetTitle, rangeName)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			values, err := spreadsheet.Read(ctx, rangeName)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to read range: %v", err)), nil
			}

			result, _ := json.MarshalIndent(map[string]interface{}{
				"range":  rangeName,
				"values": values,
			}, "", "  ")
			return mcp.NewToolResultText(string(result)), nil
		}))

	// Write tools
	if !readOnly {
		writeRangeTool := mcp.NewTool("sheets_write_range",
			mcp.WithDescription("Write values to a range of cells in a Google Sheets spreadsheet"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
			),
			mcp.WithString("spreadsheetId",
				mcp.Required(),
				mcp.Description("The ID of the spreadsheet"),
			),
			mcp.WithString("range",
				mcp.Required(),
				mcp.Description("The range to write in A1 notation (e.g., 'A1:C10' or 'Sheet1!A1:C10')"),
			),
			mcp.WithString("sheet",
				mcp.Description("Sheet (tab) title to scope the range to. Leave empty if the range already names a sheet."),
			),
			mcp.WithArray("values",
				mcp.Required(),
				mcp.Description("Two-dimensional array of values, one inner array per row (e.g., [[\"a\", 1], [\"b\", 2]])"),
			),
			mcp.WithString("valueInputOption",
				mcp.Description("How the input should be interpreted: 'USER_ENTERED' (default, parses formulas and numbers) or 'RAW'"),
			),
		)

		s.AddTool(writeRangeTool, common.InstrumentedToolHandlerWithService(
			"sheets_write_range", instrumentation.ServiceSheets, instrumentation.OperationWrite, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args := request.GetArguments()
				account := common.GetAccountFromArgs(args)

				spreadsheetID, ok := args["spreadsheetId"].(string)
				if !ok || spreadsheetID == "" {
					return mcp.NewToolResultError("spreadsheetId is required"), nil
				}

				rangeName, ok := args["range"].(string)
				if !ok || rangeName == "" {
					return mcp.NewToolResultError("range is required"), nil
				}

				values, err := parseValues(args["values"])
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				valueInputOption := "USER_ENTERED"
				if vio, ok := args["valueInputOption"].(string); ok && vio != "" {
					valueInputOption = vio
				}

				manager, err := common.GetManager(account, sc)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				spreadsheet, err := manager.Spreadsheet(ctx, spreadsheetID)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve spreadsheet: %v", err)), nil
				}

				sheetTitle, _ := args["sheet"].(string)
				rangeName, err = resolveRange(ctx, spreadsheet, sheetTitle, rangeName)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				updateResult, err := spreadsheet.Write(ctx, rangeName, values, valueInputOption)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to write range: %v", err)), nil
				}

				result, _ := json.MarshalIndent(updateResult, "", "  ")
				return mcp.NewToolResultText(fmt.Sprintf("Range written successfully:\n%s", string(result))), nil
			}))

		clearRangeTool := mcp.NewTool("sheets_clear_range",
			mcp.WithDescription("Clear a range of cells in a Google Sheets spreadsheet"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
			),
			mcp.WithString("spreadsheetId",
				mcp.Required(),
				mcp.Description("The ID of the spreadsheet"),
			),
			mcp.WithString("range",
				mcp.Required(),
				mcp.Description("The range to clear in A1 notation (e.g., 'A1:C10' or 'Sheet1!A1:C10')"),
			),
			mcp.WithString("sheet",
				mcp.Description("Sheet (tab) title to scope the range to. Leave empty if the range already names a sheet."),
			),
		)

		s.AddTool(clearRangeTool, common.InstrumentedToolHandlerWithService(
			"sheets_clear_range", instrumentation.ServiceSheets, instrumentation.OperationClear, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				args := request.GetArguments()
				account := common.GetAccountFromArgs(args)

				spreadsheetID, ok := args["spreadsheetId"].(string)
				if !ok || spreadsheetID == "" {
					return mcp.NewToolResultError("spreadsheetId is required"), nil
				}

				rangeName, ok := args["range"].(string)
				if !ok || rangeName == "" {
					return mcp.NewToolResultError("range is required"), nil
				}

				manager, err := common.GetManager(account, sc)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				spreadsheet, err := manager.Spreadsheet(ctx, spreadsheetID)
				if err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve spreadsheet: %v", err)), nil
				}

				sheetTitle, _ := args["sheet"].(string)
				rangeName, err = resolveRange(ctx, spreadsheet, sheetTitle, rangeName)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}

				if err := spreadsheet.Clear(ctx, rangeName); err != nil {
					return mcp.NewToolResultError(fmt.Sprintf("Failed to clear range: %v", err)), nil
				}

				return mcp.NewToolResultText(fmt.Sprintf("Range %s cleared successfully", rangeName)), nil
			}))
	}

	return nil
}

// parseValues converts the raw tool argument into the row-major cell matrix
// the Sheets API expects.
func parseValues(raw interface{}) ([][]interface{}, error) {
	rows, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("values is required and must be an array of rows")
	}

	values := make([][]interface{}, 0, len(rows))
	for i, row := range rows {
		cells, ok := row.([]interface{})
		if !ok {
			return nil, fmt.Errorf("values[%d] must be an array of cell values", i)
		}
		values = append(values, cells)
	}

	return values, nil
}
