package sheets_tools

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/gdocuments/internal/server"
)

// RegisterSheetsTools registers all Google Sheets-related tools with the MCP server
func RegisterSheetsTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Register spreadsheet-level tools
	if err := registerSpreadsheetTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register spreadsheet tools: %w", err)
	}

	// Register range read/write tools
	if err := registerRangeTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register range tools: %w", err)
	}

	// Register sheet (tab) management tools
	if err := registerSheetTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register sheet tools: %w", err)
	}

	return nil
}
