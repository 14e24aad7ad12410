package docs_tools

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/gdocuments/internal/instrumentation"
	"github.com/teemow/gdocuments/internal/server"
	"github.com/teemow/gdocuments/internal/tools/common"
)

// RegisterDocsTools registers all Google Docs-related tools with the MCP server
func RegisterDocsTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Export document tool (read-only, always available)
	exportDocumentTool := mcp.NewTool("docs_export_document",
		mcp.WithDescription("Export a Google Doc to another format (docx by default)"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
		),
		mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("The ID of the Google Doc"),
		),
		mcp.WithString("mimeType",
			mcp.Description("Export MIME type (default: docx). Use 'text/plain' for plain text or 'application/pdf' for PDF."),
		),
	)

	s.AddTool(exportDocumentTool, common.InstrumentedToolHandlerWithService(
		"docs_export_document", instrumentation.ServiceDrive, instrumentation.OperationExport, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleExportDocument(ctx, request, sc)
		}))

	if !readOnly {
		// Create document tool
		createDocumentTool := mcp.NewTool("docs_create_document",
			mcp.WithDescription("Create a new Google Doc from provided content"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
			),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("The name of the new document"),
			),
			mcp.WithString("content",
				mcp.Required(),
				mcp.Description("The document content (base64-encoded docx, or plain text when mimeType is 'text/plain')"),
			),
			mcp.WithString("mimeType",
				mcp.Description("MIME type of the provided content (default: docx)"),
			),
			mcp.WithBoolean("isBase64",
				mcp.Description("Whether the content is base64-encoded (default: true)"),
			),
		)

		s.AddTool(createDocumentTool, common.InstrumentedToolHandlerWithService(
			"docs_create_document", instrumentation.ServiceDrive, instrumentation.OperationCreate, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleCreateDocument(ctx, request, sc)
			}))

		// Update document tool
		updateDocumentTool := mcp.NewTool("docs_update_document",
			mcp.WithDescription("Replace the content of an existing Google Doc"),
			mcp.WithString("account",
				mcp.Description("Account name (default: 'default'). Used to manage multiple service accounts."),
			),
			mcp.WithString("documentId",
				mcp.Required(),
				mcp.Description("The ID of the Google Doc"),
			),
			mcp.WithString("content",
				mcp.Required(),
				mcp.Description("The new document content (base64-encoded docx, or plain text when mimeType is 'text/plain')"),
			),
			mcp.WithString("mimeType",
				mcp.Description("MIME type of the provided content (default: docx)"),
			),
			mcp.WithBoolean("isBase64",
				mcp.Description("Whether the content is base64-encoded (default: true)"),
			),
		)

		s.AddTool(updateDocumentTool, common.InstrumentedToolHandlerWithService(
			"docs_update_document", instrumentation.ServiceDrive, instrumentation.OperationUpdate, sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleUpdateDocument(ctx, request, sc)
			}))
	}

	return nil
}

func handleExportDocument(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	documentID, ok := args["documentId"].(string)
	if !ok || documentID == "" {
		return mcp.NewToolResultError("documentId is required"), nil
	}

	mimeType, _ := args["mimeType"].(string)

	manager, err := common.GetManager(account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	document, err := manager.Document(ctx, documentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve document: %v", err)), nil
	}

	var buf bytes.Buffer
	if err := document.Export(ctx, &buf, mimeType); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to export document: %v", err)), nil
	}

	// Plain text exports are returned as-is, binary formats as base64
	if mimeType == "text/plain" {
		return mcp.NewToolResultText(fmt.Sprintf("Document content (plain text, %d bytes):\n%s", buf.Len(), buf.String())), nil
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	return mcp.NewToolResultText(fmt.Sprintf("Document content (base64, %d bytes):\n%s", buf.Len(), encoded)), nil
}

func handleCreateDocument(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	content, mimeType, errResult := decodeContent(args)
	if errResult != nil {
		return errResult, nil
	}

	manager, err := common.GetManager(account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	document, err := manager.CreateDocument(ctx, name, content, mimeType)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create document: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Document created successfully: %s (%s)\n%s",
		document.Name, document.ID, document.URL())), nil
}

func handleUpdateDocument(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	documentID, ok := args["documentId"].(string)
	if !ok || documentID == "" {
		return mcp.NewToolResultError("documentId is required"), nil
	}

	content, mimeType, errResult := decodeContent(args)
	if errResult != nil {
		return errResult, nil
	}

	manager, err := common.GetManager(account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	document, err := manager.Document(ctx, documentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve document: %v", err)), nil
	}

	if err := document.Update(ctx, content, mimeType); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update document: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Document %s updated successfully", documentID)), nil
}

// decodeContent reads the content, mimeType, and isBase64 arguments shared by
// the create and update tools. The returned MIME type is empty when the
// caller did not specify one, letting the document layer default to docx.
func decodeContent(args map[string]interface{}) (*strings.Reader, string, *mcp.CallToolResult) {
	contentStr, ok := args["content"].(string)
	if !ok || contentStr == "" {
		return nil, "", mcp.NewToolResultError("content is required")
	}

	mimeType, _ := args["mimeType"].(string)

	isBase64 := true
	if isB64, ok := args["isBase64"].(bool); ok {
		isBase64 = isB64
	} else if mimeType == "text/plain" {
		isBase64 = false
	}

	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(contentStr)
		if err != nil {
			return nil, "", mcp.NewToolResultError(fmt.Sprintf("Failed to decode base64 content: %v", err))
		}
		return strings.NewReader(string(decoded)), mimeType, nil
	}

	if mimeType == "" {
		mimeType = "text/plain"
	}

	return strings.NewReader(contentStr), mimeType, nil
}
