package cmd

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/gdocuments/internal/drive"
	"github.com/teemow/gdocuments/internal/server"
)

func TestParseFilterArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		want      drive.Filters
		wantQuery string
		wantErr   bool
	}{
		{
			name:      "string value",
			args:      []string{"name=report"},
			want:      drive.Filters{"name": "report"},
			wantQuery: "name contains 'report'",
		},
		{
			name: "bool values",
			args: []string{"starred=true", "trashed=false"},
			want: drive.Filters{"starred": true, "trashed": false},
		},
		{
			name:      "contains key renders a plain field name",
			args:      []string{"name__contains=budget"},
			want:      drive.Filters{"name__contains": "budget"},
			wantQuery: "name contains 'budget'",
		},
		{
			name: "value with equals sign",
			args: []string{"name=a=b"},
			want: drive.Filters{"name": "a=b"},
		},
		{
			name: "empty args",
			args: nil,
			want: drive.Filters{},
		},
		{
			name:    "missing separator",
			args:    []string{"starred"},
			wantErr: true,
		},
		{
			name:    "empty key",
			args:    []string{"=value"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFilterArgs(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseFilterArgs(%v) expected error", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFilterArgs(%v) error = %v", tt.args, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseFilterArgs(%v) = %v, want %v", tt.args, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("filter %q = %v, want %v", k, got[k], v)
				}
			}
			if tt.wantQuery != "" && got.Query() != tt.wantQuery {
				t.Errorf("Query() = %q, want %q", got.Query(), tt.wantQuery)
			}
		})
	}
}

func TestGetCategoryFromToolName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"drive_find_files", "Google Drive Tools"},
		{"docs_export_document", "Google Docs Tools"},
		{"sheets_read_range", "Google Sheets Tools"},
		{"something_else", "Other"},
		{"noprefix", "Other"},
	}

	for _, tt := range tests {
		if got := getCategoryFromToolName(tt.name); got != tt.want {
			t.Errorf("getCategoryFromToolName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRegisterAllTools(t *testing.T) {
	os.Unsetenv("GOOGLE_DOCUMENT_SERVICE_JSON")

	ctx := context.Background()
	sc, err := server.NewServerContext(ctx)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer sc.Shutdown()

	mcpSrv := mcpserver.NewMCPServer("test", "0.0.0")

	if err := registerAllTools(mcpSrv, sc, false); err != nil {
		t.Fatalf("registerAllTools() error = %v", err)
	}

	tools := mcpSrv.ListTools()
	if len(tools) == 0 {
		t.Fatal("no tools registered")
	}

	// Every tool should belong to a known category
	for _, st := range tools {
		if cat := getCategoryFromToolName(st.Tool.Name); cat == "Other" {
			t.Errorf("tool %q has no category", st.Tool.Name)
		}
	}
}

func TestGenerateToolsMarkdown(t *testing.T) {
	os.Unsetenv("GOOGLE_DOCUMENT_SERVICE_JSON")

	ctx := context.Background()
	sc, err := server.NewServerContext(ctx)
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer sc.Shutdown()

	mcpSrv := mcpserver.NewMCPServer("test", "0.0.0")
	if err := registerAllTools(mcpSrv, sc, false); err != nil {
		t.Fatalf("registerAllTools() error = %v", err)
	}

	var tools []mcp.Tool
	for _, st := range mcpSrv.ListTools() {
		tools = append(tools, st.Tool)
	}

	markdown := generateToolsMarkdown(tools)

	for _, want := range []string{
		"# MCP Tools Reference",
		"## Google Drive Tools",
		"## Google Sheets Tools",
		"### drive_find_files",
		"### sheets_write_range",
	} {
		if !strings.Contains(markdown, want) {
			t.Errorf("generated markdown missing %q", want)
		}
	}
}
