package sheets_tools

import (
	"context"
	"os"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/gdocuments/internal/server"
)

func TestRegisterSheetsTools(t *testing.T) {
	os.Unsetenv("GOOGLE_DOCUMENT_SERVICE_JSON")

	ctx := context.Background()
	sc, err := server.NewServerContext(ctx)
	require.NoError(t, err)
	defer sc.Shutdown()

	s := mcpserver.NewMCPServer("test-server", "1.0.0")

	assert.NoError(t, RegisterSheetsTools(s, sc, false))
}

func TestRegisterSheetsToolsReadOnly(t *testing.T) {
	os.Unsetenv("GOOGLE_DOCUMENT_SERVICE_JSON")

	ctx := context.Background()
	sc, err := server.NewServerContext(ctx, server.WithReadOnly(true))
	require.NoError(t, err)
	defer sc.Shutdown()

	s := mcpserver.NewMCPServer("test-server", "1.0.0")

	assert.NoError(t, RegisterSheetsTools(s, sc, true))
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    [][]interface{}
		wantErr bool
	}{
		{
			name:  "single row",
			input: []interface{}{[]interface{}{"a", "b"}},
			want:  [][]interface{}{{"a", "b"}},
		},
		{
			name:  "multiple rows with mixed types",
			input: []interface{}{[]interface{}{"name", "count"}, []interface{}{"widgets", float64(42)}},
			want:  [][]interface{}{{"name", "count"}, {"widgets", float64(42)}},
		},
		{
			name:  "empty array",
			input: []interface{}{},
			want:  [][]interface{}{},
		},
		{
			name:    "not an array",
			input:   "a,b",
			wantErr: true,
		},
		{
			name:    "row not an array",
			input:   []interface{}{"a"},
			wantErr: true,
		},
		{
			name:    "nil",
			input:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseValues(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
