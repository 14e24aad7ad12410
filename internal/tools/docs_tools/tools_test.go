package docs_tools

import (
	"context"
	"io"
	"os"
	"testing"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/gdocuments/internal/server"
)

func TestRegisterDocsTools(t *testing.T) {
	os.Unsetenv("GOOGLE_DOCUMENT_SERVICE_JSON")

	ctx := context.Background()
	sc, err := server.NewServerContext(ctx)
	require.NoError(t, err)
	defer sc.Shutdown()

	s := mcpserver.NewMCPServer("test-server", "1.0.0")

	assert.NoError(t, RegisterDocsTools(s, sc, false))
}

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name         string
		args         map[string]interface{}
		want         string
		wantMimeType string
		wantErr      bool
	}{
		{
			name: "base64 content",
			args: map[string]interface{}{
				"content": "aGVsbG8=",
			},
			want:         "hello",
			wantMimeType: "",
		},
		{
			name: "plain text via isBase64 false",
			args: map[string]interface{}{
				"content":  "hello world",
				"isBase64": false,
			},
			want:         "hello world",
			wantMimeType: "text/plain",
		},
		{
			name: "text/plain defaults to not base64",
			args: map[string]interface{}{
				"content":  "plain content",
				"mimeType": "text/plain",
			},
			want:         "plain content",
			wantMimeType: "text/plain",
		},
		{
			name: "invalid base64",
			args: map[string]interface{}{
				"content": "not base64!!!",
			},
			wantErr: true,
		},
		{
			name:    "missing content",
			args:    map[string]interface{}{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, mimeType, errResult := decodeContent(tt.args)
			if tt.wantErr {
				assert.NotNil(t, errResult, "decodeContent() expected error result")
				return
			}
			require.Nil(t, errResult)
			content, err := io.ReadAll(reader)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))
			assert.Equal(t, tt.wantMimeType, mimeType)
		})
	}
}
