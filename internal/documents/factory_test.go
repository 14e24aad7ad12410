package documents

import (
	"testing"

	"github.com/teemow/gdocuments/internal/drive"
)

func TestItemFromInfoDispatch(t *testing.T) {
	m := &Manager{}

	tests := []struct {
		name     string
		mimeType string
		wantType string
	}{
		{
			name:     "folder",
			mimeType: drive.MimeTypeFolder,
			wantType: "*documents.Folder",
		},
		{
			name:     "document",
			mimeType: drive.MimeTypeDocument,
			wantType: "*documents.Document",
		},
		{
			name:     "spreadsheet",
			mimeType: drive.MimeTypeSpreadsheet,
			wantType: "*documents.Spreadsheet",
		},
		{
			name:     "unknown mime type falls back to plain file",
			mimeType: "application/pdf",
			wantType: "*documents.File",
		},
		{
			name:     "empty mime type falls back to plain file",
			mimeType: "",
			wantType: "*documents.File",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := m.itemFromInfo(&drive.FileInfo{
				ID:       "file-1",
				Name:     "test",
				MimeType: tt.mimeType,
			})

			var gotType string
			switch item.(type) {
			case *Spreadsheet:
				gotType = "*documents.Spreadsheet"
			case *Document:
				gotType = "*documents.Document"
			case *Folder:
				gotType = "*documents.Folder"
			case *File:
				gotType = "*documents.File"
			}

			if gotType != tt.wantType {
				t.Errorf("itemFromInfo() returned %s, want %s", gotType, tt.wantType)
			}
		})
	}
}

func TestItemFromInfoPopulatesFile(t *testing.T) {
	m := &Manager{}

	item := m.itemFromInfo(&drive.FileInfo{
		ID:       "doc-1",
		Name:     "notes",
		MimeType: drive.MimeTypeDocument,
	})

	info := item.Info()
	if info.ID != "doc-1" {
		t.Errorf("ID = %q, want doc-1", info.ID)
	}
	if info.Name != "notes" {
		t.Errorf("Name = %q, want notes", info.Name)
	}
	if info.MIMEType != drive.MimeTypeDocument {
		t.Errorf("MIMEType = %q, want %q", info.MIMEType, drive.MimeTypeDocument)
	}
	if info.Manager() != m {
		t.Error("item is not attached to the manager that loaded it")
	}
}

func TestSpreadsheetIsADocument(t *testing.T) {
	m := &Manager{}

	item := m.itemFromInfo(&drive.FileInfo{
		ID:       "ss-1",
		MimeType: drive.MimeTypeSpreadsheet,
	})

	// The embedding hierarchy makes a spreadsheet usable wherever a
	// document is expected.
	ss, ok := item.(*Spreadsheet)
	if !ok {
		t.Fatalf("itemFromInfo() returned %T, want *Spreadsheet", item)
	}
	var _ *Document = &ss.Document
}

func TestFolderRef(t *testing.T) {
	m := &Manager{}

	folder := m.folderRef("folder-1")
	if folder.ID != "folder-1" {
		t.Errorf("ID = %q, want folder-1", folder.ID)
	}
	if folder.MIMEType != drive.MimeTypeFolder {
		t.Errorf("MIMEType = %q, want %q", folder.MIMEType, drive.MimeTypeFolder)
	}
	// Metadata is not fetched, only the ID is known
	if folder.Name != "" {
		t.Errorf("Name = %q, want empty", folder.Name)
	}
}
