package documents

import (
	"github.com/teemow/gdocuments/internal/drive"
)

// Item is implemented by every wrapper type in the hierarchy (File, Folder,
// Document, Spreadsheet).
type Item interface {
	// Info returns the common file metadata
	Info() *File

	// URL returns a browser link to the resource
	URL() string
}

// wrapperConstructors is the dispatch table from MIME type to wrapper
// constructor. MIME types without an entry produce a plain File.
var wrapperConstructors = map[string]func(File) Item{
	drive.MimeTypeFolder:      newFolderItem,
	drive.MimeTypeDocument:    newDocumentItem,
	drive.MimeTypeSpreadsheet: newSpreadsheetItem,
}

func newFileItem(f File) Item {
	return &f
}

func newFolderItem(f File) Item {
	return &Folder{File: f}
}

func newDocumentItem(f File) Item {
	return &Document{File: f}
}

func newSpreadsheetItem(f File) Item {
	return &Spreadsheet{Document: Document{File: f}}
}

// wrapperForMIMEType returns the constructor for the given MIME type.
func wrapperForMIMEType(mimeType string) func(File) Item {
	if c, ok := wrapperConstructors[mimeType]; ok {
		return c
	}
	return newFileItem
}

// itemFromInfo builds the wrapper matching the MIME type of a raw Drive
// item.
func (m *Manager) itemFromInfo(info *drive.FileInfo) Item {
	return wrapperForMIMEType(info.MimeType)(File{
		ID:       info.ID,
		Name:     info.Name,
		MIMEType: info.MimeType,
		mgr:      m,
	})
}

// folderRef builds a folder wrapper from an ID alone, without fetching
// metadata. Used for the weak parent relation.
func (m *Manager) folderRef(id string) *Folder {
	return &Folder{File: File{
		ID:       id,
		MIMEType: drive.MimeTypeFolder,
		mgr:      m,
	}}
}
