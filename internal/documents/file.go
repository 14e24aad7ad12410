package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/teemow/gdocuments/internal/drive"
)

var (
	// ErrNotManaged indicates a wrapper that was created without a Manager
	// and therefore cannot reach the API.
	ErrNotManaged = errors.New("object is not attached to a manager")

	// ErrWrongMIMEType indicates that a typed lookup found a resource of a
	// different type.
	ErrWrongMIMEType = errors.New("resource has unexpected MIME type")
)

// File wraps a Google Drive file. It holds identifying metadata only;
// everything else is fetched on demand.
type File struct {
	// ID is the Drive file ID
	ID string `json:"id"`

	// Name is the file name
	Name string `json:"name"`

	// MIMEType is the Drive MIME type, used for wrapper dispatch
	MIMEType string `json:"mimeType"`

	mgr *Manager
}

// Manager returns the manager this file was loaded through.
func (f *File) Manager() *Manager {
	return f.mgr
}

// Equal reports whether both files refer to the same remote resource.
// Identity is the remote ID, never object identity.
func (f *File) Equal(other *File) bool {
	if f == nil || other == nil {
		return false
	}
	return f.ID != "" && f.ID == other.ID
}

// FileID returns the remote Drive identifier. The drive query builder uses
// it to resolve folder filter values passed as wrappers.
func (f *File) FileID() string {
	return f.ID
}

// URL returns a browser link to the file.
func (f *File) URL() string {
	return "https://docs.google.com/document/d/" + f.ID
}

// String implements fmt.Stringer.
func (f *File) String() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ID
}

// Info returns the file itself. It makes every wrapper in the hierarchy
// satisfy the Item interface through embedding.
func (f *File) Info() *File {
	return f
}

// Parents returns the parent folders of the file. The relation is weak:
// only the folder IDs are populated and the list is re-fetched on every
// call.
func (f *File) Parents(ctx context.Context) ([]*Folder, error) {
	if f.mgr == nil {
		return nil, ErrNotManaged
	}

	ids, err := f.mgr.GetParents(ctx, f.ID)
	if err != nil {
		return nil, err
	}

	folders := make([]*Folder, len(ids))
	for i, id := range ids {
		folders[i] = f.mgr.folderRef(id)
	}

	return folders, nil
}

// Copy creates a server-side copy of the file under the given name and
// returns the wrapper for the copy.
func (f *File) Copy(ctx context.Context, name string) (Item, error) {
	if f.mgr == nil {
		return nil, ErrNotManaged
	}

	info, err := f.mgr.CopyFile(ctx, f.ID, name)
	if err != nil {
		return nil, err
	}

	return f.mgr.itemFromInfo(info), nil
}

// Delete removes the file from Google Drive.
func (f *File) Delete(ctx context.Context) error {
	if f.mgr == nil {
		return ErrNotManaged
	}

	return f.mgr.DeleteFile(ctx, f.ID)
}

// MoveToFolder adds the file to the given folder.
func (f *File) MoveToFolder(ctx context.Context, folder *Folder) error {
	if f.mgr == nil {
		return ErrNotManaged
	}
	if folder == nil {
		return fmt.Errorf("destination folder is required")
	}

	_, err := f.mgr.MoveFile(ctx, f.ID, &drive.MoveOptions{
		AddParents: []string{folder.ID},
	})
	return err
}

// Download streams the raw content of the file. The caller must close the
// returned reader.
func (f *File) Download(ctx context.Context) (io.ReadCloser, error) {
	if f.mgr == nil {
		return nil, ErrNotManaged
	}

	return f.mgr.DownloadFile(ctx, f.ID)
}

// Folder wraps a Google Drive folder.
type Folder struct {
	File
}

// URL returns a browser link to the folder.
func (fo *Folder) URL() string {
	return "https://drive.google.com/drive/folders/" + fo.ID
}

// Children lists the direct children of the folder, each dispatched to the
// wrapper type matching its MIME type. The listing is re-fetched on every
// call.
func (fo *Folder) Children(ctx context.Context) ([]Item, error) {
	if fo.mgr == nil {
		return nil, ErrNotManaged
	}

	return fo.mgr.Filter(ctx, drive.Filters{drive.FilterKeyFolder: fo.ID})
}

// Contains reports whether the given file has this folder among its
// parents.
func (fo *Folder) Contains(ctx context.Context, f *File) (bool, error) {
	if f == nil {
		return false, nil
	}

	parents, err := f.Parents(ctx)
	if err != nil {
		return false, err
	}

	for _, parent := range parents {
		if parent.ID == fo.ID {
			return true, nil
		}
	}

	return false, nil
}

// Document wraps a Google Doc.
type Document struct {
	File
}

// Export writes the document content to w in the given MIME type.
// An empty mimeType exports as docx.
func (d *Document) Export(ctx context.Context, w io.Writer, mimeType string) error {
	return d.export(ctx, w, mimeType, drive.MimeTypeDocx)
}

// ExportToFile exports the document into a local file.
func (d *Document) ExportToFile(ctx context.Context, path, mimeType string) error {
	return d.exportToFile(ctx, path, mimeType, drive.MimeTypeDocx)
}

// Update replaces the document content with r, converting from the given
// MIME type. An empty mimeType assumes docx.
func (d *Document) Update(ctx context.Context, r io.Reader, mimeType string) error {
	if d.mgr == nil {
		return ErrNotManaged
	}
	if mimeType == "" {
		mimeType = drive.MimeTypeDocx
	}

	_, err := d.mgr.UpdateContent(ctx, d.ID, r, mimeType)
	return err
}

// UpdateFromFile replaces the document content with the content of a local
// file.
func (d *Document) UpdateFromFile(ctx context.Context, path, mimeType string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	return d.Update(ctx, f, mimeType)
}

func (d *Document) export(ctx context.Context, w io.Writer, mimeType, defaultMimeType string) error {
	if d.mgr == nil {
		return ErrNotManaged
	}
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	return d.mgr.ExportFile(ctx, d.ID, mimeType, w)
}

func (d *Document) exportToFile(ctx context.Context, path, mimeType, defaultMimeType string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}

	if err := d.export(ctx, f, mimeType, defaultMimeType); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
