package documents

import (
	"context"
	"fmt"
	"io"

	"github.com/teemow/gdocuments/internal/drive"
	"github.com/teemow/gdocuments/internal/sheets"
)

// Spreadsheet wraps a Google Sheet file. Range operations go through the
// Sheets API; file operations are inherited from Document.
type Spreadsheet struct {
	Document
}

// URL returns a browser link to the spreadsheet.
func (s *Spreadsheet) URL() string {
	return "https://docs.google.com/spreadsheets/d/" + s.ID
}

// Export writes the spreadsheet content to w in the given MIME type.
// An empty mimeType exports as xlsx.
func (s *Spreadsheet) Export(ctx context.Context, w io.Writer, mimeType string) error {
	return s.export(ctx, w, mimeType, drive.MimeTypeXlsx)
}

// ExportToFile exports the spreadsheet into a local file.
func (s *Spreadsheet) ExportToFile(ctx context.Context, path, mimeType string) error {
	return s.exportToFile(ctx, path, mimeType, drive.MimeTypeXlsx)
}

// Read returns the cell values of a range in A1 notation.
func (s *Spreadsheet) Read(ctx context.Context, rangeName string) ([][]interface{}, error) {
	if s.mgr == nil {
		return nil, ErrNotManaged
	}

	return s.mgr.ReadRange(ctx, s.ID, rangeName)
}

// Write writes cell values into a range in A1 notation. An empty
// valueInputOption defaults to RAW.
func (s *Spreadsheet) Write(ctx context.Context, rangeName string, values [][]interface{}, valueInputOption string) (*sheets.UpdateResult, error) {
	if s.mgr == nil {
		return nil, ErrNotManaged
	}

	return s.mgr.WriteRange(ctx, s.ID, rangeName, values, valueInputOption)
}

// Clear clears the cell values of a range in A1 notation.
func (s *Spreadsheet) Clear(ctx context.Context, rangeName string) error {
	if s.mgr == nil {
		return ErrNotManaged
	}

	return s.mgr.ClearRange(ctx, s.ID, rangeName)
}

// Sheets lists the sheets (tabs) of the spreadsheet, each attached to this
// spreadsheet. The listing is re-fetched on every call.
func (s *Spreadsheet) Sheets(ctx context.Context) ([]*Sheet, error) {
	if s.mgr == nil {
		return nil, ErrNotManaged
	}

	props, err := s.mgr.ListSheets(ctx, s.ID)
	if err != nil {
		return nil, err
	}

	result := make([]*Sheet, len(props))
	for i, p := range props {
		result[i] = newSheet(p, s)
	}

	return result, nil
}

// Sheet returns the sheet with the given title, or an error if no such
// sheet exists.
func (s *Spreadsheet) Sheet(ctx context.Context, title string) (*Sheet, error) {
	all, err := s.Sheets(ctx)
	if err != nil {
		return nil, err
	}

	for _, sheet := range all {
		if sheet.Title == title {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("spreadsheet %s has no sheet titled %q", s.ID, title)
}

// AddSheet adds a new sheet to the spreadsheet and returns it attached.
func (s *Spreadsheet) AddSheet(ctx context.Context, properties *sheets.SheetProperties) (*Sheet, error) {
	if s.mgr == nil {
		return nil, ErrNotManaged
	}

	created, err := s.mgr.AddSheet(ctx, s.ID, properties)
	if err != nil {
		return nil, err
	}

	return newSheet(created, s), nil
}
