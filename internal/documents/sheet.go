package documents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/teemow/gdocuments/internal/sheets"
)

// ErrNoSpreadsheet indicates a sheet operation on a sheet that is not
// attached to an owning spreadsheet. Sheets obtained through
// Spreadsheet.Sheets are always attached; a sheet is detached after Delete.
var ErrNoSpreadsheet = errors.New("sheet has no owning spreadsheet")

// Sheet wraps a single sheet (tab) of a spreadsheet. It holds a
// back-reference to its owning spreadsheet, not ownership: deleting the
// sheet does not affect the Spreadsheet wrapper.
type Sheet struct {
	// ID is the numeric sheet ID, unique within the spreadsheet
	ID int64 `json:"sheetId"`

	// Index is the zero-based tab position
	Index int64 `json:"index"`

	// Title is the sheet name shown on the tab
	Title string `json:"title"`

	// TabColor is the tab color, if set
	TabColor *sheets.Color `json:"tabColor,omitempty"`

	// Grid holds the grid dimensions, if known
	Grid *sheets.GridProperties `json:"gridProperties,omitempty"`

	spreadsheet *Spreadsheet
}

// newSheet builds a Sheet from API properties, attached to its owning
// spreadsheet.
func newSheet(p *sheets.SheetProperties, owner *Spreadsheet) *Sheet {
	return &Sheet{
		ID:          p.ID,
		Index:       p.Index,
		Title:       p.Title,
		TabColor:    p.TabColor,
		Grid:        p.Grid,
		spreadsheet: owner,
	}
}

// Spreadsheet returns the owning spreadsheet, or nil if the sheet is
// detached.
func (sh *Sheet) Spreadsheet() *Spreadsheet {
	return sh.spreadsheet
}

// Equal reports whether both sheets refer to the same remote sheet: same
// owning spreadsheet and same sheet ID. Detached sheets are never equal.
func (sh *Sheet) Equal(other *Sheet) bool {
	if sh == nil || other == nil {
		return false
	}
	if sh.spreadsheet == nil || other.spreadsheet == nil {
		return false
	}
	return sh.spreadsheet.Equal(&other.spreadsheet.File) && sh.ID == other.ID
}

// String implements fmt.Stringer.
func (sh *Sheet) String() string {
	return fmt.Sprintf("%s (sheet %d)", sh.Title, sh.ID)
}

// RangeName qualifies a range in A1 notation with the sheet title
// ("A1:B2" -> "Sheet1!A1:B2"). Titles that could confuse the range parser
// are quoted.
func (sh *Sheet) RangeName(rangeName string) string {
	return quoteSheetTitle(sh.Title) + "!" + rangeName
}

// Read reads a range of the sheet. Fails fast with ErrNoSpreadsheet on a
// detached sheet.
func (sh *Sheet) Read(ctx context.Context, rangeName string) ([][]interface{}, error) {
	if sh.spreadsheet == nil {
		return nil, ErrNoSpreadsheet
	}

	return sh.spreadsheet.Read(ctx, sh.RangeName(rangeName))
}

// Write writes values into a range of the sheet. Fails fast with
// ErrNoSpreadsheet on a detached sheet.
func (sh *Sheet) Write(ctx context.Context, rangeName string, values [][]interface{}, valueInputOption string) (*sheets.UpdateResult, error) {
	if sh.spreadsheet == nil {
		return nil, ErrNoSpreadsheet
	}

	return sh.spreadsheet.Write(ctx, sh.RangeName(rangeName), values, valueInputOption)
}

// Clear clears a range of the sheet. Fails fast with ErrNoSpreadsheet on a
// detached sheet.
func (sh *Sheet) Clear(ctx context.Context, rangeName string) error {
	if sh.spreadsheet == nil {
		return ErrNoSpreadsheet
	}

	return sh.spreadsheet.Clear(ctx, sh.RangeName(rangeName))
}

// Delete removes the sheet from its spreadsheet and detaches it.
func (sh *Sheet) Delete(ctx context.Context) error {
	if sh.spreadsheet == nil {
		return ErrNoSpreadsheet
	}
	if sh.spreadsheet.mgr == nil {
		return ErrNotManaged
	}

	if err := sh.spreadsheet.mgr.DeleteSheet(ctx, sh.spreadsheet.ID, sh.ID); err != nil {
		return err
	}

	sh.spreadsheet = nil
	return nil
}

// quoteSheetTitle wraps the title in single quotes when it contains
// characters that are ambiguous in A1 notation. Embedded quotes are doubled
// per the Sheets grammar.
func quoteSheetTitle(title string) string {
	plain := true
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			plain = false
		}
	}
	if plain && title != "" {
		return title
	}

	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}
