package sheets

import sheets "google.golang.org/api/sheets/v4"

// Value input options for writing ranges.
const (
	// ValueInputRaw stores values exactly as provided
	ValueInputRaw = "RAW"

	// ValueInputUserEntered parses values as if typed into the sheet UI
	// (numbers, dates and formulas are recognized)
	ValueInputUserEntered = "USER_ENTERED"
)

// Color is an RGB color with float channels in [0, 1], as used for sheet
// tab colors.
type Color struct {
	// Red is the red channel
	Red float64 `json:"red"`

	// Green is the green channel
	Green float64 `json:"green"`

	// Blue is the blue channel
	Blue float64 `json:"blue"`
}

// toAPI converts the color to its Sheets API representation
func (c *Color) toAPI() *sheets.Color {
	if c == nil {
		return nil
	}
	return &sheets.Color{
		Red:   c.Red,
		Green: c.Green,
		Blue:  c.Blue,
	}
}

// colorFromAPI converts a Sheets API color to our Color type
func colorFromAPI(c *sheets.Color) *Color {
	if c == nil {
		return nil
	}
	return &Color{
		Red:   c.Red,
		Green: c.Green,
		Blue:  c.Blue,
	}
}

// GridProperties describes the dimensions of a sheet grid.
type GridProperties struct {
	// RowCount is the number of rows in the grid
	RowCount int64 `json:"rowCount"`

	// ColumnCount is the number of columns in the grid
	ColumnCount int64 `json:"columnCount"`
}

// toAPI converts the grid properties to their Sheets API representation
func (g *GridProperties) toAPI() *sheets.GridProperties {
	if g == nil {
		return nil
	}
	return &sheets.GridProperties{
		RowCount:    g.RowCount,
		ColumnCount: g.ColumnCount,
	}
}

// gridPropertiesFromAPI converts Sheets API grid properties to our GridProperties type
func gridPropertiesFromAPI(g *sheets.GridProperties) *GridProperties {
	if g == nil {
		return nil
	}
	return &GridProperties{
		RowCount:    g.RowCount,
		ColumnCount: g.ColumnCount,
	}
}

// SheetProperties mirrors the properties of a single sheet (tab) within a
// spreadsheet.
type SheetProperties struct {
	// ID is the numeric sheet ID, unique within the spreadsheet
	ID int64 `json:"sheetId"`

	// Index is the zero-based position of the sheet
	Index int64 `json:"index"`

	// Title is the sheet name shown on the tab
	Title string `json:"title"`

	// TabColor is the tab color, if set
	TabColor *Color `json:"tabColor,omitempty"`

	// Grid holds the grid dimensions, if the sheet is a grid
	Grid *GridProperties `json:"gridProperties,omitempty"`
}

// toAPI converts the sheet properties to their Sheets API representation
func (p *SheetProperties) toAPI() *sheets.SheetProperties {
	if p == nil {
		return nil
	}
	return &sheets.SheetProperties{
		SheetId:        p.ID,
		Index:          p.Index,
		Title:          p.Title,
		TabColor:       p.TabColor.toAPI(),
		GridProperties: p.Grid.toAPI(),
	}
}

// SpreadsheetInfo represents spreadsheet metadata and its sheets.
type SpreadsheetInfo struct {
	// ID is the spreadsheet ID
	ID string `json:"spreadsheetId"`

	// Title is the spreadsheet title
	Title string `json:"title"`

	// URL is a link for opening the spreadsheet in the Sheets editor
	URL string `json:"spreadsheetUrl,omitempty"`

	// Sheets are the properties of the sheets in the spreadsheet
	Sheets []*SheetProperties `json:"sheets,omitempty"`
}

// UpdateResult describes the outcome of a range write.
type UpdateResult struct {
	// UpdatedRange is the range that was actually written, in A1 notation
	UpdatedRange string `json:"updatedRange"`

	// UpdatedRows is the number of rows written
	UpdatedRows int64 `json:"updatedRows"`

	// UpdatedColumns is the number of columns written
	UpdatedColumns int64 `json:"updatedColumns"`

	// UpdatedCells is the number of cells written
	UpdatedCells int64 `json:"updatedCells"`
}
