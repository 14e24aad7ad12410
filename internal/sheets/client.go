package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/teemow/gdocuments/internal/google"
)

// Client wraps the Google Sheets API service
type Client struct {
	service *sheets.Service
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasKeyFileForAccount checks if a service-account key file is configured for the specified account
func HasKeyFileForAccount(account string) bool {
	return google.HasKeyFileForAccount(account)
}

// NewClientForAccount creates a new Google Sheets client authenticated with
// the service account configured for the given account name.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.HTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no service account key found for account %s: %w", account, err)
	}

	sheetsService, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &Client{
		service: sheetsService,
		account: account,
	}, nil
}

// NewClient creates a new Google Sheets client for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, google.DefaultAccount)
}

// NewClientForKeyFile creates a new Google Sheets client from an explicit
// service-account key file path.
func NewClientForKeyFile(ctx context.Context, keyFile string) (*Client, error) {
	client, err := google.HTTPClientForKeyFile(ctx, keyFile)
	if err != nil {
		return nil, err
	}

	sheetsService, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &Client{
		service: sheetsService,
		account: keyFile,
	}, nil
}

// ReadRange returns the cell values of a range in A1 notation
func (c *Client) ReadRange(ctx context.Context, spreadsheetID, rangeName string) ([][]interface{}, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}
	if rangeName == "" {
		return nil, fmt.Errorf("range is required")
	}

	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, rangeName).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s of spreadsheet %s: %w", rangeName, spreadsheetID, err)
	}

	return resp.Values, nil
}

// WriteRange writes cell values into a range in A1 notation.
// valueInputOption controls how input is interpreted: ValueInputRaw stores
// values as-is, ValueInputUserEntered parses them as if typed into the UI.
func (c *Client) WriteRange(ctx context.Context, spreadsheetID, rangeName string, values [][]interface{}, valueInputOption string) (*UpdateResult, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}
	if rangeName == "" {
		return nil, fmt.Errorf("range is required")
	}
	if valueInputOption == "" {
		valueInputOption = ValueInputRaw
	}

	body := &sheets.ValueRange{
		Range:  rangeName,
		Values: values,
	}

	resp, err := c.service.Spreadsheets.Values.Update(spreadsheetID, rangeName, body).
		Context(ctx).
		ValueInputOption(valueInputOption).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to write range %s of spreadsheet %s: %w", rangeName, spreadsheetID, err)
	}

	return &UpdateResult{
		UpdatedRange:   resp.UpdatedRange,
		UpdatedRows:    resp.UpdatedRows,
		UpdatedColumns: resp.UpdatedColumns,
		UpdatedCells:   resp.UpdatedCells,
	}, nil
}

// ClearRange clears the cell values of a range in A1 notation
func (c *Client) ClearRange(ctx context.Context, spreadsheetID, rangeName string) error {
	if spreadsheetID == "" {
		return fmt.Errorf("spreadsheetID is required")
	}
	if rangeName == "" {
		return fmt.Errorf("range is required")
	}

	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, rangeName, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear range %s of spreadsheet %s: %w", rangeName, spreadsheetID, err)
	}

	return nil
}

// CreateSpreadsheet creates a new spreadsheet with the given title
func (c *Client) CreateSpreadsheet(ctx context.Context, title string) (*SpreadsheetInfo, error) {
	if title == "" {
		return nil, fmt.Errorf("spreadsheet title is required")
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: title,
		},
	}

	resp, err := c.service.Spreadsheets.Create(spreadsheet).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	return convertToSpreadsheetInfo(resp), nil
}

// GetSpreadsheet retrieves spreadsheet metadata including sheet properties
func (c *Client) GetSpreadsheet(ctx context.Context, spreadsheetID string) (*SpreadsheetInfo, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}

	resp, err := c.service.Spreadsheets.Get(spreadsheetID).
		Context(ctx).
		Fields("spreadsheetId, spreadsheetUrl, properties.title, sheets.properties").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet %s: %w", spreadsheetID, err)
	}

	return convertToSpreadsheetInfo(resp), nil
}

// ListSheets returns the sheet properties of all sheets in a spreadsheet
func (c *Client) ListSheets(ctx context.Context, spreadsheetID string) ([]*SheetProperties, error) {
	info, err := c.GetSpreadsheet(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}

	return info.Sheets, nil
}

// AddSheet adds a new sheet to a spreadsheet and returns its properties
func (c *Client) AddSheet(ctx context.Context, spreadsheetID string, properties *SheetProperties) (*SheetProperties, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}
	if properties == nil || properties.Title == "" {
		return nil, fmt.Errorf("sheet title is required")
	}

	// The sheet ID is assigned by the API; only title, position, color and
	// grid dimensions are sent.
	apiProps := properties.toAPI()
	apiProps.SheetId = 0

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				AddSheet: &sheets.AddSheetRequest{
					Properties: apiProps,
				},
			},
		},
	}

	resp, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, req).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to add sheet %q to spreadsheet %s: %w", properties.Title, spreadsheetID, err)
	}

	for _, r := range resp.Replies {
		if r.AddSheet != nil && r.AddSheet.Properties != nil {
			return convertToSheetProperties(r.AddSheet.Properties), nil
		}
	}

	return nil, fmt.Errorf("add sheet reply missing for spreadsheet %s", spreadsheetID)
}

// DeleteSheet removes a sheet from a spreadsheet by sheet ID
func (c *Client) DeleteSheet(ctx context.Context, spreadsheetID string, sheetID int64) error {
	if spreadsheetID == "" {
		return fmt.Errorf("spreadsheetID is required")
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				DeleteSheet: &sheets.DeleteSheetRequest{
					SheetId: sheetID,
				},
			},
		},
	}

	_, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, req).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to delete sheet %d from spreadsheet %s: %w", sheetID, spreadsheetID, err)
	}

	return nil
}

// convertToSpreadsheetInfo converts a Sheets API Spreadsheet to our SpreadsheetInfo type
func convertToSpreadsheetInfo(s *sheets.Spreadsheet) *SpreadsheetInfo {
	info := &SpreadsheetInfo{
		ID:  s.SpreadsheetId,
		URL: s.SpreadsheetUrl,
	}

	if s.Properties != nil {
		info.Title = s.Properties.Title
	}

	for _, sheet := range s.Sheets {
		if sheet.Properties != nil {
			info.Sheets = append(info.Sheets, convertToSheetProperties(sheet.Properties))
		}
	}

	return info
}

// convertToSheetProperties converts Sheets API sheet properties to our SheetProperties type
func convertToSheetProperties(p *sheets.SheetProperties) *SheetProperties {
	props := &SheetProperties{
		ID:    p.SheetId,
		Index: p.Index,
		Title: p.Title,
	}

	if p.TabColor != nil {
		props.TabColor = colorFromAPI(p.TabColor)
	}
	if p.GridProperties != nil {
		props.Grid = gridPropertiesFromAPI(p.GridProperties)
	}

	return props
}
