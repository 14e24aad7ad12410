package documents

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/teemow/gdocuments/internal/drive"
	"github.com/teemow/gdocuments/internal/google"
	"github.com/teemow/gdocuments/internal/instrumentation"
	"github.com/teemow/gdocuments/internal/logging"
	"github.com/teemow/gdocuments/internal/sheets"
)

// Manager resolves the API clients for one account and converts raw API
// responses into wrapper objects.
type Manager struct {
	drive   *drive.Client
	sheets  *sheets.Client
	account string

	logger  *slog.Logger
	metrics *instrumentation.Metrics
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for operation logging.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder for API operation metrics.
func WithMetrics(metrics *instrumentation.Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// NewManagerForAccount creates a Manager for the given account name. The
// service-account key file is resolved through the environment (see the
// google package).
func NewManagerForAccount(ctx context.Context, account string, opts ...Option) (*Manager, error) {
	driveClient, err := drive.NewClientForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	sheetsClient, err := sheets.NewClientForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	return newManager(driveClient, sheetsClient, account, opts...), nil
}

// NewManager creates a Manager for the default account.
func NewManager(ctx context.Context, opts ...Option) (*Manager, error) {
	return NewManagerForAccount(ctx, google.DefaultAccount, opts...)
}

// NewManagerForKeyFile creates a Manager from an explicit service-account
// key file path.
func NewManagerForKeyFile(ctx context.Context, keyFile string, opts ...Option) (*Manager, error) {
	driveClient, err := drive.NewClientForKeyFile(ctx, keyFile)
	if err != nil {
		return nil, err
	}

	sheetsClient, err := sheets.NewClientForKeyFile(ctx, keyFile)
	if err != nil {
		return nil, err
	}

	return newManager(driveClient, sheetsClient, keyFile, opts...), nil
}

// NewManagerWithClients creates a Manager from pre-built clients. Intended
// for wiring in servers that cache clients per account.
func NewManagerWithClients(driveClient *drive.Client, sheetsClient *sheets.Client, opts ...Option) *Manager {
	account := ""
	if driveClient != nil {
		account = driveClient.Account()
	}
	return newManager(driveClient, sheetsClient, account, opts...)
}

func newManager(driveClient *drive.Client, sheetsClient *sheets.Client, account string, opts ...Option) *Manager {
	m := &Manager{
		drive:   driveClient,
		sheets:  sheetsClient,
		account: account,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.logger = logging.WithAccount(m.logger, account)
	return m
}

// Account returns the account name this manager is bound to.
func (m *Manager) Account() string {
	return m.account
}

// Drive exposes the underlying Drive client.
func (m *Manager) Drive() *drive.Client {
	return m.drive
}

// Sheets exposes the underlying Sheets client.
func (m *Manager) Sheets() *sheets.Client {
	return m.sheets
}

// Get fetches a file by ID and returns the wrapper matching its MIME type.
func (m *Manager) Get(ctx context.Context, id string) (Item, error) {
	done := m.observe(ctx, "drive", "get")

	info, err := m.drive.GetFile(ctx, id)
	done(err)
	if err != nil {
		return nil, err
	}

	return m.itemFromInfo(info), nil
}

// File fetches a file by ID as a plain File wrapper, regardless of its MIME
// type.
func (m *Manager) File(ctx context.Context, id string) (*File, error) {
	item, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return item.Info(), nil
}

// Folder fetches a folder by ID. Returns ErrWrongMIMEType (wrapped) when
// the resource is not a folder.
func (m *Manager) Folder(ctx context.Context, id string) (*Folder, error) {
	item, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	folder, ok := item.(*Folder)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, not a folder", ErrWrongMIMEType, id, item.Info().MIMEType)
	}

	return folder, nil
}

// Document fetches a Google Doc by ID. Returns ErrWrongMIMEType (wrapped)
// when the resource is not a document. Spreadsheets qualify, since they
// specialize documents.
func (m *Manager) Document(ctx context.Context, id string) (*Document, error) {
	item, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch v := item.(type) {
	case *Document:
		return v, nil
	case *Spreadsheet:
		return &v.Document, nil
	default:
		return nil, fmt.Errorf("%w: %s is %s, not a document", ErrWrongMIMEType, id, item.Info().MIMEType)
	}
}

// Spreadsheet fetches a Google Sheet by ID. Returns ErrWrongMIMEType
// (wrapped) when the resource is not a spreadsheet.
func (m *Manager) Spreadsheet(ctx context.Context, id string) (*Spreadsheet, error) {
	item, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	spreadsheet, ok := item.(*Spreadsheet)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %s, not a spreadsheet", ErrWrongMIMEType, id, item.Info().MIMEType)
	}

	return spreadsheet, nil
}

// Filter lists files matching the given keyword filters and returns them as
// dispatched wrappers.
func (m *Manager) Filter(ctx context.Context, filters drive.Filters) ([]Item, error) {
	return m.filterMime(ctx, filters, "")
}

// FilterFolders lists folders matching the given keyword filters.
func (m *Manager) FilterFolders(ctx context.Context, filters drive.Filters) ([]*Folder, error) {
	items, err := m.filterMime(ctx, filters, drive.MimeTypeFolder)
	if err != nil {
		return nil, err
	}

	folders := make([]*Folder, 0, len(items))
	for _, item := range items {
		if folder, ok := item.(*Folder); ok {
			folders = append(folders, folder)
		}
	}
	return folders, nil
}

// FilterDocuments lists Google Docs matching the given keyword filters.
func (m *Manager) FilterDocuments(ctx context.Context, filters drive.Filters) ([]*Document, error) {
	items, err := m.filterMime(ctx, filters, drive.MimeTypeDocument)
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, 0, len(items))
	for _, item := range items {
		if doc, ok := item.(*Document); ok {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// FilterSpreadsheets lists Google Sheets matching the given keyword
// filters.
func (m *Manager) FilterSpreadsheets(ctx context.Context, filters drive.Filters) ([]*Spreadsheet, error) {
	items, err := m.filterMime(ctx, filters, drive.MimeTypeSpreadsheet)
	if err != nil {
		return nil, err
	}

	spreadsheets := make([]*Spreadsheet, 0, len(items))
	for _, item := range items {
		if s, ok := item.(*Spreadsheet); ok {
			spreadsheets = append(spreadsheets, s)
		}
	}
	return spreadsheets, nil
}

func (m *Manager) filterMime(ctx context.Context, filters drive.Filters, mimeType string) ([]Item, error) {
	query := filters.WithMimeType(mimeType).Query()
	infos, _, err := m.ListFiles(ctx, &drive.ListOptions{
		Query:  query,
		Spaces: "drive",
	})
	if err != nil {
		return nil, err
	}

	m.logger.Debug("filtered files",
		logging.Operation("filter"),
		slog.String("query", query),
		slog.Int("results", len(infos)),
	)

	items := make([]Item, len(infos))
	for i, info := range infos {
		items[i] = m.itemFromInfo(info)
	}

	return items, nil
}

// CreateFolder creates a folder, optionally inside a parent folder.
func (m *Manager) CreateFolder(ctx context.Context, name string, parent *Folder) (*Folder, error) {
	done := m.observe(ctx, "drive", "create")

	var parents []string
	if parent != nil {
		parents = []string{parent.ID}
	}

	info, err := m.drive.CreateFolder(ctx, name, parents)
	done(err)
	if err != nil {
		return nil, err
	}

	folder, ok := m.itemFromInfo(info).(*Folder)
	if !ok {
		return nil, fmt.Errorf("created resource %s is not a folder", info.ID)
	}

	return folder, nil
}

// CreateDocument uploads content as a new Google Doc, converting from the
// given MIME type.
func (m *Manager) CreateDocument(ctx context.Context, name string, content io.Reader, mimeType string) (*Document, error) {
	info, err := m.UploadFile(ctx, name, content, &drive.UploadOptions{
		MimeType:  mimeType,
		ConvertTo: drive.MimeTypeDocument,
	})
	if err != nil {
		return nil, err
	}

	document, ok := m.itemFromInfo(info).(*Document)
	if !ok {
		return nil, fmt.Errorf("created resource %s is not a document", info.ID)
	}

	return document, nil
}

// CreateSpreadsheet creates an empty spreadsheet with the given title.
func (m *Manager) CreateSpreadsheet(ctx context.Context, title string) (*Spreadsheet, error) {
	done := m.observe(ctx, "sheets", "create")

	info, err := m.sheets.CreateSpreadsheet(ctx, title)
	done(err)
	if err != nil {
		return nil, err
	}

	spreadsheet, ok := m.itemFromInfo(&drive.FileInfo{
		ID:       info.ID,
		Name:     info.Title,
		MimeType: drive.MimeTypeSpreadsheet,
	}).(*Spreadsheet)
	if !ok {
		return nil, fmt.Errorf("created resource %s is not a spreadsheet", info.ID)
	}

	return spreadsheet, nil
}

// The methods below mirror the raw client operations, timed through
// observe() so the Google API metrics cover the full operation set. The
// entity wrappers and the MCP tools delegate here instead of calling the
// clients directly.

// UploadFile uploads content as a new Drive file.
func (m *Manager) UploadFile(ctx context.Context, name string, content io.Reader, options *drive.UploadOptions) (*drive.FileInfo, error) {
	done := m.observe(ctx, "drive", "create")
	info, err := m.drive.UploadFile(ctx, name, content, options)
	done(err)
	return info, err
}

// ListFiles lists Drive files for a raw query.
func (m *Manager) ListFiles(ctx context.Context, options *drive.ListOptions) ([]*drive.FileInfo, string, error) {
	done := m.observe(ctx, "drive", "list")
	infos, nextPageToken, err := m.drive.ListFiles(ctx, options)
	done(err)
	return infos, nextPageToken, err
}

// DownloadFile streams the raw content of a Drive file.
func (m *Manager) DownloadFile(ctx context.Context, fileID string) (io.ReadCloser, error) {
	done := m.observe(ctx, "drive", "get")
	r, err := m.drive.DownloadFile(ctx, fileID)
	done(err)
	return r, err
}

// CopyFile creates a server-side copy of a Drive file.
func (m *Manager) CopyFile(ctx context.Context, fileID, name string) (*drive.FileInfo, error) {
	done := m.observe(ctx, "drive", "copy")
	info, err := m.drive.CopyFile(ctx, fileID, name)
	done(err)
	return info, err
}

// DeleteFile removes a Drive file.
func (m *Manager) DeleteFile(ctx context.Context, fileID string) error {
	done := m.observe(ctx, "drive", "delete")
	err := m.drive.DeleteFile(ctx, fileID)
	done(err)
	return err
}

// MoveFile renames a Drive file or changes its parent folders.
func (m *Manager) MoveFile(ctx context.Context, fileID string, options *drive.MoveOptions) (*drive.FileInfo, error) {
	done := m.observe(ctx, "drive", "move")
	info, err := m.drive.MoveFile(ctx, fileID, options)
	done(err)
	return info, err
}

// GetParents returns the parent folder IDs of a Drive file.
func (m *Manager) GetParents(ctx context.Context, fileID string) ([]string, error) {
	done := m.observe(ctx, "drive", "list")
	ids, err := m.drive.GetParents(ctx, fileID)
	done(err)
	return ids, err
}

// ExportFile exports a Google-native file to w in the given MIME type.
func (m *Manager) ExportFile(ctx context.Context, fileID, mimeType string, w io.Writer) error {
	done := m.observe(ctx, "drive", "export")
	err := m.drive.ExportFile(ctx, fileID, mimeType, w)
	done(err)
	return err
}

// UpdateContent replaces the content of a Drive file.
func (m *Manager) UpdateContent(ctx context.Context, fileID string, content io.Reader, mimeType string) (*drive.FileInfo, error) {
	done := m.observe(ctx, "drive", "update")
	info, err := m.drive.UpdateContent(ctx, fileID, content, mimeType)
	done(err)
	return info, err
}

// ShareFile grants a permission on a Drive file.
func (m *Manager) ShareFile(ctx context.Context, fileID string, options *drive.ShareOptions) (*drive.Permission, error) {
	done := m.observe(ctx, "drive", "share")
	permission, err := m.drive.ShareFile(ctx, fileID, options)
	done(err)
	return permission, err
}

// ListPermissions lists the permissions on a Drive file.
func (m *Manager) ListPermissions(ctx context.Context, fileID string) ([]*drive.Permission, error) {
	done := m.observe(ctx, "drive", "list")
	permissions, err := m.drive.ListPermissions(ctx, fileID)
	done(err)
	return permissions, err
}

// RemovePermission revokes a permission on a Drive file.
func (m *Manager) RemovePermission(ctx context.Context, fileID, permissionID string) error {
	done := m.observe(ctx, "drive", "share")
	err := m.drive.RemovePermission(ctx, fileID, permissionID)
	done(err)
	return err
}

// GetSpreadsheet fetches spreadsheet metadata including sheet properties.
func (m *Manager) GetSpreadsheet(ctx context.Context, spreadsheetID string) (*sheets.SpreadsheetInfo, error) {
	done := m.observe(ctx, "sheets", "get")
	info, err := m.sheets.GetSpreadsheet(ctx, spreadsheetID)
	done(err)
	return info, err
}

// ReadRange reads cell values from a range in A1 notation.
func (m *Manager) ReadRange(ctx context.Context, spreadsheetID, rangeName string) ([][]interface{}, error) {
	done := m.observe(ctx, "sheets", "read")
	values, err := m.sheets.ReadRange(ctx, spreadsheetID, rangeName)
	done(err)
	return values, err
}

// WriteRange writes cell values into a range in A1 notation.
func (m *Manager) WriteRange(ctx context.Context, spreadsheetID, rangeName string, values [][]interface{}, valueInputOption string) (*sheets.UpdateResult, error) {
	done := m.observe(ctx, "sheets", "write")
	result, err := m.sheets.WriteRange(ctx, spreadsheetID, rangeName, values, valueInputOption)
	done(err)
	return result, err
}

// ClearRange clears the cell values of a range in A1 notation.
func (m *Manager) ClearRange(ctx context.Context, spreadsheetID, rangeName string) error {
	done := m.observe(ctx, "sheets", "clear")
	err := m.sheets.ClearRange(ctx, spreadsheetID, rangeName)
	done(err)
	return err
}

// ListSheets lists the sheet properties of a spreadsheet.
func (m *Manager) ListSheets(ctx context.Context, spreadsheetID string) ([]*sheets.SheetProperties, error) {
	done := m.observe(ctx, "sheets", "list")
	props, err := m.sheets.ListSheets(ctx, spreadsheetID)
	done(err)
	return props, err
}

// AddSheet adds a sheet to a spreadsheet.
func (m *Manager) AddSheet(ctx context.Context, spreadsheetID string, properties *sheets.SheetProperties) (*sheets.SheetProperties, error) {
	done := m.observe(ctx, "sheets", "create")
	created, err := m.sheets.AddSheet(ctx, spreadsheetID, properties)
	done(err)
	return created, err
}

// DeleteSheet removes a sheet from a spreadsheet.
func (m *Manager) DeleteSheet(ctx context.Context, spreadsheetID string, sheetID int64) error {
	done := m.observe(ctx, "sheets", "delete")
	err := m.sheets.DeleteSheet(ctx, spreadsheetID, sheetID)
	done(err)
	return err
}

// observe starts timing an API operation. The returned function records
// metrics and logs once with the final error.
func (m *Manager) observe(ctx context.Context, service, operation string) func(error) {
	start := time.Now()

	return func(err error) {
		duration := time.Since(start)

		if m.metrics != nil {
			status := instrumentation.StatusSuccess
			if err != nil {
				status = instrumentation.StatusError
			}
			m.metrics.RecordGoogleAPIOperation(ctx, service, operation, status, duration)
		}

		if err != nil {
			m.logger.Debug("api operation failed",
				logging.Service(service),
				logging.Operation(operation),
				slog.Duration(logging.KeyDuration, duration),
				logging.Err(err),
			)
		}
	}
}
