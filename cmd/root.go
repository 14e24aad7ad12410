package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/gdocuments/internal/documents"
	"github.com/teemow/gdocuments/internal/google"
	"github.com/teemow/gdocuments/internal/logging"
)

// rootCmd represents the base command for the gdocuments application
var rootCmd = &cobra.Command{
	Use:   "gdocuments",
	Short: "Object-style access to Google Drive and Google Sheets",
	Long: `gdocuments wraps the Google Drive and Sheets APIs behind an object model:
files, folders, documents, spreadsheets, and sheets, each with the operations
that make sense for it.

It can run as:
  - A standalone CLI tool for Drive and Sheets operations
  - An MCP (Model Context Protocol) server for AI assistants

Authentication uses service account keys. Point GOOGLE_DOCUMENT_SERVICE_JSON
at a key file, or GOOGLE_DOCUMENT_SERVICE_JSON_<ACCOUNT> for named accounts
selected with --account.`,
	SilenceUsage: true,
}

var (
	// accountFlag selects the service account key for all API commands
	accountFlag string

	debugFlag bool
)

// cliLogger is the logger used by CLI commands for progress output.
var cliLogger logging.Logger = logging.DefaultLogger()

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// newCliManager creates a document manager for the account selected on the
// command line.
func newCliManager(ctx context.Context) (*documents.Manager, error) {
	account := accountFlag
	if account == "" {
		account = google.DefaultAccount
	}

	if !google.HasKeyFileForAccount(account) {
		return nil, fmt.Errorf("%s", google.AuthenticationErrorMessage(account))
	}

	return documents.NewManagerForAccount(ctx, account)
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gdocuments version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initLogging() {
	level := slog.LevelInfo
	if debugFlag {
		level = slog.LevelDebug
	}

	// CLI output goes to stderr so command results stay clean on stdout
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	cliLogger = logging.NewSlogAdapter(logger)
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&accountFlag, "account", "", "Service account name (default: 'default')")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newLsCmd())
	rootCmd.AddCommand(newCpCmd())
	rootCmd.AddCommand(newRmCmd())
	rootCmd.AddCommand(newMkdirCmd())
	rootCmd.AddCommand(newMvCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newReadCmd())
	rootCmd.AddCommand(newWriteCmd())
	rootCmd.AddCommand(newClearCmd())
	rootCmd.AddCommand(newSheetsCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
