package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/gdocuments/internal/documents"
)

func newCreateCmd() *cobra.Command {
	var (
		resourceType string
		fromFile     string
		mimeType     string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a Google Doc or spreadsheet",
		Long: `Create a Google Doc from a local file, or an empty spreadsheet.

Examples:
  gdocuments create "Weekly Report" --from report.docx
  gdocuments create "Notes" --from notes.txt --mime-type text/plain
  gdocuments create "Budget 2026" --type spreadsheet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			switch resourceType {
			case "document":
				if fromFile == "" {
					return fmt.Errorf("--from is required when creating a document")
				}

				f, err := os.Open(fromFile)
				if err != nil {
					return fmt.Errorf("failed to open %q: %w", fromFile, err)
				}
				defer f.Close()

				document, err := manager.CreateDocument(cmd.Context(), args[0], f, mimeType)
				if err != nil {
					return err
				}

				cliLogger.Info("document created", "file_id", document.ID)
				return printJSON(map[string]interface{}{
					"file": document.Info(),
					"url":  document.URL(),
				})

			case "spreadsheet":
				spreadsheet, err := manager.CreateSpreadsheet(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				cliLogger.Info("spreadsheet created", "spreadsheet_id", spreadsheet.ID)
				return printJSON(map[string]interface{}{
					"file": spreadsheet.Info(),
					"url":  spreadsheet.URL(),
				})

			default:
				return fmt.Errorf("unknown type %q: must be 'document' or 'spreadsheet'", resourceType)
			}
		},
	}

	cmd.Flags().StringVar(&resourceType, "type", "document", "Resource type to create: document or spreadsheet")
	cmd.Flags().StringVar(&fromFile, "from", "", "Local file with the initial content (documents only)")
	cmd.Flags().StringVar(&mimeType, "mime-type", "", "MIME type of the source content (default: docx)")

	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		outFile  string
		mimeType string
	)

	cmd := &cobra.Command{
		Use:   "export <file-id>",
		Short: "Export a Google Doc or spreadsheet to a local file",
		Long: `Export a Google Doc or spreadsheet to a local file. Documents default to
docx, spreadsheets to xlsx; use --mime-type for other formats.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outFile == "" {
				return fmt.Errorf("--out is required")
			}

			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			item, err := manager.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			switch v := item.(type) {
			case *documents.Spreadsheet:
				err = v.ExportToFile(cmd.Context(), outFile, mimeType)
			case *documents.Document:
				err = v.ExportToFile(cmd.Context(), outFile, mimeType)
			default:
				return fmt.Errorf("%s is %s, not an exportable document", args[0], item.Info().MIMEType)
			}
			if err != nil {
				return err
			}

			cliLogger.Info("exported", "file_id", args[0], "path", outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Output file path")
	cmd.Flags().StringVar(&mimeType, "mime-type", "", "Export MIME type (default: docx for documents, xlsx for spreadsheets)")

	return cmd
}

func newUpdateCmd() *cobra.Command {
	var (
		fromFile string
		mimeType string
	)

	cmd := &cobra.Command{
		Use:   "update <document-id>",
		Short: "Replace the content of a Google Doc with a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromFile == "" {
				return fmt.Errorf("--from is required")
			}

			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			document, err := manager.Document(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err := document.UpdateFromFile(cmd.Context(), fromFile, mimeType); err != nil {
				return err
			}

			cliLogger.Info("document updated", "file_id", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFile, "from", "", "Local file with the new content")
	cmd.Flags().StringVar(&mimeType, "mime-type", "", "MIME type of the source content (default: docx)")

	return cmd
}
