package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teemow/gdocuments/internal/documents"
	"github.com/teemow/gdocuments/internal/sheets"
)

// resolveCliRange scopes a range to a sheet title given with --sheet.
func resolveCliRange(ctx context.Context, spreadsheet *documents.Spreadsheet, sheetTitle, rangeName string) (string, error) {
	if sheetTitle == "" {
		return rangeName, nil
	}

	sheet, err := spreadsheet.Sheet(ctx, sheetTitle)
	if err != nil {
		return "", err
	}

	return sheet.RangeName(rangeName), nil
}

func newReadCmd() *cobra.Command {
	var sheetTitle string

	cmd := &cobra.Command{
		Use:   "read <spreadsheet-id> <range>",
		Short: "Read a cell range from a spreadsheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			spreadsheet, err := manager.Spreadsheet(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rangeName, err := resolveCliRange(cmd.Context(), spreadsheet, sheetTitle, args[1])
			if err != nil {
				return err
			}

			values, err := spreadsheet.Read(cmd.Context(), rangeName)
			if err != nil {
				return err
			}

			return printJSON(values)
		},
	}

	cmd.Flags().StringVar(&sheetTitle, "sheet", "", "Sheet (tab) title to scope the range to")

	return cmd
}

func newWriteCmd() *cobra.Command {
	var (
		sheetTitle string
		raw        bool
	)

	cmd := &cobra.Command{
		Use:   "write <spreadsheet-id> <range>",
		Short: "Write cell values to a spreadsheet range",
		Long: `Write cell values to a spreadsheet range. Values are read from stdin as a
JSON array of rows:

  echo '[["name", "count"], ["widgets", 42]]' | gdocuments write <id> A1:B2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var values [][]interface{}
			if err := json.NewDecoder(os.Stdin).Decode(&values); err != nil {
				return fmt.Errorf("failed to parse values from stdin: %w", err)
			}

			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			spreadsheet, err := manager.Spreadsheet(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rangeName, err := resolveCliRange(cmd.Context(), spreadsheet, sheetTitle, args[1])
			if err != nil {
				return err
			}

			valueInputOption := "USER_ENTERED"
			if raw {
				valueInputOption = "RAW"
			}

			result, err := spreadsheet.Write(cmd.Context(), rangeName, values, valueInputOption)
			if err != nil {
				return err
			}

			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&sheetTitle, "sheet", "", "Sheet (tab) title to scope the range to")
	cmd.Flags().BoolVar(&raw, "raw", false, "Store values as-is instead of parsing formulas and numbers")

	return cmd
}

func newClearCmd() *cobra.Command {
	var sheetTitle string

	cmd := &cobra.Command{
		Use:   "clear <spreadsheet-id> <range>",
		Short: "Clear a cell range in a spreadsheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			spreadsheet, err := manager.Spreadsheet(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rangeName, err := resolveCliRange(cmd.Context(), spreadsheet, sheetTitle, args[1])
			if err != nil {
				return err
			}

			if err := spreadsheet.Clear(cmd.Context(), rangeName); err != nil {
				return err
			}

			cliLogger.Info("range cleared", "spreadsheet_id", args[0], "range", rangeName)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheetTitle, "sheet", "", "Sheet (tab) title to scope the range to")

	return cmd
}

func newSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Manage the sheets (tabs) of a spreadsheet",
	}

	cmd.AddCommand(newSheetsListCmd())
	cmd.AddCommand(newSheetsAddCmd())
	cmd.AddCommand(newSheetsRmCmd())

	return cmd
}

func newSheetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <spreadsheet-id>",
		Short: "List the sheets of a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			spreadsheet, err := manager.Spreadsheet(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			tabs, err := spreadsheet.Sheets(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(tabs)
		},
	}
}

func newSheetsAddCmd() *cobra.Command {
	var (
		rows    int64
		columns int64
	)

	cmd := &cobra.Command{
		Use:   "add <spreadsheet-id> <title>",
		Short: "Add a sheet to a spreadsheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			spreadsheet, err := manager.Spreadsheet(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			properties := &sheets.SheetProperties{Title: args[1]}
			if rows > 0 || columns > 0 {
				properties.Grid = &sheets.GridProperties{
					RowCount:    rows,
					ColumnCount: columns,
				}
			}

			sheet, err := spreadsheet.AddSheet(cmd.Context(), properties)
			if err != nil {
				return err
			}

			return printJSON(sheet)
		},
	}

	cmd.Flags().Int64Var(&rows, "rows", 0, "Number of rows (default: API default)")
	cmd.Flags().Int64Var(&columns, "columns", 0, "Number of columns (default: API default)")

	return cmd
}

func newSheetsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <spreadsheet-id> <title>",
		Short: "Delete a sheet from a spreadsheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			spreadsheet, err := manager.Spreadsheet(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			sheet, err := spreadsheet.Sheet(cmd.Context(), args[1])
			if err != nil {
				return err
			}

			if err := sheet.Delete(cmd.Context()); err != nil {
				return err
			}

			cliLogger.Info("sheet deleted", "spreadsheet_id", args[0], "title", args[1])
			return nil
		},
	}
}
