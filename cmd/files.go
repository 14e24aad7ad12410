package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/gdocuments/internal/documents"
	"github.com/teemow/gdocuments/internal/drive"
)

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printItems(items []documents.Item) error {
	listing := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		info := item.Info()
		listing = append(listing, map[string]interface{}{
			"id":       info.ID,
			"name":     info.Name,
			"mimeType": info.MIMEType,
			"url":      item.URL(),
		})
	}
	return printJSON(listing)
}

// parseFilterArgs turns key=value arguments into keyword filters. Values
// "true" and "false" become booleans, everything else stays a string.
func parseFilterArgs(args []string) (drive.Filters, error) {
	filters := drive.Filters{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid filter %q: expected key=value", arg)
		}
		switch value {
		case "true":
			filters[key] = true
		case "false":
			filters[key] = false
		default:
			filters[key] = value
		}
	}
	return filters, nil
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file-id>",
		Short: "Get metadata for a Drive file, folder, document, or spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			item, err := manager.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printJSON(map[string]interface{}{
				"file": item.Info(),
				"url":  item.URL(),
			})
		},
	}
}

func newLsCmd() *cobra.Command {
	var resourceType string

	cmd := &cobra.Command{
		Use:   "ls [key=value ...]",
		Short: "List Drive files matching keyword filters",
		Long: `List Drive files matching keyword filters. Filter keys use snake_case
field names and are ANDed together; the '__contains' suffix matches
substrings.

Examples:
  gdocuments ls
  gdocuments ls name__contains=report starred=true
  gdocuments ls --type spreadsheet name__contains=budget`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := parseFilterArgs(args)
			if err != nil {
				return err
			}

			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var items []documents.Item
			switch resourceType {
			case "":
				items, err = manager.Filter(ctx, filters)
			case "folder":
				var folders []*documents.Folder
				folders, err = manager.FilterFolders(ctx, filters)
				for _, f := range folders {
					items = append(items, f)
				}
			case "document":
				var docs []*documents.Document
				docs, err = manager.FilterDocuments(ctx, filters)
				for _, d := range docs {
					items = append(items, d)
				}
			case "spreadsheet":
				var spreadsheets []*documents.Spreadsheet
				spreadsheets, err = manager.FilterSpreadsheets(ctx, filters)
				for _, ss := range spreadsheets {
					items = append(items, ss)
				}
			default:
				return fmt.Errorf("unknown type %q: must be 'folder', 'document', or 'spreadsheet'", resourceType)
			}
			if err != nil {
				return err
			}

			return printItems(items)
		},
	}

	cmd.Flags().StringVar(&resourceType, "type", "", "Restrict results to a resource type: folder, document, or spreadsheet")

	return cmd
}

func newCpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cp <file-id> <name>",
		Short: "Copy a Drive file under a new name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			item, err := manager.File(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			copied, err := item.Copy(cmd.Context(), args[1])
			if err != nil {
				return err
			}

			cliLogger.Info("file copied", "source", args[0], "copy", copied.Info().ID)
			return printJSON(map[string]interface{}{
				"file": copied.Info(),
				"url":  copied.URL(),
			})
		},
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file-id>...",
		Short: "Delete Drive files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			for _, id := range args {
				if err := manager.DeleteFile(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to delete %s: %w", id, err)
				}
				cliLogger.Info("file deleted", "file_id", id)
			}

			return nil
		},
	}
}

func newMkdirCmd() *cobra.Command {
	var parentID string

	cmd := &cobra.Command{
		Use:   "mkdir <name>",
		Short: "Create a Drive folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			var parent *documents.Folder
			if parentID != "" {
				parent, err = manager.Folder(cmd.Context(), parentID)
				if err != nil {
					return fmt.Errorf("failed to resolve parent folder: %w", err)
				}
			}

			folder, err := manager.CreateFolder(cmd.Context(), args[0], parent)
			if err != nil {
				return err
			}

			return printJSON(map[string]interface{}{
				"folder": folder.Info(),
				"url":    folder.URL(),
			})
		},
	}

	cmd.Flags().StringVar(&parentID, "parent", "", "Parent folder ID (default: Drive root)")

	return cmd
}

func newMvCmd() *cobra.Command {
	var (
		newName       string
		addParents    []string
		removeParents []string
	)

	cmd := &cobra.Command{
		Use:   "mv <file-id>",
		Short: "Move or rename a Drive file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := &drive.MoveOptions{
				NewName:       newName,
				AddParents:    addParents,
				RemoveParents: removeParents,
			}

			if options.NewName == "" && len(options.AddParents) == 0 && len(options.RemoveParents) == 0 {
				return fmt.Errorf("at least one of --name, --add-parents, or --remove-parents must be specified")
			}

			manager, err := newCliManager(cmd.Context())
			if err != nil {
				return err
			}

			info, err := manager.MoveFile(cmd.Context(), args[0], options)
			if err != nil {
				return err
			}

			return printJSON(info)
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "New name for the file")
	cmd.Flags().StringSliceVar(&addParents, "add-parents", nil, "Folder IDs to add as parents")
	cmd.Flags().StringSliceVar(&removeParents, "remove-parents", nil, "Folder IDs to remove as parents")

	return cmd
}
