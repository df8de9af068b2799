package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wandersync/wandersync-cli/internal"
	"github.com/wandersync/wandersync-cli/internal/export"
)

var (
	exportFormat    string
	exportOut       string
	exportAll       bool
	exportMessageID int
	exportCached    bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export conversations as paginated documents",
	Long: `Export the active chat session, the full server history (--all), or a
single message (--message-id) as a paginated document.

Formats: pdf, md, json, txt, yaml. Content is flattened for export: image tokens
become "caption (url)" and characters outside the export charset are
stripped. Page breaks relocate lines, never drop them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		var doc *export.Document
		var name string

		switch {
		case exportAll:
			_, userID, err := requireAuth(store)
			if err != nil {
				return err
			}
			if exportCached {
				historyCached = true
			}
			turns, err := fetchTurns(cmd, userID)
			if err != nil {
				return fmt.Errorf("failed to fetch history: %w", err)
			}
			doc = export.EncodeMany(turns)
			name = "chat-history"

		case exportMessageID > 0:
			session := internal.LoadOrNew(store)
			msg, found := findMessage(session.Messages, exportMessageID)
			if !found {
				return fmt.Errorf("message %d not found in the active session", exportMessageID)
			}
			doc = export.EncodeOne(msg)
			name = fmt.Sprintf("message-%d", msg.ID)

		default:
			session := internal.LoadOrNew(store)
			doc = export.EncodeSession(session.Messages)
			name = "chat-conversation"
		}

		outDir := exportOut
		if outDir == "" {
			outDir = internal.LoadConfig().ExportDir
		}
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		path := filepath.Join(outDir, name+"."+exporter.Extension())
		file, err := os.Create(path)
		if err != nil {
			return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
		}
		defer file.Close()

		if err := exporter.Export(doc, file); err != nil {
			return &internal.ExportError{Format: exportFormat, Path: path, Err: err}
		}

		internal.PrintSuccess(fmt.Sprintf("Export complete: %s (%d page(s))", path, len(doc.Pages)))
		return nil
	},
}

func findMessage(messages []internal.Message, id int) (internal.Message, bool) {
	for _, msg := range messages {
		if msg.ID == id {
			return msg, true
		}
	}
	return internal.Message{}, false
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Export format (pdf, md, json, txt, yaml)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output directory (default ./exports)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export the full server history instead of the active session")
	exportCmd.Flags().IntVar(&exportMessageID, "message-id", 0, "Export a single message from the active session")
	exportCmd.Flags().BoolVar(&exportCached, "cached", false, "With --all, use the last cached fetch")
}
