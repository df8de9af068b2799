package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wandersync/wandersync-cli/internal"
	"github.com/wandersync/wandersync-cli/internal/export"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Start an interactive chat with the travel assistant.

The active session is restored from the local store and saved after every
message. In-session commands:

  /new              Start a new chat (clears the session)
  /record <path>    Start recording audio to a file
  /stop             Stop recording and send the audio
  /attach <path>    Send a file (image or audio) with the next message
  /convert <query>  Ask the unit/currency conversion assistant
  /export [format]  Export this conversation (pdf, md, json, txt, yaml)
  /quit             Leave the chat`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		_, userID, err := requireAuth(store)
		if err != nil {
			return err
		}

		session := internal.LoadOrNew(store)
		loop := internal.NewChatLoop(session, newClient(), userID)

		for _, msg := range session.Messages {
			fmt.Println(internal.RenderMessage(msg))
		}

		var pending *internal.Recording
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Print("> ")
		for scanner.Scan() {
			input := strings.TrimSpace(scanner.Text())

			switch {
			case input == "/quit" || input == "/exit":
				return nil

			case input == "/new":
				if err := loop.NewChat(); err != nil {
					internal.LogWarn("Failed to clear session: %v", err)
				}
				fmt.Println(internal.RenderMessage(session.Messages[0]))

			case strings.HasPrefix(input, "/record"):
				path := strings.TrimSpace(strings.TrimPrefix(input, "/record"))
				if path == "" {
					path = filepath.Join(os.TempDir(), "voice-recording.webm")
				}
				if err := loop.Recorder.Start(path); err != nil {
					internal.PrintError(err.Error())
				} else {
					fmt.Println("Recording... (/stop to send)")
				}

			case input == "/stop":
				rec, err := loop.Recorder.Stop()
				if err != nil {
					internal.PrintError(err.Error())
					break
				}
				if reply, ok := loop.Send(cmd.Context(), "", rec); ok {
					fmt.Println(internal.RenderMessage(*reply))
				}

			case strings.HasPrefix(input, "/attach "):
				path := strings.TrimSpace(strings.TrimPrefix(input, "/attach "))
				mime := attachmentType(path)
				if !internal.AcceptAttachment(mime) {
					// Unsupported selection: cleared without an error.
					pending = nil
					break
				}
				pending = &internal.Recording{File: path, FileType: mime}
				fmt.Printf("Attached %s\n", path)

			case strings.HasPrefix(input, "/convert "):
				query := strings.TrimSpace(strings.TrimPrefix(input, "/convert "))
				resp, err := loop.Client.ConversionChat(cmd.Context(), query)
				if err != nil {
					internal.PrintError(err.Error())
					break
				}
				fmt.Println(resp.Response)

			case strings.HasPrefix(input, "/export"):
				format := strings.TrimSpace(strings.TrimPrefix(input, "/export"))
				if format == "" {
					format = "pdf"
				}
				if err := exportSession(session, format); err != nil {
					internal.PrintError(err.Error())
				}

			case input == "":
				// Ignore blank lines.

			default:
				reply, ok := loop.Send(cmd.Context(), input, pending)
				pending = nil
				if !ok {
					internal.LogDebug("send refused")
					break
				}
				fmt.Println(internal.RenderMessage(*reply))
			}

			fmt.Print("> ")
		}
		return scanner.Err()
	},
}

// attachmentType guesses the MIME type of an attachment from its extension.
func attachmentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webm":
		return "audio/webm"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	default:
		return ""
	}
}

// exportSession writes the active session as a paginated document.
func exportSession(session *internal.Session, format string) error {
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}

	cfg := internal.LoadConfig()
	if err := os.MkdirAll(cfg.ExportDir, 0755); err != nil {
		return &internal.ExportError{Format: format, Path: cfg.ExportDir, Err: err}
	}

	doc := export.EncodeSession(session.Messages)
	path := filepath.Join(cfg.ExportDir, "chat-conversation."+exporter.Extension())
	file, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}
	defer file.Close()

	if err := exporter.Export(doc, file); err != nil {
		return &internal.ExportError{Format: format, Path: path, Err: err}
	}

	internal.PrintSuccess("Exported " + path)
	return nil
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
