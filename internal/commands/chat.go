package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkumar/govbot/internal/config"
	"github.com/nkumar/govbot/internal/history"
	"github.com/nkumar/govbot/internal/render"
	"github.com/nkumar/govbot/internal/tui"
)

// chatCmd starts the interactive chat TUI
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session with the portal",
	Long: `Start an interactive terminal chat with the Government Services
Portal assistant. The session cookie is kept for the lifetime of the
chat, so multi-step flows like license applications work turn by turn.

Shortcuts inside the chat:
  Enter    Send the typed message
  Ctrl+A   Quick-send "apply"
  Ctrl+S   Quick-send "status"
  Ctrl+R   Reset the session
  Ctrl+Y   Copy the last reply
  Esc      Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.LoadConfig()

		// Apply the configured TUI theme before styles are used
		if cfg.TUITheme != "" && render.SetTUITheme(cfg.TUITheme) {
			tui.UpdateTheme()
		}

		client, err := newPortalClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}
		defer client.Close()

		if !cfg.SaveTranscripts {
			return tui.RunChat(client)
		}

		configDir, err := config.GetConfigDir()
		if err != nil {
			return tui.RunChat(client)
		}
		store, err := history.NewStore(configDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: transcript store unavailable: %v\n", err)
			return tui.RunChat(client)
		}
		tr, err := store.Create(client.BaseURL())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not start transcript: %v\n", err)
			return tui.RunChat(client)
		}

		return tui.RunChatWithTranscript(client, store, tr.ID)
	},
}
