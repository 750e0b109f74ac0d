package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nkumar/govbot/internal/config"
	"github.com/nkumar/govbot/internal/history"
	"github.com/nkumar/govbot/internal/models"
	"github.com/nkumar/govbot/internal/render"
)

func openStore() (*history.Store, error) {
	configDir, err := config.GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate config directory: %w", err)
	}
	return history.NewStore(configDir)
}

// historyCmd manages saved chat transcripts
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved chat transcripts",
	Long: `List chat transcripts saved from previous sessions. Transcripts are
recorded when 'transcripts' is enabled in config ('govbot config set
transcripts true').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		transcripts, err := store.List()
		if err != nil {
			return fmt.Errorf("failed to list transcripts: %w", err)
		}

		if len(transcripts) == 0 {
			fmt.Println("No transcripts saved yet.")
			return nil
		}

		for _, tr := range transcripts {
			fmt.Printf("%s  %s  (%d messages)\n", tr.ID, tr.Title, len(tr.Messages))
		}
		return nil
	},
}

// historyShowCmd prints a transcript in the terminal
var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a saved transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		tr, err := store.Get(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n\n", tr.Title, tr.CreatedAt.Format("2006-01-02 15:04"))
		for _, msg := range tr.Messages {
			if msg.Sender == models.SenderUser {
				fmt.Printf("You:    %s\n", msg.Text)
			} else {
				fmt.Printf("GovBot: %s\n", render.ReplyToMarkdown(msg.Text))
			}
		}
		return nil
	},
}

// historyExportCmd writes a transcript to a markdown file
var historyExportCmd = &cobra.Command{
	Use:   "export <id> <file>",
	Short: "Export a transcript to a markdown file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		tr, err := store.Get(args[0])
		if err != nil {
			return err
		}

		if err := history.ExportMarkdown(tr, args[1]); err != nil {
			return err
		}

		fmt.Printf("✓ Exported to %s\n", args[1])
		return nil
	},
}

// historyDeleteCmd removes a saved transcript
var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		if err := store.Delete(args[0]); err != nil {
			return err
		}

		fmt.Printf("✓ Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyDeleteCmd)
}
