package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkumar/govbot/internal/config"
)

// resetCmd starts a fresh portal session
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the portal session",
	Long: `Reset the chat session on the portal. Any in-progress application
flow is discarded and the portal replies with its greeting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.LoadConfig()

		client, err := newPortalClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}
		defer client.Close()

		var spin *spinner
		if !rawFlag {
			spin = newSpinner("Resetting session")
			spin.start()
		}

		greeting, err := client.Reset()
		if err != nil {
			if !rawFlag {
				spin.stopWithError()
				fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Reset failed"))
			}
			return fmt.Errorf("reset failed: %w", err)
		}
		if !rawFlag {
			spin.stopWithSuccess("Session reset")
		}

		return printReply(cfg, greeting, rawFlag)
	},
}

func init() {
	resetCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the greeting exactly as the portal sent it")
}
