package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nkumar/govbot/internal/config"
	"github.com/nkumar/govbot/internal/models"
)

// statusCmd checks an application by ID
var statusCmd = &cobra.Command{
	Use:   "status <application-id>",
	Short: "Check the status of an application",
	Long: `Check an application by its ID (for example LIC-AB12CD). This drives
the portal's status flow: it first enters status mode, then submits
the ID, and prints the portal's answer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.LoadConfig()

		client, err := newPortalClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}
		defer client.Close()

		var spin *spinner
		if !rawFlag {
			spin = newSpinner("Checking application status")
			spin.start()
		}

		// Enter status mode first, the portal asks for the ID next
		if _, err := client.Send(models.PhraseStatus); err != nil {
			if !rawFlag {
				spin.stopWithError()
				fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Status check failed"))
			}
			return fmt.Errorf("status check failed: %w", err)
		}

		reply, err := client.Send(args[0])
		if err != nil {
			if !rawFlag {
				spin.stopWithError()
				fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Status check failed"))
			}
			return fmt.Errorf("status check failed: %w", err)
		}
		if !rawFlag {
			spin.stopWithSuccess("Done")
		}

		return printReply(cfg, reply, rawFlag)
	},
}

func init() {
	statusCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the reply exactly as the portal sent it")
}
