// Package commands provides CLI commands for govbot.
package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nkumar/govbot/internal/api"
	"github.com/nkumar/govbot/internal/config"
)

var (
	// Global flags
	urlFlag    string
	outputFlag string
	fileFlag   string
	rawFlag    bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "govbot [message]",
	Short: "Terminal client for the Government Services Portal chatbot",
	Long: `govbot is a command-line client for the Government Services Portal
chat assistant. It talks to the portal's chat endpoint, keeps the
session cookie between turns, and renders the bot's replies in the
terminal.

Examples:
  govbot chat                     Start interactive chat
  govbot apply                    Send a single message
  govbot status LIC-AB12CD        Check an application by ID
  govbot reset                    Start a fresh session
  govbot -f message.txt           Read the message from a file
  echo apply | govbot             Read the message from stdin
  govbot apply -o reply.md        Save the reply to a file`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("govbot %s (built %s)\n", Version, BuildTime)
			return nil
		}

		stat, _ := os.Stdin.Stat()
		hasStdin := (stat.Mode() & os.ModeCharDevice) == 0

		if fileFlag != "" {
			data, err := os.ReadFile(fileFlag)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return runQuery(string(data), rawFlag)
		}

		if hasStdin {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			return runQuery(string(data), rawFlag)
		}

		if len(args) > 0 {
			return runQuery(args[0], rawFlag)
		}

		// No input - show help
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&urlFlag, "url", "u", "", "Portal base URL (overrides config and GOVBOT_URL)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Save reply to file")
	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "Read message from file")
	rootCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the reply exactly as the portal sent it")
	rootCmd.Flags().BoolP("version", "v", false, "Show version and exit")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
}

// getBaseURL returns the portal URL to use. The flag wins over config,
// and config already folds in the GOVBOT_URL environment variable.
func getBaseURL(cfg config.Config) string {
	if urlFlag != "" {
		return urlFlag
	}
	return cfg.BaseURL
}

// newPortalClient builds a client from the effective configuration
func newPortalClient(cfg config.Config) (*api.PortalClient, error) {
	return api.NewClient(
		getBaseURL(cfg),
		api.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second),
	)
}
