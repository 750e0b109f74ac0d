package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nkumar/govbot/internal/config"
	"github.com/nkumar/govbot/internal/render"
)

// configCmd shows and edits the govbot configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	Long: `Show the current configuration. Settings live in ~/.govbot/config.json
and can be changed with 'govbot config set <key> <value>'.

Keys:
  url            Portal base URL
  timeout        Request timeout in seconds
  verbose        Log request details (true/false)
  clipboard      Copy replies to the clipboard (true/false)
  transcripts    Save chat transcripts (true/false)
  theme          TUI theme (` + strings.Join(render.TUIThemeNames(), ", ") + `)
  style          Markdown style (dark, light, notty, ...)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Warning: %v (showing defaults)\n\n", err)
		}

		path, _ := config.GetConfigPath()
		fmt.Printf("Config file:  %s\n\n", path)
		fmt.Printf("url:          %s\n", cfg.BaseURL)
		fmt.Printf("timeout:      %d\n", cfg.TimeoutSeconds)
		fmt.Printf("verbose:      %t\n", cfg.Verbose)
		fmt.Printf("clipboard:    %t\n", cfg.CopyToClipboard)
		fmt.Printf("transcripts:  %t\n", cfg.SaveTranscripts)
		fmt.Printf("theme:        %s\n", cfg.TUITheme)
		fmt.Printf("style:        %s\n", cfg.Markdown.Style)
		return nil
	},
}

// configSetCmd changes a single configuration value
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := config.LoadConfig()

		key, value := strings.ToLower(args[0]), args[1]
		switch key {
		case "url":
			if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
				return fmt.Errorf("url must start with http:// or https://")
			}
			cfg.BaseURL = strings.TrimSuffix(value, "/")
		case "timeout":
			seconds, err := strconv.Atoi(value)
			if err != nil || seconds <= 0 {
				return fmt.Errorf("timeout must be a positive number of seconds")
			}
			cfg.TimeoutSeconds = seconds
		case "verbose":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("verbose must be true or false")
			}
			cfg.Verbose = b
		case "clipboard":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("clipboard must be true or false")
			}
			cfg.CopyToClipboard = b
		case "transcripts":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("transcripts must be true or false")
			}
			cfg.SaveTranscripts = b
		case "theme":
			if _, ok := render.GetTUIThemeByName(value); !ok {
				return fmt.Errorf("unknown theme %q (available: %s)", value, strings.Join(render.TUIThemeNames(), ", "))
			}
			cfg.TUITheme = value
		case "style":
			cfg.Markdown.Style = value
		default:
			return fmt.Errorf("unknown key %q", key)
		}

		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("✓ %s = %s\n", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}
