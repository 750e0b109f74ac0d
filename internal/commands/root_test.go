package commands

import (
	"testing"

	"github.com/nkumar/govbot/internal/config"
	"github.com/nkumar/govbot/internal/models"
)

func TestRootCommandWiring(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"chat", "reset", "status", "config", "history"} {
		if !names[want] {
			t.Errorf("root command missing subcommand %q", want)
		}
	}
}

func TestRootCommandFlags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("url") == nil {
		t.Error("missing persistent --url flag")
	}
	for _, name := range []string{"output", "file", "raw", "version"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("missing --%s flag", name)
		}
	}
}

func TestGetBaseURL_FlagWins(t *testing.T) {
	old := urlFlag
	t.Cleanup(func() { urlFlag = old })

	cfg := config.DefaultConfig()
	cfg.BaseURL = "http://from-config:5000"

	urlFlag = ""
	if got := getBaseURL(cfg); got != "http://from-config:5000" {
		t.Errorf("getBaseURL = %q, want config value", got)
	}

	urlFlag = "http://from-flag:5000"
	if got := getBaseURL(cfg); got != "http://from-flag:5000" {
		t.Errorf("getBaseURL = %q, want flag value", got)
	}
}

func TestNewPortalClient(t *testing.T) {
	old := urlFlag
	t.Cleanup(func() { urlFlag = old })
	urlFlag = ""

	cfg := config.DefaultConfig()
	client, err := newPortalClient(cfg)
	if err != nil {
		t.Fatalf("newPortalClient returned error: %v", err)
	}
	defer client.Close()

	if client.BaseURL() != models.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", client.BaseURL(), models.DefaultBaseURL)
	}
}
