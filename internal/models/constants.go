package models

// Portal endpoints, relative to the configured base URL
const (
	PathChat  = "/chat"
	PathReset = "/reset"
)

// DefaultBaseURL points at a locally running portal backend.
const DefaultBaseURL = "http://127.0.0.1:5000"

// FallbackReply is shown as a bot message when a /chat request fails.
// The underlying error is kept separately for diagnostics.
const FallbackReply = "⚠️ Sorry, I couldn't reach the portal. Please try again."

// Entry phrases the portal bot understands from a fresh session. Used by the
// quick-send shortcuts and the status command.
const (
	PhraseApply  = "apply"
	PhraseStatus = "status"
)

// DefaultHeaders returns the headers sent with every portal request
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   "govbot-cli",
	}
}
