// Package models contains data types and constants for the portal chat protocol.
package models

// Sender identifies who produced a chat message.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message represents a single chat turn for display.
// Messages are append-only: created on send/receive, never mutated.
type Message struct {
	Text   string // may contain portal markup when Sender is "bot"
	Sender string // SenderUser or SenderBot
}

// ChatRequest is the JSON body for POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the JSON body returned by /chat and /reset.
type ChatResponse struct {
	Reply string `json:"reply"`
}
