// Package history provides local chat transcript storage.
package history

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Message is a single recorded chat turn
type Message struct {
	Sender    string    `json:"sender"` // "user" or "bot"
	Text      string    `json:"text"`   // bot text is stored as received, markup included
	Timestamp time.Time `json:"timestamp"`
}

// Transcript is a complete recorded conversation with the portal
type Transcript struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	BaseURL   string    `json:"base_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Messages  []Message `json:"messages"`
}

// Store manages transcript persistence
type Store struct {
	baseDir string
	mu      sync.RWMutex
}

// NewStore creates a transcript store under baseDir
func NewStore(baseDir string) (*Store, error) {
	dir := filepath.Join(baseDir, "transcripts")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create transcripts directory: %w", err)
	}

	return &Store{baseDir: dir}, nil
}

// Create starts a new transcript
func (s *Store) Create(baseURL string) (*Transcript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	tr := &Transcript{
		ID:        generateID(),
		Title:     fmt.Sprintf("Chat %s", now.Format("2006-01-02 15:04")),
		BaseURL:   baseURL,
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  []Message{},
	}

	if err := s.save(tr); err != nil {
		return nil, err
	}

	return tr, nil
}

// Append records a message on a transcript. The title is taken from the
// first user message while still the default.
func (s *Store) Append(id, sender, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tr, err := s.load(id)
	if err != nil {
		return err
	}

	tr.Messages = append(tr.Messages, Message{
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	})
	tr.UpdatedAt = time.Now()

	if sender == "user" && strings.HasPrefix(tr.Title, "Chat ") {
		title := text
		if len(title) > 50 {
			title = title[:50] + "..."
		}
		tr.Title = title
	}

	return s.save(tr)
}

// Get retrieves a transcript by ID
func (s *Store) Get(id string) (*Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.load(id)
}

// List returns all transcripts, most recently updated first
func (s *Store) List() ([]*Transcript, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcripts directory: %w", err)
	}

	var transcripts []*Transcript
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")
		tr, err := s.load(id)
		if err != nil {
			continue // skip corrupted files
		}
		transcripts = append(transcripts, tr)
	}

	sort.Slice(transcripts, func(i, j int) bool {
		return transcripts[i].UpdatedAt.After(transcripts[j].UpdatedAt)
	})

	return transcripts, nil
}

// Delete removes a transcript
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("transcript not found: %s", id)
		}
		return fmt.Errorf("failed to delete transcript: %w", err)
	}

	return nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *Store) load(id string) (*Transcript, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("transcript not found: %s", id)
		}
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	var tr Transcript
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("failed to parse transcript %s: %w", id, err)
	}

	return &tr, nil
}

func (s *Store) save(tr *Transcript) error {
	data, err := json.MarshalIndent(tr, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	if err := os.WriteFile(s.path(tr.ID), data, 0o600); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}

	return nil
}

// generateID returns a sortable unique transcript ID
func generateID() string {
	var suffix [4]byte
	_, _ = rand.Read(suffix[:])
	return fmt.Sprintf("%s-%s", time.Now().Format("20060102-150405"), hex.EncodeToString(suffix[:]))
}
