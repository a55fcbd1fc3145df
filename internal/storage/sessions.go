// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides chat session persistence for the crop advisor TUI.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uttamofficial/FARM-AI/internal/model"
	"github.com/uttamofficial/FARM-AI/internal/util"
)

// =============================================================================
// STORED SESSION TYPE
// =============================================================================

// StoredSession represents a persisted chat session.
type StoredSession struct {
	// Identity
	ID        string    `json:"id"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Transcript
	Messages []StoredMessage `json:"messages"`
}

// StoredMessage represents a persisted transcript message.
type StoredMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "bot"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionMeta contains metadata for listing sessions.
type SessionMeta struct {
	ID           string    `json:"id"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	MessageCount int       `json:"message_count"`
	Preview      string    `json:"preview"` // First user message truncated
}

// =============================================================================
// TRANSCRIPT CONVERSION
// =============================================================================

// FromTranscript builds a StoredSession from a live transcript. The session
// ID is preserved when reusing an existing one; pass "" for a new session.
func FromTranscript(id string, t *model.Transcript) *StoredSession {
	msgs := t.Messages()
	stored := make([]StoredMessage, 0, len(msgs))
	for _, m := range msgs {
		stored = append(stored, StoredMessage{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}
	return &StoredSession{
		ID:       id,
		Messages: stored,
	}
}

// ToTranscript rebuilds a live transcript from a stored session. Unknown
// roles are skipped rather than failing the whole load.
func (c *StoredSession) ToTranscript() *model.Transcript {
	t := model.NewTranscript()
	for _, m := range c.Messages {
		role := model.Role(m.Role)
		if role != model.RoleUser && role != model.RoleBot {
			continue
		}
		t.Append(&model.Message{
			ID:        m.ID,
			Role:      role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}
	return t
}

// =============================================================================
// SESSION STORE
// =============================================================================

// SessionStore handles session persistence as one JSON file per session.
type SessionStore struct {
	// BaseDir is the directory for storing sessions
	// Default: ~/.farmai/sessions/
	BaseDir string

	// MaxSessions limits stored sessions (0 = unlimited)
	MaxSessions int
}

// NewSessionStore creates a store rooted at the given directory.
func NewSessionStore(baseDir string, maxSessions int) (*SessionStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &SessionStore{
		BaseDir:     baseDir,
		MaxSessions: maxSessions,
	}, nil
}

// =============================================================================
// SAVE OPERATIONS
// =============================================================================

// Save persists a session and returns its ID.
func (s *SessionStore) Save(sess *StoredSession) (string, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	if sess.Summary == "" {
		sess.Summary = s.generateSummary(sess)
	}

	sess.UpdatedAt = time.Now()
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = sess.UpdatedAt
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return "", err
	}

	// RELIABILITY: Atomic write with fsync prevents data loss on crash
	filePath := s.filePath(sess.ID)
	if err := util.AtomicWriteFile(filePath, data, 0644); err != nil {
		return "", err
	}

	if s.MaxSessions > 0 {
		s.enforceLimit()
	}

	return sess.ID, nil
}

// generateSummary creates a summary from the first user message.
func (s *SessionStore) generateSummary(sess *StoredSession) string {
	for _, msg := range sess.Messages {
		if msg.Role == string(model.RoleUser) && msg.Content != "" {
			content := strings.ReplaceAll(msg.Content, "\n", " ")
			content = strings.ReplaceAll(content, "\r", "")
			return util.TruncateRunes(content, 50)
		}
	}
	return "New session"
}

// enforceLimit removes oldest sessions if over limit.
func (s *SessionStore) enforceLimit() {
	metas, err := s.List()
	if err != nil || len(metas) <= s.MaxSessions {
		return
	}

	// Oldest first
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].UpdatedAt.Before(metas[j].UpdatedAt)
	})

	excess := len(metas) - s.MaxSessions
	for i := 0; i < excess; i++ {
		s.Delete(metas[i].ID)
	}
}

// =============================================================================
// LOAD OPERATIONS
// =============================================================================

// Load retrieves a session by ID.
func (s *SessionStore) Load(id string) (*StoredSession, error) {
	data, err := os.ReadFile(s.filePath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var sess StoredSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}

	return &sess, nil
}

// LoadLatest loads the most recently updated session, or
// ErrSessionNotFound when none exist.
func (s *SessionStore) LoadLatest() (*StoredSession, error) {
	metas, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(metas) == 0 {
		return nil, ErrSessionNotFound
	}
	return s.Load(metas[0].ID)
}

// =============================================================================
// LIST OPERATIONS
// =============================================================================

// List returns all saved sessions (most recent first).
func (s *SessionStore) List() ([]SessionMeta, error) {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMeta{}, nil
		}
		return nil, err
	}

	var metas []SessionMeta

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")

		sess, err := s.Load(id)
		if err != nil {
			continue // Skip corrupted files
		}

		metas = append(metas, SessionMeta{
			ID:           sess.ID,
			Summary:      sess.Summary,
			CreatedAt:    sess.CreatedAt,
			UpdatedAt:    sess.UpdatedAt,
			MessageCount: len(sess.Messages),
			Preview:      sess.Preview(),
		})
	}

	// Most recent first
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].UpdatedAt.After(metas[j].UpdatedAt)
	})

	return metas, nil
}

// =============================================================================
// DELETE OPERATIONS
// =============================================================================

// Delete removes a session by ID.
func (s *SessionStore) Delete(id string) error {
	if err := os.Remove(s.filePath(id)); err != nil {
		if os.IsNotExist(err) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

// Clear removes all saved sessions.
func (s *SessionStore) Clear() error {
	entries, err := os.ReadDir(s.BaseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			os.Remove(filepath.Join(s.BaseDir, entry.Name()))
		}
	}

	return nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// filePath returns the file path for a session ID.
func (s *SessionStore) filePath(id string) string {
	return filepath.Join(s.BaseDir, id+".json")
}

// Preview returns a preview string from the first user message.
func (c *StoredSession) Preview() string {
	for _, msg := range c.Messages {
		if msg.Role == string(model.RoleUser) && msg.Content != "" {
			return util.TruncateRunes(msg.Content, 80)
		}
	}
	return ""
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrSessionNotFound is returned when a session doesn't exist.
// Use errors.Is(err, ErrSessionNotFound) to check for this error.
var ErrSessionNotFound = &SessionError{Message: "session not found"}

// SessionError represents a session-related error.
type SessionError struct {
	Message string
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	return e.Message
}

// Is implements errors.Is support for comparing session errors.
func (e *SessionError) Is(target error) bool {
	t, ok := target.(*SessionError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}
