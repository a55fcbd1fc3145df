// Copyright (c) 2025-2026 FARM-AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript holds the ordered, append-only sequence of displayed chat
// messages. Messages are never removed or mutated once appended; display
// order is insertion order. There is deliberately no remove operation.
type Transcript struct {
	messages  []*Message
	updatedAt time.Time
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{
		messages: make([]*Message, 0),
	}
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(msg *Message) {
	t.messages = append(t.messages, msg)
	t.updatedAt = time.Now()
}

// AddUserMessage creates and appends a user message.
func (t *Transcript) AddUserMessage(content string) *Message {
	msg := NewUserMessage(content)
	t.Append(msg)
	return msg
}

// AddBotMessage creates and appends a bot message.
func (t *Transcript) AddBotMessage(content string) *Message {
	msg := NewBotMessage(content)
	t.Append(msg)
	return msg
}

// Messages returns the message history for display, oldest first.
func (t *Transcript) Messages() []*Message {
	return t.messages
}

// Last returns the most recent message, or nil if the transcript is empty.
func (t *Transcript) Last() *Message {
	if len(t.messages) == 0 {
		return nil
	}
	return t.messages[len(t.messages)-1]
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// IsEmpty returns true if there are no messages.
func (t *Transcript) IsEmpty() bool {
	return len(t.messages) == 0
}

// UpdatedAt returns the time of the last append.
func (t *Transcript) UpdatedAt() time.Time {
	return t.updatedAt
}
