// Package domain contains core concepts of the chat system.
// This file defines the Message record and its invariants.
// Messages are immutable once stored; only the messaging pipeline creates them.
package domain

// Message is the durable record of one chat message.
type Message struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"` // milliseconds since epoch
	SenderID  string `json:"senderId"`
	RoomID    string `json:"roomId"`
	Deleted   bool   `json:"deleted"`
	System    bool   `json:"system"`
	SourceIP  string `json:"sourceIp,omitempty"`

	// NewSet marks the start of a visually groupable message burst.
	// Attached on return for client-side grouping, never persisted.
	NewSet bool `json:"-"`
}
