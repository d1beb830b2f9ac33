package domain

// SendMessageCommand carries one send request through the pipeline.
type SendMessageCommand struct {
	SenderID string `validate:"required"`
	RoomID   string `validate:"required"`
	Content  string
	// Timestamp in milliseconds since epoch, zero means "now".
	Timestamp int64
	// SourceIP is persisted only when the caller supplies it.
	SourceIP string
	System   bool
}
