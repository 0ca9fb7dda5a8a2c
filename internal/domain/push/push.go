// Package push defines the multicast message exchanged with the push
// delivery backend and the per-token outcome it reports.
package push

import (
	"github.com/kimneyapti/notifier/internal/domain"
	"github.com/kimneyapti/notifier/internal/domain/notice"
)

// MaxTokens is the largest token set accepted by a single multicast.
const MaxTokens = 500

// Android delivery priorities.
const (
	PriorityHigh   = "high"
	PriorityNormal = "normal"
)

// AndroidHints are Android-specific delivery options.
type AndroidHints struct {
	Priority  string
	ChannelID string
	Icon      string
}

// APNSHints are iOS-specific delivery options.
type APNSHints struct {
	Badge int
	Sound string
}

// Hints groups the platform-specific delivery options of a message.
type Hints struct {
	Android AndroidHints
	APNS    APNSHints
}

// AssignmentHints are the delivery options used for assignment notices.
func AssignmentHints() Hints {
	return Hints{
		Android: AndroidHints{
			Priority:  PriorityHigh,
			ChannelID: "task_assignment",
			Icon:      "ic_notification",
		},
		APNS: APNSHints{
			Badge: 1,
			Sound: "default",
		},
	}
}

// Message is one notice addressed to many device tokens.
type Message struct {
	Tokens []string
	Notice notice.Notice
	Data   map[string]string
	Hints  Hints
}

// Validate checks that the message can be handed to the backend.
func (m *Message) Validate() error {
	fields := make(map[string]string)

	if len(m.Tokens) == 0 {
		fields["tokens"] = domain.MsgRequired
	}
	if len(m.Tokens) > MaxTokens {
		fields["tokens"] = "must not exceed 500 entries"
	}
	for _, t := range m.Tokens {
		if t == "" {
			fields["tokens"] = "must not contain empty tokens"
			break
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SendResponse is the backend outcome for a single token.
type SendResponse struct {
	Token     string
	MessageID string
	Err       error
}

// Success reports whether the backend accepted the message for the token.
func (r SendResponse) Success() bool {
	return r.Err == nil
}

// BatchResponse holds one SendResponse per token, in message token order.
type BatchResponse struct {
	Responses []SendResponse
}

// SuccessCount returns the number of accepted tokens.
func (b *BatchResponse) SuccessCount() int {
	n := 0
	for _, r := range b.Responses {
		if r.Success() {
			n++
		}
	}
	return n
}

// FailureCount returns the number of rejected tokens.
func (b *BatchResponse) FailureCount() int {
	return len(b.Responses) - b.SuccessCount()
}
