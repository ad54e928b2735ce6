// Package chat models the assistant transcript shown on the home screen.
package chat

import (
	"context"
	"fmt"
)

// Role identifies who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one transcript entry. Turns are append-only and ordered.
type Turn struct {
	Role    Role
	Content string
}

// Greeting is the synthetic assistant turn seeded on first render after login.
func Greeting(displayName string) Turn {
	return Turn{
		Role:    RoleAssistant,
		Content: fmt.Sprintf("Hello %s! How can I help you today?", displayName),
	}
}

// Sender forwards one user message to the assistant. ok is false on any
// failure; failures are handled inside the sender and never raised here.
type Sender interface {
	SendChatMessage(ctx context.Context, user, text string) (reply string, ok bool)
}

// Exchange appends the user turn, forwards it, and appends an assistant turn
// if and only if a reply came back. One request per user turn, no retry.
func Exchange(ctx context.Context, sender Sender, user string, transcript *[]Turn, text string) {
	*transcript = append(*transcript, Turn{Role: RoleUser, Content: text})
	if reply, ok := sender.SendChatMessage(ctx, user, text); ok {
		*transcript = append(*transcript, Turn{Role: RoleAssistant, Content: reply})
	}
}
