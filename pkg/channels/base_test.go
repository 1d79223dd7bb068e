package channels

import (
	"context"
	"testing"
	"time"

	"github.com/invexlabs/invexbot/pkg/bus"
)

func TestIsAllowed(t *testing.T) {
	testcases := []struct {
		name      string
		allowList []string
		senderID  string
		want      bool
	}{
		{"empty list allows everyone", nil, "12345", true},
		{"id match", []string{"12345"}, "12345", true},
		{"id mismatch", []string{"99999"}, "12345", false},
		{"compound id part", []string{"12345"}, "12345|alice", true},
		{"compound username part", []string{"alice"}, "12345|alice", true},
		{"at-prefixed username", []string{"@alice"}, "12345|alice", true},
		{"blank entries ignored", []string{" ", ""}, "12345", false},
	}

	for _, tc := range testcases {
		c := NewBaseChannel("test", bus.NewMessageBus(), tc.allowList)
		if got := c.IsAllowed(tc.senderID); got != tc.want {
			t.Errorf("%s: IsAllowed(%q) = %v, want %v", tc.name, tc.senderID, got, tc.want)
		}
	}
}

func TestHandleMessage_PublishesAllowed(t *testing.T) {
	msgBus := bus.NewMessageBus()
	c := NewBaseChannel("test", msgBus, nil)

	c.HandleMessage("u1", "chat-1", "hello", map[string]string{"k": "v"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	msg, ok := msgBus.ConsumeInbound(ctx)
	if !ok {
		t.Fatal("no inbound message published")
	}
	if msg.Channel != "test" || msg.SenderID != "u1" || msg.ChatID != "chat-1" || msg.Content != "hello" {
		t.Errorf("published message = %+v", msg)
	}
}

func TestHandleMessage_DropsDisallowed(t *testing.T) {
	msgBus := bus.NewMessageBus()
	c := NewBaseChannel("test", msgBus, []string{"someone-else"})

	c.HandleMessage("u1", "chat-1", "hello", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, ok := msgBus.ConsumeInbound(ctx); ok {
		t.Fatal("disallowed message was published")
	}
}
