package bus

import (
	"context"
	"testing"
)

func TestMessageBus_RoundTrip(t *testing.T) {
	mb := NewMessageBus()
	defer mb.Close()

	mb.PublishInbound(InboundMessage{Channel: "discord", SenderID: "u1", ChatID: "c1", Content: "what's a good budget?"})

	msg, ok := mb.ConsumeInbound(context.Background())
	if !ok {
		t.Fatal("expected an inbound message")
	}
	if msg.SenderID != "u1" || msg.Content != "what's a good budget?" {
		t.Fatalf("unexpected message: %+v", msg)
	}
}

func TestMessageBus_PublishInboundDropsWhenBufferFull(t *testing.T) {
	mb := NewMessageBus()
	defer mb.Close()

	for i := 0; i < cap(mb.inbound); i++ {
		mb.PublishInbound(InboundMessage{Channel: "discord", SenderID: "u", ChatID: "c", Content: "msg"})
	}

	mb.PublishInbound(InboundMessage{Channel: "discord", SenderID: "u", ChatID: "c", Content: "overflow"})
	if mb.DroppedInbound() != 1 {
		t.Fatalf("expected dropped inbound count 1, got %d", mb.DroppedInbound())
	}
}

func TestMessageBus_PublishOutboundDropsWhenBufferFull(t *testing.T) {
	mb := NewMessageBus()
	defer mb.Close()

	for i := 0; i < cap(mb.outbound); i++ {
		mb.PublishOutbound(OutboundMessage{Channel: "discord", ChatID: "c", Content: "msg"})
	}

	mb.PublishOutbound(OutboundMessage{Channel: "discord", ChatID: "c", Content: "overflow"})
	if mb.DroppedOutbound() != 1 {
		t.Fatalf("expected dropped outbound count 1, got %d", mb.DroppedOutbound())
	}
}

func TestMessageBus_ClosedChannelsReturnFalse(t *testing.T) {
	mb := NewMessageBus()
	mb.Close()

	if _, ok := mb.ConsumeInbound(context.Background()); ok {
		t.Fatalf("expected closed inbound consume to return ok=false")
	}
	if _, ok := mb.SubscribeOutbound(context.Background()); ok {
		t.Fatalf("expected closed outbound subscribe to return ok=false")
	}
}

func TestMessageBus_PublishAfterCloseIsNoOp(t *testing.T) {
	mb := NewMessageBus()
	mb.Close()

	mb.PublishInbound(InboundMessage{Channel: "discord"})
	mb.PublishOutbound(OutboundMessage{Channel: "discord"})

	if mb.DroppedInbound() != 0 || mb.DroppedOutbound() != 0 {
		t.Fatal("publishing after close should silently discard, not count drops")
	}
}
