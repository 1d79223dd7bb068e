package advisor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/invexlabs/invexbot/pkg/bus"
	"github.com/invexlabs/invexbot/pkg/logger"
	"github.com/invexlabs/invexbot/pkg/utils"
)

// Loop drains inbound bus messages through the engine and publishes the
// replies back out. One loop serves all channels.
type Loop struct {
	bus     *bus.MessageBus
	engine  *Engine
	running atomic.Bool
}

func NewLoop(msgBus *bus.MessageBus, engine *Engine) *Loop {
	return &Loop{bus: msgBus, engine: engine}
}

func (l *Loop) Run(ctx context.Context) error {
	l.running.Store(true)

	for l.running.Load() {
		select {
		case <-ctx.Done():
			return nil
		default:
			msg, ok := l.bus.ConsumeInbound(ctx)
			if !ok {
				continue
			}

			reply := l.handle(ctx, msg)
			if reply != "" {
				l.bus.PublishOutbound(bus.OutboundMessage{
					Channel: msg.Channel,
					ChatID:  msg.ChatID,
					Content: reply,
				})
			}
		}
	}

	return nil
}

func (l *Loop) Stop() {
	l.running.Store(false)
}

func (l *Loop) handle(ctx context.Context, msg bus.InboundMessage) string {
	logger.InfoCF(component, fmt.Sprintf("Processing message from %s:%s: %s",
		msg.Channel, msg.SenderID, utils.Truncate(msg.Content, 80)),
		map[string]any{
			"channel":   msg.Channel,
			"chat_id":   msg.ChatID,
			"sender_id": msg.SenderID,
		})

	reply, err := l.engine.Respond(ctx, msg.SenderID, msg.Content)
	if err != nil {
		var rl *RateLimitError
		if errors.As(err, &rl) {
			wait := int(rl.RetryAfter.Round(time.Second).Seconds())
			return fmt.Sprintf("You've reached the maximum number of AI requests. Please wait %d seconds.", wait)
		}
		logger.ErrorCF(component, "Failed to process message", map[string]any{
			"sender_id": msg.SenderID,
			"error":     err.Error(),
		})
		return errorReply
	}
	return reply
}
