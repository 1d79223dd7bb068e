package channels

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/invexlabs/invexbot/pkg/advisor"
	"github.com/invexlabs/invexbot/pkg/bus"
	"github.com/invexlabs/invexbot/pkg/config"
	"github.com/invexlabs/invexbot/pkg/logger"
	"github.com/invexlabs/invexbot/pkg/utils"
)

const (
	sendTimeout           = 10 * time.Second
	typingRefreshInterval = 8 * time.Second

	// Discord caps messages at 2000 characters; splitting early leaves
	// room for natural boundaries.
	messageSplitLimit = 1500
)

const (
	colorBlue  = 0x3498db
	colorGreen = 0x2ecc71
	colorGold  = 0xf1c40f
)

const welcomeReply = "Hey! Welcome to the reselling world! 👋\n\nThe best way to start is to figure out your budget - that way I can guide you towards the right options.\n\nHow much are you thinking of investing to get started? 💰"

const tryAgainReply = "Oops! Something went wrong. Try again? 🔄"

// DiscordChannel serves free chat over the message bus and slash
// commands straight against the advisor engine.
type DiscordChannel struct {
	*BaseChannel
	session  *discordgo.Session
	config   config.DiscordConfig
	engine   *advisor.Engine
	typing   map[string]*typingSession
	typingMu sync.Mutex
}

type typingSession struct {
	pending int
	cancel  context.CancelFunc
}

func NewDiscordChannel(cfg config.DiscordConfig, msgBus *bus.MessageBus, engine *advisor.Engine) (*DiscordChannel, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	return &DiscordChannel{
		BaseChannel: NewBaseChannel("discord", msgBus, cfg.AllowFrom),
		session:     session,
		config:      cfg,
		engine:      engine,
		typing:      make(map[string]*typingSession),
	}, nil
}

func (c *DiscordChannel) Start(ctx context.Context) error {
	logger.InfoC("discord", "Starting Discord bot")

	c.session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentGuildMessages |
		discordgo.IntentDirectMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentGuildMembers

	c.session.AddHandler(c.handleMessage)
	c.session.AddHandler(c.handleInteraction)
	c.session.AddHandler(c.handleMemberJoin)

	if err := c.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	c.setRunning(true)

	botUser, err := c.session.User("@me")
	if err != nil {
		return fmt.Errorf("get bot user: %w", err)
	}

	registered, err := c.session.ApplicationCommandBulkOverwrite(botUser.ID, c.config.GuildID, commandDefinitions())
	if err != nil {
		return fmt.Errorf("register slash commands: %w", err)
	}

	logger.InfoCF("discord", "Discord bot connected", map[string]any{
		"username": botUser.Username,
		"user_id":  botUser.ID,
		"commands": len(registered),
	})

	return nil
}

func (c *DiscordChannel) Stop(ctx context.Context) error {
	logger.InfoC("discord", "Stopping Discord bot")
	c.setRunning(false)
	c.stopAllTyping()

	if err := c.session.Close(); err != nil {
		return fmt.Errorf("close discord session: %w", err)
	}

	return nil
}

func (c *DiscordChannel) Send(ctx context.Context, msg bus.OutboundMessage) error {
	if !c.IsRunning() {
		return fmt.Errorf("discord bot not running")
	}
	if msg.ChatID == "" {
		return fmt.Errorf("channel ID is empty")
	}
	defer c.endTyping(msg.ChatID)

	if msg.Content == "" {
		return nil
	}

	for _, chunk := range splitMessage(msg.Content, messageSplitLimit) {
		if err := c.sendChunk(ctx, msg.ChatID, chunk); err != nil {
			return err
		}
	}

	return nil
}

func (c *DiscordChannel) sendChunk(ctx context.Context, channelID, content string) error {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := c.session.ChannelMessageSend(channelID, content)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send discord message: %w", err)
		}
		return nil
	case <-sendCtx.Done():
		return fmt.Errorf("send message timeout: %w", sendCtx.Err())
	}
}

// splitMessage breaks long content into chunks, preferring to cut at a
// newline (then a space) near the end of each chunk.
func splitMessage(content string, limit int) []string {
	var messages []string

	for len(content) > 0 {
		if len(content) <= limit {
			messages = append(messages, content)
			break
		}

		end := findLastNewline(content[:limit], 200)
		if end <= 0 {
			end = findLastSpace(content[:limit], 100)
		}
		if end <= 0 {
			end = limit
		}

		messages = append(messages, content[:end])
		content = strings.TrimSpace(content[end:])
	}

	return messages
}

func findLastNewline(s string, searchWindow int) int {
	searchStart := len(s) - searchWindow
	if searchStart < 0 {
		searchStart = 0
	}
	for i := len(s) - 1; i >= searchStart; i-- {
		if s[i] == '\n' {
			return i
		}
	}
	return -1
}

func findLastSpace(s string, searchWindow int) int {
	searchStart := len(s) - searchWindow
	if searchStart < 0 {
		searchStart = 0
	}
	for i := len(s) - 1; i >= searchStart; i-- {
		if s[i] == ' ' || s[i] == '\t' {
			return i
		}
	}
	return -1
}

func (c *DiscordChannel) sendTyping(channelID string) {
	if channelID == "" || c.session == nil {
		return
	}
	if err := c.session.ChannelTyping(channelID); err != nil {
		logger.ErrorCF("discord", "Failed to send typing indicator", map[string]any{
			"error": err.Error(),
		})
	}
}

func (c *DiscordChannel) beginTyping(channelID string) {
	if channelID == "" {
		return
	}

	c.typingMu.Lock()
	if sess, ok := c.typing[channelID]; ok {
		sess.pending++
		c.typingMu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.typing[channelID] = &typingSession{pending: 1, cancel: cancel}
	c.typingMu.Unlock()

	c.sendTyping(channelID)

	go func() {
		ticker := time.NewTicker(typingRefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !c.IsRunning() {
					return
				}
				c.sendTyping(channelID)
			}
		}
	}()
}

func (c *DiscordChannel) endTyping(channelID string) {
	if channelID == "" {
		return
	}

	c.typingMu.Lock()
	defer c.typingMu.Unlock()

	sess, ok := c.typing[channelID]
	if !ok {
		return
	}
	sess.pending--
	if sess.pending > 0 {
		return
	}
	delete(c.typing, channelID)
	sess.cancel()
}

func (c *DiscordChannel) stopAllTyping() {
	c.typingMu.Lock()
	defer c.typingMu.Unlock()

	for channelID, sess := range c.typing {
		sess.cancel()
		delete(c.typing, channelID)
	}
}

// handleMessage routes free chat onto the bus. Slash commands come in
// through handleInteraction instead.
func (c *DiscordChannel) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Author == nil || m.Author.Bot {
		return
	}
	if m.Author.ID == s.State.User.ID {
		return
	}
	if m.Content == "" || strings.HasPrefix(m.Content, "/") {
		return
	}

	if !c.IsAllowed(m.Author.ID) {
		logger.DebugCF("discord", "Message rejected by allowlist", map[string]any{
			"user_id": m.Author.ID,
		})
		return
	}

	c.beginTyping(m.ChannelID)

	logger.DebugCF("discord", "Received message", map[string]any{
		"sender_id": m.Author.ID,
		"username":  m.Author.Username,
		"preview":   utils.Truncate(m.Content, 50),
	})

	c.HandleMessage(m.Author.ID, m.ChannelID, m.Content, map[string]string{
		"message_id": m.ID,
		"username":   m.Author.Username,
		"guild_id":   m.GuildID,
		"channel_id": m.ChannelID,
		"is_dm":      fmt.Sprintf("%t", m.GuildID == ""),
	})
}

// handleMemberJoin grants the member role and greets the newcomer.
func (c *DiscordChannel) handleMemberJoin(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.User == nil || m.User.Bot {
		return
	}

	if c.config.MemberRoleID != "" {
		if err := s.GuildMemberRoleAdd(m.GuildID, m.User.ID, c.config.MemberRoleID); err != nil {
			logger.ErrorCF("discord", "Failed to grant member role", map[string]any{
				"user_id": m.User.ID,
				"role_id": c.config.MemberRoleID,
				"error":   err.Error(),
			})
		} else {
			logger.InfoCF("discord", "Member role granted", map[string]any{
				"user_id": m.User.ID,
			})
		}
	}

	dm, err := s.UserChannelCreate(m.User.ID)
	if err != nil {
		logger.WarnCF("discord", "Failed to open welcome DM", map[string]any{
			"user_id": m.User.ID,
			"error":   err.Error(),
		})
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "👋 Welcome to Invex Resell!",
		Description: "Ready to start your reselling journey? Here's how to get going:",
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Step 1️⃣", Value: "Type `/start` to get personalized advice", Inline: false},
			{Name: "Step 2️⃣", Value: "Tell me your budget and interests", Inline: false},
			{Name: "Step 3️⃣", Value: "Log your sales with `/update` and watch the badges roll in 🚀", Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "We can't wait to meet you! 🤝"},
	}
	if _, err := s.ChannelMessageSendEmbed(dm.ID, embed); err != nil {
		logger.WarnCF("discord", "Failed to send welcome message", map[string]any{
			"user_id": m.User.ID,
			"error":   err.Error(),
		})
	}
}

func commandDefinitions() []*discordgo.ApplicationCommand {
	minRating := float64(1)

	return []*discordgo.ApplicationCommand{
		{
			Name:        "ai",
			Description: "Ask a question about reselling",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "Your reselling question",
					Required:    true,
				},
			},
		},
		{
			Name:        "start",
			Description: "Start your reselling journey with personalized advice",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "query",
					Description: "What you want to know",
					Required:    false,
				},
			},
		},
		{
			Name:        "tips",
			Description: "Get personalized reselling tips based on your progress",
		},
		{
			Name:        "progress",
			Description: "Check your reselling progress and achievements",
		},
		{
			Name:        "update",
			Description: "Update your reselling progress",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "sale",
					Description: "Add a sale 📈",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "item", Description: "What you sold", Required: true},
						{Type: discordgo.ApplicationCommandOptionNumber, Name: "buy_price", Description: "What you paid", Required: true},
						{Type: discordgo.ApplicationCommandOptionNumber, Name: "sell_price", Description: "What you sold it for", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "platform", Description: "Where you sold it", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "feedback",
					Description: "Add buyer feedback ⭐",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "rating", Description: "Rating from 1 to 5", Required: true, MinValue: &minRating, MaxValue: 5},
						{Type: discordgo.ApplicationCommandOptionString, Name: "comment", Description: "What the buyer said", Required: false},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show detailed statistics 📊",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset",
					Description: "Reset your progress 🔄",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionBoolean, Name: "confirm", Description: "This cannot be undone", Required: true},
					},
				},
			},
		},
		{
			Name:        "help",
			Description: "Show all available commands and how to use them",
		},
	}
}

func (c *DiscordChannel) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	user := interactionUser(i)
	if user == nil {
		return
	}
	if !c.IsAllowed(user.ID) {
		c.respondText(s, i, "Sorry, you're not on the list for this bot.")
		return
	}

	data := i.ApplicationCommandData()
	logger.InfoCF("discord", "Slash command received", map[string]any{
		"command": data.Name,
		"user_id": user.ID,
	})

	switch data.Name {
	case "ai":
		c.handleAI(s, i, user.ID, data)
	case "start":
		c.handleStart(s, i, user.ID, data)
	case "tips":
		c.handleTips(s, i, user.ID)
	case "progress":
		c.handleProgress(s, i, user.ID)
	case "update":
		c.handleUpdate(s, i, user.ID, data)
	case "help":
		c.handleHelp(s, i)
	}
}

func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func (c *DiscordChannel) handleAI(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, data discordgo.ApplicationCommandInteractionData) {
	question := data.Options[0].StringValue()
	c.deferInteraction(s, i)

	reply, source, err := c.engine.Ask(context.Background(), userID, question)
	if err != nil {
		c.finishWithText(s, i, limitOrErrorText(err))
		return
	}

	c.finishWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "🎯 Reselling Advice",
		Description: fmt.Sprintf("Here's what I found for: *%s*\n\n%s", question, reply),
		Color:       colorGreen,
		Footer:      &discordgo.MessageEmbedFooter{Text: "Source: " + source + " | Powered by Invex AI"},
	})
}

func (c *DiscordChannel) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, data discordgo.ApplicationCommandInteractionData) {
	c.deferInteraction(s, i)

	if len(data.Options) == 0 || data.Options[0].StringValue() == "" {
		c.finishWithText(s, i, welcomeReply)
		return
	}

	reply, err := c.engine.Respond(context.Background(), userID, data.Options[0].StringValue())
	if err != nil {
		c.finishWithText(s, i, limitOrErrorText(err))
		return
	}
	c.finishWithText(s, i, reply)
}

func (c *DiscordChannel) handleTips(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) {
	c.deferInteraction(s, i)

	sheet := c.engine.Tips(userID)
	c.finishWithEmbed(s, i, &discordgo.MessageEmbed{
		Title: "💡 Personalized Reselling Tips",
		Color: colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: sheet.Title, Value: "• " + strings.Join(sheet.Lines, "\n• "), Inline: false},
		},
	})
}

func (c *DiscordChannel) handleProgress(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) {
	c.deferInteraction(s, i)

	report := c.engine.Progress(userID)
	embed := &discordgo.MessageEmbed{
		Title:       "📊 Your Reselling Progress",
		Description: report.Summary,
		Color:       colorBlue,
	}
	if len(report.NewBadges) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "🏆 New Achievements Unlocked!",
			Value:  "• " + strings.Join(report.NewBadges, "\n• "),
			Inline: false,
		})
	}
	c.finishWithEmbed(s, i, embed)
}

func (c *DiscordChannel) handleUpdate(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, data discordgo.ApplicationCommandInteractionData) {
	c.deferInteraction(s, i)

	if len(data.Options) == 0 {
		c.finishWithText(s, i, "Pick one of: sale, feedback, stats, reset.")
		return
	}

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "sale":
		out := c.engine.RecordSale(userID,
			opts["item"].StringValue(),
			opts["buy_price"].FloatValue(),
			opts["sell_price"].FloatValue(),
			opts["platform"].StringValue(),
		)
		embed := &discordgo.MessageEmbed{
			Title: "🎉 Sale Added Successfully!",
			Color: colorGreen,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Item", Value: opts["item"].StringValue(), Inline: true},
				{Name: "Profit", Value: fmt.Sprintf("$%.2f", out.Profit), Inline: true},
				{Name: "Platform", Value: opts["platform"].StringValue(), Inline: true},
			},
		}
		if out.Frequency != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   "📊 Recent Performance",
				Value:  fmt.Sprintf("Average profit: $%.2f\nFrequency: %s", out.AvgProfit, out.Frequency),
				Inline: false,
			})
		}
		c.finishWithEmbed(s, i, embed)
		c.announceBadges(s, i, out.NewBadges)

	case "feedback":
		rating := int(opts["rating"].IntValue())
		comment := ""
		if opt, ok := opts["comment"]; ok {
			comment = opt.StringValue()
		}
		out := c.engine.RecordFeedback(userID, rating, comment)
		c.finishWithEmbed(s, i, &discordgo.MessageEmbed{
			Title: "⭐ Feedback Added!",
			Color: colorGold,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Rating", Value: strings.Repeat("⭐", rating), Inline: true},
				{Name: "Average Rating", Value: fmt.Sprintf("%.1f ⭐", out.AvgRating), Inline: true},
			},
		})
		c.announceBadges(s, i, out.NewBadges)

	case "stats":
		st := c.engine.Stats(userID)
		embed := &discordgo.MessageEmbed{Title: "📊 Detailed Statistics", Color: colorBlue}
		if st.TotalSales > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "💰 Sales Performance",
				Value: fmt.Sprintf("Total Sales: %d\nTotal Profit: $%.2f\nAverage Profit: $%.2f\nBest Sale: $%.2f (%s)",
					st.TotalSales, st.TotalProfit, st.AvgProfit, st.BestSale.Profit, st.BestSale.Item),
				Inline: false,
			})
		}
		if st.TotalReviews > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "⭐ Feedback Stats",
				Value: fmt.Sprintf("Average Rating: %.1f ⭐\n5-Star Reviews: %d\nTotal Reviews: %d",
					st.AvgRating, st.FiveStars, st.TotalReviews),
				Inline: false,
			})
		}
		if len(embed.Fields) == 0 {
			embed.Description = "Nothing logged yet. Add your first sale with `/update sale`!"
		}
		c.finishWithEmbed(s, i, embed)

	case "reset":
		if !opts["confirm"].BoolValue() {
			c.finishWithText(s, i, "Reset cancelled - run again with confirm set to True when you're sure.")
			return
		}
		c.engine.ResetProgress(userID)
		c.finishWithText(s, i, "Progress reset successfully! Start fresh with /help")
	}
}

func (c *DiscordChannel) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	c.deferInteraction(s, i)

	c.finishWithEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "📚 InvexBot Commands Guide",
		Description: "Here are all the commands you can use:",
		Color:       colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🤝 Getting Started",
				Value:  "`/start` - Begin your reselling journey with personalized advice",
				Inline: false,
			},
			{
				Name: "📊 Track Your Progress",
				Value: "`/update sale` - Log a sale 📈\n" +
					"`/update feedback` - Log buyer feedback ⭐\n" +
					"`/update stats` - Detailed statistics 📊\n" +
					"`/update reset` - Start over 🔄\n" +
					"`/progress` - View your achievements and stats",
				Inline: false,
			},
			{
				Name: "❓ Help & Information",
				Value: "`/ai` - Ask any reselling question\n" +
					"`/tips` - Get reselling tips based on your progress",
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "💡 Tip: Use /start to begin your reselling journey!"},
	})
}

// announceBadges follows up with an achievements embed when an update
// unlocked something.
func (c *DiscordChannel) announceBadges(s *discordgo.Session, i *discordgo.InteractionCreate, badges []string) {
	if len(badges) == 0 {
		return
	}

	_, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "🏆 New Achievements Unlocked!",
			Description: "• " + strings.Join(badges, "\n• "),
			Color:       colorGold,
		}},
	})
	if err != nil {
		logger.WarnCF("discord", "Failed to announce achievements", map[string]any{
			"error": err.Error(),
		})
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func limitOrErrorText(err error) string {
	var rl *advisor.RateLimitError
	if errors.As(err, &rl) {
		wait := int(rl.RetryAfter.Round(time.Second).Seconds())
		return fmt.Sprintf("You've reached the maximum number of AI requests. Please wait %d seconds.", wait)
	}
	return tryAgainReply
}

func (c *DiscordChannel) deferInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		logger.WarnCF("discord", "Failed to defer interaction", map[string]any{"error": err.Error()})
	}
}

func (c *DiscordChannel) respondText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		logger.WarnCF("discord", "Failed to respond to interaction", map[string]any{"error": err.Error()})
	}
}

func (c *DiscordChannel) finishWithText(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content})
	if err != nil {
		logger.WarnCF("discord", "Failed to edit interaction response", map[string]any{"error": err.Error()})
	}
}

func (c *DiscordChannel) finishWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	embeds := []*discordgo.MessageEmbed{embed}
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Embeds: &embeds})
	if err != nil {
		logger.WarnCF("discord", "Failed to edit interaction response", map[string]any{"error": err.Error()})
	}
}
