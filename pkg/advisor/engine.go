package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/invexlabs/invexbot/pkg/conversation"
	"github.com/invexlabs/invexbot/pkg/knowledge"
	"github.com/invexlabs/invexbot/pkg/logger"
	"github.com/invexlabs/invexbot/pkg/providers"
	"github.com/invexlabs/invexbot/pkg/utils"
)

const component = "advisor"

const (
	maxReplyLen   = 1950
	truncateAt    = 1900
	historyTurns  = 3
	kbMatchLimit  = 3
	defaultMaxReq = 5
	defaultWindow = 60 * time.Second
)

// Reply sources surfaced to the user on direct questions.
const (
	SourceKnowledgeBase = "Knowledge Base"
	SourceLLM           = "Claude AI"
)

const (
	fallbackReply = "Oops! Something went wrong. Can you try asking that again? 😅"
	errorReply    = "Sorry, I ran into a problem there! Let's try again? 🔄"
)

const baseSystem = "You are a friendly reselling advisor. Keep responses short, casual, and focused on one topic at a time. Use emojis naturally. Avoid overwhelming the user with too much information at once."

var stageSystem = map[conversation.Stage]string{
	conversation.StageInitial:       baseSystem + " Focus on understanding their budget in a friendly way.",
	conversation.StageBudgetSet:     baseSystem + " Suggest specific products they can start with.",
	conversation.StageInterestsSet:  baseSystem + " Share quick tips about their chosen products.",
	conversation.StageExperienceSet: baseSystem + " Offer relevant advice for their experience level.",
	conversation.StageFollowUp:      baseSystem + " Answer their specific question clearly and concisely.",
}

// Options configures an Engine. Zero limits fall back to defaults.
type Options struct {
	Conversation *conversation.Manager
	Knowledge    *knowledge.Base
	Provider     providers.LLMProvider
	MaxTokens    int
	Temperature  float64
	MaxRequests  int
	Cooldown     time.Duration
}

// Engine turns user messages into advisory replies. It owns the prompt
// assembly: stage-keyed system message, knowledge base context, recent
// history transcript, then the provider call, and feeds each exchange
// back into the conversation store.
type Engine struct {
	conv        *conversation.Manager
	kb          *knowledge.Base
	provider    providers.LLMProvider
	maxTokens   int
	temperature float64
	limiter     *Limiter
	now         func() time.Time
}

func NewEngine(opts Options) *Engine {
	if opts.MaxRequests <= 0 {
		opts.MaxRequests = defaultMaxReq
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = defaultWindow
	}
	return &Engine{
		conv:        opts.Conversation,
		kb:          opts.Knowledge,
		provider:    opts.Provider,
		maxTokens:   opts.MaxTokens,
		temperature: opts.Temperature,
		limiter:     NewLimiter(opts.MaxRequests, opts.Cooldown),
		now:         time.Now,
	}
}

// Respond generates a free-chat reply. Provider failures are absorbed
// into a canned apology so the conversation keeps moving; a
// *RateLimitError is the only error callers see.
func (e *Engine) Respond(ctx context.Context, userID, query string) (string, error) {
	if ok, retry := e.limiter.Allow(userID); !ok {
		logger.WarnCF(component, "Request rate limited", map[string]any{
			"user_id":     userID,
			"retry_after": retry.Round(time.Second).String(),
		})
		return "", &RateLimitError{RetryAfter: retry}
	}
	return e.respond(ctx, userID, query), nil
}

func (e *Engine) respond(ctx context.Context, userID, query string) string {
	uc := e.conv.GetOrCreate(userID)

	system, ok := stageSystem[uc.Stage]
	if !ok {
		system = baseSystem
	}

	var messages []providers.Message
	if history := e.conv.RecentHistory(userID, historyTurns); len(history) > 0 {
		messages = append(messages, providers.Message{
			Role:    "user",
			Content: "Previous messages:\n" + transcript(history),
		})
	}
	messages = append(messages, providers.Message{
		Role:    "user",
		Content: userPrompt(e.contextBlock(query, uc), query),
	})

	reply, err := e.provider.Complete(ctx, providers.CompletionRequest{
		System:      system,
		Messages:    messages,
		MaxTokens:   e.maxTokens,
		Temperature: e.temperature,
	})
	if err != nil {
		logger.ErrorCF(component, "LLM call failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return errorReply
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		logger.WarnC(component, "Provider returned empty reply")
		return fallbackReply
	}

	e.conv.AppendHistory(userID, query, false)
	e.conv.AppendHistory(userID, reply, true)

	if upd := e.conv.Analyze(userID, query); !upd.IsZero() {
		e.conv.Update(userID, upd)
	}

	// A reply that trails off mid-thought gets the next stage question
	// appended so the conversation always has somewhere to go.
	if !endsInPunctuation(reply) {
		if next := conversation.NextPrompt(e.conv.GetOrCreate(userID)); next != "" {
			reply += "\n\n" + next
		}
	}

	if len(reply) > maxReplyLen {
		logger.WarnCF(component, "Reply too long, truncating", map[string]any{"length": len(reply)})
		reply = utils.Truncate(reply, truncateAt)
	}

	logger.InfoCF(component, "Reply generated", map[string]any{
		"user_id": userID,
		"length":  len(reply),
	})
	return reply
}

// Ask answers a direct question, preferring knowledge base passages over
// an LLM round trip. The returned source names which path produced the
// reply.
func (e *Engine) Ask(ctx context.Context, userID, question string) (string, string, error) {
	if ok, retry := e.limiter.Allow(userID); !ok {
		return "", "", &RateLimitError{RetryAfter: retry}
	}

	if matches := e.kb.Search(question); len(matches) > 0 {
		if len(matches) > kbMatchLimit {
			matches = matches[:kbMatchLimit]
		}
		logger.InfoCF(component, "Question answered from knowledge base", map[string]any{
			"user_id": userID,
			"matches": len(matches),
		})
		return strings.Join(matches, "\n\n"), SourceKnowledgeBase, nil
	}

	return e.respond(ctx, userID, question), SourceLLM, nil
}

// contextBlock renders the prompt context: the user's known profile
// followed by the routed knowledge base sections.
func (e *Engine) contextBlock(query string, uc conversation.Context) string {
	var sb strings.Builder
	sb.WriteString("Knowledge Base Information:\n\n")

	var profile []string
	if uc.Budget != nil {
		profile = append(profile, fmt.Sprintf("Budget: $%g", *uc.Budget))
	}
	if len(uc.Interests) > 0 {
		names := make([]string, len(uc.Interests))
		for i, cat := range uc.Interests {
			names[i] = string(cat)
		}
		profile = append(profile, "Interests: "+strings.Join(names, ", "))
	}
	if uc.ExperienceLevel != nil {
		profile = append(profile, "Experience Level: "+string(*uc.ExperienceLevel))
	}
	if len(profile) > 0 {
		sb.WriteString("=== User Context ===\n")
		sb.WriteString(strings.Join(profile, "\n"))
		sb.WriteString("\n\n")
	}

	sb.WriteString(e.kb.Relevant(query, uc.Budget))
	return sb.String()
}

func userPrompt(contextBlock, query string) string {
	return fmt.Sprintf(`Context:
%s

User Query: %s

Remember:
1. Keep it super casual and friendly
2. One main point per message
3. Use emojis naturally
4. Short, clear responses
5. Ask one follow-up question if needed`, contextBlock, query)
}

func transcript(history []conversation.HistoryEntry) string {
	lines := make([]string, len(history))
	for i, entry := range history {
		speaker := "User"
		if entry.FromAssistant {
			speaker = "Bot"
		}
		lines[i] = speaker + ": " + entry.Message
	}
	return strings.Join(lines, "\n")
}

func endsInPunctuation(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return strings.ContainsRune("?!.", r)
}
