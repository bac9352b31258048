package chatbot

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Generator is the narrow capability the engine needs from an external
// text-generation service. Implementations wrap a concrete LLM provider;
// tests inject a stub.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	// DefaultEnhanceThreshold is the message length above which enhancement
	// is attempted regardless of intent.
	DefaultEnhanceThreshold = 50

	// DefaultHistoryWindow is how many trailing conversation turns the
	// history-aware path forwards to the generator.
	DefaultHistoryWindow = 4

	enhanceTimeout = 12 * time.Second
)

// apologyReply is the last-resort answer when the pipeline itself blows up.
// The chat surface must always receive text, never an error.
const apologyReply = "Sorry, something went wrong on our side. Please email codebiruny@gmail.com or call +880 1712-345678 and we'll get back to you right away."

// Turn is one prior exchange in the conversation. The engine only reads the
// trailing turns for context and never stores them.
type Turn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// Engine drives the classify → compose → enhance pipeline. It is stateless
// apart from the immutable knowledge base, so a single instance serves all
// concurrent requests.
type Engine struct {
	kb        *KnowledgeBase
	generator Generator

	// Tuning constants, exported so callers can override the source values.
	EnhanceThreshold int
	HistoryWindow    int
}

func NewEngine(kb *KnowledgeBase, generator Generator) *Engine {
	if kb == nil {
		kb = Default()
	}
	return &Engine{
		kb:               kb,
		generator:        generator,
		EnhanceThreshold: DefaultEnhanceThreshold,
		HistoryWindow:    DefaultHistoryWindow,
	}
}

// Chat answers a single user message. It never returns an empty string and
// never propagates an error: enhancement failures fall back to the canned
// response, and anything unexpected is converted into the apology reply.
func (e *Engine) Chat(ctx context.Context, message string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			reply = apologyReply
		}
	}()

	intent := ClassifyIntent(message)
	reply = ComposeResponse(e.kb, intent, message)

	if e.shouldEnhance(intent, message) {
		reply = e.enhance(ctx, reply, message)
	}

	return e.ensureBranding(intent, reply)
}

// ChatWithHistory answers a message with trailing conversation turns as
// advisory context. It issues a single generator call scoped to the agency;
// if that call fails for any reason it degrades to the plain Chat pipeline.
func (e *Engine) ChatWithHistory(ctx context.Context, message string, history []Turn) string {
	if e.generator == nil {
		return e.Chat(ctx, message)
	}

	if len(history) > e.HistoryWindow {
		history = history[len(history)-e.HistoryWindow:]
	}

	callCtx, cancel := context.WithTimeout(ctx, enhanceTimeout)
	defer cancel()

	text, err := e.generator.Generate(callCtx, e.buildHistoryPrompt(message, history))
	if err != nil || strings.TrimSpace(text) == "" {
		return e.Chat(ctx, message)
	}

	return e.ensureBranding(ClassifyIntent(message), strings.TrimSpace(text))
}

// shouldEnhance reproduces the original trigger exactly: general intent, or a
// message longer than the threshold.
func (e *Engine) shouldEnhance(intent Intent, message string) bool {
	if e.generator == nil {
		return false
	}
	return intent == IntentGeneral || len(message) > e.EnhanceThreshold
}

// enhance asks the generator for a free-form reply. On success the generated
// text replaces the base response entirely; on any failure the base response
// is kept and the error is swallowed.
func (e *Engine) enhance(ctx context.Context, base, message string) string {
	callCtx, cancel := context.WithTimeout(ctx, enhanceTimeout)
	defer cancel()

	text, err := e.generator.Generate(callCtx, e.buildEnhancePrompt(base, message))
	if err != nil || strings.TrimSpace(text) == "" {
		return base
	}
	return strings.TrimSpace(text)
}

// ensureBranding guarantees every non-greeting reply mentions the agency,
// appending the promotional suffix when a template or generated answer
// doesn't carry the name natively.
func (e *Engine) ensureBranding(intent Intent, reply string) string {
	if intent == IntentGreeting {
		return reply
	}
	if strings.Contains(strings.ToLower(reply), strings.ToLower(e.kb.Name)) {
		return reply
	}
	return reply + fmt.Sprintf("\n\n— %s: %s. Let's build something great together!", e.kb.Name, e.kb.Tagline)
}

// knowledgeSummary condenses the knowledge base into the compact block both
// prompt builders embed: services, top expertise, primary contact channels.
func (e *Engine) knowledgeSummary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Company: %s — %s\n", e.kb.Name, e.kb.Tagline)
	for _, section := range categorySections {
		items := e.kb.Services[section.key]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "Services (%s): %s\n", section.key, strings.Join(items, ", "))
	}
	fmt.Fprintf(&b, "Expertise: %s\n", strings.Join(firstN(e.kb.Expertise, 5), ", "))
	fmt.Fprintf(&b, "Email: %s | Phone: %s | Location: %s\n",
		e.kb.Contact.Email, e.kb.Contact.Phones[0], e.kb.Contact.Location)
	return b.String()
}

func (e *Engine) buildEnhancePrompt(base, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are the website assistant of %s, a software agency.\n\n", e.kb.Name)
	b.WriteString("Company facts:\n")
	b.WriteString(e.knowledgeSummary())
	fmt.Fprintf(&b, "\nUser message: %q\n\n", message)
	b.WriteString("Write a helpful, friendly reply in 2-5 short sentences. ")
	b.WriteString("Stay on topic, only use the company facts above, and invite the user to discuss their project. ")
	b.WriteString("Plain text only, no markdown headings.\n\n")
	fmt.Fprintf(&b, "For context, the current draft reply is:\n%s\n", base)
	return b.String()
}

func (e *Engine) buildHistoryPrompt(message string, history []Turn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are the website assistant of %s, a software agency.\n\n", e.kb.Name)
	b.WriteString("Company facts:\n")
	b.WriteString(e.knowledgeSummary())
	if len(history) > 0 {
		b.WriteString("\nConversation so far:\n")
		for _, turn := range history {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
	}
	fmt.Fprintf(&b, "\nUser message: %q\n\n", message)
	b.WriteString("Reply concisely and helpfully, stay grounded in the company facts, and invite the user to discuss their project with the team.")
	return b.String()
}
