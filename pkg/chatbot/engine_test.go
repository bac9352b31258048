package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubGenerator records every prompt it receives and returns a fixed reply
// or error.
type stubGenerator struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// longGeneralMessage matches no intent rule and exceeds the enhancement
// threshold.
const longGeneralMessage = "We need a custom platform for our bakery business and we are unsure where to begin. Budget and timing are flexible. Please send us guidance."

func TestChatGreetingSkipsEnhancement(t *testing.T) {
	gen := &stubGenerator{reply: "should never be used"}
	engine := NewEngine(Default(), gen)

	out := engine.Chat(context.Background(), "hi there")

	assert.Equal(t, ComposeResponse(Default(), IntentGreeting, "hi there"), out)
	assert.Equal(t, 0, gen.calls, "short greeting must not trigger enhancement")
}

func TestChatServicesCanned(t *testing.T) {
	gen := &stubGenerator{reply: "unused"}
	engine := NewEngine(Default(), gen)

	out := engine.Chat(context.Background(), "What services do you offer?")

	assert.Equal(t, 0, gen.calls)
	for _, svc := range Default().Services["web"] {
		assert.Contains(t, out, "• "+svc)
	}
}

func TestChatContactChannels(t *testing.T) {
	engine := NewEngine(Default(), nil)

	out := engine.Chat(context.Background(), "How can I contact you?")

	if intent := ClassifyIntent("How can I contact you?"); intent != IntentContact {
		t.Fatalf("fixture must classify as contact, got %s", intent)
	}

	assert.Contains(t, out, "codebiruny@gmail.com")
	assert.Contains(t, out, "+880 1712-345678")
	assert.Contains(t, out, "+880 1912-345678")
}

func TestChatEnhancementReplacesBase(t *testing.T) {
	gen := &stubGenerator{reply: "Custom reply"}
	engine := NewEngine(Default(), gen)

	if len(longGeneralMessage) <= DefaultEnhanceThreshold {
		t.Fatal("test message too short to exercise enhancement")
	}

	out := engine.Chat(context.Background(), longGeneralMessage)

	assert.Equal(t, 1, gen.calls)
	assert.True(t, strings.HasPrefix(out, "Custom reply"), "generated text must replace the base response")
	assert.Contains(t, out, "CodeBiruni", "branding suffix must be appended when the reply lacks the name")
}

func TestChatEnhancementFailureKeepsCanned(t *testing.T) {
	gen := &stubGenerator{err: errors.New("network down")}
	engine := NewEngine(Default(), gen)

	out := engine.Chat(context.Background(), longGeneralMessage)

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, ComposeResponse(Default(), IntentGeneral, longGeneralMessage), out,
		"failed enhancement must fall back to the canned general template, unmodified")
}

func TestChatEnhancementEmptyReplyKeepsCanned(t *testing.T) {
	gen := &stubGenerator{reply: "   "}
	engine := NewEngine(Default(), gen)

	out := engine.Chat(context.Background(), longGeneralMessage)

	assert.Equal(t, ComposeResponse(Default(), IntentGeneral, longGeneralMessage), out)
}

func TestChatEnhancementThresholdExact(t *testing.T) {
	// "price " + padding: classified as pricing either way, length decides.
	at := "price " + strings.Repeat("x", DefaultEnhanceThreshold-6)
	over := at + "x"
	if len(at) != DefaultEnhanceThreshold || len(over) != DefaultEnhanceThreshold+1 {
		t.Fatalf("bad fixture lengths: %d, %d", len(at), len(over))
	}

	gen := &stubGenerator{reply: "enhanced"}
	engine := NewEngine(Default(), gen)

	engine.Chat(context.Background(), at)
	assert.Equal(t, 0, gen.calls, "message at the threshold must not enhance")

	engine.Chat(context.Background(), over)
	assert.Equal(t, 1, gen.calls, "message over the threshold must enhance")
}

func TestChatLongKeywordMessageEnhances(t *testing.T) {
	gen := &stubGenerator{reply: "Here is a tailored answer from CodeBiruni."}
	engine := NewEngine(Default(), gen)

	msg := "I would like to know all of your services in detail for my team"
	out := engine.Chat(context.Background(), msg)

	assert.Equal(t, IntentServices, ClassifyIntent(msg))
	assert.Equal(t, 1, gen.calls, "long messages enhance regardless of intent")
	assert.Equal(t, "Here is a tailored answer from CodeBiruni.", out,
		"no suffix when the generated reply already carries the name")
}

func TestChatBrandingInvariant(t *testing.T) {
	engine := NewEngine(Default(), nil)

	messages := map[string]Intent{
		"What services do you offer?":   IntentServices,
		"how can I reach you by phone":  IntentContact,
		"what's the price":              IntentPricing,
		"what technology do you use":    IntentExpertise,
		"show me your portfolio":        IntentPortfolio,
		"explain your methodology":      IntentProcess,
		"can you build an lms":          IntentEducation,
		"i need an online store":        IntentEcommerce,
		"tell me more, who are you":     IntentAbout,
		"my uncle wants a banana":       IntentGeneral,
	}

	for msg, intent := range messages {
		out := engine.Chat(context.Background(), msg)
		assert.Equal(t, intent, ClassifyIntent(msg), "fixture %q", msg)
		assert.Contains(t, out, "CodeBiruni", "reply for %q must mention the agency", msg)
	}
}

func TestChatRecoversToApology(t *testing.T) {
	// A nil knowledge base makes every template panic; the pipeline must
	// convert that into the fixed apology, never an empty reply or a panic.
	engine := &Engine{EnhanceThreshold: DefaultEnhanceThreshold, HistoryWindow: DefaultHistoryWindow}

	out := engine.Chat(context.Background(), "What services do you offer?")

	assert.Equal(t, apologyReply, out)
	assert.Contains(t, out, "codebiruny@gmail.com")
}

func TestChatWithHistoryTruncatesWindow(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	engine := NewEngine(Default(), gen)

	history := []Turn{
		{Role: "user", Content: "turn-01"},
		{Role: "assistant", Content: "turn-02"},
		{Role: "user", Content: "turn-03"},
		{Role: "assistant", Content: "turn-04"},
		{Role: "user", Content: "turn-05"},
		{Role: "assistant", Content: "turn-06"},
		{Role: "user", Content: "turn-07"},
		{Role: "assistant", Content: "turn-08"},
		{Role: "user", Content: "turn-09"},
		{Role: "assistant", Content: "turn-10"},
	}

	out := engine.ChatWithHistory(context.Background(), "my uncle wants a banana", history)

	assert.Equal(t, 1, gen.calls)
	prompt := gen.prompts[0]
	for _, kept := range []string{"turn-07", "turn-08", "turn-09", "turn-10"} {
		assert.Contains(t, prompt, kept)
	}
	for _, dropped := range []string{"turn-01", "turn-02", "turn-03", "turn-04", "turn-05", "turn-06"} {
		assert.NotContains(t, prompt, dropped)
	}
	assert.True(t, strings.HasPrefix(out, "ok"))
	assert.Contains(t, out, "CodeBiruni")
}

func TestChatWithHistoryFallsBackToPlainChat(t *testing.T) {
	gen := &stubGenerator{err: errors.New("timeout")}
	engine := NewEngine(Default(), gen)

	history := []Turn{{Role: "user", Content: "earlier question"}}
	out := engine.ChatWithHistory(context.Background(), "show me your portfolio", history)

	// One failed history-aware call, then the plain pipeline with no further
	// generator use (short portfolio message never enhances).
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, ComposeResponse(Default(), IntentPortfolio, "show me your portfolio"), out)
}

func TestChatWithHistoryNilGenerator(t *testing.T) {
	engine := NewEngine(Default(), nil)

	out := engine.ChatWithHistory(context.Background(), "hi there", []Turn{{Role: "user", Content: "x"}})

	assert.Equal(t, ComposeResponse(Default(), IntentGreeting, "hi there"), out)
}
