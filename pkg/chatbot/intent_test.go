package chatbot

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"greeting hi", "hi there", IntentGreeting},
		{"greeting hello", "Hello!", IntentGreeting},
		{"greeting hey", "hey, anyone home?", IntentGreeting},
		{"services", "What services do you offer?", IntentServices},
		{"services what do you do", "so what do you do exactly", IntentServices},
		{"contact", "How can I reach you? Any phone number?", IntentContact},
		{"contact email", "what is your email address", IntentContact},
		{"pricing", "what's the price of a website", IntentPricing},
		{"pricing how much", "how much does an app cost", IntentPricing},
		{"expertise", "what technology stack do you use", IntentExpertise},
		{"portfolio", "show me your portfolio", IntentPortfolio},
		{"process", "explain your methodology", IntentProcess},
		{"education", "can you build an lms", IntentEducation},
		{"ecommerce", "i need an online store", IntentEcommerce},
		{"about", "tell me more regarding the team and who are you", IntentAbout},
		{"general", "my uncle wants a banana", IntentGeneral},
		{"empty", "", IntentGeneral},
		{"case insensitive", "HELLO THERE", IntentGreeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntent(tt.message); got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

// Rule order is first-match-wins: a message satisfying several rules must
// classify by the earliest one.
func TestClassifyIntentPriority(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"greeting beats pricing", "hello, what's the price?", IntentGreeting},
		{"services beats contact", "what services do you offer, and your email?", IntentServices},
		{"contact beats pricing", "call me to discuss the cost", IntentContact},
		{"portfolio beats about", "tell me about your projects", IntentPortfolio},
		{"expertise beats portfolio", "what technology do you use in projects", IntentExpertise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntent(tt.message); got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestClassifyIntentDeterministic(t *testing.T) {
	msg := "how much for an online shop?"
	first := ClassifyIntent(msg)
	for i := 0; i < 100; i++ {
		if got := ClassifyIntent(msg); got != first {
			t.Fatalf("classification changed between calls: %q vs %q", got, first)
		}
	}
}
