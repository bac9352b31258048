package chatbot

import (
	"strings"
	"testing"
)

func TestComposeResponseNonEmptyAndDeterministic(t *testing.T) {
	kb := Default()
	intents := []Intent{
		IntentGreeting, IntentServices, IntentContact, IntentPricing,
		IntentExpertise, IntentPortfolio, IntentProcess, IntentEducation,
		IntentEcommerce, IntentAbout, IntentGeneral,
	}

	for _, intent := range intents {
		t.Run(string(intent), func(t *testing.T) {
			first := ComposeResponse(kb, intent, "some message")
			if first == "" {
				t.Fatalf("ComposeResponse(%q) returned empty output", intent)
			}
			second := ComposeResponse(kb, intent, "some message")
			if first != second {
				t.Errorf("ComposeResponse(%q) is not byte-identical across calls", intent)
			}
		})
	}
}

func TestServicesTemplateListsAllWebServices(t *testing.T) {
	kb := Default()
	out := ComposeResponse(kb, IntentServices, "")

	for _, svc := range kb.Services["web"] {
		if !strings.Contains(out, "• "+svc) {
			t.Errorf("services response missing bullet for %q", svc)
		}
	}
}

func TestContactTemplateContainsChannels(t *testing.T) {
	kb := Default()
	out := ComposeResponse(kb, IntentContact, "")

	if !strings.Contains(out, "codebiruny@gmail.com") {
		t.Error("contact response missing email")
	}
	for _, phone := range kb.Contact.Phones {
		if !strings.Contains(out, phone) {
			t.Errorf("contact response missing phone %q", phone)
		}
	}
	if !strings.Contains(out, kb.Contact.Location) {
		t.Error("contact response missing location")
	}
}

func TestGeneralTemplateEchoesAndSamples(t *testing.T) {
	kb := Default()
	out := ComposeResponse(kb, IntentGeneral, "something obscure")

	if !strings.Contains(out, `I see you asked about: "something obscure"`) {
		t.Error("general response does not echo the message")
	}

	// First 3 web + first 2 mobile + first 2 education, nothing more.
	for _, svc := range kb.Services["web"][:3] {
		if !strings.Contains(out, "• "+svc) {
			t.Errorf("general response missing web sample %q", svc)
		}
	}
	if strings.Contains(out, kb.Services["web"][3]) {
		t.Errorf("general response should only sample the first 3 web services")
	}
	for _, svc := range kb.Services["mobile"][:2] {
		if !strings.Contains(out, "• "+svc) {
			t.Errorf("general response missing mobile sample %q", svc)
		}
	}
	for _, svc := range kb.Services["education"][:2] {
		if !strings.Contains(out, "• "+svc) {
			t.Errorf("general response missing education sample %q", svc)
		}
	}
	if strings.Contains(out, kb.Services["education"][2]) {
		t.Errorf("general response should only sample the first 2 education services")
	}
}

// Every template except greeting must mention the agency natively so the
// branding suffix is never needed for canned replies.
func TestTemplatesCarryCompanyName(t *testing.T) {
	kb := Default()
	intents := []Intent{
		IntentServices, IntentContact, IntentPricing, IntentExpertise,
		IntentPortfolio, IntentProcess, IntentEducation, IntentEcommerce,
		IntentAbout, IntentGeneral,
	}

	for _, intent := range intents {
		if out := ComposeResponse(kb, intent, "x"); !strings.Contains(out, kb.Name) {
			t.Errorf("%q template does not mention %s", intent, kb.Name)
		}
	}
}
