package chatbot

import "strings"

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentServices  Intent = "services"
	IntentContact   Intent = "contact"
	IntentPricing   Intent = "pricing"
	IntentExpertise Intent = "expertise"
	IntentPortfolio Intent = "portfolio"
	IntentProcess   Intent = "process"
	IntentEducation Intent = "education"
	IntentEcommerce Intent = "ecommerce"
	IntentAbout     Intent = "about"
	IntentGeneral   Intent = "general"
)

type intentRule struct {
	intent   Intent
	keywords []string
}

// intentRules is evaluated top to bottom and the first matching rule wins.
// The order is load-bearing: "hello, what's the price?" must classify as
// greeting, not pricing.
var intentRules = []intentRule{
	{IntentGreeting, []string{"hello", "hi", "hey"}},
	{IntentServices, []string{"service", "what do you do", "offer"}},
	{IntentContact, []string{"contact", "email", "phone", "call"}},
	{IntentPricing, []string{"price", "cost", "how much"}},
	{IntentExpertise, []string{"expert", "skill", "technology"}},
	{IntentPortfolio, []string{"portfolio", "project", "work"}},
	{IntentProcess, []string{"process", "how you work", "methodology"}},
	{IntentEducation, []string{"education", "learning", "lms"}},
	{IntentEcommerce, []string{"ecommerce", "e-commerce", "shop", "store"}},
	{IntentAbout, []string{"about", "who are you", "company"}},
}

// ClassifyIntent maps a free-text message to an Intent using case-insensitive
// substring matching. It is total: unmatched input classifies as general.
func ClassifyIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.intent
			}
		}
	}
	return IntentGeneral
}
