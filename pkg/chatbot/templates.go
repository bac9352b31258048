package chatbot

import (
	"fmt"
	"strings"
)

// categorySections fixes the display label and emoji per service category.
var categorySections = []struct {
	key   string
	label string
}{
	{"web", "🌐 Web Development"},
	{"mobile", "📱 Mobile Apps"},
	{"education", "🎓 Education Platforms"},
	{"design", "🎨 Design"},
}

// responseTemplates maps every intent except general to a pure rendering
// function over the knowledge base. Keeping templates as functions isolates
// formatting from data and lets each one be tested independently of the
// classifier.
var responseTemplates = map[Intent]func(kb *KnowledgeBase) string{
	IntentGreeting:  greetingTemplate,
	IntentServices:  servicesTemplate,
	IntentContact:   contactTemplate,
	IntentPricing:   pricingTemplate,
	IntentExpertise: expertiseTemplate,
	IntentPortfolio: portfolioTemplate,
	IntentProcess:   processTemplate,
	IntentEducation: educationTemplate,
	IntentEcommerce: ecommerceTemplate,
	IntentAbout:     aboutTemplate,
}

// ComposeResponse renders the canned response for an intent. Output is
// deterministic for a fixed knowledge base and never empty.
func ComposeResponse(kb *KnowledgeBase, intent Intent, message string) string {
	if tmpl, ok := responseTemplates[intent]; ok {
		return tmpl(kb)
	}
	return generalTemplate(kb, message)
}

func greetingTemplate(kb *KnowledgeBase) string {
	return fmt.Sprintf(
		"Hello! 👋 Welcome to %s — %s.\n\nHow can I help you today? You can ask me about our services, pricing, portfolio, or how to get in touch.",
		kb.Name, kb.Tagline,
	)
}

func servicesTemplate(kb *KnowledgeBase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's what %s can build for you:\n", kb.Name)
	for _, section := range categorySections {
		items := kb.Services[section.key]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", section.label)
		writeBullets(&b, items)
	}
	b.WriteString("\nWhich of these are you interested in?")
	return b.String()
}

func contactTemplate(kb *KnowledgeBase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's how to reach %s:\n\n", kb.Name)
	fmt.Fprintf(&b, "📧 Email: %s\n", kb.Contact.Email)
	for _, phone := range kb.Contact.Phones {
		fmt.Fprintf(&b, "📞 Phone: %s\n", phone)
	}
	fmt.Fprintf(&b, "📍 Location: %s\n", kb.Contact.Location)
	fmt.Fprintf(&b, "🔗 Social: %s\n", kb.Contact.Social)
	b.WriteString("\n🕐 Office hours:\n")
	for _, oh := range kb.Contact.Hours {
		fmt.Fprintf(&b, "• %s: %s\n", oh.Days, oh.Hours)
	}
	b.WriteString("\nDrop us a message and we'll get back to you within one business day.")
	return b.String()
}

func pricingTemplate(kb *KnowledgeBase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s keeps pricing simple and transparent. We work with:\n\n", kb.Name)
	writeBullets(&b, kb.Pricing.Models)
	b.WriteString("\nWhat your quote depends on:\n\n")
	writeBullets(&b, kb.Pricing.Factors)
	fmt.Fprintf(&b, "\nTell us about your project and we'll send a detailed quote — or email %s to get started.", kb.Contact.Email)
	return b.String()
}

func expertiseTemplate(kb *KnowledgeBase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The %s team works with a modern, battle-tested stack:\n\n", kb.Name)
	writeBullets(&b, kb.Expertise)
	fmt.Fprintf(&b, "\n%s — %s.", kb.Team.Size, kb.Team.Expertise)
	return b.String()
}

func portfolioTemplate(kb *KnowledgeBase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s has a track record we're proud of:\n\n", kb.Name)
	writeBullets(&b, kb.Achievements)
	b.WriteString("\nCheck out the Projects page on our site for live case studies, or ask me about a specific kind of project.")
	return b.String()
}

func processTemplate(kb *KnowledgeBase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "How %s works:\n\n", kb.Name)
	fmt.Fprintf(&b, "%s.\n\nEvery engagement follows the same path:\n\n", kb.Team.Approach)
	writeBullets(&b, []string{
		"Discovery call to understand your goals",
		"Proposal with scope, timeline and quote",
		"Design & development in weekly sprints",
		"Review, launch and handover",
		"Post-launch support and maintenance",
	})
	b.WriteString("\nWhat we promise along the way:\n\n")
	writeBullets(&b, kb.Values)
	return b.String()
}

func educationTemplate(kb *KnowledgeBase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "E-learning is one of %s's specialties. We build:\n\n", kb.Name)
	writeBullets(&b, kb.Services["education"])
	b.WriteString("\nFrom course enrollment and quizzes to progress tracking and certificates — tell us what your learners need.")
	return b.String()
}

func ecommerceTemplate(kb *KnowledgeBase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s builds online stores that convert:\n\n", kb.Name)
	writeBullets(&b, []string{
		"Full e-commerce websites with cart & checkout",
		"Payment gateway integration",
		"Inventory & order management dashboards",
		"Product catalogs with search and filtering",
	})
	b.WriteString("\nWhether you're launching your first shop or migrating an existing one, we can help. What are you selling?")
	return b.String()
}

func aboutTemplate(kb *KnowledgeBase) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", kb.Description)
	fmt.Fprintf(&b, "👥 Team: %s — %s.\n\n", kb.Team.Size, kb.Team.Expertise)
	b.WriteString("What we stand for:\n\n")
	writeBullets(&b, kb.Values)
	b.WriteString("\nA few highlights:\n\n")
	writeBullets(&b, kb.Achievements)
	return b.String()
}

// generalTemplate is the only template that echoes request input. It is the
// response the fallback enhancer is expected to replace when the external
// generator succeeds.
func generalTemplate(kb *KnowledgeBase, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I see you asked about: \"%s\"\n\n", message)
	fmt.Fprintf(&b, "Here's a sample of what %s can help with:\n\n", kb.Name)
	b.WriteString("🌐 Web:\n")
	writeBullets(&b, firstN(kb.Services["web"], 3))
	b.WriteString("\n📱 Mobile:\n")
	writeBullets(&b, firstN(kb.Services["mobile"], 2))
	b.WriteString("\n🎓 Education:\n")
	writeBullets(&b, firstN(kb.Services["education"], 2))
	b.WriteString("\nCould you tell me a bit more specifically what you're looking for?")
	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "• %s\n", item)
	}
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
