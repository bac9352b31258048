package chatbot

// KnowledgeBase holds the static facts about the agency that the canned
// responses are rendered from. It is constructed once at process start and
// never mutated afterwards, so it is safe to share across requests.
type KnowledgeBase struct {
	Name        string
	Tagline     string
	Description string

	// Services maps a category key (web, mobile, education, design) to its
	// offerings. CategoryOrder fixes the rendering order since map iteration
	// order is not deterministic.
	Services      map[string][]string
	CategoryOrder []string

	Expertise    []string
	Contact      ContactInfo
	Pricing      PricingInfo
	Team         TeamInfo
	Values       []string
	Achievements []string
}

type ContactInfo struct {
	Email    string
	Phones   []string
	Location string
	Social   string
	Hours    []OfficeHours
}

// OfficeHours is a day-range with its opening hours, kept as an ordered slice
// so rendered output is byte-identical between calls.
type OfficeHours struct {
	Days  string
	Hours string
}

type PricingInfo struct {
	Models  []string
	Factors []string
}

type TeamInfo struct {
	Size      string
	Expertise string
	Approach  string
}

var defaultKB = &KnowledgeBase{
	Name:        "CodeBiruni",
	Tagline:     "Crafting digital products that move businesses forward",
	Description: "CodeBiruni is a software agency building modern websites, web applications, mobile apps and e-learning platforms for startups and growing businesses.",

	Services: map[string][]string{
		"web": {
			"Custom Website Development",
			"Web Application Development",
			"E-commerce Solutions",
			"Landing Pages & Portfolio Sites",
			"API Design & Integration",
		},
		"mobile": {
			"Android App Development",
			"iOS App Development",
			"Cross-platform Apps (Flutter & React Native)",
		},
		"education": {
			"Learning Management Systems (LMS)",
			"Online Course Platforms",
			"School & University Portals",
		},
		"design": {
			"UI/UX Design",
			"Brand Identity & Logo Design",
		},
	},
	CategoryOrder: []string{"web", "mobile", "education", "design"},

	Expertise: []string{
		"React & Next.js",
		"Node.js & Express",
		"Flutter",
		"MongoDB & PostgreSQL",
		"TypeScript",
		"Tailwind CSS",
		"REST & GraphQL APIs",
		"Cloud Deployment (Vercel, AWS)",
	},

	Contact: ContactInfo{
		Email:    "codebiruny@gmail.com",
		Phones:   []string{"+880 1712-345678", "+880 1912-345678"},
		Location: "Dhaka, Bangladesh",
		Social:   "https://www.facebook.com/codebiruni",
		Hours: []OfficeHours{
			{Days: "Saturday - Thursday", Hours: "10:00 AM - 7:00 PM (GMT+6)"},
			{Days: "Friday", Hours: "Closed"},
		},
	},

	Pricing: PricingInfo{
		Models: []string{
			"Fixed-price project quotes",
			"Hourly engagement",
			"Monthly retainer for maintenance & support",
		},
		Factors: []string{
			"Project scope and complexity",
			"Number of custom features",
			"Design requirements",
			"Delivery timeline",
			"Ongoing support needs",
		},
	},

	Team: TeamInfo{
		Size:      "10+ engineers and designers",
		Expertise: "Full-stack web, mobile and e-learning specialists",
		Approach:  "Agile sprints with weekly demos and transparent communication",
	},

	Values: []string{
		"Client-first communication",
		"Transparent pricing",
		"On-time delivery",
		"Long-term partnership",
	},

	Achievements: []string{
		"50+ projects delivered",
		"Clients in 6 countries",
		"4.9/5 average client rating",
		"Dedicated post-launch support",
	},
}

// Default returns the process-wide knowledge base.
func Default() *KnowledgeBase {
	return defaultKB
}
