package main

import (
	"log"
	"os"

	"codebiruni-be/internal/model"
	"codebiruni-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("🚀 Migrating schema")
	if err := db.AutoMigrate(
		&model.Project{},
		&model.PricingPlan{},
		&model.Review{},
		&model.Faq{},
		&model.Member{},
		&model.TargetClient{},
		&model.SiteTemplate{},
		&model.CaseStudy{},
		&model.ContactDetail{},
		&model.ContactMessage{},
		&model.BlogPost{},
	); err != nil {
		color.Red("Migration failed: %v", err)
		os.Exit(1)
	}
	color.Green("Schema migrated")

	seedProjects(db)
	seedPricingPlans(db)
	seedFaqs(db)
	seedMembers(db)
	seedContactDetails(db)

	color.Green("✅ Seeding completed")
}

// seedIfEmpty skips a table that already carries rows so reruns stay safe.
func seedIfEmpty[M any](db *gorm.DB, label string, rows []M) {
	var count int64
	if err := db.Model(new(M)).Count(&count).Error; err != nil {
		color.Red("%s: count failed: %v", label, err)
		return
	}
	if count > 0 {
		color.Yellow("%s: %d rows present, skipping", label, count)
		return
	}
	if err := db.Create(&rows).Error; err != nil {
		color.Red("%s: insert failed: %v", label, err)
		return
	}
	color.Green("%s: seeded %d rows", label, len(rows))
}

func seedProjects(db *gorm.DB) {
	seedIfEmpty(db, "projects", []model.Project{
		{
			Title:       "Shoply Storefront",
			Description: "Multi-vendor e-commerce platform with integrated payments and courier tracking.",
			TechStack:   datatypes.JSON([]byte(`["Next.js","PostgreSQL","Stripe"]`)),
			Category:    "ecommerce",
			Featured:    true,
			SortOrder:   1,
		},
		{
			Title:       "EduTrack LMS",
			Description: "Learning management system with live classes, quizzes and progress analytics.",
			TechStack:   datatypes.JSON([]byte(`["React","Node.js","MongoDB"]`)),
			Category:    "education",
			Featured:    true,
			SortOrder:   2,
		},
		{
			Title:       "Dhaka Eats",
			Description: "Food delivery app for local restaurants with real-time order tracking.",
			TechStack:   datatypes.JSON([]byte(`["React Native","Firebase"]`)),
			Category:    "mobile",
			SortOrder:   3,
		},
	})
}

func seedPricingPlans(db *gorm.DB) {
	seedIfEmpty(db, "pricing_plans", []model.PricingPlan{
		{
			Name:       "Starter",
			Tier:       "basic",
			PriceLabel: "From $499",
			Features:   datatypes.JSON([]byte(`["Landing page","Responsive design","1 revision round"]`)),
			SortOrder:  1,
		},
		{
			Name:        "Business",
			Tier:        "standard",
			PriceLabel:  "From $1,999",
			BillingNote: "Most projects land here",
			Features:    datatypes.JSON([]byte(`["Custom web application","Admin dashboard","3 revision rounds","3 months support"]`)),
			Highlighted: true,
			SortOrder:   2,
		},
		{
			Name:       "Enterprise",
			Tier:       "custom",
			PriceLabel: "Custom quote",
			Features:   datatypes.JSON([]byte(`["Dedicated team","SLA support","Architecture consulting"]`)),
			SortOrder:  3,
		},
	})
}

func seedFaqs(db *gorm.DB) {
	seedIfEmpty(db, "faqs", []model.Faq{
		{Question: "How long does a typical project take?", Answer: "A landing page ships in 1-2 weeks; full platforms usually take 6-12 weeks depending on scope.", Category: "process", SortOrder: 1},
		{Question: "Do you offer post-launch support?", Answer: "Yes. Every project includes a support window and we offer ongoing maintenance contracts.", Category: "support", SortOrder: 2},
		{Question: "Can you work with our existing codebase?", Answer: "Absolutely. We start with a code audit and agree on a plan before touching anything.", Category: "process", SortOrder: 3},
	})
}

func seedMembers(db *gorm.DB) {
	seedIfEmpty(db, "members", []model.Member{
		{Name: "Rahim Ahmed", Role: "Founder & Lead Engineer", Bio: "Full-stack engineer with a decade of delivery experience.", SortOrder: 1},
		{Name: "Nusrat Jahan", Role: "Product Designer", Bio: "Designs interfaces people actually enjoy using.", SortOrder: 2},
		{Name: "Tanvir Hossain", Role: "Mobile Engineer", Bio: "Ships cross-platform apps with native polish.", SortOrder: 3},
	})
}

func seedContactDetails(db *gorm.DB) {
	seedIfEmpty(db, "contact_details", []model.ContactDetail{
		{Label: "Email", Value: "codebiruny@gmail.com", Kind: "email", SortOrder: 1},
		{Label: "Phone", Value: "+880 1712-345678", Kind: "phone", SortOrder: 2},
		{Label: "Phone (alt)", Value: "+880 1912-345678", Kind: "phone", SortOrder: 3},
		{Label: "Office", Value: "Dhaka, Bangladesh", Kind: "address", SortOrder: 4},
	})
}
