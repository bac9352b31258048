package bootstrap

import (
	"context"
	"log"

	"codebiruni-be/internal/config"
	"codebiruni-be/internal/controller"
	"codebiruni-be/internal/model"
	"codebiruni-be/internal/pkg/logger"
	"codebiruni-be/internal/pkg/mailer"
	"codebiruni-be/internal/repository"
	"codebiruni-be/internal/repository/memory"
	"codebiruni-be/internal/repository/specification"
	"codebiruni-be/internal/service"
	"codebiruni-be/internal/websocket"
	"codebiruni-be/pkg/chatbot"
	"codebiruni-be/pkg/events"
	"codebiruni-be/pkg/llm"
	"codebiruni-be/pkg/llm/factory"
	"codebiruni-be/pkg/uploader"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Content CRUD controllers, one per collection
	ContentControllers []controller.RouteRegistrar

	ChatbotController controller.ChatbotController
	ContactController controller.ContactController
	AdminController   controller.AdminController
	UploadController  controller.UploadController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

// llmGenerator adapts the provider-agnostic LLM contract to the narrow
// interface the chatbot engine consumes.
type llmGenerator struct {
	provider llm.LLMProvider
}

func (g *llmGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.provider.Generate(ctx, prompt)
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
		cfg.SMTP.AgencyInbox,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// Redis (cross-instance websocket fan-out; optional)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Chatbot core
	// A missing LLM provider is not fatal: the engine answers from its
	// canned templates without enhancement.
	var generator chatbot.Generator
	llmProvider, err := factory.NewLLMProvider(
		context.Background(),
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Printf("[WARN] LLM provider unavailable, chatbot runs template-only: %v", err)
	} else {
		generator = &llmGenerator{provider: llmProvider}
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	sessionRepo := memory.NewSessionRepository()
	engine := chatbot.NewEngine(chatbot.Default(), generator)
	chatbotSvc := service.NewChatbotService(engine, sessionRepo, sysLogger)

	// 4. Contact pipeline
	contactTopic := cfg.Keys.ContactTopic
	if contactTopic == "" {
		contactTopic = events.TopicContactMessageCreated
	}
	contactRepo := repository.NewCrudRepository[model.ContactMessage](db)
	publisherService := service.NewPublisherService(pubSub, contactTopic)
	contactSvc := service.NewContactService(contactRepo, publisherService, sysLogger)
	consumerService := service.NewConsumerService(pubSub, contactTopic, emailService, wsHub)

	// 5. Content collections
	bySortOrder := specification.OrderBy{Field: "sort_order"}
	newestFirst := specification.OrderBy{Field: "created_at", Desc: true}

	counters := map[string]service.CollectionCounter{
		"contact_messages": contactRepo,
	}
	var contentControllers []controller.RouteRegistrar

	mount := func(reg controller.RouteRegistrar, name string, counter service.CollectionCounter) {
		contentControllers = append(contentControllers, reg)
		counters[name] = counter
	}

	projectRepo := repository.NewCrudRepository[model.Project](db)
	projectSvc := service.NewContentService[model.Project, *model.Project](
		projectRepo, "Project", []string{"title", "description", "category"}, bySortOrder, sysLogger)
	mount(controller.NewContentController(projectSvc, "projects", "Project"), "projects", projectRepo)

	planRepo := repository.NewCrudRepository[model.PricingPlan](db)
	planSvc := service.NewContentService[model.PricingPlan, *model.PricingPlan](
		planRepo, "PricingPlan", []string{"name", "tier", "price_label"}, bySortOrder, sysLogger)
	mount(controller.NewContentController(planSvc, "pricing-plans", "Pricing plan"), "pricing_plans", planRepo)

	reviewRepo := repository.NewCrudRepository[model.Review](db)
	reviewSvc := service.NewContentService[model.Review, *model.Review](
		reviewRepo, "Review", []string{"author", "company", "quote"}, newestFirst, sysLogger)
	mount(controller.NewContentController(reviewSvc, "reviews", "Review"), "reviews", reviewRepo)

	faqRepo := repository.NewCrudRepository[model.Faq](db)
	faqSvc := service.NewContentService[model.Faq, *model.Faq](
		faqRepo, "Faq", []string{"question", "answer", "category"}, bySortOrder, sysLogger)
	mount(controller.NewContentController(faqSvc, "faqs", "FAQ"), "faqs", faqRepo)

	memberRepo := repository.NewCrudRepository[model.Member](db)
	memberSvc := service.NewContentService[model.Member, *model.Member](
		memberRepo, "Member", []string{"name", "role", "bio"}, bySortOrder, sysLogger)
	mount(controller.NewContentController(memberSvc, "members", "Member"), "members", memberRepo)

	clientRepo := repository.NewCrudRepository[model.TargetClient](db)
	clientSvc := service.NewContentService[model.TargetClient, *model.TargetClient](
		clientRepo, "TargetClient", []string{"name", "industry"}, newestFirst, sysLogger)
	mount(controller.NewContentController(clientSvc, "target-clients", "Target client"), "target_clients", clientRepo)

	templateRepo := repository.NewCrudRepository[model.SiteTemplate](db)
	templateSvc := service.NewContentService[model.SiteTemplate, *model.SiteTemplate](
		templateRepo, "SiteTemplate", []string{"name", "description"}, newestFirst, sysLogger)
	mount(controller.NewContentController(templateSvc, "site-templates", "Site template"), "site_templates", templateRepo)

	caseStudyRepo := repository.NewCrudRepository[model.CaseStudy](db)
	caseStudySvc := service.NewContentService[model.CaseStudy, *model.CaseStudy](
		caseStudyRepo, "CaseStudy", []string{"title", "slug", "summary"}, newestFirst, sysLogger)
	mount(controller.NewContentController(caseStudySvc, "case-studies", "Case study"), "case_studies", caseStudyRepo)

	detailRepo := repository.NewCrudRepository[model.ContactDetail](db)
	detailSvc := service.NewContentService[model.ContactDetail, *model.ContactDetail](
		detailRepo, "ContactDetail", []string{"label", "value", "kind"}, bySortOrder, sysLogger)
	mount(controller.NewContentController(detailSvc, "contact-details", "Contact detail"), "contact_details", detailRepo)

	blogRepo := repository.NewCrudRepository[model.BlogPost](db)
	blogSvc := service.NewContentService[model.BlogPost, *model.BlogPost](
		blogRepo, "BlogPost", []string{"title", "slug", "excerpt"}, newestFirst, sysLogger)
	mount(controller.NewContentController(blogSvc, "blog-posts", "Blog post"), "blog_posts", blogRepo)

	// 6. Admin dashboard
	dashboardSvc := service.NewDashboardService(counters, contactSvc)

	// 7. Uploads
	up, err := uploader.NewLocalUploader(cfg.Upload.Dir, cfg.App.BaseURL)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize uploader: %v", err)
	}

	return &Container{
		ContentControllers: contentControllers,
		ChatbotController:  controller.NewChatbotController(chatbotSvc),
		ContactController:  controller.NewContactController(contactSvc),
		AdminController:    controller.NewAdminController(dashboardSvc, sysLogger),
		UploadController:   controller.NewUploadController(up),
		ConsumerService:    consumerService,
		WebSocketHub:       wsHub,
		Logger:             sysLogger,
	}
}
