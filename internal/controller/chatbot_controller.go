package controller

import (
	"codebiruni-be/internal/dto"
	"codebiruni-be/internal/pkg/serverutils"
	"codebiruni-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ChatbotController interface {
	RegisterRoutes(api fiber.Router)
}

type chatbotController struct {
	chatbotService service.IChatbotService
}

func NewChatbotController(chatbotService service.IChatbotService) ChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
	}
}

func (c *chatbotController) RegisterRoutes(api fiber.Router) {
	group := api.Group("/chatbot/v1")
	group.Post("/message", c.SendMessage)
}

func (c *chatbotController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	// First message of a session gets an ID minted server side.
	if req.SessionId == "" {
		req.SessionId = uuid.NewString()
	}

	res := c.chatbotService.SendMessage(ctx.Context(), req)

	return ctx.JSON(serverutils.SuccessResponse("Chat reply", res))
}
