package controller

import (
	"codebiruni-be/internal/dto"
	"codebiruni-be/internal/pkg/serverutils"
	"codebiruni-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ContactController interface {
	RegisterRoutes(api fiber.Router)
}

type contactController struct {
	contactService service.IContactService
}

func NewContactController(contactService service.IContactService) ContactController {
	return &contactController{
		contactService: contactService,
	}
}

func (c *contactController) RegisterRoutes(api fiber.Router) {
	group := api.Group("/contact/v1")
	// Public submission endpoint
	group.Post("/", c.Submit)
	// Back-office inbox management
	group.Get("/messages", c.List)
	group.Patch("/messages/:id/read", c.MarkRead)
	group.Delete("/messages/:id", c.Delete)
	group.Delete("/messages", c.DeleteMany)
}

func (c *contactController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	msg, err := c.contactService.Submit(ctx.Context(), req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Message sent", msg))
}

func (c *contactController) List(ctx *fiber.Ctx) error {
	var query dto.ListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query parameters"))
	}

	messages, err := c.contactService.List(ctx.Context(), query)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Contact messages", messages))
}

func (c *contactController) MarkRead(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ID"))
	}

	if err := c.contactService.MarkRead(ctx.Context(), id); err != nil {
		if isNotFound(err) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Message not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Message marked as read", nil))
}

func (c *contactController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid ID"))
	}

	if err := c.contactService.Delete(ctx.Context(), id); err != nil {
		if isNotFound(err) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Message not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Message deleted", nil))
}

func (c *contactController) DeleteMany(ctx *fiber.Ctx) error {
	var req dto.BulkDeleteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	count, err := c.contactService.DeleteMany(ctx.Context(), req.Ids)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.DeletedResponse("Messages bulk delete", count))
}
