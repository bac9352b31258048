package controller

import (
	"codebiruni-be/internal/pkg/serverutils"
	"codebiruni-be/pkg/uploader"

	"github.com/gofiber/fiber/v2"
)

type UploadController interface {
	RegisterRoutes(api fiber.Router)
}

type uploadController struct {
	uploader uploader.Uploader
}

func NewUploadController(up uploader.Uploader) UploadController {
	return &uploadController{
		uploader: up,
	}
}

func (c *uploadController) RegisterRoutes(api fiber.Router) {
	group := api.Group("/upload/v1")
	group.Post("/image", c.UploadImage)
}

func (c *uploadController) UploadImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("image")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Image file is required"))
	}

	url, err := c.uploader.Save(file)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Image uploaded successfully", map[string]string{
		"url": url,
	}))
}
