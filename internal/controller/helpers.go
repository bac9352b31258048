package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RouteRegistrar lets the server mount generic and specific controllers the
// same way.
type RouteRegistrar interface {
	RegisterRoutes(api fiber.Router)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
