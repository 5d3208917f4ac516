package routes

import (
	"github.com/gofiber/fiber/v2"

	"realnest/internal/handlers"
)

func SetupUserRoutes(app *fiber.App, h *handlers.UserHandler) {
	user := app.Group("/user")

	user.Post("/register", h.Register)
	user.Post("/login", h.Login)
	user.Get("/:id", h.GetUser)
}
