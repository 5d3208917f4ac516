package routes

import (
	"github.com/gofiber/fiber/v2"

	"realnest/internal/handlers"
)

func SetupFlatRoutes(app *fiber.App, h *handlers.FlatHandler) {
	flat := app.Group("/flat")

	flat.Get("/", h.GetAllFlats)
	flat.Post("/", h.AddFlat)
	flat.Get("/:id", h.GetSingleFlat)
	flat.Put("/:id", h.UpdateFlat)
	flat.Delete("/:id", h.DeleteFlat)
}

func SetupShopRoutes(app *fiber.App, h *handlers.ShopHandler) {
	shop := app.Group("/shop")

	shop.Get("/", h.GetAllShops)
	shop.Post("/", h.AddShop)
	shop.Get("/:id", h.GetSingleShop)
	shop.Put("/:id", h.UpdateShop)
	shop.Delete("/:id", h.DeleteShop)
}

func SetupBunglowRoutes(app *fiber.App, h *handlers.BunglowHandler) {
	bunglow := app.Group("/bunglow")

	bunglow.Get("/", h.GetAllBunglows)
	bunglow.Post("/", h.AddBunglow)
	bunglow.Get("/:id", h.GetSingleBunglow)
	bunglow.Put("/:id", h.UpdateBunglow)
	bunglow.Delete("/:id", h.DeleteBunglow)
}
