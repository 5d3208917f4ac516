package routes

import (
	"github.com/gofiber/fiber/v2"

	"realnest/internal/handlers"
)

// SetupSellerRoutes keeps the doubled /seller/seller prefix the frontend
// already depends on.
func SetupSellerRoutes(app *fiber.App, h *handlers.SellerHandler) {
	seller := app.Group("/seller")

	seller.Get("/seller/dashboard/:sellerId", h.GetSellerDashboard)
	seller.Get("/seller/flats/:sellerId", h.GetSellerFlats)
	seller.Get("/seller/shops/:sellerId", h.GetSellerShops)
	seller.Get("/seller/bunglows/:sellerId", h.GetSellerBunglows)
}
