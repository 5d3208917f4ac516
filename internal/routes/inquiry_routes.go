package routes

import (
	"github.com/gofiber/fiber/v2"

	"realnest/internal/handlers"
)

func SetupInquiryRoutes(app *fiber.App, h *handlers.InquiryHandler) {
	inquire := app.Group("/inquire")

	// Buyer side
	inquire.Post("/create", h.CreateInquiry)
	inquire.Get("/buyer/:buyerId", h.GetBuyerInquiries)
	inquire.Put("/cancel/:id", h.CancelInquiry)

	// Seller side
	inquire.Get("/seller/:sellerId/stats", h.GetSellerStats)
	inquire.Get("/seller/:sellerId", h.GetSellerInquiries)
	inquire.Put("/update/:id", h.UpdateInquiryStatus)
	inquire.Delete("/delete/:id", h.DeleteInquiry)

	// Common
	inquire.Get("/:id", h.GetInquiryByID)
}
