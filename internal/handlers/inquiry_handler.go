package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"realnest/internal/inquiry"
	"realnest/internal/models"
	"realnest/internal/utils"
)

type InquiryHandler struct {
	service *inquiry.Service
}

func NewInquiryHandler(service *inquiry.Service) *InquiryHandler {
	return &InquiryHandler{service: service}
}

type CancelInquiryRequest struct {
	BuyerID uint `json:"buyerId"`
}

type UpdateInquiryRequest struct {
	SellerID       uint                 `json:"sellerId"`
	Status         models.InquiryStatus `json:"status"`
	SellerResponse string               `json:"sellerResponse"`
}

type DeleteInquiryRequest struct {
	SellerID uint `json:"sellerId"`
}

// CreateInquiry handles POST /inquire/create.
func (h *InquiryHandler) CreateInquiry(c *fiber.Ctx) error {
	var input inquiry.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	inq, err := h.service.Create(input)
	if err != nil {
		return sendInquiryError(c, "Error creating inquiry", err)
	}

	return utils.SendSuccess(c, fiber.StatusCreated, "Inquiry sent successfully", inq)
}

// GetBuyerInquiries handles GET /inquire/buyer/:buyerId.
func (h *InquiryHandler) GetBuyerInquiries(c *fiber.Ctx) error {
	buyerID, err := parseID(c.Params("buyerId"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid buyer ID")
	}

	inquiries, err := h.service.ListByBuyer(buyerID)
	if err != nil {
		return sendInquiryError(c, "Error fetching buyer inquiries", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Buyer inquiries fetched successfully", inquiries)
}

// CancelInquiry handles PUT /inquire/cancel/:id.
func (h *InquiryHandler) CancelInquiry(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid inquiry ID")
	}

	req := new(CancelInquiryRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	inq, err := h.service.Cancel(id, req.BuyerID)
	if err != nil {
		return sendInquiryError(c, "Error cancelling inquiry", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Inquiry cancelled successfully", inq)
}

// GetSellerInquiries handles GET /inquire/seller/:sellerId.
func (h *InquiryHandler) GetSellerInquiries(c *fiber.Ctx) error {
	sellerID, err := parseID(c.Params("sellerId"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid seller ID")
	}

	inquiries, err := h.service.ListBySeller(sellerID)
	if err != nil {
		return sendInquiryError(c, "Error fetching seller inquiries", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Seller inquiries fetched successfully", inquiries)
}

// UpdateInquiryStatus handles PUT /inquire/update/:id.
func (h *InquiryHandler) UpdateInquiryStatus(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid inquiry ID")
	}

	req := new(UpdateInquiryRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	inq, err := h.service.UpdateStatus(id, req.SellerID, req.Status, req.SellerResponse)
	if err != nil {
		return sendInquiryError(c, "Error updating inquiry status", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Inquiry status updated successfully", inq)
}

// DeleteInquiry handles DELETE /inquire/delete/:id. The record is marked
// rejected rather than removed.
func (h *InquiryHandler) DeleteInquiry(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid inquiry ID")
	}

	req := new(DeleteInquiryRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	inq, err := h.service.Delete(id, req.SellerID)
	if err != nil {
		return sendInquiryError(c, "Error deleting inquiry", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Inquiry deleted successfully", inq)
}

// GetSellerStats handles GET /inquire/seller/:sellerId/stats.
func (h *InquiryHandler) GetSellerStats(c *fiber.Ctx) error {
	sellerID, err := parseID(c.Params("sellerId"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid seller ID")
	}

	stats, err := h.service.GetSellerStats(sellerID)
	if err != nil {
		return sendInquiryError(c, "Error fetching seller statistics", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Seller statistics fetched successfully", stats)
}

// GetInquiryByID handles GET /inquire/:id.
func (h *InquiryHandler) GetInquiryByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid inquiry ID")
	}

	inq, err := h.service.GetByID(id)
	if err != nil {
		return sendInquiryError(c, "Error fetching inquiry", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Inquiry fetched successfully", inq)
}

// sendInquiryError maps the service error taxonomy to HTTP statuses. Any
// error outside the taxonomy is treated as an infrastructure failure and
// reported with both a readable message and the raw detail.
func sendInquiryError(c *fiber.Ctx, fallback string, err error) error {
	var (
		validationErr *inquiry.ValidationError
		notFoundErr   *inquiry.NotFoundError
		authErr       *inquiry.AuthorizationError
		conflictErr   *inquiry.ConflictError
		stateErr      *inquiry.StateError
	)

	switch {
	case errors.As(err, &validationErr):
		return utils.SendError(c, fiber.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		return utils.SendError(c, fiber.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &authErr):
		return utils.SendError(c, fiber.StatusForbidden, authErr.Error())
	case errors.As(err, &conflictErr):
		return utils.SendError(c, fiber.StatusBadRequest, conflictErr.Error())
	case errors.As(err, &stateErr):
		return utils.SendError(c, fiber.StatusBadRequest, stateErr.Error())
	default:
		return utils.SendServerError(c, fallback, err)
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
