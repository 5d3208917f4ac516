package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"realnest/internal/models"
	"realnest/internal/services"
	"realnest/internal/utils"
)

type FlatHandler struct {
	db      *gorm.DB
	uploads *services.CloudinaryService
}

func NewFlatHandler(db *gorm.DB, uploads *services.CloudinaryService) *FlatHandler {
	return &FlatHandler{db: db, uploads: uploads}
}

// GetAllFlats handles GET /flat/.
func (h *FlatHandler) GetAllFlats(c *fiber.Ctx) error {
	var flats []models.Flat
	if err := h.db.Preload("User").Find(&flats).Error; err != nil {
		return utils.SendServerError(c, "Error fetching flats", err)
	}
	return utils.SendSuccess(c, fiber.StatusOK, "Successfully got all the flats", flats)
}

// AddFlat handles POST /flat/. Listing fields arrive as multipart form data
// with an optional image file.
func (h *FlatHandler) AddFlat(c *fiber.Ctx) error {
	userID, err := parseID(c.FormValue("user"))
	if err != nil || userID == 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "User ID is required. Please login again.")
	}

	imgURL, err := uploadListingImage(c, h.uploads, "realnest/flats")
	if err != nil {
		return utils.SendServerError(c, "Failed to upload image to Cloudinary", err)
	}

	status := models.PropertyStatus(c.FormValue("status"))
	if status == "" {
		status = models.PropertyAvailable
	}

	flat := models.Flat{
		Title:              c.FormValue("title"),
		Description:        c.FormValue("description"),
		Type:               c.FormValue("type"),
		InteriorType:       c.FormValue("interiorType"),
		Sqrft:              formFloat(c, "sqrft", 0),
		Price:              formFloat(c, "price", 0),
		Status:             status,
		Location:           c.FormValue("location"),
		Address:            c.FormValue("address"),
		City:               c.FormValue("city"),
		Pincode:            c.FormValue("pincode"),
		FloorNumber:        formInt(c, "floorNumber", 0),
		TotalFloors:        formInt(c, "totalFloors", 1),
		Parking:            formInt(c, "parking", 0),
		Society:            c.FormValue("society"),
		Review:             c.FormValue("review"),
		AvailableForRent:   formBool(c, "availableForRent"),
		IsAvailableForSale: formBool(c, "isAvailableForSale"),
		ImgURL:             imgURL,
		UserID:             userID,
	}

	if err := h.db.Create(&flat).Error; err != nil {
		return utils.SendServerError(c, "Error processing property data", err)
	}

	return utils.SendSuccess(c, fiber.StatusCreated, "New Flat Created Successfully", flat)
}

// GetSingleFlat handles GET /flat/:id.
func (h *FlatHandler) GetSingleFlat(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid flat ID")
	}

	var flat models.Flat
	if err := h.db.Preload("User").First(&flat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "No such flat found")
		}
		return utils.SendServerError(c, "Error fetching flat", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Flat Fetched Successfully", flat)
}

// UpdateFlat handles PUT /flat/:id with a partial JSON body.
func (h *FlatHandler) UpdateFlat(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid flat ID")
	}

	var flat models.Flat
	if err := h.db.First(&flat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "No Such Flat Updated")
		}
		return utils.SendServerError(c, "Error updating flat", err)
	}

	var updates models.Flat
	if err := c.BodyParser(&updates); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.db.Model(&flat).Updates(updates).Error; err != nil {
		return utils.SendServerError(c, "Error updating flat", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Updated Successfully", flat)
}

// DeleteFlat handles DELETE /flat/:id.
func (h *FlatHandler) DeleteFlat(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid flat ID")
	}

	var flat models.Flat
	if err := h.db.First(&flat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "No such flat found")
		}
		return utils.SendServerError(c, "Error deleting flat", err)
	}

	if err := h.db.Delete(&flat).Error; err != nil {
		return utils.SendServerError(c, "Error deleting flat", err)
	}

	removeListingImage(h.uploads, flat.ImgURL)

	return utils.SendSuccess(c, fiber.StatusOK, "Deleted Successfully", flat)
}
