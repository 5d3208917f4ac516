package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"realnest/internal/models"
	"realnest/internal/services"
	"realnest/internal/utils"
)

type BunglowHandler struct {
	db      *gorm.DB
	uploads *services.CloudinaryService
}

func NewBunglowHandler(db *gorm.DB, uploads *services.CloudinaryService) *BunglowHandler {
	return &BunglowHandler{db: db, uploads: uploads}
}

// GetAllBunglows handles GET /bunglow/.
func (h *BunglowHandler) GetAllBunglows(c *fiber.Ctx) error {
	var bunglows []models.Bunglow
	if err := h.db.Preload("User").Find(&bunglows).Error; err != nil {
		return utils.SendServerError(c, "Error fetching bunglows", err)
	}
	return utils.SendSuccess(c, fiber.StatusOK, "Successfully got all the bunglows", bunglows)
}

// AddBunglow handles POST /bunglow/.
func (h *BunglowHandler) AddBunglow(c *fiber.Ctx) error {
	userID, err := parseID(c.FormValue("user"))
	if err != nil || userID == 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "User ID is required. Please login again.")
	}

	imgURL, err := uploadListingImage(c, h.uploads, "realnest/bunglows")
	if err != nil {
		return utils.SendServerError(c, "Failed to upload image to Cloudinary", err)
	}

	status := models.PropertyStatus(c.FormValue("status"))
	if status == "" {
		status = models.PropertyAvailable
	}

	bunglow := models.Bunglow{
		Title:              c.FormValue("title"),
		Description:        c.FormValue("description"),
		Type:               c.FormValue("type"),
		InteriorType:       c.FormValue("interiorType"),
		Area:               formFloat(c, "area", 0),
		Price:              formFloat(c, "price", 0),
		Status:             status,
		Location:           c.FormValue("location"),
		Address:            c.FormValue("address"),
		City:               c.FormValue("city"),
		Pincode:            c.FormValue("pincode"),
		Bedrooms:           formInt(c, "bedrooms", 0),
		Bathrooms:          formInt(c, "bathrooms", 0),
		Parking:            formInt(c, "parking", 0),
		Amenities:          c.FormValue("amenities"),
		Review:             c.FormValue("review"),
		IsAvailableForRent: formBool(c, "isAvailableForRent"),
		IsAvailableForSale: formBool(c, "isAvailableForSale"),
		ImgURL:             imgURL,
		UserID:             userID,
	}

	if err := h.db.Create(&bunglow).Error; err != nil {
		return utils.SendServerError(c, "Error processing property data", err)
	}

	return utils.SendSuccess(c, fiber.StatusCreated, "New Bunglow Created Successfully", bunglow)
}

// GetSingleBunglow handles GET /bunglow/:id.
func (h *BunglowHandler) GetSingleBunglow(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid bunglow ID")
	}

	var bunglow models.Bunglow
	if err := h.db.Preload("User").First(&bunglow, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "No such bunglow found")
		}
		return utils.SendServerError(c, "Error fetching bunglow", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Bunglow Fetched Successfully", bunglow)
}

// UpdateBunglow handles PUT /bunglow/:id with a partial JSON body.
func (h *BunglowHandler) UpdateBunglow(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid bunglow ID")
	}

	var bunglow models.Bunglow
	if err := h.db.First(&bunglow, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "No Such Bunglow Updated")
		}
		return utils.SendServerError(c, "Error updating bunglow", err)
	}

	var updates models.Bunglow
	if err := c.BodyParser(&updates); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.db.Model(&bunglow).Updates(updates).Error; err != nil {
		return utils.SendServerError(c, "Error updating bunglow", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Updated Successfully", bunglow)
}

// DeleteBunglow handles DELETE /bunglow/:id.
func (h *BunglowHandler) DeleteBunglow(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid bunglow ID")
	}

	var bunglow models.Bunglow
	if err := h.db.First(&bunglow, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "No such bunglow found")
		}
		return utils.SendServerError(c, "Error deleting bunglow", err)
	}

	if err := h.db.Delete(&bunglow).Error; err != nil {
		return utils.SendServerError(c, "Error deleting bunglow", err)
	}

	removeListingImage(h.uploads, bunglow.ImgURL)

	return utils.SendSuccess(c, fiber.StatusOK, "Deleted Successfully", bunglow)
}
