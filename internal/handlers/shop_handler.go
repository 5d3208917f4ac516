package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"realnest/internal/models"
	"realnest/internal/services"
	"realnest/internal/utils"
)

type ShopHandler struct {
	db      *gorm.DB
	uploads *services.CloudinaryService
}

func NewShopHandler(db *gorm.DB, uploads *services.CloudinaryService) *ShopHandler {
	return &ShopHandler{db: db, uploads: uploads}
}

// GetAllShops handles GET /shop/.
func (h *ShopHandler) GetAllShops(c *fiber.Ctx) error {
	var shops []models.Shop
	if err := h.db.Preload("User").Find(&shops).Error; err != nil {
		return utils.SendServerError(c, "Error fetching shops", err)
	}
	return utils.SendSuccess(c, fiber.StatusOK, "Successfully got all the shops", shops)
}

// AddShop handles POST /shop/.
func (h *ShopHandler) AddShop(c *fiber.Ctx) error {
	userID, err := parseID(c.FormValue("user"))
	if err != nil || userID == 0 {
		return utils.SendError(c, fiber.StatusBadRequest, "User ID is required. Please login again.")
	}

	imgURL, err := uploadListingImage(c, h.uploads, "realnest/shops")
	if err != nil {
		return utils.SendServerError(c, "Failed to upload image to Cloudinary", err)
	}

	status := models.PropertyStatus(c.FormValue("status"))
	if status == "" {
		status = models.PropertyAvailable
	}

	shop := models.Shop{
		Title:              c.FormValue("title"),
		Description:        c.FormValue("description"),
		ShopType:           c.FormValue("shopType"),
		InteriorType:       c.FormValue("interiorType"),
		Sqrft:              formFloat(c, "sqrft", 0),
		Price:              formFloat(c, "price", 0),
		Status:             status,
		Location:           c.FormValue("location"),
		Address:            c.FormValue("address"),
		City:               c.FormValue("city"),
		Pincode:            c.FormValue("pincode"),
		ShopNumber:         c.FormValue("shopNumber"),
		CommercialComplex:  c.FormValue("commercialComplex"),
		FloorNumber:        formInt(c, "floorNumber", 0),
		FrontageSize:       formFloat(c, "frontageSize", 0),
		Review:             c.FormValue("review"),
		IsAvailableForRent: formBool(c, "isAvailableForRent"),
		IsAvailableForSale: formBool(c, "isAvailableForSale"),
		ImgURL:             imgURL,
		UserID:             userID,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		return utils.SendServerError(c, "Error processing property data", err)
	}

	return utils.SendSuccess(c, fiber.StatusCreated, "New Shop Created Successfully", shop)
}

// GetSingleShop handles GET /shop/:id.
func (h *ShopHandler) GetSingleShop(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid shop ID")
	}

	var shop models.Shop
	if err := h.db.Preload("User").First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "No such shop found")
		}
		return utils.SendServerError(c, "Error fetching shop", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Shop Fetched Successfully", shop)
}

// UpdateShop handles PUT /shop/:id with a partial JSON body.
func (h *ShopHandler) UpdateShop(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid shop ID")
	}

	var shop models.Shop
	if err := h.db.First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "No Such Shop Updated")
		}
		return utils.SendServerError(c, "Error updating shop", err)
	}

	var updates models.Shop
	if err := c.BodyParser(&updates); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.db.Model(&shop).Updates(updates).Error; err != nil {
		return utils.SendServerError(c, "Error updating shop", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Updated Successfully", shop)
}

// DeleteShop handles DELETE /shop/:id.
func (h *ShopHandler) DeleteShop(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid shop ID")
	}

	var shop models.Shop
	if err := h.db.First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "No such shop found")
		}
		return utils.SendServerError(c, "Error deleting shop", err)
	}

	if err := h.db.Delete(&shop).Error; err != nil {
		return utils.SendServerError(c, "Error deleting shop", err)
	}

	removeListingImage(h.uploads, shop.ImgURL)

	return utils.SendSuccess(c, fiber.StatusOK, "Deleted Successfully", shop)
}
