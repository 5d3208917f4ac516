package handlers

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"realnest/internal/models"
	"realnest/internal/utils"
)

type SellerHandler struct {
	db *gorm.DB
}

func NewSellerHandler(db *gorm.DB) *SellerHandler {
	return &SellerHandler{db: db}
}

// RecentProperty is a listing trimmed down for the dashboard, tagged with
// its property type so the three collections can be merged into one list.
type RecentProperty struct {
	ID           uint                  `json:"id"`
	PropertyType models.PropertyType   `json:"propertyType"`
	Title        string                `json:"title"`
	Price        float64               `json:"price"`
	City         string                `json:"city"`
	Status       models.PropertyStatus `json:"status"`
	ImgURL       string                `json:"imgUrl,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// GetSellerDashboard handles GET /seller/seller/dashboard/:sellerId. It
// aggregates property counts, inquiry totals and the most recent activity.
func (h *SellerHandler) GetSellerDashboard(c *fiber.Ctx) error {
	sellerID, err := parseID(c.Params("sellerId"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid seller ID")
	}

	var flatsCount, shopsCount, bunglowsCount, inquiriesCount int64
	counts := []struct {
		model interface{}
		out   *int64
		owner string
	}{
		{&models.Flat{}, &flatsCount, "user_id"},
		{&models.Shop{}, &shopsCount, "user_id"},
		{&models.Bunglow{}, &bunglowsCount, "user_id"},
		{&models.Inquiry{}, &inquiriesCount, "seller_id"},
	}
	for _, count := range counts {
		if err := h.db.Model(count.model).Where(count.owner+" = ?", sellerID).Count(count.out).Error; err != nil {
			return utils.SendServerError(c, "Error fetching dashboard data", err)
		}
	}

	recentProperties, err := h.recentProperties(sellerID)
	if err != nil {
		return utils.SendServerError(c, "Error fetching dashboard data", err)
	}

	var recentInquiries []models.Inquiry
	err = h.db.
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Limit(5).
		Find(&recentInquiries).Error
	if err != nil {
		return utils.SendServerError(c, "Error fetching dashboard data", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Dashboard data fetched successfully", fiber.Map{
		"totalProperties":  flatsCount + shopsCount + bunglowsCount,
		"flats":            flatsCount,
		"shops":            shopsCount,
		"bunglows":         bunglowsCount,
		"totalInquiries":   inquiriesCount,
		"recentProperties": recentProperties,
		"recentInquiries":  recentInquiries,
	})
}

func (h *SellerHandler) recentProperties(sellerID uint) ([]RecentProperty, error) {
	var recent []RecentProperty

	var flats []models.Flat
	if err := h.db.Where("user_id = ?", sellerID).Order("created_at DESC").Limit(2).Find(&flats).Error; err != nil {
		return nil, err
	}
	for _, f := range flats {
		recent = append(recent, RecentProperty{
			ID: f.ID, PropertyType: models.PropertyTypeFlat, Title: f.Title,
			Price: f.Price, City: f.City, Status: f.Status, ImgURL: f.ImgURL, CreatedAt: f.CreatedAt,
		})
	}

	var shops []models.Shop
	if err := h.db.Where("user_id = ?", sellerID).Order("created_at DESC").Limit(2).Find(&shops).Error; err != nil {
		return nil, err
	}
	for _, s := range shops {
		recent = append(recent, RecentProperty{
			ID: s.ID, PropertyType: models.PropertyTypeShop, Title: s.Title,
			Price: s.Price, City: s.City, Status: s.Status, ImgURL: s.ImgURL, CreatedAt: s.CreatedAt,
		})
	}

	var bunglows []models.Bunglow
	if err := h.db.Where("user_id = ?", sellerID).Order("created_at DESC").Limit(1).Find(&bunglows).Error; err != nil {
		return nil, err
	}
	for _, b := range bunglows {
		recent = append(recent, RecentProperty{
			ID: b.ID, PropertyType: models.PropertyTypeBunglow, Title: b.Title,
			Price: b.Price, City: b.City, Status: b.Status, ImgURL: b.ImgURL, CreatedAt: b.CreatedAt,
		})
	}

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}
	return recent, nil
}

// GetSellerFlats handles GET /seller/seller/flats/:sellerId.
func (h *SellerHandler) GetSellerFlats(c *fiber.Ctx) error {
	sellerID, err := parseID(c.Params("sellerId"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid seller ID")
	}

	var flats []models.Flat
	err = h.db.Preload("User").
		Where("user_id = ?", sellerID).
		Order("created_at DESC").
		Find(&flats).Error
	if err != nil {
		return utils.SendServerError(c, "Error fetching flats", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Seller flats fetched successfully", flats)
}

// GetSellerShops handles GET /seller/seller/shops/:sellerId.
func (h *SellerHandler) GetSellerShops(c *fiber.Ctx) error {
	sellerID, err := parseID(c.Params("sellerId"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid seller ID")
	}

	var shops []models.Shop
	err = h.db.Preload("User").
		Where("user_id = ?", sellerID).
		Order("created_at DESC").
		Find(&shops).Error
	if err != nil {
		return utils.SendServerError(c, "Error fetching shops", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Seller shops fetched successfully", shops)
}

// GetSellerBunglows handles GET /seller/seller/bunglows/:sellerId.
func (h *SellerHandler) GetSellerBunglows(c *fiber.Ctx) error {
	sellerID, err := parseID(c.Params("sellerId"))
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "Invalid seller ID")
	}

	var bunglows []models.Bunglow
	err = h.db.Preload("User").
		Where("user_id = ?", sellerID).
		Order("created_at DESC").
		Find(&bunglows).Error
	if err != nil {
		return utils.SendServerError(c, "Error fetching bunglows", err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, "Seller bunglows fetched successfully", bunglows)
}
