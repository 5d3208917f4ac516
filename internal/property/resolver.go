package property

import (
	"errors"

	"gorm.io/gorm"

	"realnest/internal/inquiry"
	"realnest/internal/models"
)

// Resolver looks up any of the three property collections through a single
// type-tagged entry point and reduces the row to the snapshot the inquiry
// subsystem copies.
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Resolve returns the snapshot for the given property, or an error when the
// type tag is unrecognized or no such listing exists. The tag is checked
// before any lookup runs.
func (r *Resolver) Resolve(propertyType models.PropertyType, id uint) (*models.PropertySnapshot, error) {
	switch propertyType {
	case models.PropertyTypeFlat:
		var flat models.Flat
		if err := r.db.Preload("User").First(&flat, id).Error; err != nil {
			return nil, r.lookupError(err)
		}
		return &models.PropertySnapshot{
			Title:     flat.Title,
			Price:     flat.Price,
			Image:     flat.ImgURL,
			Location:  flat.Location,
			City:      flat.City,
			OwnerID:   flat.UserID,
			OwnerName: flat.User.FullName,
		}, nil

	case models.PropertyTypeShop:
		var shop models.Shop
		if err := r.db.Preload("User").First(&shop, id).Error; err != nil {
			return nil, r.lookupError(err)
		}
		return &models.PropertySnapshot{
			Title:     shop.Title,
			Price:     shop.Price,
			Image:     shop.ImgURL,
			Location:  shop.Location,
			City:      shop.City,
			OwnerID:   shop.UserID,
			OwnerName: shop.User.FullName,
		}, nil

	case models.PropertyTypeBunglow:
		var bunglow models.Bunglow
		if err := r.db.Preload("User").First(&bunglow, id).Error; err != nil {
			return nil, r.lookupError(err)
		}
		return &models.PropertySnapshot{
			Title:     bunglow.Title,
			Price:     bunglow.Price,
			Image:     bunglow.ImgURL,
			Location:  bunglow.Location,
			City:      bunglow.City,
			OwnerID:   bunglow.UserID,
			OwnerName: bunglow.User.FullName,
		}, nil

	default:
		return nil, &inquiry.ValidationError{
			Code:    inquiry.CodeInvalidPropertyType,
			Message: "Invalid property type. Must be flat, shop, or bunglow",
		}
	}
}

func (r *Resolver) lookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &inquiry.NotFoundError{Resource: "Property"}
	}
	return &inquiry.InfrastructureError{Op: "resolve property", Err: err}
}
