package models

// PropertyType tags the polymorphic property reference carried by inquiries.
// "bunglow" matches the wire value used across the API.
type PropertyType string

const (
	PropertyTypeFlat    PropertyType = "flat"
	PropertyTypeShop    PropertyType = "shop"
	PropertyTypeBunglow PropertyType = "bunglow"
)

// Valid reports whether the tag is one of the three recognized property types.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeFlat, PropertyTypeShop, PropertyTypeBunglow:
		return true
	}
	return false
}

// PropertySnapshot is a read-only view of a listing, copied onto inquiries
// at creation time.
type PropertySnapshot struct {
	Title     string
	Price     float64
	Image     string
	Location  string
	City      string
	OwnerID   uint
	OwnerName string
}

type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "Available"
	PropertySold      PropertyStatus = "Sold"
	PropertyReserved  PropertyStatus = "Reserved"
	PropertyRented    PropertyStatus = "Rented"
)
