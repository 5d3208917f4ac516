package models

import (
	"time"
)

type InquiryStatus string

const (
	InquiryPending   InquiryStatus = "pending"
	InquiryAccepted  InquiryStatus = "accepted"
	InquiryRejected  InquiryStatus = "rejected"
	InquiryCompleted InquiryStatus = "completed"
	InquiryCancelled InquiryStatus = "cancelled"
)

type InterestType string

const (
	InterestBuying  InterestType = "buying"
	InterestRenting InterestType = "renting"
	InterestBoth    InterestType = "both"
)

// Inquiry is a buyer's expressed interest in a property, tracked through a
// status lifecycle. Property details are denormalized at creation time so
// later edits or deletion of the listing do not invalidate the record.
type Inquiry struct {
	ID uint `gorm:"primarykey" json:"id"`

	PropertyID   uint         `gorm:"not null;index:idx_inquiries_property_buyer" json:"propertyId"`
	PropertyType PropertyType `gorm:"type:varchar(10);not null" json:"propertyType"`

	// Snapshot of the property at inquiry time.
	PropertyTitle    string  `gorm:"not null" json:"propertyTitle"`
	PropertyPrice    float64 `gorm:"not null" json:"propertyPrice"`
	PropertyImage    string  `gorm:"type:text" json:"propertyImage,omitempty"`
	PropertyLocation string  `gorm:"not null" json:"propertyLocation"`

	BuyerID    uint   `gorm:"not null;index:idx_inquiries_property_buyer;index" json:"buyerId"`
	BuyerName  string `gorm:"not null" json:"buyerName"`
	BuyerEmail string `gorm:"not null" json:"buyerEmail"`
	BuyerPhone string `gorm:"not null" json:"buyerPhone"`

	// Derived from the property owner at creation, never caller-supplied.
	SellerID   uint   `gorm:"not null;index" json:"sellerId"`
	SellerName string `gorm:"not null" json:"sellerName"`

	Message      string       `gorm:"type:text;not null" json:"message"`
	InterestedIn InterestType `gorm:"type:varchar(10);not null;default:'buying'" json:"interestedIn"`

	Status InquiryStatus `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`

	SellerResponse string     `gorm:"type:text" json:"sellerResponse,omitempty"`
	RespondedAt    *time.Time `json:"respondedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}
