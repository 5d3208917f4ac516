package models

import (
	"time"
)

type Bunglow struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Type         string         `gorm:"not null" json:"type"`
	InteriorType string         `gorm:"not null" json:"interiorType"`
	Area         float64        `gorm:"not null" json:"area"`
	Price        float64        `gorm:"not null" json:"price"`
	Status       PropertyStatus `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	Location     string         `gorm:"not null" json:"location"`
	Address      string         `gorm:"not null" json:"address"`
	City         string         `gorm:"not null" json:"city"`
	Pincode      string         `gorm:"not null" json:"pincode"`

	Bedrooms  int `gorm:"default:0" json:"bedrooms"`
	Bathrooms int `gorm:"default:0" json:"bathrooms"`
	Parking   int `gorm:"default:0" json:"parking"`

	Amenities          string `gorm:"default:''" json:"amenities"`
	Review             string `gorm:"type:text;default:''" json:"review"`
	IsAvailableForRent bool   `gorm:"default:false" json:"isAvailableForRent"`
	IsAvailableForSale bool   `gorm:"default:true" json:"isAvailableForSale"`
	ImgURL             string `gorm:"type:text" json:"imgUrl,omitempty"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Bunglow) TableName() string {
	return "bunglows"
}
