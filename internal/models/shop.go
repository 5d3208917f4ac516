package models

import (
	"time"
)

type Shop struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	ShopType     string         `gorm:"not null" json:"shopType"`
	InteriorType string         `gorm:"not null" json:"interiorType"`
	Sqrft        float64        `gorm:"not null" json:"sqrft"`
	Price        float64        `gorm:"not null" json:"price"`
	Status       PropertyStatus `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	Location     string         `gorm:"not null" json:"location"`
	Address      string         `gorm:"not null" json:"address"`
	City         string         `gorm:"not null" json:"city"`
	Pincode      string         `gorm:"not null" json:"pincode"`

	ShopNumber        string  `gorm:"default:''" json:"shopNumber"`
	CommercialComplex string  `gorm:"default:''" json:"commercialComplex"`
	FloorNumber       int     `gorm:"default:0" json:"floorNumber"`
	FrontageSize      float64 `gorm:"default:0" json:"frontageSize"`

	Review             string `gorm:"type:text;default:''" json:"review"`
	IsAvailableForRent bool   `gorm:"default:false" json:"isAvailableForRent"`
	IsAvailableForSale bool   `gorm:"default:true" json:"isAvailableForSale"`
	ImgURL             string `gorm:"type:text" json:"imgUrl,omitempty"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Shop) TableName() string {
	return "shops"
}
