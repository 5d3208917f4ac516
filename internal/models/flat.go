package models

import (
	"time"
)

type Flat struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Type        string         `gorm:"not null" json:"type"`
	InteriorType string        `gorm:"not null" json:"interiorType"`
	Sqrft       float64        `gorm:"not null" json:"sqrft"`
	Price       float64        `gorm:"not null" json:"price"`
	Status      PropertyStatus `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	Location    string         `gorm:"not null" json:"location"`
	Address     string         `gorm:"not null" json:"address"`
	City        string         `gorm:"not null" json:"city"`
	Pincode     string         `gorm:"not null" json:"pincode"`

	FloorNumber int `gorm:"default:0" json:"floorNumber"`
	TotalFloors int `gorm:"default:1" json:"totalFloors"`
	Parking     int `gorm:"default:0" json:"parking"`

	Society            string `gorm:"default:''" json:"society"`
	Review             string `gorm:"type:text;default:''" json:"review"`
	AvailableForRent   bool   `gorm:"default:false" json:"availableForRent"`
	IsAvailableForSale bool   `gorm:"default:true" json:"isAvailableForSale"`
	ImgURL             string `gorm:"type:text" json:"imgUrl,omitempty"`

	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Flat) TableName() string {
	return "flats"
}
