package models

import (
	"time"

	"gorm.io/gorm"
)

// DataType is a user-defined category such as "Country".
type DataType struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	PublicID    string     `gorm:"not null;size:32;uniqueIndex" json:"id"`
	Name        string     `gorm:"not null;size:100;uniqueIndex" json:"name"`
	Description string     `gorm:"size:500" json:"description"`
	Properties  []Property `gorm:"foreignKey:DataTypeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"properties"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (d *DataType) BeforeCreate(tx *gorm.DB) error {
	return ensurePublicID(&d.PublicID)
}
