package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/andrewpaige1/typedeck-api/flashcards"
)

// Property is a named, typed attribute of one data type.
type Property struct {
	ID         uint                    `gorm:"primaryKey" json:"-"`
	PublicID   string                  `gorm:"not null;size:32;uniqueIndex" json:"id"`
	DataTypeID uint                    `gorm:"not null;uniqueIndex:idx_property_type_name" json:"-"`
	Name       string                  `gorm:"not null;size:100;uniqueIndex:idx_property_type_name" json:"name"`
	Type       flashcards.PropertyType `gorm:"not null;size:20" json:"type"`
	CreatedAt  time.Time               `json:"created_at"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	return ensurePublicID(&p.PublicID)
}
