package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/andrewpaige1/typedeck-api/flashcards"
)

// Flashcard is one generated quiz item for an (instance, property) pair.
type Flashcard struct {
	ID            uint                        `gorm:"primaryKey"`
	PublicID      string                      `gorm:"not null;size:32;uniqueIndex"`
	InstanceID    uint                        `gorm:"not null;index"`
	Instance      Instance                    `gorm:"foreignKey:InstanceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PropertyID    uint                        `gorm:"not null;index"`
	Property      Property                    `gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Type          flashcards.CardType         `gorm:"not null;size:20"`
	Question      string                      `gorm:"not null;size:1000"`
	CorrectAnswer string                      `gorm:"not null;size:1000"`
	Options       datatypes.JSONSlice[string] // multiple choice only
	CreatedAt     time.Time
}

func (f *Flashcard) BeforeCreate(tx *gorm.DB) error {
	return ensurePublicID(&f.PublicID)
}
