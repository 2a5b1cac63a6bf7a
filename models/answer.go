package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/andrewpaige1/typedeck-api/flashcards"
)

// Answer records one graded submission. UserAnswer is stored exactly as sent.
type Answer struct {
	ID          uint               `gorm:"primaryKey"`
	PublicID    string             `gorm:"not null;size:32;uniqueIndex"`
	FlashcardID uint               `gorm:"not null;index"`
	Flashcard   Flashcard          `gorm:"foreignKey:FlashcardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserAnswer  string             `gorm:"not null;size:1000"`
	IsCorrect   bool               `gorm:"not null"`
	Verdict     flashcards.Verdict `gorm:"not null;size:20"`
	AnsweredAt  time.Time          `gorm:"autoCreateTime"`
}

func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	return ensurePublicID(&a.PublicID)
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{&DataType{}, &Property{}, &Instance{}, &PropertyValue{}, &Flashcard{}, &Answer{}}
}
