package store

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/andrewpaige1/typedeck-api/flashcards"
	"github.com/andrewpaige1/typedeck-api/models"
)

// GenerateFlashcards runs one generation pass for an instance and persists
// the whole batch in a single transaction. An instance without values fails
// with flashcards.ErrNoPropertyValues and nothing is written.
func (s *Store) GenerateFlashcards(ctx context.Context, gen *flashcards.Generator, instanceID string) ([]models.Flashcard, error) {
	var created []models.Flashcard

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		view, err := loadInstanceView(tx, instanceID)
		if err != nil {
			return err
		}

		cards, err := gen.Generate(view.Instance.Name, view.Resolved())
		if err != nil {
			return fmt.Errorf("instance %q: %w", instanceID, err)
		}

		properties := make(map[uint]models.Property, len(view.Values))
		for _, pv := range view.Values {
			properties[pv.PropertyID] = pv.Property
		}

		created = make([]models.Flashcard, 0, len(cards))
		for _, c := range cards {
			created = append(created, models.Flashcard{
				InstanceID:    view.Instance.ID,
				PropertyID:    c.PropertyID,
				Type:          c.Type,
				Question:      c.Question,
				CorrectAnswer: c.CorrectAnswer,
				Options:       optionsColumn(c.Options),
			})
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("save flashcards: %w", err)
		}

		for i := range created {
			created[i].Instance = view.Instance
			created[i].Property = properties[created[i].PropertyID]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func optionsColumn(options []string) datatypes.JSONSlice[string] {
	if options == nil {
		return nil
	}
	return datatypes.JSONSlice[string](options)
}

// ListFlashcards returns every card generated for an instance, oldest first.
func (s *Store) ListFlashcards(ctx context.Context, instanceID string) ([]models.Flashcard, error) {
	db := s.db.WithContext(ctx)

	var instance models.Instance
	if err := db.Where("public_id = ?", instanceID).First(&instance).Error; err != nil {
		return nil, notFound(err, "instance", instanceID)
	}

	var cards []models.Flashcard
	err := db.Preload("Instance").Preload("Property").
		Where("instance_id = ?", instance.ID).
		Order("id asc").
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("list flashcards for %q: %w", instanceID, err)
	}
	return cards, nil
}

// GetFlashcard loads one card by public id.
func (s *Store) GetFlashcard(ctx context.Context, flashcardID string) (*models.Flashcard, error) {
	return getFlashcard(s.db.WithContext(ctx), flashcardID)
}

func getFlashcard(db *gorm.DB, flashcardID string) (*models.Flashcard, error) {
	var card models.Flashcard
	err := db.Preload("Instance").Preload("Property").
		Where("public_id = ?", flashcardID).
		First(&card).Error
	if err != nil {
		return nil, notFound(err, "flashcard", flashcardID)
	}
	return &card, nil
}

// SubmitAnswer grades userAnswer against a card and records the result. The
// answer is stored verbatim; every submission creates a new record.
func (s *Store) SubmitAnswer(ctx context.Context, flashcardID, userAnswer string) (*models.Answer, error) {
	db := s.db.WithContext(ctx)

	card, err := getFlashcard(db, flashcardID)
	if err != nil {
		return nil, err
	}

	verdict := flashcards.Grade(card.Type, card.CorrectAnswer, userAnswer)
	answer := models.Answer{
		FlashcardID: card.ID,
		UserAnswer:  userAnswer,
		IsCorrect:   verdict.Correct(),
		Verdict:     verdict,
	}
	if err := db.Create(&answer).Error; err != nil {
		return nil, fmt.Errorf("save answer for %q: %w", flashcardID, err)
	}

	answer.Flashcard = *card
	return &answer, nil
}

// ListAnswers returns the submissions for a card, oldest first.
func (s *Store) ListAnswers(ctx context.Context, flashcardID string) ([]models.Answer, error) {
	db := s.db.WithContext(ctx)

	card, err := getFlashcard(db, flashcardID)
	if err != nil {
		return nil, err
	}

	var answers []models.Answer
	if err := db.Where("flashcard_id = ?", card.ID).Order("id asc").Find(&answers).Error; err != nil {
		return nil, fmt.Errorf("list answers for %q: %w", flashcardID, err)
	}
	for i := range answers {
		answers[i].Flashcard = *card
	}
	return answers, nil
}
