package flashcards

import (
	"errors"
	"fmt"
	"strings"
)

// PropertyType is the declared type of a property. Values are always stored as
// text; the type only decides how they are interpreted when cards are built
// and graded.
type PropertyType string

const (
	PropertyTypeString  PropertyType = "string"
	PropertyTypeNumber  PropertyType = "number"
	PropertyTypeBoolean PropertyType = "boolean"
)

// CardType is the question format of a flashcard.
type CardType string

const (
	CardTypeTrueFalse      CardType = "true_false"
	CardTypeMultipleChoice CardType = "multiple_choice"
	CardTypeFillInBlank    CardType = "fill_in_blank"
)

var (
	ErrNoPropertyValues    = errors.New("instance has no property values")
	ErrInvalidPropertyType = errors.New("invalid property type")
	ErrInvalidCardType     = errors.New("invalid flashcard type")
)

// ParsePropertyType accepts the three supported type names, case-insensitively.
func ParsePropertyType(s string) (PropertyType, error) {
	switch t := PropertyType(strings.ToLower(strings.TrimSpace(s))); t {
	case PropertyTypeString, PropertyTypeNumber, PropertyTypeBoolean:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPropertyType, s)
	}
}

// ParseCardType validates a stored flashcard type.
func ParseCardType(s string) (CardType, error) {
	switch t := CardType(s); t {
	case CardTypeTrueFalse, CardTypeMultipleChoice, CardTypeFillInBlank:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCardType, s)
	}
}

// PropertyValue is one resolved (property, value) pair of an instance.
type PropertyValue struct {
	PropertyID uint
	Name       string
	Type       PropertyType
	Value      string
}

// Card is a generated flashcard before it is persisted. Options is only set
// for multiple-choice cards.
type Card struct {
	PropertyID    uint
	Type          CardType
	Question      string
	CorrectAnswer string
	Options       []string
}
