package flashcards

import (
	"fmt"
	"math/rand/v2"
)

// ShuffleFunc has the signature of rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// Generator builds flashcards from an instance's property values.
type Generator struct {
	shuffle ShuffleFunc
}

// NewGenerator returns a Generator. A nil shuffle uses math/rand/v2.
func NewGenerator(shuffle ShuffleFunc) *Generator {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &Generator{shuffle: shuffle}
}

// Generate emits three cards per value, true/false then multiple choice then
// fill in the blank, following the order of values.
func (g *Generator) Generate(instanceName string, values []PropertyValue) ([]Card, error) {
	if len(values) == 0 {
		return nil, ErrNoPropertyValues
	}

	cards := make([]Card, 0, len(values)*3)
	for _, v := range values {
		question := fmt.Sprintf("What is the %s of '%s'?", v.Name, instanceName)

		cards = append(cards,
			Card{
				PropertyID:    v.PropertyID,
				Type:          CardTypeTrueFalse,
				Question:      fmt.Sprintf("Is the %s of '%s' equal to '%s'?", v.Name, instanceName, v.Value),
				CorrectAnswer: "true",
			},
			Card{
				PropertyID:    v.PropertyID,
				Type:          CardTypeMultipleChoice,
				Question:      question,
				CorrectAnswer: v.Value,
				Options:       g.options(v),
			},
			Card{
				PropertyID:    v.PropertyID,
				Type:          CardTypeFillInBlank,
				Question:      question,
				CorrectAnswer: v.Value,
			},
		)
	}

	return cards, nil
}

func (g *Generator) options(v PropertyValue) []string {
	options := append([]string{v.Value}, FakeOptions(v.Value, v.Type)...)
	g.shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
