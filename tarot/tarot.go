// Package tarot holds the 78-card deck and draws spreads for readings.
package tarot

import (
	"math/rand"
	"strconv"
)

// Card is a single tarot card with its upright and reversed meanings.
type Card struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Suit            string   `json:"suit,omitempty"`
	Arcana          string   `json:"arcana"`
	Number          int      `json:"number,omitempty"`
	Keywords        []string `json:"keywords"`
	UprightMeaning  string   `json:"uprightMeaning"`
	ReversedMeaning string   `json:"reversedMeaning"`
}

// DrawnCard is a card placed at a position in a spread, possibly reversed.
type DrawnCard struct {
	Card     Card   `json:"card"`
	Position string `json:"position"`
	Reversed bool   `json:"reversed"`
}

// Reading is a drawn spread plus the question it answers.
type Reading struct {
	Cards    []DrawnCard `json:"cards"`
	Spread   string      `json:"spread"`
	Question string      `json:"question,omitempty"`
}

// Meaning returns the card's meaning for its orientation.
func (d DrawnCard) Meaning() string {
	if d.Reversed {
		return d.Card.ReversedMeaning
	}
	return d.Card.UprightMeaning
}

var spreadPositions = []string{"Past", "Present", "Future", "Advice", "Outcome"}

// SpreadName returns the conventional name for a spread of the given size.
func SpreadName(count int) string {
	switch count {
	case 1:
		return "Single Card"
	case 3:
		return "Three Card Spread"
	case 5:
		return "Five Card Spread"
	default:
		return "Custom Spread"
	}
}

// Draw shuffles the deck and deals count cards into spread positions, each
// with a coin-flip reversal. Counts beyond the deck size are capped.
func Draw(count int) []DrawnCard {
	if count < 1 {
		count = 1
	}
	if count > len(Deck) {
		count = len(Deck)
	}

	indices := rand.Perm(len(Deck))
	drawn := make([]DrawnCard, count)
	for i := 0; i < count; i++ {
		position := spreadPositionName(i)
		drawn[i] = DrawnCard{
			Card:     Deck[indices[i]],
			Position: position,
			Reversed: rand.Intn(2) == 1,
		}
	}
	return drawn
}

func spreadPositionName(index int) string {
	if index < len(spreadPositions) {
		return spreadPositions[index]
	}
	return "Card " + strconv.Itoa(index+1)
}
