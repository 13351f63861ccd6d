package tarot

import "testing"

func TestDeckComplete(t *testing.T) {
	if len(Deck) != 78 {
		t.Fatalf("deck size = %d, want 78", len(Deck))
	}

	majors := 0
	suits := map[string]int{}
	seen := map[string]bool{}
	for _, card := range Deck {
		if seen[card.ID] {
			t.Errorf("duplicate card ID %q", card.ID)
		}
		seen[card.ID] = true

		switch card.Arcana {
		case "major":
			majors++
			if card.Suit != "" {
				t.Errorf("major arcana %q has suit %q", card.ID, card.Suit)
			}
		case "minor":
			suits[card.Suit]++
		default:
			t.Errorf("card %q has unknown arcana %q", card.ID, card.Arcana)
		}

		if card.UprightMeaning == "" || card.ReversedMeaning == "" {
			t.Errorf("card %q is missing a meaning", card.ID)
		}
		if len(card.Keywords) == 0 {
			t.Errorf("card %q has no keywords", card.ID)
		}
	}

	if majors != 22 {
		t.Errorf("major arcana count = %d, want 22", majors)
	}
	for _, suit := range []string{"wands", "cups", "swords", "pentacles"} {
		if suits[suit] != 14 {
			t.Errorf("suit %q count = %d, want 14", suit, suits[suit])
		}
	}
}

func TestDrawPositionsAndUniqueness(t *testing.T) {
	drawn := Draw(5)
	if len(drawn) != 5 {
		t.Fatalf("Draw(5) returned %d cards", len(drawn))
	}

	wantPositions := []string{"Past", "Present", "Future", "Advice", "Outcome"}
	seen := map[string]bool{}
	for i, d := range drawn {
		if d.Position != wantPositions[i] {
			t.Errorf("position[%d] = %q, want %q", i, d.Position, wantPositions[i])
		}
		if seen[d.Card.ID] {
			t.Errorf("card %q drawn twice in one spread", d.Card.ID)
		}
		seen[d.Card.ID] = true
	}
}

func TestDrawClampsCount(t *testing.T) {
	if got := len(Draw(0)); got != 1 {
		t.Errorf("Draw(0) returned %d cards, want 1", got)
	}
	if got := len(Draw(100)); got != len(Deck) {
		t.Errorf("Draw(100) returned %d cards, want %d", got, len(Deck))
	}

	// Positions past the named five fall back to numbered slots.
	drawn := Draw(7)
	if drawn[5].Position != "Card 6" || drawn[6].Position != "Card 7" {
		t.Errorf("overflow positions = %q, %q, want Card 6, Card 7", drawn[5].Position, drawn[6].Position)
	}
}

func TestMeaningFollowsOrientation(t *testing.T) {
	card := Deck[0]
	upright := DrawnCard{Card: card, Position: "Present", Reversed: false}
	reversed := DrawnCard{Card: card, Position: "Present", Reversed: true}

	if upright.Meaning() != card.UprightMeaning {
		t.Errorf("upright Meaning() = %q, want %q", upright.Meaning(), card.UprightMeaning)
	}
	if reversed.Meaning() != card.ReversedMeaning {
		t.Errorf("reversed Meaning() = %q, want %q", reversed.Meaning(), card.ReversedMeaning)
	}
}

func TestSpreadName(t *testing.T) {
	cases := map[int]string{
		1: "Single Card",
		3: "Three Card Spread",
		5: "Five Card Spread",
		4: "Custom Spread",
	}
	for count, want := range cases {
		if got := SpreadName(count); got != want {
			t.Errorf("SpreadName(%d) = %q, want %q", count, got, want)
		}
	}
}
