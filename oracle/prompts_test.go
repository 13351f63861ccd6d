package oracle

import (
	"strings"
	"testing"
	"time"

	"github.com/soullec/soullec/tarot"
)

func TestMessagePromptsIncludeToneAndContext(t *testing.T) {
	system, user := messagePrompts(MessageRequest{
		Feeling:          "I feel stuck in my career",
		Emotion:          "lost",
		HoroscopeContext: "Western Zodiac: Leo, a Fire sign",
		Religion:         "Buddhism",
		Language:         "Thai",
	})

	if !strings.Contains(system, emotionTones["lost"]) {
		t.Error("system prompt should use the tone for the detected emotion")
	}
	if !strings.Contains(system, "Western Zodiac: Leo, a Fire sign") {
		t.Error("system prompt should embed the horoscope context")
	}
	if !strings.Contains(system, "Buddhism") {
		t.Error("system prompt should mention the user's religion")
	}
	if !strings.Contains(system, "Thai") {
		t.Error("system prompt should name the requested language")
	}
	if !strings.Contains(user, "I feel stuck in my career") {
		t.Error("user prompt should quote the user's words")
	}
}

func TestMessagePromptsUnknownEmotionFallsBack(t *testing.T) {
	system, _ := messagePrompts(MessageRequest{Feeling: "hi", Emotion: "bewildered"})

	if !strings.Contains(system, defaultTone) {
		t.Errorf("unknown emotion should use the default tone %q", defaultTone)
	}
}

func TestMessagePromptsOmitOptionalSections(t *testing.T) {
	system, _ := messagePrompts(MessageRequest{Feeling: "hi", Emotion: "hopeful"})

	if strings.Contains(system, "ASTROLOGICAL CONTEXT") {
		t.Error("system prompt should omit the astrology section without context")
	}
	if strings.Contains(system, "SPIRITUAL CONTEXT") {
		t.Error("system prompt should omit the religion section without a religion")
	}
	if !strings.Contains(system, "English") {
		t.Error("empty language should default to English")
	}
}

func TestAffirmationPrompts(t *testing.T) {
	system, user := affirmationPrompts(AffirmationRequest{
		Desire:           "a home of my own",
		HoroscopeContext: "Chinese Bazi Four Pillars: Year of the Dragon",
		Language:         "Spanish",
	})

	if !strings.Contains(system, "ASTROLOGICAL POWER") {
		t.Error("system prompt should include the astrology section when context is given")
	}
	if !strings.Contains(system, "Spanish") {
		t.Error("system prompt should name the requested language")
	}
	if !strings.Contains(user, "a home of my own") {
		t.Error("user prompt should quote the desire")
	}
}

func TestHoroscopePromptsPerPeriod(t *testing.T) {
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		period    string
		wantTime  string
		wantGuide string
	}{
		{PeriodDaily, "Friday, March 14, 2025", "around midday"},
		{PeriodMonthly, "March 2025", "key dates or phases"},
		{PeriodYearly, "2025", "major themes and turning points"},
	}
	for _, tc := range cases {
		system, user := horoscopePrompts(HoroscopeRequest{
			HoroscopeContext: "Vedic Astrology: Chitra nakshatra",
			Period:           tc.period,
		}, now)

		if !strings.Contains(system, tc.wantTime) {
			t.Errorf("period %s: system prompt missing time context %q", tc.period, tc.wantTime)
		}
		if !strings.Contains(system, tc.wantGuide) {
			t.Errorf("period %s: system prompt missing period instructions %q", tc.period, tc.wantGuide)
		}
		if !strings.Contains(user, "Vedic Astrology: Chitra nakshatra") {
			t.Errorf("period %s: user prompt missing the astrological profile", tc.period)
		}
	}
}

func TestHoroscopePromptsSpecificDate(t *testing.T) {
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
	system, _ := horoscopePrompts(HoroscopeRequest{
		Period: PeriodSpecific,
		Date:   "2025-12-25",
	}, now)

	if !strings.Contains(system, "Thursday, December 25, 2025") {
		t.Error("specific period should format the requested date")
	}
}

func TestHoroscopePromptsQuestionMode(t *testing.T) {
	now := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
	system, user := horoscopePrompts(HoroscopeRequest{
		Period:   PeriodDaily,
		Question: "Should I change jobs?",
		Religion: "Christianity",
	}, now)

	if !strings.Contains(system, "Should I change jobs?") {
		t.Error("system prompt should embed the question")
	}
	// Question mode answers the question; the spiritual practice block is
	// only for plain readings.
	if strings.Contains(system, "SPIRITUAL PRACTICE") {
		t.Error("question mode should not add the spiritual practice section")
	}
	if !strings.Contains(user, "Should I change jobs?") {
		t.Error("user prompt should repeat the question")
	}
}

func TestTarotPromptsDescribeCards(t *testing.T) {
	reading := tarot.Reading{
		Cards: []tarot.DrawnCard{
			{Card: tarot.Deck[0], Position: "Past", Reversed: false},
			{Card: tarot.Deck[1], Position: "Present", Reversed: true},
		},
		Spread:   "Three Card Spread",
		Question: "What should I focus on?",
	}

	system, user := tarotPrompts(reading, "", "English")

	if !strings.Contains(system, `"reading"`) || !strings.Contains(system, `"advice"`) {
		t.Error("system prompt should request the two-field JSON shape")
	}
	if !strings.Contains(user, "The Fool") {
		t.Error("user prompt should name the drawn cards")
	}
	if !strings.Contains(user, "The Magician (Reversed)") {
		t.Error("user prompt should mark reversed cards")
	}
	if !strings.Contains(user, tarot.Deck[1].ReversedMeaning) {
		t.Error("reversed cards should carry the reversed meaning")
	}
	if !strings.Contains(user, "What should I focus on?") {
		t.Error("user prompt should include the question")
	}
}

func TestDefaultTarotInterpretationLanguages(t *testing.T) {
	en := defaultTarotInterpretation("English")
	if en.Reading == "" || en.Advice == "" {
		t.Fatal("English defaults should be non-empty")
	}

	th := defaultTarotInterpretation("Thai")
	if th.Reading == en.Reading {
		t.Error("Thai defaults should differ from English")
	}

	unknown := defaultTarotInterpretation("Klingon")
	if unknown != en {
		t.Error("unknown languages should fall back to English defaults")
	}
}
