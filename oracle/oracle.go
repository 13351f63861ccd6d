// Package oracle generates the app's spiritual content: emotion analysis,
// oracle messages, affirmations, horoscope readings, and tarot
// interpretations. The Gemini-backed implementation lives in gemini.go;
// handlers depend only on the Oracle interface so tests can stub it.
package oracle

import (
	"context"

	"github.com/soullec/soullec/tarot"
)

// EmotionAnalysis is the detected primary emotion and the model's
// confidence, clamped to [0, 1].
type EmotionAnalysis struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// MessageRequest carries everything needed to generate an oracle message.
type MessageRequest struct {
	Feeling          string
	Emotion          string
	HoroscopeContext string
	Religion         string
	Language         string
}

// AffirmationRequest carries everything needed to generate an affirmation.
type AffirmationRequest struct {
	Desire           string
	HoroscopeContext string
	Religion         string
	Language         string
}

// Horoscope reading periods.
const (
	PeriodDaily    = "daily"
	PeriodMonthly  = "monthly"
	PeriodYearly   = "yearly"
	PeriodSpecific = "specific"
)

// HoroscopeRequest carries everything needed to generate a horoscope
// reading. Question is optional; Date is only consulted when Period is
// PeriodSpecific and must be "YYYY-MM-DD".
type HoroscopeRequest struct {
	HoroscopeContext string
	Religion         string
	Language         string
	Period           string
	Question         string
	Date             string
}

// TarotInterpretation is the two-part result of a tarot reading.
type TarotInterpretation struct {
	Reading string `json:"reading"`
	Advice  string `json:"advice"`
}

// Oracle generates spiritual content.
type Oracle interface {
	// DetectEmotion classifies the primary emotion in free text. It
	// degrades to {"uncertain", 0.5} rather than failing.
	DetectEmotion(ctx context.Context, text string) EmotionAnalysis

	// GenerateMessage creates a personalized oracle message.
	GenerateMessage(ctx context.Context, req MessageRequest) (string, error)

	// GenerateAffirmation creates a manifestation affirmation.
	GenerateAffirmation(ctx context.Context, req AffirmationRequest) (string, error)

	// GenerateHoroscope creates a horoscope reading for the requested
	// period, optionally answering a specific question.
	GenerateHoroscope(ctx context.Context, req HoroscopeRequest) (string, error)

	// InterpretTarot narrates a drawn spread as a reading plus advice.
	// It degrades to stock text rather than failing.
	InterpretTarot(ctx context.Context, reading tarot.Reading, religion, language string) TarotInterpretation
}
