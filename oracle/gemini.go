package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/soullec/soullec/tarot"
)

// DefaultModel is used when GEMINI_MODEL is unset.
const DefaultModel = "gemini-2.0-flash"

// Gemini is the Oracle implementation backed by Google's Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed Oracle.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) generate(ctx context.Context, system, user string, maxTokens int32, jsonOutput bool) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.9),
		MaxOutputTokens:   maxTokens,
	}
	if jsonOutput {
		config.ResponseMIMEType = "application/json"
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}
	return strings.TrimSpace(result.Text()), nil
}

// DetectEmotion classifies the primary emotion in free text. Model errors
// and unparseable output degrade to {"uncertain", 0.5}.
func (g *Gemini) DetectEmotion(ctx context.Context, text string) EmotionAnalysis {
	fallback := EmotionAnalysis{Emotion: "uncertain", Confidence: 0.5}

	raw, err := g.generate(ctx, emotionSystemPrompt, text, 200, true)
	if err != nil {
		slog.Error("emotion detection failed", "error", err)
		return fallback
	}

	var parsed struct {
		Emotion    string  `json:"emotion"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || parsed.Emotion == "" {
		slog.Warn("emotion detection returned unparseable output", "output", raw)
		return fallback
	}

	confidence := parsed.Confidence
	if confidence <= 0 {
		confidence = 0.5
	}
	if confidence > 1 {
		confidence = 1
	}
	return EmotionAnalysis{Emotion: parsed.Emotion, Confidence: confidence}
}

// GenerateMessage creates a personalized oracle message.
func (g *Gemini) GenerateMessage(ctx context.Context, req MessageRequest) (string, error) {
	system, user := messagePrompts(req)
	message, err := g.generate(ctx, system, user, 400, false)
	if err != nil {
		return "", fmt.Errorf("failed to generate message: %w", err)
	}
	if message == "" {
		message = "The universe holds infinite wisdom for you."
	}
	return message, nil
}

// GenerateAffirmation creates a manifestation affirmation.
func (g *Gemini) GenerateAffirmation(ctx context.Context, req AffirmationRequest) (string, error) {
	system, user := affirmationPrompts(req)
	affirmation, err := g.generate(ctx, system, user, 350, false)
	if err != nil {
		return "", fmt.Errorf("failed to generate affirmation: %w", err)
	}
	if affirmation == "" {
		affirmation = "I am worthy of my desires. They flow to me naturally. I embrace my divine potential."
	}
	return affirmation, nil
}

// GenerateHoroscope creates a horoscope reading for the requested period.
func (g *Gemini) GenerateHoroscope(ctx context.Context, req HoroscopeRequest) (string, error) {
	system, user := horoscopePrompts(req, time.Now())

	maxTokens := int32(400)
	if req.Period == PeriodYearly {
		maxTokens = 500
	}

	reading, err := g.generate(ctx, system, user, maxTokens, false)
	if err != nil {
		return "", fmt.Errorf("failed to generate horoscope: %w", err)
	}
	if reading == "" {
		reading = "The stars align in your favor. Trust your intuition and embrace the opportunities before you."
	}
	return reading, nil
}

// InterpretTarot narrates a drawn spread. Model errors and unparseable
// output degrade to stock text in the requested language.
func (g *Gemini) InterpretTarot(ctx context.Context, reading tarot.Reading, religion, lang string) TarotInterpretation {
	system, user := tarotPrompts(reading, religion, lang)

	raw, err := g.generate(ctx, system, user, 600, true)
	if err != nil {
		slog.Error("tarot interpretation failed", "error", err)
		return defaultTarotInterpretation(lang)
	}

	var parsed TarotInterpretation
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		slog.Warn("tarot interpretation returned unparseable output", "output", raw)
		return defaultTarotInterpretation(lang)
	}

	fallback := defaultTarotInterpretation(lang)
	if parsed.Reading == "" {
		parsed.Reading = fallback.Reading
	}
	if parsed.Advice == "" {
		parsed.Advice = fallback.Advice
	}
	return parsed
}
