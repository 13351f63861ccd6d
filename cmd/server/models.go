package main

import (
	"github.com/soullec/soullec/horoscope"
	"github.com/soullec/soullec/tarot"
)

// SessionRequest opens or resumes an anonymous session. An unknown or
// missing userId creates a fresh user.
type SessionRequest struct {
	UserID string `json:"userId,omitempty"`
}

// SessionResponse is the session state returned to the client.
type SessionResponse struct {
	UserID    string `json:"userId"`
	SoulGems  int    `json:"soulGems"`
	IsPremium bool   `json:"isPremium"`
}

// LinkRequest merges an anonymous user into an authenticated one.
type LinkRequest struct {
	AnonymousUserID string `json:"anonymousUserId"`
	UserID          string `json:"userId"`
}

// GemsResponse is a user's current balance.
type GemsResponse struct {
	SoulGems  int  `json:"soulGems"`
	IsPremium bool `json:"isPremium"`
}

// ProfileRequest updates the user's birth info and preferences. Omitted
// fields are left untouched.
type ProfileRequest struct {
	UserID               string   `json:"userId"`
	BirthDate            *string  `json:"birthDate,omitempty"`
	BirthTime            *string  `json:"birthTime,omitempty"`
	BirthPlace           *string  `json:"birthPlace,omitempty"`
	Religion             *string  `json:"religion,omitempty"`
	HoroscopePreferences []string `json:"horoscopePreferences,omitempty"`
}

// GenerateMessageRequest asks for an oracle message from free-form
// emotional input.
type GenerateMessageRequest struct {
	UserID     string `json:"userId"`
	Feeling    string `json:"feeling"`
	UILanguage string `json:"uiLanguage,omitempty"`
}

// GenerateMessageResponse returns the generated message and remaining
// balance.
type GenerateMessageResponse struct {
	Message   string `json:"message"`
	Emotion   string `json:"emotion,omitempty"`
	MessageID string `json:"messageId"`
	SoulGems  int    `json:"soulGems"`
}

// GenerateAffirmationRequest asks for a manifestation affirmation.
type GenerateAffirmationRequest struct {
	UserID     string `json:"userId"`
	Desire     string `json:"desire"`
	UILanguage string `json:"uiLanguage,omitempty"`
}

// GenerateAffirmationResponse returns the affirmation and remaining
// balance.
type GenerateAffirmationResponse struct {
	Affirmation string `json:"affirmation"`
	MessageID   string `json:"messageId"`
	SoulGems    int    `json:"soulGems"`
}

// DailyHoroscopeRequest asks for today's reading.
type DailyHoroscopeRequest struct {
	UserID     string `json:"userId"`
	UILanguage string `json:"uiLanguage,omitempty"`
}

// DailyHoroscopeResponse returns the narrative plus the calculated
// readings it was based on.
type DailyHoroscopeResponse struct {
	Horoscope string                     `json:"horoscope"`
	Reading   horoscope.CompositeReading `json:"reading"`
	MessageID string                     `json:"messageId"`
	SoulGems  int                        `json:"soulGems"`
}

// HoroscopeReadingRequest asks for a reading over a period, optionally
// answering a question. Date is required when period is "specific".
type HoroscopeReadingRequest struct {
	UserID     string `json:"userId"`
	UILanguage string `json:"uiLanguage,omitempty"`
	Period     string `json:"period,omitempty"`
	Question   string `json:"question,omitempty"`
	Date       string `json:"date,omitempty"`
}

// HoroscopeReadingResponse returns the generated reading.
type HoroscopeReadingResponse struct {
	Horoscope string `json:"horoscope"`
	MessageID string `json:"messageId"`
	SoulGems  int    `json:"soulGems"`
}

// TarotReadingRequest asks for a card spread and its interpretation.
// CardCount defaults to 3.
type TarotReadingRequest struct {
	UserID     string `json:"userId"`
	Question   string `json:"question"`
	CardCount  int    `json:"cardCount,omitempty"`
	UILanguage string `json:"uiLanguage,omitempty"`
}

// TarotReadingResponse returns the drawn cards and their interpretation.
type TarotReadingResponse struct {
	Cards     []tarot.DrawnCard `json:"cards"`
	Spread    string            `json:"spread"`
	Reading   string            `json:"reading"`
	Advice    string            `json:"advice"`
	MessageID string            `json:"messageId"`
	SoulGems  int               `json:"soulGems"`
}

// ReferralResponse is a user's referral code and how many signups it has
// produced.
type ReferralResponse struct {
	ReferralCode  string `json:"referralCode"`
	ReferralCount int    `json:"referralCount"`
}

// RedeemReferralRequest redeems another user's referral code.
type RedeemReferralRequest struct {
	UserID string `json:"userId"`
	Code   string `json:"code"`
}

// RedeemReferralResponse reports both sides of the reward.
type RedeemReferralResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	SoulGems      int    `json:"soulGems"`
	ReferralCount int    `json:"referralCount"`
	ReferrerGems  int    `json:"referrerGems"`
}

// GemPurchaseRequest credits a gem package to a user and records the
// payment.
type GemPurchaseRequest struct {
	UserID            string `json:"userId"`
	GemPackage        string `json:"gemPackage"`
	ExternalPaymentID string `json:"externalPaymentId,omitempty"`
}

// GemPurchaseResponse returns the credited amount and new balance.
type GemPurchaseResponse struct {
	GemsAdded int `json:"gemsAdded"`
	SoulGems  int `json:"soulGems"`
}

// SubscriptionRequest activates the premium subscription for a user.
type SubscriptionRequest struct {
	UserID                string `json:"userId"`
	BillingCustomerID     string `json:"billingCustomerId,omitempty"`
	BillingSubscriptionID string `json:"billingSubscriptionId,omitempty"`
	ExternalPaymentID     string `json:"externalPaymentId,omitempty"`
}

// StatusResponse is a user's subscription state.
type StatusResponse struct {
	SubscriptionStatus string `json:"subscriptionStatus"`
	IsPremium          bool   `json:"isPremium"`
}
