// Package store persists users, generated messages, and payment records.
// It mirrors the interface-plus-two-implementations layout used across the
// service: PostgresStorage for deployments, MemStorage for tests and
// DATABASE_URL-less development.
package store

import (
	"errors"
	"math/rand"
	"time"
)

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientGems is returned when a deduction would overdraw the
	// user's Soul Gems balance.
	ErrInsufficientGems = errors.New("insufficient soul gems")

	// ErrAlreadyReferred is returned when a user tries to redeem a second
	// referral code.
	ErrAlreadyReferred = errors.New("referral code already used")
)

const (
	// DailyFreeGems is the balance users are refreshed to on a new day.
	DailyFreeGems = 1

	// ReferrerRewardGems and RefereeRewardGems are the two sides of a
	// successful referral.
	ReferrerRewardGems = 10
	RefereeRewardGems  = 5

	// PremiumGems is the balance reported for premium subscribers, who are
	// never charged gems.
	PremiumGems = 999999

	// SubscriptionFree and SubscriptionPremium are the two subscription
	// states.
	SubscriptionFree    = "free"
	SubscriptionPremium = "premium"
)

// User is an account, anonymous or authenticated. Birth fields and
// preferences feed the horoscope engine; the date is stored as "YYYY-MM-DD"
// and the time as "HH:MM", both validated at the API boundary.
type User struct {
	ID                    string    `json:"id"`
	Email                 string    `json:"email,omitempty"`
	FirstName             string    `json:"firstName,omitempty"`
	LastName              string    `json:"lastName,omitempty"`
	ProfileImageURL       string    `json:"profileImageUrl,omitempty"`
	SubscriptionStatus    string    `json:"subscriptionStatus"`
	BillingCustomerID     string    `json:"-"`
	BillingSubscriptionID string    `json:"-"`
	SoulGems              int       `json:"soulGems"`
	LastFreeGemsDate      string    `json:"-"`
	BirthDate             string    `json:"birthDate,omitempty"`
	BirthTime             string    `json:"birthTime,omitempty"`
	BirthPlace            string    `json:"birthPlace,omitempty"`
	Religion              string    `json:"religion,omitempty"`
	HoroscopePreferences  []string  `json:"horoscopePreferences,omitempty"`
	ReferralCode          string    `json:"referralCode,omitempty"`
	ReferredBy            string    `json:"referredBy,omitempty"`
	ReferralCount         int       `json:"referralCount"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// Message is one generated reading: an oracle message, affirmation,
// horoscope, or tarot interpretation.
type Message struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Input      string    `json:"input"`
	AIResponse string    `json:"aiResponse"`
	Emotion    string    `json:"emotion,omitempty"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
}

// Message types.
const (
	MessageTypeMessage     = "message"
	MessageTypeAffirmation = "affirmation"
	MessageTypeHoroscope   = "horoscope"
	MessageTypeTarot       = "tarot"
)

// Payment is a recorded purchase, amounts in cents.
type Payment struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	Amount            int       `json:"amount"`
	Type              string    `json:"type"`
	ExternalPaymentID string    `json:"externalPaymentId,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

// ProfileUpdate carries the user-editable profile fields. Nil pointers leave
// the stored value untouched.
type ProfileUpdate struct {
	BirthDate            *string
	BirthTime            *string
	BirthPlace           *string
	Religion             *string
	HoroscopePreferences []string
}

// Storage manages users, messages, and payments.
type Storage interface {
	// GetUser returns a user by ID, or ErrNotFound.
	GetUser(id string) (*User, error)

	// CreateUser creates a fresh user with the starting gem balance.
	// Email may be empty for anonymous sessions.
	CreateUser(email string) (*User, error)

	// LinkAccounts merges an anonymous user into an authenticated one:
	// gems are summed, messages and payments are reassigned, profile
	// fields fill gaps, and the anonymous row is deleted.
	LinkAccounts(anonymousID, authenticatedID string) (*User, error)

	// UpdateSubscription sets the user's subscription status.
	UpdateSubscription(userID, status string) (*User, error)

	// UpdateBillingInfo stores the external billing identifiers.
	UpdateBillingInfo(userID, customerID, subscriptionID string) (*User, error)

	// UpdateProfile applies the non-nil fields of the update.
	UpdateProfile(userID string, update ProfileUpdate) (*User, error)

	// SoulGems returns the user's balance; premium users report
	// PremiumGems regardless of the stored value.
	SoulGems(userID string) (int, error)

	// AddSoulGems credits the balance.
	AddSoulGems(userID string, amount int) (*User, error)

	// DeductSoulGems debits the balance atomically: the guard and the
	// decrement happen in one statement so concurrent requests cannot
	// double-spend. Premium users are returned unchanged. Returns
	// ErrInsufficientGems when the balance would go negative.
	DeductSoulGems(userID string, amount int) (*User, error)

	// RefreshDailyGems resets the balance to DailyFreeGems the first time
	// it is called on a given calendar day, otherwise leaves it alone.
	RefreshDailyGems(userID string) (*User, error)

	// GenerateReferralCode returns the user's referral code, minting a
	// unique one on first call.
	GenerateReferralCode(userID string) (string, error)

	// ValidateReferralCode resolves a code to the referring user's ID,
	// or ErrNotFound.
	ValidateReferralCode(code string) (referrerID string, err error)

	// ApplyReferralReward credits both sides of a referral and marks the
	// referee as referred. Returns ErrAlreadyReferred if the referee has
	// already redeemed a code.
	ApplyReferralReward(referrerID, refereeID string) error

	// CreateMessage persists a generated message and returns it with ID
	// and timestamp assigned.
	CreateMessage(m *Message) (*Message, error)

	// UserMessages lists a user's messages, newest first.
	UserMessages(userID string) ([]*Message, error)

	// CreatePayment records a payment.
	CreatePayment(p *Payment) (*Payment, error)

	// UserPayments lists a user's payments, newest first.
	UserPayments(userID string) ([]*Payment, error)
}

// referralCodeAlphabet omits easily confused characters.
const referralCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func newReferralCode() string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = referralCodeAlphabet[rand.Intn(len(referralCodeAlphabet))]
	}
	return string(code)
}
