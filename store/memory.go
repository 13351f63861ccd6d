package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStorage is an in-memory Storage used for tests and for running the
// server without DATABASE_URL.
type MemStorage struct {
	mu       sync.RWMutex
	users    map[string]*User
	messages map[string]*Message
	payments map[string]*Payment
}

// NewMemStorage creates an empty in-memory store.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:    make(map[string]*User),
		messages: make(map[string]*Message),
		payments: make(map[string]*Payment),
	}
}

func copyUser(u *User) *User {
	cp := *u
	cp.HoroscopePreferences = append([]string(nil), u.HoroscopePreferences...)
	return &cp
}

// GetUser returns a user by ID.
func (s *MemStorage) GetUser(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(u), nil
}

// CreateUser creates a fresh user with the starting gem balance.
func (s *MemStorage) CreateUser(email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	u := &User{
		ID:                 uuid.New().String(),
		Email:              email,
		SubscriptionStatus: SubscriptionFree,
		SoulGems:           DailyFreeGems,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	s.users[u.ID] = u
	return copyUser(u), nil
}

// LinkAccounts merges an anonymous user into an authenticated one.
func (s *MemStorage) LinkAccounts(anonymousID, authenticatedID string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	auth, ok := s.users[authenticatedID]
	if !ok {
		return nil, ErrNotFound
	}
	anon, ok := s.users[anonymousID]
	if !ok {
		return copyUser(auth), nil
	}

	for _, m := range s.messages {
		if m.UserID == anonymousID {
			m.UserID = authenticatedID
		}
	}
	for _, p := range s.payments {
		if p.UserID == anonymousID {
			p.UserID = authenticatedID
		}
	}

	auth.SoulGems += anon.SoulGems
	fillIfEmpty(&auth.BirthDate, anon.BirthDate)
	fillIfEmpty(&auth.BirthTime, anon.BirthTime)
	fillIfEmpty(&auth.BirthPlace, anon.BirthPlace)
	fillIfEmpty(&auth.Religion, anon.Religion)
	fillIfEmpty(&auth.BillingCustomerID, anon.BillingCustomerID)
	fillIfEmpty(&auth.BillingSubscriptionID, anon.BillingSubscriptionID)
	fillIfEmpty(&auth.LastFreeGemsDate, anon.LastFreeGemsDate)
	if len(auth.HoroscopePreferences) == 0 {
		auth.HoroscopePreferences = anon.HoroscopePreferences
	}
	auth.UpdatedAt = time.Now().UTC()

	delete(s.users, anonymousID)
	return copyUser(auth), nil
}

// UpdateSubscription sets the user's subscription status.
func (s *MemStorage) UpdateSubscription(userID, status string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	u.SubscriptionStatus = status
	u.UpdatedAt = time.Now().UTC()
	return copyUser(u), nil
}

// UpdateBillingInfo stores the external billing identifiers.
func (s *MemStorage) UpdateBillingInfo(userID, customerID, subscriptionID string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	u.BillingCustomerID = customerID
	u.BillingSubscriptionID = subscriptionID
	u.UpdatedAt = time.Now().UTC()
	return copyUser(u), nil
}

// UpdateProfile applies the non-nil fields of the update.
func (s *MemStorage) UpdateProfile(userID string, update ProfileUpdate) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	if update.BirthDate != nil {
		u.BirthDate = *update.BirthDate
	}
	if update.BirthTime != nil {
		u.BirthTime = *update.BirthTime
	}
	if update.BirthPlace != nil {
		u.BirthPlace = *update.BirthPlace
	}
	if update.Religion != nil {
		u.Religion = *update.Religion
	}
	if update.HoroscopePreferences != nil {
		u.HoroscopePreferences = append([]string(nil), update.HoroscopePreferences...)
	}
	u.UpdatedAt = time.Now().UTC()
	return copyUser(u), nil
}

// SoulGems returns the user's balance; premium subscribers report
// PremiumGems.
func (s *MemStorage) SoulGems(userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return 0, ErrNotFound
	}
	if u.SubscriptionStatus == SubscriptionPremium {
		return PremiumGems, nil
	}
	return u.SoulGems, nil
}

// AddSoulGems credits the balance.
func (s *MemStorage) AddSoulGems(userID string, amount int) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	u.SoulGems += amount
	u.UpdatedAt = time.Now().UTC()
	return copyUser(u), nil
}

// DeductSoulGems debits the balance. Premium users are never charged.
func (s *MemStorage) DeductSoulGems(userID string, amount int) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	if u.SubscriptionStatus == SubscriptionPremium {
		return copyUser(u), nil
	}
	if u.SoulGems < amount {
		return nil, ErrInsufficientGems
	}
	u.SoulGems -= amount
	u.UpdatedAt = time.Now().UTC()
	return copyUser(u), nil
}

// RefreshDailyGems resets the balance to DailyFreeGems on the first call of
// each calendar day.
func (s *MemStorage) RefreshDailyGems(userID string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	today := time.Now().UTC().Format("2006-01-02")
	if u.LastFreeGemsDate != today {
		u.SoulGems = DailyFreeGems
		u.LastFreeGemsDate = today
		u.UpdatedAt = time.Now().UTC()
	}
	return copyUser(u), nil
}

// GenerateReferralCode returns the user's referral code, minting one on the
// first call.
func (s *MemStorage) GenerateReferralCode(userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return "", ErrNotFound
	}
	if u.ReferralCode != "" {
		return u.ReferralCode, nil
	}

	for {
		code := newReferralCode()
		taken := false
		for _, other := range s.users {
			if other.ReferralCode == code {
				taken = true
				break
			}
		}
		if taken {
			continue
		}
		u.ReferralCode = code
		u.UpdatedAt = time.Now().UTC()
		return code, nil
	}
}

// ValidateReferralCode resolves a code to the referring user's ID.
func (s *MemStorage) ValidateReferralCode(code string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ReferralCode != "" && u.ReferralCode == code {
			return u.ID, nil
		}
	}
	return "", ErrNotFound
}

// ApplyReferralReward credits both sides of a referral.
func (s *MemStorage) ApplyReferralReward(referrerID, refereeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	referrer, ok := s.users[referrerID]
	if !ok {
		return ErrNotFound
	}
	referee, ok := s.users[refereeID]
	if !ok {
		return ErrNotFound
	}
	if referee.ReferredBy != "" {
		return ErrAlreadyReferred
	}

	referrer.SoulGems += ReferrerRewardGems
	referrer.ReferralCount++
	referrer.UpdatedAt = time.Now().UTC()

	referee.SoulGems += RefereeRewardGems
	referee.ReferredBy = referrerID
	referee.UpdatedAt = time.Now().UTC()
	return nil
}

// CreateMessage persists a generated message.
func (s *MemStorage) CreateMessage(m *Message) (*Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *m
	stored.ID = uuid.New().String()
	stored.Timestamp = time.Now().UTC()
	s.messages[stored.ID] = &stored

	out := stored
	return &out, nil
}

// UserMessages lists a user's messages, newest first.
func (s *MemStorage) UserMessages(userID string) ([]*Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var messages []*Message
	for _, m := range s.messages {
		if m.UserID == userID {
			cp := *m
			messages = append(messages, &cp)
		}
	}
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Timestamp.After(messages[j].Timestamp)
	})
	return messages, nil
}

// CreatePayment records a payment.
func (s *MemStorage) CreatePayment(p *Payment) (*Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *p
	stored.ID = uuid.New().String()
	stored.Timestamp = time.Now().UTC()
	s.payments[stored.ID] = &stored

	out := stored
	return &out, nil
}

// UserPayments lists a user's payments, newest first.
func (s *MemStorage) UserPayments(userID string) ([]*Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payments []*Payment
	for _, p := range s.payments {
		if p.UserID == userID {
			cp := *p
			payments = append(payments, &cp)
		}
	}
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].Timestamp.After(payments[j].Timestamp)
	})
	return payments, nil
}
