package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PostgresStorage implements Storage backed by PostgreSQL.
type PostgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage creates a PostgreSQL-backed Storage.
func NewPostgresStorage(db *sql.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

const userColumns = `id, email, first_name, last_name, profile_image_url,
	subscription_status, billing_customer_id, billing_subscription_id,
	soul_gems, last_free_gems_date, birth_date, birth_time, birth_place,
	religion, horoscope_preferences, referral_code, referred_by,
	referral_count, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL,
		&u.SubscriptionStatus, &u.BillingCustomerID, &u.BillingSubscriptionID,
		&u.SoulGems, &u.LastFreeGemsDate, &u.BirthDate, &u.BirthTime, &u.BirthPlace,
		&u.Religion, pq.Array(&u.HoroscopePreferences), &u.ReferralCode, &u.ReferredBy,
		&u.ReferralCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

// GetUser returns a user by ID.
func (s *PostgresStorage) GetUser(id string) (*User, error) {
	row := s.db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// CreateUser creates a fresh user row with the starting gem balance.
func (s *PostgresStorage) CreateUser(email string) (*User, error) {
	id := uuid.New().String()
	row := s.db.QueryRow(`
		INSERT INTO users (id, email, soul_gems, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING `+userColumns, id, email, DailyFreeGems)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// LinkAccounts merges an anonymous user into an authenticated one. Messages
// and payments move first, then profile gaps are filled and balances summed,
// and only then is the anonymous row deleted.
func (s *PostgresStorage) LinkAccounts(anonymousID, authenticatedID string) (*User, error) {
	anon, err := s.GetUser(anonymousID)
	if err != nil {
		return s.GetUser(authenticatedID)
	}
	auth, err := s.GetUser(authenticatedID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE messages SET user_id = $1 WHERE user_id = $2`, authenticatedID, anonymousID); err != nil {
		return nil, fmt.Errorf("failed to transfer messages: %w", err)
	}
	if _, err := tx.Exec(`UPDATE payments SET user_id = $1 WHERE user_id = $2`, authenticatedID, anonymousID); err != nil {
		return nil, fmt.Errorf("failed to transfer payments: %w", err)
	}

	merged := *auth
	merged.SoulGems = auth.SoulGems + anon.SoulGems
	fillIfEmpty(&merged.BirthDate, anon.BirthDate)
	fillIfEmpty(&merged.BirthTime, anon.BirthTime)
	fillIfEmpty(&merged.BirthPlace, anon.BirthPlace)
	fillIfEmpty(&merged.Religion, anon.Religion)
	fillIfEmpty(&merged.BillingCustomerID, anon.BillingCustomerID)
	fillIfEmpty(&merged.BillingSubscriptionID, anon.BillingSubscriptionID)
	fillIfEmpty(&merged.LastFreeGemsDate, anon.LastFreeGemsDate)
	if len(merged.HoroscopePreferences) == 0 {
		merged.HoroscopePreferences = anon.HoroscopePreferences
	}

	_, err = tx.Exec(`
		UPDATE users SET soul_gems = $2, birth_date = $3, birth_time = $4,
			birth_place = $5, religion = $6, horoscope_preferences = $7,
			billing_customer_id = $8, billing_subscription_id = $9,
			last_free_gems_date = $10, updated_at = NOW()
		WHERE id = $1
	`, authenticatedID, merged.SoulGems, merged.BirthDate, merged.BirthTime,
		merged.BirthPlace, merged.Religion, pq.Array(merged.HoroscopePreferences),
		merged.BillingCustomerID, merged.BillingSubscriptionID, merged.LastFreeGemsDate)
	if err != nil {
		return nil, fmt.Errorf("failed to merge accounts: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM users WHERE id = $1`, anonymousID); err != nil {
		return nil, fmt.Errorf("failed to delete anonymous user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit link: %w", err)
	}

	return s.GetUser(authenticatedID)
}

func fillIfEmpty(dst *string, src string) {
	if *dst == "" {
		*dst = src
	}
}

// UpdateSubscription sets the user's subscription status.
func (s *PostgresStorage) UpdateSubscription(userID, status string) (*User, error) {
	row := s.db.QueryRow(`
		UPDATE users SET subscription_status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, userID, status)
	return scanUser(row)
}

// UpdateBillingInfo stores the external billing identifiers.
func (s *PostgresStorage) UpdateBillingInfo(userID, customerID, subscriptionID string) (*User, error) {
	row := s.db.QueryRow(`
		UPDATE users SET billing_customer_id = $2, billing_subscription_id = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, userID, customerID, subscriptionID)
	return scanUser(row)
}

// UpdateProfile applies the non-nil fields of the update.
func (s *PostgresStorage) UpdateProfile(userID string, update ProfileUpdate) (*User, error) {
	u, err := s.GetUser(userID)
	if err != nil {
		return nil, err
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
		u.HoroscopePreferences = update.HoroscopePreferences
	}

	row := s.db.QueryRow(`
		UPDATE users SET birth_date = $2, birth_time = $3, birth_place = $4,
			religion = $5, horoscope_preferences = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, userID, u.BirthDate, u.BirthTime, u.BirthPlace,
		u.Religion, pq.Array(u.HoroscopePreferences))
	return scanUser(row)
}

// SoulGems returns the user's balance. Premium subscribers report PremiumGems.
func (s *PostgresStorage) SoulGems(userID string) (int, error) {
	u, err := s.GetUser(userID)
	if err != nil {
		return 0, err
	}
	if u.SubscriptionStatus == SubscriptionPremium {
		return PremiumGems, nil
	}
	return u.SoulGems, nil
}

// AddSoulGems credits the balance.
func (s *PostgresStorage) AddSoulGems(userID string, amount int) (*User, error) {
	row := s.db.QueryRow(`
		UPDATE users SET soul_gems = soul_gems + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, userID, amount)
	return scanUser(row)
}

// DeductSoulGems debits the balance. The balance guard lives in the UPDATE's
// WHERE clause, so two concurrent deductions cannot both succeed on the last
// gem.
func (s *PostgresStorage) DeductSoulGems(userID string, amount int) (*User, error) {
	u, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if u.SubscriptionStatus == SubscriptionPremium {
		return u, nil
	}

	row := s.db.QueryRow(`
		UPDATE users SET soul_gems = GREATEST(0, soul_gems - $2), updated_at = NOW()
		WHERE id = $1 AND soul_gems >= $2
		RETURNING `+userColumns, userID, amount)
	updated, err := scanUser(row)
	if err == ErrNotFound {
		return nil, ErrInsufficientGems
	}
	return updated, err
}

// RefreshDailyGems resets the balance to DailyFreeGems on the first call of
// each calendar day.
func (s *PostgresStorage) RefreshDailyGems(userID string) (*User, error) {
	u, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Format("2006-01-02")
	if u.LastFreeGemsDate == today {
		return u, nil
	}

	row := s.db.QueryRow(`
		UPDATE users SET soul_gems = $2, last_free_gems_date = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+userColumns, userID, DailyFreeGems, today)
	return scanUser(row)
}

// GenerateReferralCode returns the user's referral code, minting one on the
// first call.
func (s *PostgresStorage) GenerateReferralCode(userID string) (string, error) {
	u, err := s.GetUser(userID)
	if err != nil {
		return "", err
	}
	if u.ReferralCode != "" {
		return u.ReferralCode, nil
	}

	for {
		code := newReferralCode()
		var exists bool
		err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE referral_code = $1)`, code).Scan(&exists)
		if err != nil {
			return "", fmt.Errorf("failed to check referral code: %w", err)
		}
		if exists {
			continue
		}

		if _, err := s.db.Exec(`UPDATE users SET referral_code = $2, updated_at = NOW() WHERE id = $1`, userID, code); err != nil {
			return "", fmt.Errorf("failed to save referral code: %w", err)
		}
		return code, nil
	}
}

// ValidateReferralCode resolves a code to the referring user's ID.
func (s *PostgresStorage) ValidateReferralCode(code string) (string, error) {
	var referrerID string
	err := s.db.QueryRow(`SELECT id FROM users WHERE referral_code = $1`, code).Scan(&referrerID)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up referral code: %w", err)
	}
	return referrerID, nil
}

// ApplyReferralReward credits both sides of a referral.
func (s *PostgresStorage) ApplyReferralReward(referrerID, refereeID string) error {
	referee, err := s.GetUser(refereeID)
	if err != nil {
		return err
	}
	if referee.ReferredBy != "" {
		return ErrAlreadyReferred
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE users SET soul_gems = soul_gems + $2, referral_count = referral_count + 1, updated_at = NOW()
		WHERE id = $1
	`, referrerID, ReferrerRewardGems)
	if err != nil {
		return fmt.Errorf("failed to reward referrer: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE users SET soul_gems = soul_gems + $2, referred_by = $3, updated_at = NOW()
		WHERE id = $1
	`, refereeID, RefereeRewardGems, referrerID)
	if err != nil {
		return fmt.Errorf("failed to reward referee: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit referral reward: %w", err)
	}
	return nil
}

// CreateMessage persists a generated message.
func (s *PostgresStorage) CreateMessage(m *Message) (*Message, error) {
	m.ID = uuid.New().String()
	m.Timestamp = time.Now().UTC()
	_, err := s.db.Exec(`
		INSERT INTO messages (id, user_id, input, ai_response, emotion, type, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, m.ID, m.UserID, m.Input, m.AIResponse, m.Emotion, m.Type, m.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}
	return m, nil
}

// UserMessages lists a user's messages, newest first.
func (s *PostgresStorage) UserMessages(userID string) ([]*Message, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, input, ai_response, emotion, type, timestamp
		FROM messages
		WHERE user_id = $1
		ORDER BY timestamp DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Input, &m.AIResponse, &m.Emotion, &m.Type, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}
	return messages, nil
}

// CreatePayment records a payment.
func (s *PostgresStorage) CreatePayment(p *Payment) (*Payment, error) {
	p.ID = uuid.New().String()
	p.Timestamp = time.Now().UTC()
	_, err := s.db.Exec(`
		INSERT INTO payments (id, user_id, amount, type, external_payment_id, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.UserID, p.Amount, p.Type, p.ExternalPaymentID, p.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}
	return p, nil
}

// UserPayments lists a user's payments, newest first.
func (s *PostgresStorage) UserPayments(userID string) ([]*Payment, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, amount, type, external_payment_id, timestamp
		FROM payments
		WHERE user_id = $1
		ORDER BY timestamp DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.Amount, &p.Type, &p.ExternalPaymentID, &p.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}
	return payments, nil
}
