package store

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// TestStorageInterface verifies at compile time that both implementations
// satisfy Storage.
func TestStorageInterface(t *testing.T) {
	var _ Storage = (*MemStorage)(nil)
	var _ Storage = (*PostgresStorage)(nil)
}

func TestCreateUserStartsWithFreeGems(t *testing.T) {
	store := NewMemStorage()

	u, err := store.CreateUser("")
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	if u.ID == "" {
		t.Error("CreateUser() should assign an ID")
	}
	if u.SoulGems != DailyFreeGems {
		t.Errorf("new user SoulGems = %d, want %d", u.SoulGems, DailyFreeGems)
	}
	if u.SubscriptionStatus != SubscriptionFree {
		t.Errorf("new user SubscriptionStatus = %q, want %q", u.SubscriptionStatus, SubscriptionFree)
	}
}

func TestGetUserNotFound(t *testing.T) {
	store := NewMemStorage()

	_, err := store.GetUser("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUser(missing) error = %v, want ErrNotFound", err)
	}
}

func TestDeductSoulGems(t *testing.T) {
	store := NewMemStorage()
	u, _ := store.CreateUser("")
	store.AddSoulGems(u.ID, 4)

	updated, err := store.DeductSoulGems(u.ID, 2)
	if err != nil {
		t.Fatalf("DeductSoulGems() failed: %v", err)
	}
	if updated.SoulGems != DailyFreeGems+4-2 {
		t.Errorf("SoulGems after deduct = %d, want %d", updated.SoulGems, DailyFreeGems+4-2)
	}
}

func TestDeductSoulGemsInsufficient(t *testing.T) {
	store := NewMemStorage()
	u, _ := store.CreateUser("")

	_, err := store.DeductSoulGems(u.ID, DailyFreeGems+1)
	if !errors.Is(err, ErrInsufficientGems) {
		t.Errorf("overdraw error = %v, want ErrInsufficientGems", err)
	}

	// Balance must be untouched after a failed deduction.
	balance, _ := store.SoulGems(u.ID)
	if balance != DailyFreeGems {
		t.Errorf("balance after failed deduct = %d, want %d", balance, DailyFreeGems)
	}
}

func TestDeductSoulGemsConcurrent(t *testing.T) {
	store := NewMemStorage()
	u, _ := store.CreateUser("")
	// Exactly one of the concurrent deductions may win the single gem.

	const attempts = 10
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.DeductSoulGems(u.ID, DailyFreeGems)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
		} else if !errors.Is(err, ErrInsufficientGems) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("successful deductions = %d, want 1", wins)
	}
}

func TestPremiumUserNeverCharged(t *testing.T) {
	store := NewMemStorage()
	u, _ := store.CreateUser("")
	if _, err := store.UpdateSubscription(u.ID, SubscriptionPremium); err != nil {
		t.Fatalf("UpdateSubscription() failed: %v", err)
	}

	balance, err := store.SoulGems(u.ID)
	if err != nil {
		t.Fatalf("SoulGems() failed: %v", err)
	}
	if balance != PremiumGems {
		t.Errorf("premium balance = %d, want %d", balance, PremiumGems)
	}

	updated, err := store.DeductSoulGems(u.ID, 5)
	if err != nil {
		t.Fatalf("DeductSoulGems() for premium user failed: %v", err)
	}
	if updated.SoulGems != DailyFreeGems {
		t.Errorf("premium stored gems changed to %d after deduct", updated.SoulGems)
	}
}

func TestRefreshDailyGems(t *testing.T) {
	store := NewMemStorage()
	u, _ := store.CreateUser("")

	// Simulate spending yesterday's gem.
	store.DeductSoulGems(u.ID, DailyFreeGems)
	store.mu.Lock()
	store.users[u.ID].LastFreeGemsDate = time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	store.mu.Unlock()

	refreshed, err := store.RefreshDailyGems(u.ID)
	if err != nil {
		t.Fatalf("RefreshDailyGems() failed: %v", err)
	}
	if refreshed.SoulGems != DailyFreeGems {
		t.Errorf("refreshed SoulGems = %d, want %d", refreshed.SoulGems, DailyFreeGems)
	}

	// A second refresh on the same day must not reset again.
	store.AddSoulGems(u.ID, 5)
	again, err := store.RefreshDailyGems(u.ID)
	if err != nil {
		t.Fatalf("second RefreshDailyGems() failed: %v", err)
	}
	if again.SoulGems != DailyFreeGems+5 {
		t.Errorf("same-day refresh changed balance to %d, want %d", again.SoulGems, DailyFreeGems+5)
	}
}

func TestGenerateReferralCodeStable(t *testing.T) {
	store := NewMemStorage()
	u, _ := store.CreateUser("")

	code, err := store.GenerateReferralCode(u.ID)
	if err != nil {
		t.Fatalf("GenerateReferralCode() failed: %v", err)
	}
	if len(code) != 6 {
		t.Errorf("referral code length = %d, want 6", len(code))
	}

	again, err := store.GenerateReferralCode(u.ID)
	if err != nil {
		t.Fatalf("second GenerateReferralCode() failed: %v", err)
	}
	if again != code {
		t.Errorf("second call returned %q, want stable %q", again, code)
	}
}

func TestReferralReward(t *testing.T) {
	store := NewMemStorage()
	referrer, _ := store.CreateUser("referrer@example.com")
	referee, _ := store.CreateUser("referee@example.com")

	code, err := store.GenerateReferralCode(referrer.ID)
	if err != nil {
		t.Fatalf("GenerateReferralCode() failed: %v", err)
	}

	resolvedID, err := store.ValidateReferralCode(code)
	if err != nil {
		t.Fatalf("ValidateReferralCode() failed: %v", err)
	}
	if resolvedID != referrer.ID {
		t.Errorf("ValidateReferralCode() = %q, want %q", resolvedID, referrer.ID)
	}

	if err := store.ApplyReferralReward(referrer.ID, referee.ID); err != nil {
		t.Fatalf("ApplyReferralReward() failed: %v", err)
	}

	r, _ := store.GetUser(referrer.ID)
	if r.SoulGems != DailyFreeGems+ReferrerRewardGems {
		t.Errorf("referrer SoulGems = %d, want %d", r.SoulGems, DailyFreeGems+ReferrerRewardGems)
	}
	if r.ReferralCount != 1 {
		t.Errorf("referrer ReferralCount = %d, want 1", r.ReferralCount)
	}

	e, _ := store.GetUser(referee.ID)
	if e.SoulGems != DailyFreeGems+RefereeRewardGems {
		t.Errorf("referee SoulGems = %d, want %d", e.SoulGems, DailyFreeGems+RefereeRewardGems)
	}
	if e.ReferredBy != referrer.ID {
		t.Errorf("referee ReferredBy = %q, want %q", e.ReferredBy, referrer.ID)
	}
}

func TestReferralRewardOnlyOnce(t *testing.T) {
	store := NewMemStorage()
	referrer, _ := store.CreateUser("")
	other, _ := store.CreateUser("")
	referee, _ := store.CreateUser("")

	if err := store.ApplyReferralReward(referrer.ID, referee.ID); err != nil {
		t.Fatalf("first ApplyReferralReward() failed: %v", err)
	}

	err := store.ApplyReferralReward(other.ID, referee.ID)
	if !errors.Is(err, ErrAlreadyReferred) {
		t.Errorf("second referral error = %v, want ErrAlreadyReferred", err)
	}
}

func TestValidateReferralCodeUnknown(t *testing.T) {
	store := NewMemStorage()

	_, err := store.ValidateReferralCode("NOSUCH")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown code error = %v, want ErrNotFound", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	store := NewMemStorage()
	u, _ := store.CreateUser("")

	birthDate := "1990-05-15"
	birthPlace := "Chiang Mai"
	if _, err := store.UpdateProfile(u.ID, ProfileUpdate{
		BirthDate:  &birthDate,
		BirthPlace: &birthPlace,
	}); err != nil {
		t.Fatalf("UpdateProfile() failed: %v", err)
	}

	// A later partial update must not clear the earlier fields.
	prefs := []string{"western-zodiac", "vedic"}
	updated, err := store.UpdateProfile(u.ID, ProfileUpdate{HoroscopePreferences: prefs})
	if err != nil {
		t.Fatalf("second UpdateProfile() failed: %v", err)
	}
	if updated.BirthDate != birthDate {
		t.Errorf("BirthDate = %q, want %q", updated.BirthDate, birthDate)
	}
	if updated.BirthPlace != birthPlace {
		t.Errorf("BirthPlace = %q, want %q", updated.BirthPlace, birthPlace)
	}
	if len(updated.HoroscopePreferences) != 2 {
		t.Errorf("HoroscopePreferences = %v, want %v", updated.HoroscopePreferences, prefs)
	}
}

func TestLinkAccountsMergesEverything(t *testing.T) {
	store := NewMemStorage()
	anon, _ := store.CreateUser("")
	auth, _ := store.CreateUser("user@example.com")

	birthDate := "1988-02-29"
	store.UpdateProfile(anon.ID, ProfileUpdate{BirthDate: &birthDate})
	store.AddSoulGems(anon.ID, 3)
	store.CreateMessage(&Message{UserID: anon.ID, Input: "hello", AIResponse: "hi", Type: MessageTypeMessage})

	merged, err := store.LinkAccounts(anon.ID, auth.ID)
	if err != nil {
		t.Fatalf("LinkAccounts() failed: %v", err)
	}

	wantGems := 2*DailyFreeGems + 3
	if merged.SoulGems != wantGems {
		t.Errorf("merged SoulGems = %d, want %d", merged.SoulGems, wantGems)
	}
	if merged.BirthDate != birthDate {
		t.Errorf("merged BirthDate = %q, want %q", merged.BirthDate, birthDate)
	}

	messages, err := store.UserMessages(auth.ID)
	if err != nil {
		t.Fatalf("UserMessages() failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("merged messages = %d, want 1", len(messages))
	}

	if _, err := store.GetUser(anon.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("anonymous user should be deleted, got err = %v", err)
	}
}

func TestLinkAccountsPrefersAuthenticatedProfile(t *testing.T) {
	store := NewMemStorage()
	anon, _ := store.CreateUser("")
	auth, _ := store.CreateUser("user@example.com")

	anonDate := "1970-01-01"
	authDate := "1990-05-15"
	store.UpdateProfile(anon.ID, ProfileUpdate{BirthDate: &anonDate})
	store.UpdateProfile(auth.ID, ProfileUpdate{BirthDate: &authDate})

	merged, err := store.LinkAccounts(anon.ID, auth.ID)
	if err != nil {
		t.Fatalf("LinkAccounts() failed: %v", err)
	}
	if merged.BirthDate != authDate {
		t.Errorf("merged BirthDate = %q, want authenticated %q", merged.BirthDate, authDate)
	}
}

func TestUserMessagesNewestFirst(t *testing.T) {
	store := NewMemStorage()
	u, _ := store.CreateUser("")

	first, _ := store.CreateMessage(&Message{UserID: u.ID, Input: "a", Type: MessageTypeMessage})
	store.mu.Lock()
	store.messages[first.ID].Timestamp = first.Timestamp.Add(-time.Minute)
	store.mu.Unlock()
	second, _ := store.CreateMessage(&Message{UserID: u.ID, Input: "b", Type: MessageTypeAffirmation})

	messages, err := store.UserMessages(u.ID)
	if err != nil {
		t.Fatalf("UserMessages() failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(messages))
	}
	if messages[0].ID != second.ID {
		t.Errorf("first listed message = %s, want newest %s", messages[0].ID, second.ID)
	}
}

func TestPayments(t *testing.T) {
	store := NewMemStorage()
	u, _ := store.CreateUser("")

	p, err := store.CreatePayment(&Payment{UserID: u.ID, Amount: 499, Type: "gems"})
	if err != nil {
		t.Fatalf("CreatePayment() failed: %v", err)
	}
	if p.ID == "" {
		t.Error("CreatePayment() should assign an ID")
	}

	payments, err := store.UserPayments(u.ID)
	if err != nil {
		t.Fatalf("UserPayments() failed: %v", err)
	}
	if len(payments) != 1 || payments[0].Amount != 499 {
		t.Errorf("UserPayments() = %+v, want one payment of 499", payments)
	}
}
