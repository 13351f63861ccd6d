package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/soullec/soullec/horoscope"
	"github.com/soullec/soullec/internal/logger"
	"github.com/soullec/soullec/oracle"
	"github.com/soullec/soullec/store"
	"github.com/soullec/soullec/tarot"
)

const readingCost = 1

var gemPackages = map[string]struct {
	Amount int // cents
	Gems   int
}{
	"small":  {Amount: 99, Gems: 5},
	"medium": {Amount: 299, Gems: 20},
	"large":  {Amount: 499, Gems: 50},
}

const subscriptionPriceCents = 999

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	var user *store.User
	var err error

	if req.UserID == "" {
		user, err = s.store.CreateUser("")
	} else {
		user, err = s.store.GetUser(req.UserID)
		if errors.Is(err, store.ErrNotFound) {
			user, err = s.store.CreateUser("")
		} else if err == nil {
			user, err = s.store.RefreshDailyGems(user.ID)
		}
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error creating session: "+err.Error())
		return
	}

	soulGems, err := s.store.SoulGems(user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error creating session: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, SessionResponse{
		UserID:    user.ID,
		SoulGems:  soulGems,
		IsPremium: user.SubscriptionStatus == store.SubscriptionPremium,
	})
}

func (s *Server) handleLinkAccounts(w http.ResponseWriter, r *http.Request) {
	var req LinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AnonymousUserID == "" || req.UserID == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	user, err := s.store.LinkAccounts(req.AnonymousUserID, req.UserID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error linking accounts: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleGetGems(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	user, err := s.store.GetUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error getting gems: "+err.Error())
		return
	}

	soulGems, err := s.store.SoulGems(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error getting gems: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, GemsResponse{
		SoulGems:  soulGems,
		IsPremium: user.SubscriptionStatus == store.SubscriptionPremium,
	})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "Missing userId")
		return
	}

	if req.BirthDate != nil && *req.BirthDate != "" {
		if _, err := time.Parse("2006-01-02", *req.BirthDate); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid birthDate, expected YYYY-MM-DD")
			return
		}
	}
	if req.BirthTime != nil && *req.BirthTime != "" {
		if _, err := horoscope.ParseClockTime(*req.BirthTime); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid birthTime, expected HH:MM")
			return
		}
	}
	for _, pref := range req.HoroscopePreferences {
		if !validTradition(pref) {
			respondError(w, http.StatusBadRequest, "Unknown horoscope tradition: "+pref)
			return
		}
	}

	user, err := s.store.UpdateProfile(req.UserID, store.ProfileUpdate{
		BirthDate:            req.BirthDate,
		BirthTime:            req.BirthTime,
		BirthPlace:           req.BirthPlace,
		Religion:             req.Religion,
		HoroscopePreferences: req.HoroscopePreferences,
	})
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error updating profile: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    user,
	})
}

func validTradition(s string) bool {
	switch horoscope.Tradition(s) {
	case horoscope.TraditionThaiLanna, horoscope.TraditionChineseBazi,
		horoscope.TraditionWesternZodiac, horoscope.TraditionVedic,
		horoscope.TraditionJapanese, horoscope.TraditionKoreanSaju:
		return true
	}
	return false
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.GetUser(chi.URLParam(r, "userId"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error getting profile: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	user, err := s.store.GetUser(chi.URLParam(r, "userId"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching status: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, StatusResponse{
		SubscriptionStatus: user.SubscriptionStatus,
		IsPremium:          user.SubscriptionStatus == store.SubscriptionPremium,
	})
}

// requireOracle rejects generation requests when no API key is configured.
func (s *Server) requireOracle(w http.ResponseWriter) bool {
	if s.oracle == nil {
		respondError(w, http.StatusServiceUnavailable, "Content generation is not configured")
		return false
	}
	return true
}

// requireGems rejects the request when the balance cannot cover a reading.
func (s *Server) requireGems(w http.ResponseWriter, userID string) bool {
	soulGems, err := s.store.SoulGems(userID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return false
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error checking gems: "+err.Error())
		return false
	}
	if soulGems < readingCost {
		respondJSON(w, http.StatusForbidden, map[string]any{
			"message":  "Insufficient Soul Gems",
			"soulGems": 0,
		})
		return false
	}
	return true
}

// chargeForReading deducts the reading cost after generation. The store's
// conditional update keeps concurrent requests from spending the same gem.
func (s *Server) chargeForReading(w http.ResponseWriter, userID string) (int, bool) {
	if _, err := s.store.DeductSoulGems(userID, readingCost); err != nil {
		if errors.Is(err, store.ErrInsufficientGems) {
			respondJSON(w, http.StatusForbidden, map[string]any{
				"message":  "Insufficient Soul Gems",
				"soulGems": 0,
			})
			return 0, false
		}
		respondError(w, http.StatusInternalServerError, "Error deducting gems: "+err.Error())
		return 0, false
	}

	soulGems, err := s.store.SoulGems(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error checking gems: "+err.Error())
		return 0, false
	}
	return soulGems, true
}

// horoscopeContextFor computes the user's composite reading from their
// stored birth info and preferences. ok is false when the profile is
// incomplete.
func horoscopeContextFor(user *store.User) (horoscope.CompositeReading, string, bool) {
	if user.BirthDate == "" || len(user.HoroscopePreferences) == 0 {
		return horoscope.CompositeReading{}, "", false
	}

	birthDate, err := time.Parse("2006-01-02", user.BirthDate)
	if err != nil {
		return horoscope.CompositeReading{}, "", false
	}

	info := horoscope.BirthInfo{
		BirthDate:  birthDate,
		BirthPlace: user.BirthPlace,
	}
	if user.BirthTime != "" {
		if ct, err := horoscope.ParseClockTime(user.BirthTime); err == nil {
			info.BirthTime = &ct
		}
	}

	traditions := make([]horoscope.Tradition, len(user.HoroscopePreferences))
	for i, pref := range user.HoroscopePreferences {
		traditions[i] = horoscope.Tradition(pref)
	}

	reading := horoscope.Calculate(info, traditions)
	return reading, horoscope.FormatContext(reading), true
}

func (s *Server) handleGenerateMessage(w http.ResponseWriter, r *http.Request) {
	var req GenerateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Feeling == "" || req.UserID == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !s.requireOracle(w) || !s.requireGems(w, req.UserID) {
		return
	}

	user, err := s.store.GetUser(req.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating message: "+err.Error())
		return
	}
	_, horoscopeContext, _ := horoscopeContextFor(user)

	emotion := s.oracle.DetectEmotion(r.Context(), req.Feeling)
	message, err := s.oracle.GenerateMessage(r.Context(), oracle.MessageRequest{
		Feeling:          req.Feeling,
		Emotion:          emotion.Emotion,
		HoroscopeContext: horoscopeContext,
		Religion:         user.Religion,
		Language:         req.UILanguage,
	})
	if err != nil {
		logger.ErrorGeneration("message generation failed", "error", err, "userId", req.UserID)
		respondError(w, http.StatusInternalServerError, "Error generating message: "+err.Error())
		return
	}

	saved, err := s.store.CreateMessage(&store.Message{
		UserID:     req.UserID,
		Input:      req.Feeling,
		AIResponse: message,
		Emotion:    emotion.Emotion,
		Type:       store.MessageTypeMessage,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error saving message: "+err.Error())
		return
	}

	soulGems, ok := s.chargeForReading(w, req.UserID)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, GenerateMessageResponse{
		Message:   saved.AIResponse,
		Emotion:   saved.Emotion,
		MessageID: saved.ID,
		SoulGems:  soulGems,
	})
}

func (s *Server) handleGenerateAffirmation(w http.ResponseWriter, r *http.Request) {
	var req GenerateAffirmationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Desire == "" || req.UserID == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if !s.requireOracle(w) || !s.requireGems(w, req.UserID) {
		return
	}

	user, err := s.store.GetUser(req.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating affirmation: "+err.Error())
		return
	}
	_, horoscopeContext, _ := horoscopeContextFor(user)

	affirmation, err := s.oracle.GenerateAffirmation(r.Context(), oracle.AffirmationRequest{
		Desire:           req.Desire,
		HoroscopeContext: horoscopeContext,
		Religion:         user.Religion,
		Language:         req.UILanguage,
	})
	if err != nil {
		logger.ErrorGeneration("affirmation generation failed", "error", err, "userId", req.UserID)
		respondError(w, http.StatusInternalServerError, "Error generating affirmation: "+err.Error())
		return
	}

	saved, err := s.store.CreateMessage(&store.Message{
		UserID:     req.UserID,
		Input:      req.Desire,
		AIResponse: affirmation,
		Type:       store.MessageTypeAffirmation,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error saving affirmation: "+err.Error())
		return
	}

	soulGems, ok := s.chargeForReading(w, req.UserID)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, GenerateAffirmationResponse{
		Affirmation: saved.AIResponse,
		MessageID:   saved.ID,
		SoulGems:    soulGems,
	})
}

func (s *Server) handleDailyHoroscope(w http.ResponseWriter, r *http.Request) {
	var req DailyHoroscopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "Missing userId")
		return
	}
	if !s.requireOracle(w) || !s.requireGems(w, req.UserID) {
		return
	}

	user, err := s.store.GetUser(req.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating daily horoscope: "+err.Error())
		return
	}

	reading, horoscopeContext, ok := horoscopeContextFor(user)
	if !ok {
		respondError(w, http.StatusBadRequest, "Please set up your birth info and horoscope preferences first")
		return
	}

	narrative, err := s.oracle.GenerateHoroscope(r.Context(), oracle.HoroscopeRequest{
		HoroscopeContext: horoscopeContext,
		Religion:         user.Religion,
		Language:         req.UILanguage,
		Period:           oracle.PeriodDaily,
	})
	if err != nil {
		logger.ErrorGeneration("daily horoscope generation failed", "error", err, "userId", req.UserID)
		respondError(w, http.StatusInternalServerError, "Error generating daily horoscope: "+err.Error())
		return
	}

	saved, err := s.store.CreateMessage(&store.Message{
		UserID:     req.UserID,
		Input:      "Daily Horoscope",
		AIResponse: narrative,
		Type:       store.MessageTypeHoroscope,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error saving horoscope: "+err.Error())
		return
	}

	soulGems, ok := s.chargeForReading(w, req.UserID)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, DailyHoroscopeResponse{
		Horoscope: narrative,
		Reading:   reading,
		MessageID: saved.ID,
		SoulGems:  soulGems,
	})
}

func (s *Server) handleHoroscopeReading(w http.ResponseWriter, r *http.Request) {
	var req HoroscopeReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "Missing userId")
		return
	}

	period := req.Period
	if period == "" {
		period = oracle.PeriodDaily
	}
	switch period {
	case oracle.PeriodDaily, oracle.PeriodMonthly, oracle.PeriodYearly, oracle.PeriodSpecific:
	default:
		respondError(w, http.StatusBadRequest, "Invalid period. Must be one of: daily, monthly, yearly, specific")
		return
	}
	if period == oracle.PeriodSpecific {
		if req.Date == "" {
			respondError(w, http.StatusBadRequest, "Date is required for specific period")
			return
		}
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
	}
	if !s.requireOracle(w) || !s.requireGems(w, req.UserID) {
		return
	}

	user, err := s.store.GetUser(req.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating horoscope: "+err.Error())
		return
	}

	_, horoscopeContext, ok := horoscopeContextFor(user)
	if !ok {
		respondError(w, http.StatusBadRequest, "Please set up your birth info and horoscope preferences first")
		return
	}

	narrative, err := s.oracle.GenerateHoroscope(r.Context(), oracle.HoroscopeRequest{
		HoroscopeContext: horoscopeContext,
		Religion:         user.Religion,
		Language:         req.UILanguage,
		Period:           period,
		Question:         req.Question,
		Date:             req.Date,
	})
	if err != nil {
		logger.ErrorGeneration("horoscope generation failed", "error", err, "userId", req.UserID, "period", period)
		respondError(w, http.StatusInternalServerError, "Error generating horoscope: "+err.Error())
		return
	}

	label := strings.ToUpper(period[:1]) + period[1:]
	input := label + " Horoscope"
	if req.Question != "" {
		input = fmt.Sprintf("%s Horoscope - Question: %s", label, req.Question)
	} else if req.Date != "" {
		input = fmt.Sprintf("%s Horoscope for %s", label, req.Date)
	}

	saved, err := s.store.CreateMessage(&store.Message{
		UserID:     req.UserID,
		Input:      input,
		AIResponse: narrative,
		Type:       store.MessageTypeHoroscope,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error saving horoscope: "+err.Error())
		return
	}

	soulGems, ok := s.chargeForReading(w, req.UserID)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, HoroscopeReadingResponse{
		Horoscope: narrative,
		MessageID: saved.ID,
		SoulGems:  soulGems,
	})
}

func (s *Server) handleTarotReading(w http.ResponseWriter, r *http.Request) {
	var req TarotReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.Question == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	count := req.CardCount
	if count == 0 {
		count = 3
	}
	if count != 1 && count != 3 && count != 5 {
		respondError(w, http.StatusBadRequest, "cardCount must be 1, 3, or 5")
		return
	}
	if !s.requireOracle(w) || !s.requireGems(w, req.UserID) {
		return
	}

	user, err := s.store.GetUser(req.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error generating tarot reading: "+err.Error())
		return
	}

	drawn := tarot.Draw(count)
	reading := tarot.Reading{
		Cards:    drawn,
		Spread:   tarot.SpreadName(count),
		Question: req.Question,
	}

	interpretation := s.oracle.InterpretTarot(r.Context(), reading, user.Religion, req.UILanguage)

	saved, err := s.store.CreateMessage(&store.Message{
		UserID:     req.UserID,
		Input:      fmt.Sprintf("Tarot Reading (%s) - Question: %s", reading.Spread, req.Question),
		AIResponse: interpretation.Reading,
		Type:       store.MessageTypeTarot,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error saving tarot reading: "+err.Error())
		return
	}

	soulGems, ok := s.chargeForReading(w, req.UserID)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, TarotReadingResponse{
		Cards:     drawn,
		Spread:    reading.Spread,
		Reading:   interpretation.Reading,
		Advice:    interpretation.Advice,
		MessageID: saved.ID,
		SoulGems:  soulGems,
	})
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := s.store.UserMessages(chi.URLParam(r, "userId"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching messages: "+err.Error())
		return
	}
	if messages == nil {
		messages = []*store.Message{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

func (s *Server) handleGenerateReferral(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	code, err := s.store.GenerateReferralCode(userID)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate referral code: "+err.Error())
		return
	}

	user, err := s.store.GetUser(userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate referral code: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, ReferralResponse{
		ReferralCode:  code,
		ReferralCount: user.ReferralCount,
	})
}

func (s *Server) handleRedeemReferral(w http.ResponseWriter, r *http.Request) {
	var req RedeemReferralRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Code == "" || req.UserID == "" {
		respondError(w, http.StatusBadRequest, "Code and user ID required")
		return
	}

	referrerID, err := s.store.ValidateReferralCode(req.Code)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Invalid referral code")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to redeem referral code: "+err.Error())
		return
	}
	if referrerID == req.UserID {
		respondError(w, http.StatusBadRequest, "You cannot use your own referral code")
		return
	}

	if err := s.store.ApplyReferralReward(referrerID, req.UserID); err != nil {
		if errors.Is(err, store.ErrAlreadyReferred) {
			respondError(w, http.StatusBadRequest, "Referral code already used")
			return
		}
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to redeem referral code: "+err.Error())
		return
	}

	referrer, err := s.store.GetUser(referrerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to redeem referral code: "+err.Error())
		return
	}
	referee, err := s.store.GetUser(req.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to redeem referral code: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, RedeemReferralResponse{
		Success:       true,
		Message:       fmt.Sprintf("Referral code applied! You received %d Soul Gems", store.RefereeRewardGems),
		SoulGems:      referee.SoulGems,
		ReferralCount: referee.ReferralCount,
		ReferrerGems:  referrer.SoulGems,
	})
}

func (s *Server) handleGemPurchase(w http.ResponseWriter, r *http.Request) {
	var req GemPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.GemPackage == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	pkg, ok := gemPackages[req.GemPackage]
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid gem package")
		return
	}

	if _, err := s.store.AddSoulGems(req.UserID, pkg.Gems); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Error crediting gems: "+err.Error())
		return
	}

	if _, err := s.store.CreatePayment(&store.Payment{
		UserID:            req.UserID,
		Amount:            pkg.Amount,
		Type:              "gems",
		ExternalPaymentID: req.ExternalPaymentID,
	}); err != nil {
		respondError(w, http.StatusInternalServerError, "Error recording payment: "+err.Error())
		return
	}

	soulGems, err := s.store.SoulGems(req.UserID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error checking gems: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, GemPurchaseResponse{
		GemsAdded: pkg.Gems,
		SoulGems:  soulGems,
	})
}

func (s *Server) handleSubscription(w http.ResponseWriter, r *http.Request) {
	var req SubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "Missing userId")
		return
	}

	if req.BillingCustomerID != "" || req.BillingSubscriptionID != "" {
		if _, err := s.store.UpdateBillingInfo(req.UserID, req.BillingCustomerID, req.BillingSubscriptionID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "User not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Error updating billing info: "+err.Error())
			return
		}
	}

	user, err := s.store.UpdateSubscription(req.UserID, store.SubscriptionPremium)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error activating subscription: "+err.Error())
		return
	}

	if _, err := s.store.CreatePayment(&store.Payment{
		UserID:            req.UserID,
		Amount:            subscriptionPriceCents,
		Type:              "subscription",
		ExternalPaymentID: req.ExternalPaymentID,
	}); err != nil {
		respondError(w, http.StatusInternalServerError, "Error recording payment: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, StatusResponse{
		SubscriptionStatus: user.SubscriptionStatus,
		IsPremium:          true,
	})
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.store.UserPayments(chi.URLParam(r, "userId"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching payments: "+err.Error())
		return
	}
	if payments == nil {
		payments = []*store.Payment{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"payments": payments})
}
