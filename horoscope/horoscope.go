// Package horoscope computes multi-tradition astrological readings from a
// birth date and optional birth time. All calculators are pure functions over
// fixed lookup tables: the same input always produces the same reading, and
// nothing in this package performs I/O or holds mutable state.
package horoscope

import (
	"fmt"
	"strings"
	"time"
)

// Tradition identifies one of the supported astrological systems.
type Tradition string

const (
	TraditionThaiLanna     Tradition = "thai-lanna"
	TraditionChineseBazi   Tradition = "chinese-bazi"
	TraditionWesternZodiac Tradition = "western-zodiac"
	TraditionVedic         Tradition = "vedic"
	TraditionJapanese      Tradition = "japanese"
	TraditionKoreanSaju    Tradition = "korean-saju"
)

// ClockTime is a wall-clock time of day with minute resolution.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses an "HH:MM" string (24-hour clock).
func ParseClockTime(s string) (ClockTime, error) {
	var ct ClockTime
	if _, err := fmt.Sscanf(s, "%d:%d", &ct.Hour, &ct.Minute); err != nil {
		return ClockTime{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	if ct.Hour < 0 || ct.Hour > 23 || ct.Minute < 0 || ct.Minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid time %q: out of range", s)
	}
	return ct, nil
}

// BirthInfo carries the birth data a reading is computed from. BirthTime is
// optional; calculators that consult it fall back to a documented default
// when it is nil. BirthPlace is carried for future geolocation refinement
// and unused by the current calculators.
type BirthInfo struct {
	BirthDate  time.Time
	BirthTime  *ClockTime
	BirthPlace string
}

// ThaiLannaReading is a Thai Lanna weekday-astrology reading.
type ThaiLannaReading struct {
	DayOfWeek     string `json:"dayOfWeek"`
	WeekdayAnimal string `json:"weekdayAnimal"`
	WeekdayGod    string `json:"weekdayGod"`
	Element       string `json:"element"`
	LuckyColor    string `json:"luckyColor"`
	Meaning       string `json:"meaning"`
}

// BaziReading is a Chinese four-pillars reading.
type BaziReading struct {
	YearPillar  string `json:"yearPillar"`
	MonthPillar string `json:"monthPillar"`
	DayPillar   string `json:"dayPillar"`
	HourPillar  string `json:"hourPillar"`
	Element     string `json:"element"`
	Animal      string `json:"animal"`
	YinYang     string `json:"yinYang"`
	Meaning     string `json:"meaning"`
}

// WesternZodiacReading is a Western sun-sign reading.
type WesternZodiacReading struct {
	SunSign      string `json:"sunSign"`
	Element      string `json:"element"`
	Quality      string `json:"quality"`
	RulingPlanet string `json:"rulingPlanet"`
	Meaning      string `json:"meaning"`
}

// VedicReading is a Vedic moon-sign and nakshatra reading.
type VedicReading struct {
	MoonSign  string `json:"moonSign"`
	Nakshatra string `json:"nakshatra"`
	Pada      int    `json:"pada"`
	Element   string `json:"element"`
	Deity     string `json:"deity"`
	Meaning   string `json:"meaning"`
}

// JapaneseReading is a Japanese zodiac reading.
type JapaneseReading struct {
	AnimalSign     string `json:"animalSign"`
	BloodType      string `json:"bloodType"`
	LuckyDirection string `json:"luckyDirection"`
	LuckyColor     string `json:"luckyColor"`
	Meaning        string `json:"meaning"`
}

// KoreanSajuReading is a Korean four-pillars reading.
type KoreanSajuReading struct {
	YearPillar  string `json:"yearPillar"`
	MonthPillar string `json:"monthPillar"`
	DayPillar   string `json:"dayPillar"`
	HourPillar  string `json:"hourPillar"`
	Element     string `json:"element"`
	Meaning     string `json:"meaning"`
}

// CompositeReading aggregates per-tradition readings for one birth profile.
// A field is non-nil exactly when its tradition was requested.
type CompositeReading struct {
	ThaiLanna     *ThaiLannaReading     `json:"thaiLanna,omitempty"`
	Bazi          *BaziReading          `json:"bazi,omitempty"`
	WesternZodiac *WesternZodiacReading `json:"westernZodiac,omitempty"`
	Vedic         *VedicReading         `json:"vedic,omitempty"`
	Japanese      *JapaneseReading      `json:"japanese,omitempty"`
	KoreanSaju    *KoreanSajuReading    `json:"koreanSaju,omitempty"`
}

// Calculate computes readings for every tradition named in preferences.
// Preferences are treated as a set: order is irrelevant and duplicates are
// harmless since each tradition fills exactly one field. An empty preference
// set yields an empty composite, not an error.
func Calculate(info BirthInfo, preferences []Tradition) CompositeReading {
	var reading CompositeReading
	for _, p := range preferences {
		switch p {
		case TraditionThaiLanna:
			reading.ThaiLanna = thaiLannaReading(info.BirthDate, info.BirthTime)
		case TraditionChineseBazi:
			reading.Bazi = baziReading(info.BirthDate, info.BirthTime)
		case TraditionWesternZodiac:
			reading.WesternZodiac = westernZodiacReading(info.BirthDate)
		case TraditionVedic:
			reading.Vedic = vedicReading(info.BirthDate)
		case TraditionJapanese:
			reading.Japanese = japaneseReading(info.BirthDate)
		case TraditionKoreanSaju:
			reading.KoreanSaju = koreanSajuReading(info.BirthDate, info.BirthTime)
		}
	}
	return reading
}

// FormatContext renders a composite reading as the flat text block handed to
// the narrative generator. Traditions appear in a fixed canonical order
// (Thai Lanna, Bazi, Western, Vedic, Japanese, Korean Saju); the prompt
// structure downstream depends on that order staying stable.
func FormatContext(reading CompositeReading) string {
	var parts []string

	if reading.ThaiLanna != nil {
		parts = append(parts, "Thai Lanna Astrology: "+reading.ThaiLanna.Meaning)
	}
	if reading.Bazi != nil {
		parts = append(parts, "Chinese Bazi Four Pillars: "+reading.Bazi.Meaning)
	}
	if reading.WesternZodiac != nil {
		parts = append(parts, "Western Zodiac: "+reading.WesternZodiac.Meaning)
	}
	if reading.Vedic != nil {
		parts = append(parts, "Vedic Astrology: "+reading.Vedic.Meaning)
	}
	if reading.Japanese != nil {
		parts = append(parts, "Japanese Astrology: "+reading.Japanese.Meaning)
	}
	if reading.KoreanSaju != nil {
		parts = append(parts, "Korean Saju: "+reading.KoreanSaju.Meaning)
	}

	return strings.Join(parts, "\n\n")
}
