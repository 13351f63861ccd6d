package horoscope

import (
	"testing"
	"time"
)

func TestJapaneseReading2000(t *testing.T) {
	reading := japaneseReading(date(2000, time.June, 15))

	if reading.AnimalSign != "Dragon" {
		t.Errorf("AnimalSign = %s, want Dragon", reading.AnimalSign)
	}
	if reading.BloodType != "A" {
		t.Errorf("BloodType = %s, want A", reading.BloodType)
	}
	if reading.LuckyDirection != "North" {
		t.Errorf("LuckyDirection = %s, want North", reading.LuckyDirection)
	}
	if reading.LuckyColor != "Yellow" {
		t.Errorf("LuckyColor = %s, want Yellow", reading.LuckyColor)
	}
}

func TestJapaneseOnlyYearMatters(t *testing.T) {
	a := japaneseReading(date(1995, time.January, 1))
	b := japaneseReading(date(1995, time.December, 31))
	if *a != *b {
		t.Errorf("month/day should not affect the reading: %+v vs %+v", a, b)
	}
}

func TestJapaneseAnimalCycle(t *testing.T) {
	a := japaneseReading(date(1988, time.May, 5))
	b := japaneseReading(date(2000, time.May, 5))
	if a.AnimalSign != b.AnimalSign {
		t.Errorf("animal sign should repeat every 12 years: %s vs %s", a.AnimalSign, b.AnimalSign)
	}
}
