package horoscope

import (
	"testing"
	"time"
)

func TestVedicFirstDayOfYear(t *testing.T) {
	reading := vedicReading(date(2001, time.January, 1))

	if reading.Nakshatra != "Ashwini" {
		t.Errorf("Nakshatra = %s, want Ashwini", reading.Nakshatra)
	}
	if reading.MoonSign != "Aries" {
		t.Errorf("MoonSign = %s, want Aries", reading.MoonSign)
	}
	if reading.Pada != 2 {
		t.Errorf("Pada = %d, want 2 (dayOfYear 1 mod 4 + 1)", reading.Pada)
	}
	if reading.Deity != "Ashwini Kumaras" {
		t.Errorf("Deity = %s, want Ashwini Kumaras", reading.Deity)
	}
}

func TestVedicIndicesAlwaysInRange(t *testing.T) {
	// Day 366 of a leap year pushes the proportional mapping past the table
	// length; the mod must bring it back in range.
	d := date(2000, time.January, 1)
	for d.Year() == 2000 {
		reading := vedicReading(d)
		if reading.Nakshatra == "" || reading.MoonSign == "" {
			t.Fatalf("empty reading for %s", d.Format("2006-01-02"))
		}
		if reading.Pada < 1 || reading.Pada > 4 {
			t.Fatalf("Pada = %d for %s, want 1-4", reading.Pada, d.Format("2006-01-02"))
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestVedicMappingIsDayOfYearProportional(t *testing.T) {
	// Same day-of-year in different years gives the same reading; the
	// mapping is calendar-proportional, not astronomical.
	a := vedicReading(date(1990, time.March, 10))
	b := vedicReading(date(2022, time.March, 10))
	if a.Nakshatra != b.Nakshatra || a.MoonSign != b.MoonSign || a.Pada != b.Pada {
		t.Errorf("same day-of-year produced different readings: %+v vs %+v", a, b)
	}
}

func TestVedicNakshatraElementAndDeityMatchTable(t *testing.T) {
	// Mid-year sample: day 180 maps to nakshatra floor(180*27/365) = 13 (Chitra).
	reading := vedicReading(date(2001, time.June, 29))
	if reading.Nakshatra != "Chitra" {
		t.Fatalf("Nakshatra = %s, want Chitra", reading.Nakshatra)
	}
	if reading.Deity != "Vishvakarma" {
		t.Errorf("Deity = %s, want Vishvakarma", reading.Deity)
	}
	if reading.Element != "Fire" {
		t.Errorf("Element = %s, want Fire", reading.Element)
	}
}
