package horoscope

import (
	"testing"
	"time"
)

// TestWesternSignPartition walks every day of a year and verifies the sign
// boundaries leave no gap: each day classifies to a sign whose boundary
// actually contains it, so the fallback never decides the result.
func TestWesternSignPartition(t *testing.T) {
	d := date(2001, time.January, 1)
	for d.Year() == 2001 {
		reading := westernZodiacReading(d)

		month := int(d.Month())
		day := d.Day()
		contained := false
		for _, z := range zodiacSigns {
			if z.name != reading.SunSign {
				continue
			}
			if (month == z.startMonth && day >= z.startDay) || (month == z.endMonth && day <= z.endDay) {
				contained = true
			}
		}
		if !contained {
			t.Fatalf("%s classified as %s but is outside that sign's boundaries", d.Format("2006-01-02"), reading.SunSign)
		}

		d = d.AddDate(0, 0, 1)
	}
}

func TestWesternSignBoundaries(t *testing.T) {
	tests := []struct {
		month time.Month
		day   int
		want  string
	}{
		{time.July, 23, "Leo"},       // boundary start
		{time.August, 22, "Leo"},     // boundary end
		{time.December, 22, "Capricorn"}, // wraparound start
		{time.January, 19, "Capricorn"},  // wraparound end
		{time.January, 20, "Aquarius"},
		{time.March, 21, "Aries"},
		{time.March, 20, "Pisces"},
	}
	for _, tt := range tests {
		reading := westernZodiacReading(date(1990, tt.month, tt.day))
		if reading.SunSign != tt.want {
			t.Errorf("sun sign for %v %d = %s, want %s", tt.month, tt.day, reading.SunSign, tt.want)
		}
	}
}

func TestWesternReadingAttributes(t *testing.T) {
	reading := westernZodiacReading(date(1990, time.July, 25))

	if reading.SunSign != "Leo" {
		t.Fatalf("SunSign = %s, want Leo", reading.SunSign)
	}
	if reading.Element != "Fire" {
		t.Errorf("Element = %s, want Fire", reading.Element)
	}
	if reading.Quality != "Fixed" {
		t.Errorf("Quality = %s, want Fixed", reading.Quality)
	}
	if reading.RulingPlanet != "Sun" {
		t.Errorf("RulingPlanet = %s, want Sun", reading.RulingPlanet)
	}
	if reading.Meaning == "" {
		t.Error("Meaning should not be empty")
	}
}
