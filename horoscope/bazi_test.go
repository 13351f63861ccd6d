package horoscope

import (
	"testing"
	"time"
)

func TestBaziYearPillar2000(t *testing.T) {
	// (2000-1924) mod 60 = 16: stem 6 (Yang Metal), branch 4 (Dragon).
	reading := baziReading(date(2000, time.January, 1), nil)

	if reading.YearPillar != "Yang Metal Dragon" {
		t.Errorf("YearPillar = %q, want %q", reading.YearPillar, "Yang Metal Dragon")
	}
	if reading.Animal != "Dragon" {
		t.Errorf("Animal = %s, want Dragon", reading.Animal)
	}
	if reading.Element != "Metal" {
		t.Errorf("Element = %s, want Metal", reading.Element)
	}
	if reading.YinYang != "Yang" {
		t.Errorf("YinYang = %s, want Yang", reading.YinYang)
	}
}

func TestBaziMonthPillar(t *testing.T) {
	// January of a year-stem-6 year: branch 0 (Rat), stem (6*2+1) mod 10 = 3.
	reading := baziReading(date(2000, time.January, 15), nil)
	if reading.MonthPillar != "Yin Fire Rat" {
		t.Errorf("MonthPillar = %q, want %q", reading.MonthPillar, "Yin Fire Rat")
	}
}

func TestBaziDayPillar2000(t *testing.T) {
	// 2000-01-01 is Unix day 10957; +11 calibration = 10968.
	// Stem (10968+9) mod 10 = 7 (Yin Metal), branch (10968+1) mod 12 = 1 (Ox).
	reading := baziReading(date(2000, time.January, 1), nil)
	if reading.DayPillar != "Yin Metal Ox" {
		t.Errorf("DayPillar = %q, want %q", reading.DayPillar, "Yin Metal Ox")
	}
}

func TestBaziHourPillarDefaultsWithoutTime(t *testing.T) {
	reading := baziReading(date(2000, time.January, 1), nil)
	if reading.HourPillar != "Yang Wood Rat" {
		t.Errorf("HourPillar = %q, want first-entry default %q", reading.HourPillar, "Yang Wood Rat")
	}
}

func TestBaziHourPillarWithTime(t *testing.T) {
	// 14:30 = 870 minutes; (870+60)/120 = 7 (Goat).
	// Day stem for 2000-01-01 is 7, so hour stem = (7*2+7) mod 10 = 1 (Yin Wood).
	reading := baziReading(date(2000, time.January, 1), &ClockTime{Hour: 14, Minute: 30})
	if reading.HourPillar != "Yin Wood Goat" {
		t.Errorf("HourPillar = %q, want %q", reading.HourPillar, "Yin Wood Goat")
	}
}

func TestBaziHourSegmentBoundary(t *testing.T) {
	// The one-hour shift aligns segments to odd hours: 23:00 belongs to the
	// Rat segment of the following cycle position.
	reading := baziReading(date(2000, time.January, 1), &ClockTime{Hour: 23, Minute: 0})
	if got := reading.HourPillar; got[len(got)-3:] != "Rat" {
		t.Errorf("23:00 hour branch should be Rat, got pillar %q", got)
	}
}

func TestBaziDeterministic(t *testing.T) {
	d := date(1987, time.June, 9)
	bt := &ClockTime{Hour: 5, Minute: 45}
	a := baziReading(d, bt)
	b := baziReading(d, bt)
	if *a != *b {
		t.Errorf("same input produced different readings:\n%+v\n%+v", a, b)
	}
}
