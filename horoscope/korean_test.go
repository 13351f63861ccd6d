package horoscope

import (
	"strings"
	"testing"
	"time"
)

func TestSajuYearPillar2000(t *testing.T) {
	// (2000-4) mod 10 = 6 (경 Metal), (2000-4) mod 12 = 4 (진 Dragon).
	reading := koreanSajuReading(date(2000, time.January, 1), nil)

	if reading.YearPillar != "경(庚) Metal 진(辰) Dragon" {
		t.Errorf("YearPillar = %q, want %q", reading.YearPillar, "경(庚) Metal 진(辰) Dragon")
	}
	if reading.Element != "Metal" {
		t.Errorf("Element = %s, want Metal", reading.Element)
	}
}

func TestSajuDayPillarSkipsBaziCalibration(t *testing.T) {
	// Saju counts Unix days directly (no +11): for 2000-01-01, day 10957,
	// stem (10957+9) mod 10 = 6, branch (10957+1) mod 12 = 2.
	reading := koreanSajuReading(date(2000, time.January, 1), nil)
	if reading.DayPillar != "경(庚) Metal 인(寅) Tiger" {
		t.Errorf("DayPillar = %q, want %q", reading.DayPillar, "경(庚) Metal 인(寅) Tiger")
	}
}

func TestSajuHourPillarDefaultsWithoutTime(t *testing.T) {
	reading := koreanSajuReading(date(2000, time.January, 1), nil)
	if reading.HourPillar != "갑(甲) Wood 자(子) Rat" {
		t.Errorf("HourPillar = %q, want first-entry default", reading.HourPillar)
	}
}

func TestSajuHourBucketsDifferFromBazi(t *testing.T) {
	// Saju buckets by floor((hour+1)/2): 23:00 gives (23+1)/2 = 12 mod 12 = 0
	// (Rat), while 22:00 gives 11 (해 Pig).
	d := date(2000, time.January, 1)

	late := koreanSajuReading(d, &ClockTime{Hour: 23, Minute: 0})
	if !strings.Contains(late.HourPillar, "자(子) Rat") {
		t.Errorf("23:00 hour branch should be 자(子) Rat, got %q", late.HourPillar)
	}

	evening := koreanSajuReading(d, &ClockTime{Hour: 22, Minute: 0})
	if !strings.Contains(evening.HourPillar, "해(亥) Pig") {
		t.Errorf("22:00 hour branch should be 해(亥) Pig, got %q", evening.HourPillar)
	}
}

func TestSajuMinutesDoNotAffectHourBucket(t *testing.T) {
	// Unlike Bazi, the Saju hour formula only reads the hour.
	d := date(2000, time.January, 1)
	a := koreanSajuReading(d, &ClockTime{Hour: 14, Minute: 0})
	b := koreanSajuReading(d, &ClockTime{Hour: 14, Minute: 59})
	if a.HourPillar != b.HourPillar {
		t.Errorf("hour pillar changed with minutes: %q vs %q", a.HourPillar, b.HourPillar)
	}
}
