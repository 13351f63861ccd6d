package horoscope

import (
	"fmt"
	"time"
)

// Korean Saju four-pillars calculation. Structurally parallel to Bazi but
// independently calibrated: the cycle is anchored at year 4, the day pillar
// carries no extra offset, and the hour pillar buckets hours as
// floor((hour+1)/2) rather than Bazi's minute-based formula. The constants
// are intentionally distinct from bazi.go.

const sajuEpochYear = 4

var koreanStems = [10]string{
	"갑(甲) Wood", "을(乙) Wood", "병(丙) Fire", "정(丁) Fire", "무(戊) Earth",
	"기(己) Earth", "경(庚) Metal", "신(辛) Metal", "임(壬) Water", "계(癸) Water",
}

var koreanBranches = [12]string{
	"자(子) Rat", "축(丑) Ox", "인(寅) Tiger", "묘(卯) Rabbit", "진(辰) Dragon", "사(巳) Snake",
	"오(午) Horse", "미(未) Goat", "신(申) Monkey", "유(酉) Rooster", "술(戌) Dog", "해(亥) Pig",
}

func koreanSajuReading(date time.Time, birthTime *ClockTime) *KoreanSajuReading {
	year := date.Year()
	month := int(date.Month())

	yearStemIndex := floorMod(year-sajuEpochYear, 10)
	yearBranchIndex := floorMod(year-sajuEpochYear, 12)
	monthStemIndex := (yearStemIndex*2 + month) % 10
	monthBranchIndex := (month - 1) % 12

	days := unixDays(date)
	dayStemIndex := floorMod(days+9, 10)
	dayBranchIndex := floorMod(days+1, 12)

	hourStem := koreanStems[0]
	hourBranch := koreanBranches[0]
	if birthTime != nil {
		hourIndex := ((birthTime.Hour + 1) / 2) % 12
		hourBranch = koreanBranches[hourIndex]
		hourStem = koreanStems[(dayStemIndex*2+hourIndex)%10]
	}

	element := fiveElements[yearStemIndex/2]

	return &KoreanSajuReading{
		YearPillar:  koreanStems[yearStemIndex] + " " + koreanBranches[yearBranchIndex],
		MonthPillar: koreanStems[monthStemIndex] + " " + koreanBranches[monthBranchIndex],
		DayPillar:   koreanStems[dayStemIndex] + " " + koreanBranches[dayBranchIndex],
		HourPillar:  hourStem + " " + hourBranch,
		Element:     element,
		Meaning: fmt.Sprintf(
			"Your Saju reveals %s as your dominant element. Year Pillar represents your ancestors and roots, Month Pillar your parents and early life, Day Pillar your true self, Hour Pillar your children and legacy.",
			element,
		),
	}
}
