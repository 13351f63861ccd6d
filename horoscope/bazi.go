package horoscope

import (
	"fmt"
	"time"
)

// Chinese Bazi four-pillars calculation. The sexagenary cycle is anchored at
// 1924 for this lineage; the day pillar additionally carries a +11 day offset
// calibrating the day count to that epoch. Neither constant is shared with
// the Korean Saju calculator, which is anchored independently.

const baziEpochYear = 1924

var heavenlyStems = [10]string{
	"Yang Wood", "Yin Wood", "Yang Fire", "Yin Fire", "Yang Earth",
	"Yin Earth", "Yang Metal", "Yin Metal", "Yang Water", "Yin Water",
}

var earthlyBranches = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

var chineseZodiacAnimals = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

var fiveElements = [5]string{"Wood", "Fire", "Earth", "Metal", "Water"}

func baziReading(date time.Time, birthTime *ClockTime) *BaziReading {
	year := date.Year()
	month := int(date.Month())

	yearStemIndex, yearBranchIndex := stemBranchDecompose(sexagenaryIndex(year, baziEpochYear))
	yearStem := heavenlyStems[yearStemIndex]
	yearBranch := earthlyBranches[yearBranchIndex]

	monthBranchIndex := (month - 1) % 12
	monthStemIndex := (yearStemIndex*2 + month) % 10
	monthStem := heavenlyStems[monthStemIndex]
	monthBranch := earthlyBranches[monthBranchIndex]

	daysSinceEpoch := unixDays(date) + 11
	dayStemIndex := floorMod(daysSinceEpoch+9, 10)
	dayBranchIndex := floorMod(daysSinceEpoch+1, 12)
	dayStem := heavenlyStems[dayStemIndex]
	dayBranch := earthlyBranches[dayBranchIndex]

	// Without a birth time the hour pillar defaults to the first table
	// entries rather than being omitted, keeping output deterministic.
	hourStem := heavenlyStems[0]
	hourBranch := earthlyBranches[0]
	if birthTime != nil {
		totalMinutes := birthTime.Hour*60 + birthTime.Minute
		// Two-hour segments, shifted one hour so segment boundaries land
		// on the traditional odd-hour scheme.
		hourBranchIndex := ((totalMinutes + 60) / 120) % 12
		hourBranch = earthlyBranches[hourBranchIndex]
		hourStem = heavenlyStems[(dayStemIndex*2+hourBranchIndex)%10]
	}

	animal := chineseZodiacAnimals[yearBranchIndex]
	element := fiveElements[yearStemIndex/2]
	yinYang := "Yin"
	if yearStemIndex%2 == 0 {
		yinYang = "Yang"
	}

	return &BaziReading{
		YearPillar:  yearStem + " " + yearBranch,
		MonthPillar: monthStem + " " + monthBranch,
		DayPillar:   dayStem + " " + dayBranch,
		HourPillar:  hourStem + " " + hourBranch,
		Element:     element,
		Animal:      animal,
		YinYang:     yinYang,
		Meaning: fmt.Sprintf(
			"You are a %s %s %s. Your Four Pillars reveal a destiny shaped by %s energy, with your Year Pillar (%s %s) representing your roots, Month Pillar (%s %s) your growth, Day Pillar (%s %s) your essence, and Hour Pillar (%s %s) your legacy.",
			yinYang, element, animal, element,
			yearStem, yearBranch, monthStem, monthBranch,
			dayStem, dayBranch, hourStem, hourBranch,
		),
	}
}
