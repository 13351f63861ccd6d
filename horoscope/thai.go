package horoscope

import (
	"fmt"
	"time"
)

// Thai Lanna weekday astrology assigns each birth weekday a spirit animal,
// guardian deity, element and lucky color. The lookup tables use an adjusted
// 0-7 key rather than the raw weekday: Wednesday splits into an AM slot (3)
// and a PM slot (4) decided by the birth hour, and Saturday occupies a
// dedicated slot (7).

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var thaiWeekdayAnimals = [8]string{
	"Garuda (Sunday)",
	"Tiger (Monday)",
	"Lion (Tuesday)",
	"Elephant with Tusks (Wednesday AM)",
	"Elephant without Tusks (Wednesday PM)",
	"Mouse (Thursday)",
	"Guinea Pig (Friday)",
	"Dragon (Saturday)",
}

var thaiWeekdayGods = [8]string{
	"Surya (Sun God)",
	"Chandra (Moon God)",
	"Mangala (Mars God)",
	"Budha (Mercury God - AM)",
	"Budha (Mercury God - PM)",
	"Brihaspati (Jupiter God)",
	"Shukra (Venus God)",
	"Shani (Saturn God)",
}

var thaiWeekdayColors = [8]string{
	"Red", "Yellow", "Pink", "Green", "Green", "Orange", "Blue", "Purple",
}

var thaiWeekdayElements = [8]string{
	"Fire", "Water", "Fire", "Earth", "Earth", "Air", "Water", "Air",
}

func thaiLannaReading(date time.Time, birthTime *ClockTime) *ThaiLannaReading {
	weekday := weekdayOf(date)
	dayKey := weekday

	if weekday == 3 && birthTime != nil {
		if birthTime.Hour >= 12 {
			dayKey = 4
		} else {
			dayKey = 3
		}
	} else if weekday == 6 {
		dayKey = 7
	}

	return &ThaiLannaReading{
		DayOfWeek:     weekdayNames[weekday],
		WeekdayAnimal: thaiWeekdayAnimals[dayKey],
		WeekdayGod:    thaiWeekdayGods[dayKey],
		Element:       thaiWeekdayElements[dayKey],
		LuckyColor:    thaiWeekdayColors[dayKey],
		Meaning: fmt.Sprintf(
			"Born under the protection of %s, your spirit animal is the %s. Your dominant element is %s, and %s brings you fortune.",
			thaiWeekdayGods[dayKey], thaiWeekdayAnimals[dayKey], thaiWeekdayElements[dayKey], thaiWeekdayColors[dayKey],
		),
	}
}
