package horoscope

import (
	"fmt"
	"time"
)

// Western sun-sign classification by inclusive month/day boundaries. The
// twelve entries partition the year; Capricorn's range wraps the year end,
// which the start-or-end match below handles without special casing.

type zodiacSign struct {
	name       string
	element    string
	quality    string
	planet     string
	startMonth int
	startDay   int
	endMonth   int
	endDay     int
}

var zodiacSigns = [12]zodiacSign{
	{"Aries", "Fire", "Cardinal", "Mars", 3, 21, 4, 19},
	{"Taurus", "Earth", "Fixed", "Venus", 4, 20, 5, 20},
	{"Gemini", "Air", "Mutable", "Mercury", 5, 21, 6, 20},
	{"Cancer", "Water", "Cardinal", "Moon", 6, 21, 7, 22},
	{"Leo", "Fire", "Fixed", "Sun", 7, 23, 8, 22},
	{"Virgo", "Earth", "Mutable", "Mercury", 8, 23, 9, 22},
	{"Libra", "Air", "Cardinal", "Venus", 9, 23, 10, 22},
	{"Scorpio", "Water", "Fixed", "Pluto", 10, 23, 11, 21},
	{"Sagittarius", "Fire", "Mutable", "Jupiter", 11, 22, 12, 21},
	{"Capricorn", "Earth", "Cardinal", "Saturn", 12, 22, 1, 19},
	{"Aquarius", "Air", "Fixed", "Uranus", 1, 20, 2, 18},
	{"Pisces", "Water", "Mutable", "Neptune", 2, 19, 3, 20},
}

var elementTraits = map[string]string{
	"Fire":  "passion and energy",
	"Earth": "stability and practicality",
	"Air":   "intellect and communication",
	"Water": "emotion and intuition",
}

func westernZodiacReading(date time.Time) *WesternZodiacReading {
	month := int(date.Month())
	day := date.Day()

	// The boundaries are exhaustive, so the fallback should be unreachable;
	// hitting it would mean the table itself is wrong.
	sign := zodiacSigns[9] // Capricorn
	for _, z := range zodiacSigns {
		if (month == z.startMonth && day >= z.startDay) || (month == z.endMonth && day <= z.endDay) {
			sign = z
			break
		}
	}

	return &WesternZodiacReading{
		SunSign:      sign.name,
		Element:      sign.element,
		Quality:      sign.quality,
		RulingPlanet: sign.planet,
		Meaning: fmt.Sprintf(
			"You are a %s, a %s %s sign ruled by %s. Your element %s gives you natural %s.",
			sign.name, sign.quality, sign.element, sign.planet, sign.element, elementTraits[sign.element],
		),
	}
}
