package horoscope

import (
	"fmt"
	"time"
)

// Japanese zodiac attributes. All four lookups are independent modular
// functions of the birth year. The blood type is the playful personality
// trait popular in Japanese astrology, not a genetic claim.

var japaneseAnimals = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

var japaneseColors = [6]string{"Red", "Blue", "Yellow", "Green", "Purple", "White"}

var japaneseDirections = [4]string{"North", "East", "South", "West"}

var japaneseBloodTypes = [4]string{"A", "B", "O", "AB"}

func japaneseReading(date time.Time) *JapaneseReading {
	year := date.Year()

	animalSign := japaneseAnimals[floorMod(year-4, 12)]
	bloodType := japaneseBloodTypes[floorMod(year, 4)]
	luckyDirection := japaneseDirections[floorMod(year, 4)]
	luckyColor := japaneseColors[floorMod(year, 6)]

	return &JapaneseReading{
		AnimalSign:     animalSign,
		BloodType:      bloodType,
		LuckyDirection: luckyDirection,
		LuckyColor:     luckyColor,
		Meaning: fmt.Sprintf(
			"Born in the year of the %s, with blood type %s traits. Your lucky direction is %s, and %s brings you fortune. This combination shapes your personality and destiny.",
			animalSign, bloodType, luckyDirection, luckyColor,
		),
	}
}
