package horoscope

import (
	"fmt"
	"time"
)

// Vedic moon sign and nakshatra, mapped proportionally from the day of year.
// This is a deliberate simplification of lunar-mansion astronomy (no Moon
// ephemeris is consulted); the proportional mapping is the contract and must
// not be "corrected" toward astronomical accuracy.

type nakshatra struct {
	name    string
	deity   string
	element string
}

var nakshatras = [27]nakshatra{
	{"Ashwini", "Ashwini Kumaras", "Fire"},
	{"Bharani", "Yama", "Earth"},
	{"Krittika", "Agni", "Fire"},
	{"Rohini", "Brahma", "Earth"},
	{"Mrigashira", "Soma", "Earth"},
	{"Ardra", "Rudra", "Water"},
	{"Punarvasu", "Aditi", "Water"},
	{"Pushya", "Brihaspati", "Water"},
	{"Ashlesha", "Nagas", "Water"},
	{"Magha", "Pitris", "Fire"},
	{"Purva Phalguni", "Bhaga", "Water"},
	{"Uttara Phalguni", "Aryaman", "Fire"},
	{"Hasta", "Savitar", "Air"},
	{"Chitra", "Vishvakarma", "Fire"},
	{"Swati", "Vayu", "Air"},
	{"Vishakha", "Indra-Agni", "Fire"},
	{"Anuradha", "Mitra", "Water"},
	{"Jyeshtha", "Indra", "Air"},
	{"Mula", "Nirriti", "Air"},
	{"Purva Ashadha", "Apas", "Water"},
	{"Uttara Ashadha", "Vishvedevas", "Air"},
	{"Shravana", "Vishnu", "Air"},
	{"Dhanishta", "Vasus", "Ether"},
	{"Shatabhisha", "Varuna", "Ether"},
	{"Purva Bhadrapada", "Aja Ekapada", "Fire"},
	{"Uttara Bhadrapada", "Ahir Budhnya", "Ether"},
	{"Revati", "Pushan", "Ether"},
}

var rashi = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func vedicReading(date time.Time) *VedicReading {
	doy := dayOfYear(date)

	nak := nakshatras[(doy*27/365)%27]
	pada := (doy % 4) + 1
	moonSign := rashi[(doy*12/365)%12]

	return &VedicReading{
		MoonSign:  moonSign,
		Nakshatra: nak.name,
		Pada:      pada,
		Element:   nak.element,
		Deity:     nak.deity,
		Meaning: fmt.Sprintf(
			"Your Moon is in %s, under the Nakshatra %s (Pada %d), ruled by deity %s. The %s element guides your emotional nature and inner world.",
			moonSign, nak.name, pada, nak.deity, nak.element,
		),
	}
}
