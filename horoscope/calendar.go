package horoscope

import "time"

// Calendrical primitives shared by the tradition calculators. The weekday
// convention is Sunday = 0 everywhere in this package.

// weekdayOf returns the day-of-week index 0-6, Sunday = 0.
func weekdayOf(d time.Time) int {
	return int(d.Weekday())
}

// dayOfYear returns the 1-based ordinal day within d's calendar year.
func dayOfYear(d time.Time) int {
	return d.YearDay()
}

// sexagenaryIndex returns the position of year in the 60-term stem/branch
// cycle anchored at epochYear. Epoch years deliberately differ between
// calculators (Bazi uses 1924, Saju uses 4); each calculator pins its own
// constant and they must not be unified.
func sexagenaryIndex(year, epochYear int) int {
	return floorMod(year-epochYear, 60)
}

// stemBranchDecompose splits a sexagenary index into its Heavenly Stem
// (mod 10) and Earthly Branch (mod 12) indices.
func stemBranchDecompose(index int) (stem, branch int) {
	return index % 10, index % 12
}

// unixDays returns the number of whole days between d and the Unix epoch,
// rounded toward negative infinity so pre-1970 dates stay consistent.
func unixDays(d time.Time) int {
	return int(floorDiv(d.Unix(), 86400))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
